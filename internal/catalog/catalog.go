// Package catalog holds the immutable question registry. It is built once at
// startup, indexed by ID and by difficulty tier, and never mutated afterwards,
// so readers need no synchronization.
package catalog

import (
	"context"

	"brainbolt-service/internal/domain"
)

// Loader fetches the question bank from a backing store.
type Loader interface {
	Load(ctx context.Context) ([]domain.Question, error)
}

// Catalog is the read-only question registry.
type Catalog struct {
	byID   map[string]domain.Question
	byTier map[int][]domain.Question
	all    []domain.Question
}

// New indexes the given questions. The slice is copied; later mutation of the
// input does not affect the catalog.
func New(questions []domain.Question) *Catalog {
	c := &Catalog{
		byID:   make(map[string]domain.Question, len(questions)),
		byTier: make(map[int][]domain.Question),
		all:    make([]domain.Question, len(questions)),
	}
	copy(c.all, questions)
	for _, q := range c.all {
		c.byID[q.ID] = q
		c.byTier[q.Difficulty] = append(c.byTier[q.Difficulty], q)
	}
	return c
}

// Build loads questions through the loader and indexes them.
func Build(ctx context.Context, loader Loader) (*Catalog, error) {
	questions, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return New(questions), nil
}

// ByID looks up a single question.
func (c *Catalog) ByID(id string) (domain.Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// ByTier returns all questions at one difficulty tier.
func (c *Catalog) ByTier(tier int) []domain.Question {
	return c.byTier[tier]
}

// All returns every question in the catalog.
func (c *Catalog) All() []domain.Question {
	return c.all
}

// Len reports the catalog size.
func (c *Catalog) Len() int {
	return len(c.all)
}

// StaticLoader serves a fixed slice (used for the built-in bank and tests).
type StaticLoader struct {
	questions []domain.Question
}

func NewStaticLoader(questions []domain.Question) *StaticLoader {
	return &StaticLoader{questions: questions}
}

func (l *StaticLoader) Load(_ context.Context) ([]domain.Question, error) {
	return l.questions, nil
}
