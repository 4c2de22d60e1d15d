package catalog

import (
	"context"
	"testing"
)

func TestCatalogIndexes(t *testing.T) {
	c := New(DefaultQuestions())

	q, ok := c.ByID("q1")
	if !ok {
		t.Fatalf("expected q1 in catalog")
	}
	if q.Difficulty != 1 || q.Answer != "4" {
		t.Fatalf("unexpected q1: %+v", q)
	}

	for tier := 1; tier <= 10; tier++ {
		pool := c.ByTier(tier)
		if len(pool) == 0 {
			t.Fatalf("tier %d has no questions", tier)
		}
		for _, q := range pool {
			if q.Difficulty != tier {
				t.Fatalf("question %s at wrong tier: %d", q.ID, q.Difficulty)
			}
		}
	}

	if c.Len() != len(DefaultQuestions()) {
		t.Fatalf("expected %d questions, got %d", len(DefaultQuestions()), c.Len())
	}
}

func TestCatalogUnknownLookups(t *testing.T) {
	c := New(DefaultQuestions())

	if _, ok := c.ByID("nope"); ok {
		t.Fatalf("unexpected hit for unknown id")
	}
	if pool := c.ByTier(42); len(pool) != 0 {
		t.Fatalf("unexpected pool for unknown tier: %+v", pool)
	}
}

func TestBuildUsesLoader(t *testing.T) {
	questions := DefaultQuestions()[:3]
	c, err := Build(context.Background(), NewStaticLoader(questions))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("expected 3 questions, got %d", c.Len())
	}
}
