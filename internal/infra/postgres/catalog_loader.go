package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"brainbolt-service/internal/domain"
)

// CatalogLoader reads the whole question bank from Postgres at startup.
type CatalogLoader struct {
	pool *pgxpool.Pool
}

func NewCatalogLoader(pool *pgxpool.Pool) *CatalogLoader {
	return &CatalogLoader{pool: pool}
}

func (l *CatalogLoader) Load(ctx context.Context) ([]domain.Question, error) {
	rows, err := l.pool.Query(ctx,
		`SELECT id, prompt, difficulty, choices, correct_answer FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Prompt, &q.Difficulty, &q.Choices, &q.Answer); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
