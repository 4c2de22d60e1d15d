package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"brainbolt-service/internal/domain"
)

const uniqueViolationCode = "23505"

// UserStore is the durable app.UserStore backed by Postgres. All state
// mutation for a submission happens inside one explicit transaction; the
// unique index on (user_id, question_id) is the authoritative duplicate check.
type UserStore struct {
	pool *pgxpool.Pool
}

func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

func (s *UserStore) GetOrCreate(ctx context.Context, userID string) (domain.UserState, error) {
	if userID == "" {
		userID = uuid.NewString()
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return domain.UserState{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO users (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`, userID); err != nil {
		return domain.UserState{}, fmt.Errorf("insert user: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO user_state (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID); err != nil {
		return domain.UserState{}, fmt.Errorf("insert user state: %w", err)
	}

	state, err := scanState(tx.QueryRow(ctx, selectStateSQL, userID))
	if err != nil {
		return domain.UserState{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.UserState{}, fmt.Errorf("commit: %w", err)
	}
	return state, nil
}

func (s *UserStore) GetState(ctx context.Context, userID string) (domain.UserState, error) {
	return scanState(s.pool.QueryRow(ctx, selectStateSQL, userID))
}

func (s *UserStore) AnsweredQuestions(ctx context.Context, userID string) (map[string]bool, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT question_id FROM user_submissions WHERE user_id=$1`, userID)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	answered := make(map[string]bool)
	for rows.Next() {
		var questionID string
		if err := rows.Scan(&questionID); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		answered[questionID] = true
	}
	return answered, rows.Err()
}

func (s *UserStore) HasAnswered(ctx context.Context, userID, questionID string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_submissions WHERE user_id=$1 AND question_id=$2)`,
		userID, questionID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check submission: %w", err)
	}
	return exists, nil
}

func (s *UserStore) RecordLastQuestion(ctx context.Context, userID, questionID string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE user_state SET last_question_id=$2 WHERE user_id=$1`, userID, questionID)
	return err
}

// SubmitAttempt inserts the submission, writes the new state, runs the
// ranking sync, and only then commits. Constraint violations surface as
// ErrAlreadyAnswered; a sync failure aborts the transaction so the durable
// record and the ranking cache never diverge on this path.
func (s *UserStore) SubmitAttempt(ctx context.Context, state domain.UserState, sub domain.Submission, sync func(ctx context.Context) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO user_submissions (id, user_id, question_id, submitted_answer, is_correct, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		sub.ID, sub.UserID, sub.QuestionID, sub.Answer, sub.Correct, sub.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyAnswered
		}
		return fmt.Errorf("insert submission: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE user_state
		 SET current_difficulty=$2, current_streak=$3, max_streak=$4, total_score=$5,
		     daily_attempts=$6, daily_correct=$7, last_activity_date=$8, updated_at=$9
		 WHERE user_id=$1`,
		state.UserID, state.Difficulty, state.Streak, state.MaxStreak, state.TotalScore,
		state.DailyAttempts, state.DailyCorrect, state.LastActivityAt, state.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update user state: %w", err)
	}

	if err := sync(ctx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

const selectStateSQL = `
SELECT user_id, current_difficulty, current_streak, max_streak, total_score,
       daily_attempts, daily_correct, COALESCE(last_question_id, ''),
       last_activity_date, updated_at
FROM user_state WHERE user_id=$1`

func scanState(row pgx.Row) (domain.UserState, error) {
	var state domain.UserState
	err := row.Scan(
		&state.UserID, &state.Difficulty, &state.Streak, &state.MaxStreak,
		&state.TotalScore, &state.DailyAttempts, &state.DailyCorrect,
		&state.LastQuestionID, &state.LastActivityAt, &state.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.UserState{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.UserState{}, fmt.Errorf("scan user state: %w", err)
	}
	return state, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
