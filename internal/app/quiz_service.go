package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"brainbolt-service/internal/catalog"
	"brainbolt-service/internal/domain"
)

// IdempotencyGuard claims client-supplied request tokens at most once within
// the dedupe window. A false result means the token was seen before.
type IdempotencyGuard interface {
	TryClaim(ctx context.Context, token string) (bool, error)
}

// RankingCache holds the two ordered leaderboard structures (by total score
// and by current streak) keyed by user ID.
type RankingCache interface {
	Upsert(ctx context.Context, userID string, totalScore int64, streak int) error
	TopByScore(ctx context.Context, limit int) ([]domain.RankEntry, error)
	TopByStreak(ctx context.Context, limit int) ([]domain.RankEntry, error)
	ScoreRank(ctx context.Context, userID string) (int64, bool, error)
	StreakRank(ctx context.Context, userID string) (int64, bool, error)
}

// UserStore is the durable per-user repository. SubmitAttempt runs one
// submission transaction: it inserts the submission record (the authoritative
// duplicate check on (user, question)), writes the updated state, invokes sync
// before committing, and rolls everything back if sync or the commit fails.
type UserStore interface {
	GetOrCreate(ctx context.Context, userID string) (domain.UserState, error)
	GetState(ctx context.Context, userID string) (domain.UserState, error)
	AnsweredQuestions(ctx context.Context, userID string) (map[string]bool, error)
	HasAnswered(ctx context.Context, userID, questionID string) (bool, error)
	RecordLastQuestion(ctx context.Context, userID, questionID string) error
	SubmitAttempt(ctx context.Context, state domain.UserState, sub domain.Submission, sync func(ctx context.Context) error) error
}

// AnswerRequest is one answer submission.
type AnswerRequest struct {
	UserID         string
	QuestionID     string
	Answer         string
	IdempotencyKey string
}

// QuizService coordinates question selection, answer grading and leaderboard
// propagation.
type QuizService struct {
	questions *catalog.Catalog
	users     UserStore
	guard     IdempotencyGuard
	ranking   RankingCache
	hub       *LeaderboardHub
	logger    *zap.Logger
	now       func() time.Time
}

func NewQuizService(questions *catalog.Catalog, users UserStore, guard IdempotencyGuard, ranking RankingCache, hub *LeaderboardHub, logger *zap.Logger) *QuizService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuizService{
		questions: questions,
		users:     users,
		guard:     guard,
		ranking:   ranking,
		hub:       hub,
		logger:    logger,
		now:       time.Now,
	}
}

// NewQuizServiceWithClock is test-only for deterministic timestamps.
func NewQuizServiceWithClock(questions *catalog.Catalog, users UserStore, guard IdempotencyGuard, ranking RankingCache, hub *LeaderboardHub, logger *zap.Logger, now func() time.Time) *QuizService {
	s := NewQuizService(questions, users, guard, ranking, hub, logger)
	s.now = now
	return s
}

// NextQuestion picks an unanswered question at the user's current tier,
// widening to the full catalog when the tier (or the whole bank) is exhausted.
// An empty userID creates a new user identity.
func (s *QuizService) NextQuestion(ctx context.Context, userID string) (domain.NextQuestion, error) {
	state, err := s.users.GetOrCreate(ctx, userID)
	if err != nil {
		return domain.NextQuestion{}, fmt.Errorf("get or create user: %w", err)
	}

	answered, err := s.users.AnsweredQuestions(ctx, state.UserID)
	if err != nil {
		return domain.NextQuestion{}, fmt.Errorf("load answered questions: %w", err)
	}

	tier := int(state.Difficulty)
	if tier < 1 {
		tier = 1
	}
	if tier > 10 {
		tier = 10
	}

	pool := excludeAnswered(s.questions.ByTier(tier), answered)
	if len(pool) == 0 {
		pool = excludeAnswered(s.questions.All(), answered)
	}
	if len(pool) == 0 {
		// Catalog exhausted: re-serving beats failing.
		pool = s.questions.All()
	}

	question := pool[rand.Intn(len(pool))]

	if err := s.users.RecordLastQuestion(ctx, state.UserID, question.ID); err != nil {
		// Diagnostic only; the served question is still valid.
		s.logger.Warn("record last question failed",
			zap.String("user_id", state.UserID), zap.Error(err))
	}

	return domain.NextQuestion{
		UserID:     state.UserID,
		QuestionID: question.ID,
		Difficulty: question.Difficulty,
		Prompt:     question.Prompt,
		Choices:    question.Choices,
	}, nil
}

// SubmitAnswer runs the full submission pipeline: idempotency claim,
// validation, streak decay, daily-window reset, grading, and the durable
// write with the leaderboard sync inside the transaction window. The ranking
// cache is a hard dependency: if its write fails the whole attempt is rolled
// back rather than committing a half-propagated result.
func (s *QuizService) SubmitAnswer(ctx context.Context, req AnswerRequest) (domain.AnswerResult, error) {
	claimed, err := s.guard.TryClaim(ctx, req.IdempotencyKey)
	if err != nil {
		return domain.AnswerResult{}, fmt.Errorf("claim idempotency token: %w", err)
	}
	if !claimed {
		return domain.AnswerResult{}, domain.ErrDuplicateRequest
	}

	question, ok := s.questions.ByID(req.QuestionID)
	if !ok {
		return domain.AnswerResult{}, domain.ErrQuestionNotFound
	}

	state, err := s.users.GetState(ctx, req.UserID)
	if err != nil {
		return domain.AnswerResult{}, err
	}

	now := s.now().UTC()
	if oldStreak := state.Streak; decayStreak(&state, now) {
		s.logger.Info("applying streak decay",
			zap.String("user_id", state.UserID),
			zap.Int("old_streak", oldStreak),
			zap.Int("new_streak", state.Streak))
	}

	// Early duplicate check; the unique constraint inside SubmitAttempt still
	// decides races.
	answered, err := s.users.HasAnswered(ctx, req.UserID, req.QuestionID)
	if err != nil {
		return domain.AnswerResult{}, fmt.Errorf("check prior submission: %w", err)
	}
	if answered {
		return domain.AnswerResult{}, domain.ErrAlreadyAnswered
	}

	resetDailyWindow(&state, now)
	correct, delta := applyAnswer(&state, question, req.Answer)
	state.LastActivityAt = now
	state.UpdatedAt = now

	sub := domain.Submission{
		ID:         uuid.NewString(),
		UserID:     state.UserID,
		QuestionID: question.ID,
		Answer:     req.Answer,
		Correct:    correct,
		CreatedAt:  now,
	}

	err = s.users.SubmitAttempt(ctx, state, sub, func(ctx context.Context) error {
		if err := s.ranking.Upsert(ctx, state.UserID, state.TotalScore, state.Streak); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrRankingUnavailable, err)
		}
		return nil
	})
	if err != nil {
		return domain.AnswerResult{}, err
	}

	s.logger.Info("answer graded",
		zap.String("user_id", state.UserID),
		zap.String("question_id", question.ID),
		zap.Bool("correct", correct),
		zap.Int64("score_delta", delta),
		zap.Float64("new_difficulty", state.Difficulty))

	s.publishLeaderboards(ctx)

	return domain.AnswerResult{
		Correct:       correct,
		ScoreDelta:    delta,
		NewDifficulty: state.Difficulty,
		NewStreak:     state.Streak,
		TotalScore:    state.TotalScore,
		DailyAttempts: state.DailyAttempts,
		DailyCorrect:  state.DailyCorrect,
	}, nil
}

// Metrics returns the user's adaptive state plus their leaderboard positions.
func (s *QuizService) Metrics(ctx context.Context, userID string) (domain.Metrics, error) {
	state, err := s.users.GetState(ctx, userID)
	if err != nil {
		return domain.Metrics{}, err
	}

	accuracy := 0.0
	if state.DailyAttempts > 0 {
		accuracy = float64(state.DailyCorrect) / float64(state.DailyAttempts)
	}

	m := domain.Metrics{
		CurrentDifficulty: state.Difficulty,
		Streak:            state.Streak,
		MaxStreak:         state.MaxStreak,
		TotalScore:        state.TotalScore,
		DailyAccuracy:     accuracy,
	}

	if rank, ok, err := s.ranking.ScoreRank(ctx, userID); err != nil {
		return domain.Metrics{}, fmt.Errorf("score rank: %w", err)
	} else if ok {
		m.ScoreRank = &rank
	}
	if rank, ok, err := s.ranking.StreakRank(ctx, userID); err != nil {
		return domain.Metrics{}, fmt.Errorf("streak rank: %w", err)
	} else if ok {
		m.StreakRank = &rank
	}
	return m, nil
}

// publishLeaderboards pushes fresh top-10 snapshots to websocket subscribers.
// Best effort: a read failure here must not fail the committed submission.
func (s *QuizService) publishLeaderboards(ctx context.Context) {
	if s.hub == nil {
		return
	}
	now := s.now().UTC()
	if entries, err := s.ranking.TopByScore(ctx, defaultLeaderboardLimit); err != nil {
		s.logger.Warn("leaderboard snapshot read failed", zap.String("metric", MetricScore), zap.Error(err))
	} else {
		s.hub.Publish(domain.Leaderboard{Metric: MetricScore, Entries: entries, UpdatedAt: now})
	}
	if entries, err := s.ranking.TopByStreak(ctx, defaultLeaderboardLimit); err != nil {
		s.logger.Warn("leaderboard snapshot read failed", zap.String("metric", MetricStreak), zap.Error(err))
	} else {
		s.hub.Publish(domain.Leaderboard{Metric: MetricStreak, Entries: entries, UpdatedAt: now})
	}
}

func excludeAnswered(questions []domain.Question, answered map[string]bool) []domain.Question {
	if len(answered) == 0 {
		return questions
	}
	remaining := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		if !answered[q.ID] {
			remaining = append(remaining, q)
		}
	}
	return remaining
}
