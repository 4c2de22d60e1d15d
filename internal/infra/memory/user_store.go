package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"brainbolt-service/internal/domain"
)

// UserStore is an in-process implementation of app.UserStore for dev mode and
// tests. SubmitAttempt mirrors the durable transaction: nothing is applied
// until the uniqueness check and the sync callback both pass.
type UserStore struct {
	clock func() time.Time

	mu          sync.Mutex
	states      map[string]domain.UserState
	submissions map[string]map[string]domain.Submission // userID -> questionID
}

func NewUserStore() *UserStore {
	return NewUserStoreWithClock(time.Now)
}

// NewUserStoreWithClock allows deterministic creation timestamps in tests.
func NewUserStoreWithClock(clock func() time.Time) *UserStore {
	return &UserStore{
		clock:       clock,
		states:      make(map[string]domain.UserState),
		submissions: make(map[string]map[string]domain.Submission),
	}
}

func (s *UserStore) GetOrCreate(_ context.Context, userID string) (domain.UserState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if userID != "" {
		if state, ok := s.states[userID]; ok {
			return state, nil
		}
	} else {
		userID = uuid.NewString()
	}

	now := s.clock().UTC()
	state := domain.UserState{
		UserID:         userID,
		Difficulty:     1.0,
		LastActivityAt: now,
		UpdatedAt:      now,
	}
	s.states[userID] = state
	return state, nil
}

func (s *UserStore) GetState(_ context.Context, userID string) (domain.UserState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[userID]
	if !ok {
		return domain.UserState{}, domain.ErrUserNotFound
	}
	return state, nil
}

func (s *UserStore) AnsweredQuestions(_ context.Context, userID string) (map[string]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	answered := make(map[string]bool, len(s.submissions[userID]))
	for questionID := range s.submissions[userID] {
		answered[questionID] = true
	}
	return answered, nil
}

func (s *UserStore) HasAnswered(_ context.Context, userID, questionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.submissions[userID][questionID]
	return ok, nil
}

func (s *UserStore) RecordLastQuestion(_ context.Context, userID, questionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	state.LastQuestionID = questionID
	s.states[userID] = state
	return nil
}

func (s *UserStore) SubmitAttempt(ctx context.Context, state domain.UserState, sub domain.Submission, sync func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.states[sub.UserID]; !ok {
		return domain.ErrUserNotFound
	}
	if _, ok := s.submissions[sub.UserID][sub.QuestionID]; ok {
		return domain.ErrAlreadyAnswered
	}

	// The ranking sync runs before anything is applied; a failure leaves the
	// store untouched, matching the rollback behavior of the durable store.
	// The store-wide lock is held across the callback, so a slow sync stalls
	// every other user-store call. Acceptable for a dev-mode fallback; the
	// production path is the Postgres store, which holds only its own tx.
	if err := sync(ctx); err != nil {
		return err
	}

	if s.submissions[sub.UserID] == nil {
		s.submissions[sub.UserID] = make(map[string]domain.Submission)
	}
	s.submissions[sub.UserID][sub.QuestionID] = sub
	s.states[sub.UserID] = state
	return nil
}
