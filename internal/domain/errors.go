package domain

import "errors"

var (
	// ErrDuplicateRequest is returned when an idempotency token was already
	// claimed; the original outcome is not replayed.
	ErrDuplicateRequest = errors.New("request already processed")
	// ErrAlreadyAnswered is returned when a (user, question) pair already has
	// a recorded submission.
	ErrAlreadyAnswered = errors.New("question already answered")
	// ErrQuestionNotFound indicates a question ID that is not in the catalog.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrUserNotFound indicates the user has no state record.
	ErrUserNotFound = errors.New("user not found")
	// ErrRankingUnavailable indicates the leaderboard write failed and the
	// whole submission was rolled back.
	ErrRankingUnavailable = errors.New("ranking cache unavailable")
)
