package domain

import "time"

// Question is a single catalog entry. The correct answer is server-side only
// and never serialized to clients.
type Question struct {
	ID         string   `json:"id"`
	Prompt     string   `json:"prompt"`
	Difficulty int      `json:"difficulty"` // tier, 1..10
	Choices    []string `json:"choices"`
	Answer     string   `json:"-"`
}

// UserState is the per-user adaptive record. It is mutated only inside a
// submission transaction owned by the quiz service.
type UserState struct {
	UserID         string
	Difficulty     float64 // always within [1.0, 10.0]
	Streak         int
	MaxStreak      int
	TotalScore     int64
	DailyAttempts  int
	DailyCorrect   int
	LastQuestionID string // diagnostics only
	LastActivityAt time.Time
	UpdatedAt      time.Time
}

// Submission is the append-only record of one graded attempt.
// (UserID, QuestionID) is unique: a user answers each question at most once.
type Submission struct {
	ID         string
	UserID     string
	QuestionID string
	Answer     string
	Correct    bool
	CreatedAt  time.Time
}

// NextQuestion is the served-question view returned to clients.
type NextQuestion struct {
	UserID     string   `json:"userId"`
	QuestionID string   `json:"questionId"`
	Difficulty int      `json:"difficulty"`
	Prompt     string   `json:"prompt"`
	Choices    []string `json:"choices"`
}

// AnswerResult summarizes one graded submission.
type AnswerResult struct {
	Correct       bool
	ScoreDelta    int64
	NewDifficulty float64
	NewStreak     int
	TotalScore    int64
	DailyAttempts int
	DailyCorrect  int
}

// RankEntry is one member of an ordered leaderboard.
type RankEntry struct {
	UserID string `json:"userId"`
	Value  int64  `json:"value"`
}

// Leaderboard is an ordered snapshot for a single metric ("score" or "streak").
type Leaderboard struct {
	Metric    string      `json:"metric"`
	Entries   []RankEntry `json:"entries"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Metrics is the per-user progress view. Ranks are nil while the user has no
// leaderboard entry.
type Metrics struct {
	CurrentDifficulty float64
	Streak            int
	MaxStreak         int
	TotalScore        int64
	ScoreRank         *int64
	StreakRank        *int64
	DailyAccuracy     float64
}
