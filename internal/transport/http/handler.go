// Package http binds the quiz use cases to their REST and websocket routes.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"brainbolt-service/internal/app"
	"brainbolt-service/internal/domain"
)

// Handler serves the quiz REST API.
type Handler struct {
	quiz        *app.QuizService
	leaderboard *app.LeaderboardService
	logger      *zap.Logger
}

func NewHandler(quiz *app.QuizService, leaderboard *app.LeaderboardService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{quiz: quiz, leaderboard: leaderboard, logger: logger}
}

// Register mounts all REST routes on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /quiz/next", h.nextQuestion)
	mux.HandleFunc("POST /quiz/answer", h.submitAnswer)
	mux.HandleFunc("GET /quiz/metrics/{userId}", h.metrics)
	mux.HandleFunc("GET /leaderboard/score", h.scoreLeaderboard)
	mux.HandleFunc("GET /leaderboard/streak", h.streakLeaderboard)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
}

type answerRequest struct {
	UserID         string `json:"userId"`
	QuestionID     string `json:"questionId"`
	Answer         string `json:"answer"`
	IdempotencyKey string `json:"idempotencyKey"`
}

type dailyStats struct {
	Attempts int `json:"attempts"`
	Correct  int `json:"correct"`
}

type answerResponse struct {
	Correct       bool       `json:"correct"`
	NewDifficulty float64    `json:"newDifficulty"`
	NewStreak     int        `json:"newStreak"`
	ScoreDelta    int64      `json:"scoreDelta"`
	TotalScore    int64      `json:"totalScore"`
	DailyStats    dailyStats `json:"dailyStats"`
}

type metricsResponse struct {
	CurrentDifficulty float64 `json:"currentDifficulty"`
	Streak            int     `json:"streak"`
	MaxStreak         int     `json:"maxStreak"`
	TotalScore        int64   `json:"totalScore"`
	ScoreRank         *int64  `json:"scoreRank"`
	StreakRank        *int64  `json:"streakRank"`
	DailyAccuracy     float64 `json:"dailyAccuracy"`
}

type scoreEntry struct {
	UserID string `json:"userId"`
	Score  int64  `json:"score"`
}

type streakEntry struct {
	UserID    string `json:"userId"`
	MaxStreak int64  `json:"maxStreak"`
}

func (h *Handler) nextQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := h.quiz.NextQuestion(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, question)
}

func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" || req.QuestionID == "" || req.IdempotencyKey == "" {
		writeDetail(w, http.StatusBadRequest, "userId, questionId and idempotencyKey are required")
		return
	}

	result, err := h.quiz.SubmitAnswer(r.Context(), app.AnswerRequest{
		UserID:         req.UserID,
		QuestionID:     req.QuestionID,
		Answer:         req.Answer,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, answerResponse{
		Correct:       result.Correct,
		NewDifficulty: result.NewDifficulty,
		NewStreak:     result.NewStreak,
		ScoreDelta:    result.ScoreDelta,
		TotalScore:    result.TotalScore,
		DailyStats:    dailyStats{Attempts: result.DailyAttempts, Correct: result.DailyCorrect},
	})
}

func (h *Handler) metrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.quiz.Metrics(r.Context(), r.PathValue("userId"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metricsResponse{
		CurrentDifficulty: m.CurrentDifficulty,
		Streak:            m.Streak,
		MaxStreak:         m.MaxStreak,
		TotalScore:        m.TotalScore,
		ScoreRank:         m.ScoreRank,
		StreakRank:        m.StreakRank,
		DailyAccuracy:     m.DailyAccuracy,
	})
}

func (h *Handler) scoreLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.leaderboard.TopByScore(r.Context(), parseLimit(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]scoreEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, scoreEntry{UserID: entry.UserID, Score: entry.Value})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) streakLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.leaderboard.TopByStreak(r.Context(), parseLimit(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]streakEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, streakEntry{UserID: entry.UserID, MaxStreak: entry.Value})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateRequest):
		writeDetail(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrAlreadyAnswered), errors.Is(err, domain.ErrQuestionNotFound):
		writeDetail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		writeDetail(w, http.StatusNotFound, err.Error())
	default:
		// RankingUnavailable and anything unexpected: operator problem, not
		// client problem.
		h.logger.Error("request failed", zap.Error(err))
		writeDetail(w, http.StatusInternalServerError, "internal server error")
	}
}

func parseLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}
	return limit
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
