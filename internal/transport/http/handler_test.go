package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"brainbolt-service/internal/app"
	"brainbolt-service/internal/catalog"
	"brainbolt-service/internal/domain"
	"brainbolt-service/internal/infra/memory"
)

func newTestServer(t *testing.T) (*httptest.Server, *memory.UserStore) {
	t.Helper()
	questions := catalog.New([]domain.Question{
		{ID: "q1", Prompt: "What is 2 + 2?", Difficulty: 1, Choices: []string{"3", "4"}, Answer: "4"},
		{ID: "q2", Prompt: "Capital of France?", Difficulty: 1, Choices: []string{"London", "Paris"}, Answer: "Paris"},
	})
	users := memory.NewUserStore()
	ranking := memory.NewRankingCache()
	guard := memory.NewIdempotencyGuard(24 * time.Hour)
	quiz := app.NewQuizService(questions, users, guard, ranking, nil, zap.NewNop())
	leaderboard := app.NewLeaderboardService(ranking, 0)

	mux := http.NewServeMux()
	NewHandler(quiz, leaderboard, zap.NewNop()).Register(mux)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, users
}

func postAnswer(t *testing.T, server *httptest.Server, body map[string]string) *http.Response {
	t.Helper()
	payload, _ := json.Marshal(body)
	resp, err := http.Post(server.URL+"/quiz/answer", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("post answer: %v", err)
	}
	return resp
}

func TestNextQuestionCreatesIdentity(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/quiz/next")
	if err != nil {
		t.Fatalf("get next: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var next domain.NextQuestion
	if err := json.NewDecoder(resp.Body).Decode(&next); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if next.UserID == "" || next.QuestionID == "" {
		t.Fatalf("incomplete question payload: %+v", next)
	}
	if next.Difficulty != 1 {
		t.Fatalf("new user must be served tier 1, got %d", next.Difficulty)
	}
}

func TestSubmitAnswerFlow(t *testing.T) {
	server, users := newTestServer(t)
	state, _ := users.GetOrCreate(context.Background(), "")
	userID := state.UserID

	body := map[string]string{
		"userId": userID, "questionId": "q1", "answer": " 4 ", "idempotencyKey": "key-1",
	}
	resp := postAnswer(t, server, body)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Correct       bool    `json:"correct"`
		NewDifficulty float64 `json:"newDifficulty"`
		ScoreDelta    int64   `json:"scoreDelta"`
		TotalScore    int64   `json:"totalScore"`
		DailyStats    struct {
			Attempts int `json:"attempts"`
			Correct  int `json:"correct"`
		} `json:"dailyStats"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !result.Correct || result.ScoreDelta != 10 || result.TotalScore != 10 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.DailyStats.Attempts != 1 || result.DailyStats.Correct != 1 {
		t.Fatalf("unexpected daily stats: %+v", result.DailyStats)
	}

	// Replay with the same idempotency key.
	replay := postAnswer(t, server, body)
	replay.Body.Close()
	if replay.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for replay, got %d", replay.StatusCode)
	}

	// Same question, fresh key.
	body["idempotencyKey"] = "key-2"
	retry := postAnswer(t, server, body)
	retry.Body.Close()
	if retry.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for re-answer, got %d", retry.StatusCode)
	}
}

func TestSubmitAnswerValidation(t *testing.T) {
	server, _ := newTestServer(t)

	resp := postAnswer(t, server, map[string]string{"userId": "u1"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", resp.StatusCode)
	}

	resp = postAnswer(t, server, map[string]string{
		"userId": "ghost", "questionId": "q1", "answer": "4", "idempotencyKey": "k1",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", resp.StatusCode)
	}
}

func TestMetricsAndLeaderboardEndpoints(t *testing.T) {
	server, users := newTestServer(t)

	for i := 0; i < 2; i++ {
		state, _ := users.GetOrCreate(context.Background(), fmt.Sprintf("user-%d", i))
		answer := "4"
		if i == 1 {
			answer = "wrong"
		}
		resp := postAnswer(t, server, map[string]string{
			"userId": state.UserID, "questionId": "q1", "answer": answer,
			"idempotencyKey": fmt.Sprintf("k%d", i),
		})
		resp.Body.Close()
	}

	resp, err := http.Get(server.URL + "/quiz/metrics/user-0")
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	defer resp.Body.Close()
	var metrics struct {
		TotalScore int64  `json:"totalScore"`
		ScoreRank  *int64 `json:"scoreRank"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&metrics); err != nil {
		t.Fatalf("decode metrics: %v", err)
	}
	if metrics.TotalScore != 10 || metrics.ScoreRank == nil || *metrics.ScoreRank != 1 {
		t.Fatalf("unexpected metrics: %+v", metrics)
	}

	board, err := http.Get(server.URL + "/leaderboard/score?limit=5")
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	defer board.Body.Close()
	var entries []struct {
		UserID string `json:"userId"`
		Score  int64  `json:"score"`
	}
	if err := json.NewDecoder(board.Body).Decode(&entries); err != nil {
		t.Fatalf("decode leaderboard: %v", err)
	}
	if len(entries) != 2 || entries[0].UserID != "user-0" {
		t.Fatalf("unexpected leaderboard: %+v", entries)
	}
	if entries[0].Score < entries[1].Score {
		t.Fatalf("leaderboard must be descending: %+v", entries)
	}
}
