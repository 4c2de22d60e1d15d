package integration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"brainbolt-service/internal/app"
	"brainbolt-service/internal/catalog"
	"brainbolt-service/internal/domain"
	"brainbolt-service/internal/infra/postgres"
	pgmigrations "brainbolt-service/internal/infra/postgres/migrations"
	infraredis "brainbolt-service/internal/infra/redis"
)

func TestSubmitAnswerEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	migrateAndSeed(t, ctx, pgURL, sampleQuestions())

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}

	questions, err := catalog.Build(ctx, postgres.NewCatalogLoader(pool))
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	if questions.Len() != len(sampleQuestions()) {
		t.Fatalf("expected %d questions, got %d", len(sampleQuestions()), questions.Len())
	}

	users := postgres.NewUserStore(pool)
	guard := infraredis.NewIdempotencyGuard(redisClient, 24*time.Hour)
	ranking := infraredis.NewRankingCache(redisClient)
	service := app.NewQuizService(questions, users, guard, ranking, nil, zap.NewNop())

	next, err := service.NextQuestion(ctx, "")
	if err != nil {
		t.Fatalf("next question: %v", err)
	}
	if next.UserID == "" || next.Difficulty != 1 {
		t.Fatalf("unexpected first question: %+v", next)
	}

	question, ok := questions.ByID(next.QuestionID)
	if !ok {
		t.Fatalf("served unknown question %s", next.QuestionID)
	}

	result, err := service.SubmitAnswer(ctx, app.AnswerRequest{
		UserID: next.UserID, QuestionID: question.ID, Answer: question.Answer,
		IdempotencyKey: "integration-key-1",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Correct || result.ScoreDelta != 10 || result.TotalScore != 10 {
		t.Fatalf("unexpected result: %+v", result)
	}

	// Replay with the same key is rejected without touching state.
	_, err = service.SubmitAnswer(ctx, app.AnswerRequest{
		UserID: next.UserID, QuestionID: question.ID, Answer: question.Answer,
		IdempotencyKey: "integration-key-1",
	})
	if !errors.Is(err, domain.ErrDuplicateRequest) {
		t.Fatalf("expected duplicate request, got %v", err)
	}

	// A fresh key against the same question hits the uniqueness constraint.
	_, err = service.SubmitAnswer(ctx, app.AnswerRequest{
		UserID: next.UserID, QuestionID: question.ID, Answer: question.Answer,
		IdempotencyKey: "integration-key-2",
	})
	if !errors.Is(err, domain.ErrAlreadyAnswered) {
		t.Fatalf("expected already answered, got %v", err)
	}

	metrics, err := service.Metrics(ctx, next.UserID)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if metrics.TotalScore != 10 || metrics.ScoreRank == nil || *metrics.ScoreRank != 1 {
		t.Fatalf("unexpected metrics: %+v", metrics)
	}

	state, err := users.GetState(ctx, next.UserID)
	if err != nil {
		t.Fatalf("state readback: %v", err)
	}
	if state.TotalScore != 10 || state.Streak != 1 || state.DailyAttempts != 1 {
		t.Fatalf("durable state mismatch: %+v", state)
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "quiz", "POSTGRES_PASSWORD": "quizpass", "POSTGRES_DB": "quizdb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://quiz:quizpass@%s:%s/quizdb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func migrateAndSeed(t *testing.T, ctx context.Context, dsn string, questions []domain.Question) {
	t.Helper()
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, q := range questions {
		_, err := db.ExecContext(ctx,
			`INSERT INTO questions (id, prompt, difficulty, choices, correct_answer) VALUES (?, ?, ?, ?, ?) ON CONFLICT (id) DO NOTHING`,
			q.ID, q.Prompt, q.Difficulty, pgdialect.Array(q.Choices), q.Answer)
		if err != nil {
			t.Fatalf("insert question %s: %v", q.ID, err)
		}
	}
}

func sampleQuestions() []domain.Question {
	return []domain.Question{
		{ID: "q1", Prompt: "What is 2 + 2?", Difficulty: 1, Choices: []string{"3", "4", "5", "6"}, Answer: "4"},
		{ID: "q2", Prompt: "Capital of France?", Difficulty: 1, Choices: []string{"London", "Paris", "Berlin", "Madrid"}, Answer: "Paris"},
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
