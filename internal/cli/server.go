package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"brainbolt-service/internal/app"
	"brainbolt-service/internal/catalog"
	"brainbolt-service/internal/config"
	"brainbolt-service/internal/infra/memory"
	"brainbolt-service/internal/infra/postgres"
	infraredis "brainbolt-service/internal/infra/redis"
	transport "brainbolt-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg, logger); err != nil {
			return err
		}
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	var redisClient *goredis.Client
	if cfg.Redis.Addr != "" {
		redisClient = goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	idempotencyTTL := config.TTLDuration(cfg.Quiz.IdempotencyTTL, 24*time.Hour)
	leaderboardTTL := config.TTLDuration(cfg.Quiz.LeaderboardCacheTTL, 2*time.Second)

	// Loading from Postgres is preferred; the built-in bank keeps dev mode
	// self-contained.
	var loader catalog.Loader = catalog.NewStaticLoader(catalog.DefaultQuestions())
	if pool != nil {
		loader = postgres.NewCatalogLoader(pool)
	}
	questions, err := catalog.Build(ctx, loader)
	if err != nil {
		return err
	}
	if questions.Len() == 0 {
		logger.Warn("question bank empty, falling back to built-in questions")
		questions = catalog.New(catalog.DefaultQuestions())
	}

	var users app.UserStore = memory.NewUserStore()
	if pool != nil {
		users = postgres.NewUserStore(pool)
	}

	var guard app.IdempotencyGuard = memory.NewIdempotencyGuard(idempotencyTTL)
	var ranking app.RankingCache = memory.NewRankingCache()
	if redisClient != nil {
		guard = infraredis.NewIdempotencyGuard(redisClient, idempotencyTTL)
		ranking = infraredis.NewRankingCache(redisClient)
	}

	hub := app.NewLeaderboardHub()
	quizService := app.NewQuizService(questions, users, guard, ranking, hub, logger)
	leaderboardService := app.NewLeaderboardService(ranking, leaderboardTTL)

	handler := transport.NewHandler(quizService, leaderboardService, logger)
	wsHandler := transport.NewWSHandler(hub, logger)

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.HandleFunc("GET /ws/leaderboard", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("starting quiz service", zap.String("port", finalPort),
			zap.Int("questions", questions.Len()),
			zap.Bool("postgres", pool != nil),
			zap.Bool("redis", redisClient != nil))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Info("shutting down server")
	case <-ctx.Done():
		logger.Info("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
