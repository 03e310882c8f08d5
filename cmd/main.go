package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/juhi0109/movie-recommender/internal/config"
	"github.com/juhi0109/movie-recommender/internal/database"
	"github.com/juhi0109/movie-recommender/internal/handler"
	"github.com/juhi0109/movie-recommender/internal/omdb"
	"github.com/juhi0109/movie-recommender/internal/recommender"
	"github.com/juhi0109/movie-recommender/internal/session"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Session state: Redis when configured, in-memory otherwise.
	var sessions session.Store
	if cfg.Redis.Enabled() {
		rdb, err := database.NewRedis(cfg.Redis)
		if err != nil {
			slog.Error("failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb, cfg.SessionTTL)
	} else {
		slog.Info("no Redis configured, using in-memory session store")
		sessions = session.NewMemoryStore()
	}

	// Initialize layers
	catalog := omdb.NewClient(cfg.OMDB.APIKey, cfg.OMDB.BaseURL, cfg.OMDB.Timeout)
	engine := recommender.NewEngine(catalog)
	h := handler.NewRecommendationHandler(engine, sessions)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "mood-recommender",
		ServerHeader: "mood-recommender",
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	app.Get("/health", h.Health)

	api := app.Group("/api/v1")
	api.Get("/moods", h.Moods)
	api.Get("/recommendations", h.Recommend)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("mood-recommender starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down mood-recommender")
	_ = app.Shutdown()
}
