package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/esports-admin/config"
	"github.com/Dosada05/esports-admin/db"
	"github.com/Dosada05/esports-admin/handlers"
	"github.com/Dosada05/esports-admin/render"
	"github.com/Dosada05/esports-admin/repositories"
	api "github.com/Dosada05/esports-admin/routes"
	"github.com/Dosada05/esports-admin/services"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Настройка логгера до загрузки конфигурации, уровень уточняется ниже
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("views_dir", cfg.ViewsDir),
		slog.String("static_dir", cfg.StaticDir),
	)

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, cfg.ConnectTimeout(), db.PoolOptions{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxOpenConns,
	})
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	if cfg.MigrateOnStart {
		if err := db.Migrate(context.Background(), dbConn, logger); err != nil {
			logger.Error("failed to apply migrations", slog.Any("error", err))
			os.Exit(1)
		}
	}

	// Шаблоны парсятся один раз, ошибка в шаблоне не даёт стартовать
	renderer, err := render.New(os.DirFS(cfg.ViewsDir))
	if err != nil {
		logger.Error("failed to parse view templates", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация репозиториев
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	gameRepo := repositories.NewPostgresGameRepository(dbConn)
	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	matchTeamRepo := repositories.NewPostgresMatchTeamRepository(dbConn)
	tournamentMatchRepo := repositories.NewPostgresTournamentMatchRepository(dbConn)
	adminRepo := repositories.NewPostgresAdminRepository(dbConn)
	logger.Info("Repositories initialized")

	// Инициализация сервисов
	teamService := services.NewTeamService(teamRepo)
	gameService := services.NewGameService(gameRepo)
	tournamentService := services.NewTournamentService(tournamentRepo, gameRepo)
	matchService := services.NewMatchService(matchRepo, tournamentRepo, teamRepo)
	matchTeamService := services.NewMatchTeamService(matchTeamRepo, matchRepo, teamRepo)
	tournamentMatchService := services.NewTournamentMatchService(tournamentMatchRepo, tournamentRepo, matchRepo)
	adminService := services.NewAdminService(adminRepo, logger)
	logger.Info("Services initialized")

	// Инициализация обработчиков HTTP
	h := api.Handlers{
		Admin:           handlers.NewAdminHandler(adminService, renderer, logger),
		Team:            handlers.NewTeamHandler(teamService, renderer, logger),
		Game:            handlers.NewGameHandler(gameService, renderer, logger),
		Tournament:      handlers.NewTournamentHandler(tournamentService, renderer, logger),
		Match:           handlers.NewMatchHandler(matchService, renderer, logger),
		MatchTeam:       handlers.NewMatchTeamHandler(matchTeamService, renderer, logger),
		TournamentMatch: handlers.NewTournamentMatchHandler(tournamentMatchService, renderer, logger),
	}
	logger.Info("HTTP handlers initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(router, h, api.Options{
		StaticDir:          cfg.StaticDir,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		ResetRateLimit:     cfg.ResetRateLimit,
		Logger:             logger,
	})
	logger.Info("Routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			// If shutdown fails, force close.
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
