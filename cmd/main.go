// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"go_5_quiz_keep/internal/applog"
	"go_5_quiz_keep/internal/config"
	"go_5_quiz_keep/internal/handlers"
	"go_5_quiz_keep/internal/middleware"
	"go_5_quiz_keep/internal/quiz"
	"go_5_quiz_keep/internal/repository"
	"go_5_quiz_keep/internal/service"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("../configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := &config.Cfg

	logger := applog.New(os.Stderr, cfg.Log.Level, os.Getenv("APP_ENV"))
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", cfg.App.Name), slog.String("version", config.AppVersion))

	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if err := repository.AutoMigrate(db); err != nil {
		slog.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency Injection
	questionRepo := repository.NewGormQuestionRepository()
	answerRepo := repository.NewGormAnswerRepository()
	bookmarkRepo := repository.NewGormBookmarkRepository()
	userRepo := repository.NewGormUserRepository()
	tokenRepo := repository.NewGormTokenRepository()

	mailer, err := service.NewMailer(cfg)
	if err != nil {
		slog.Error("Error initializing mailer", slog.Any("error", err))
		os.Exit(1)
	}

	authService := service.NewAuthService(db, userRepo, tokenRepo, mailer, cfg)
	questionService := service.NewQuestionService(db, questionRepo, answerRepo, bookmarkRepo, quiz.NewShuffler(nil))
	answerService := service.NewAnswerService(db, questionRepo, answerRepo)
	bookmarkService := service.NewBookmarkService(db, questionRepo, bookmarkRepo)
	statsService := service.NewStatsService(db, answerRepo, cfg)
	uploadService := service.NewUploadService(db, questionRepo)

	api := &handlers.API{
		Auth:         handlers.NewAuthHandler(authService),
		Questions:    handlers.NewQuestionHandler(questionService, cfg.App),
		Answers:      handlers.NewAnswerHandler(answerService),
		Bookmarks:    handlers.NewBookmarkHandler(bookmarkService),
		Stats:        handlers.NewStatsHandler(statsService, cfg.App),
		Admin:        handlers.NewAdminHandler(uploadService),
		AdminChecker: authService,
	}
	if cfg.Auth.Enabled {
		slog.Info("Applying JWT authentication middleware")
		api.Authenticate = middleware.JWTAuthMiddleware(cfg.JWT.SecretKey)
	} else {
		slog.Warn("Authentication disabled, using X-User-ID header")
		api.Authenticate = middleware.DevUserContextMiddleware
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}).Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	api.Mount(r)
	r.Get("/health", handlers.Health(sqlDB))

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
