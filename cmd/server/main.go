package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/school-helper-backend/internal/config"
	"github.com/stemsi/school-helper-backend/internal/database"
	"github.com/stemsi/school-helper-backend/internal/handler"
	"github.com/stemsi/school-helper-backend/internal/logger"
	"github.com/stemsi/school-helper-backend/internal/middleware"
	"github.com/stemsi/school-helper-backend/internal/repository"
	"github.com/stemsi/school-helper-backend/internal/router"
	"github.com/stemsi/school-helper-backend/internal/service"
	"github.com/stemsi/school-helper-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting School Helper Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to MongoDB ────────────────────────────────────────────
	// Never fatal: without a database the data endpoints answer 503.
	store := database.NewMongoStore(ctx, cfg, log)

	// ─── Rate Limiter ──────────────────────────────────────────────────
	var limiter middleware.Limiter
	if cfg.RateLimitPerMinute > 0 {
		rdb, err := database.NewRedisClient(ctx, cfg, log)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("Redis unavailable, using in-memory rate limiter")
			limiter = middleware.NewRateLimiter(ctx, cfg.RateLimitPerMinute, time.Minute)
		case rdb != nil:
			defer rdb.Close()
			limiter = middleware.NewRedisRateLimiter(rdb, cfg.RateLimitPerMinute, time.Minute)
		default:
			limiter = middleware.NewRateLimiter(ctx, cfg.RateLimitPerMinute, time.Minute)
		}
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	studentRepo := repository.NewStudentRepository(store)
	marksheetRepo := repository.NewMarksheetRepository(store)
	admitCardRepo := repository.NewAdmitCardRepository(store)
	attendanceRepo := repository.NewAttendanceRepository(store)

	// ─── Initialize Services ──────────────────────────────────────────
	studentService := service.NewStudentService(studentRepo)
	marksheetService := service.NewMarksheetService(marksheetRepo, log)
	admitCardService := service.NewAdmitCardService(admitCardRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo)
	systemService := service.NewSystemService(store, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Student:    handler.NewStudentHandler(studentService, log),
		Marksheet:  handler.NewMarksheetHandler(marksheetService, log),
		AdmitCard:  handler.NewAdmitCardHandler(admitCardService, log),
		Attendance: handler.NewAttendanceHandler(attendanceService, log),
		System:     handler.NewSystemHandler(systemService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg, router.Options{
		Limiter: limiter,
		Metrics: middleware.NewMetrics(),
	}, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Release the MongoDB connection pool.
	if err := store.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("MongoDB disconnect error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
