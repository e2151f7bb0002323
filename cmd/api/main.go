package main

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"agendamentos-api/internal/config"
	"agendamentos-api/internal/domain"
	"agendamentos-api/internal/handler"
	"agendamentos-api/internal/logging"
	"agendamentos-api/internal/middleware"
	"agendamentos-api/internal/repository"
	"agendamentos-api/internal/service"
)

//go:embed openapi.yaml
var openapiSpec []byte

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init("agendamentos-api", cfg.LogLevel, cfg.AppEnv)

	if err := ensureDataDirs(cfg.UsersFile, cfg.AppointmentsFile); err != nil {
		slog.Error("failed to prepare data directories", "error", err)
		os.Exit(1)
	}

	userStore := repository.NewStore[domain.User](cfg.UsersFile)
	appointmentStore := repository.NewStore[domain.Appointment](cfg.AppointmentsFile)

	userSvc := service.NewUserService(userStore)
	appointmentSvc := service.NewAppointmentService(appointmentStore, userSvc)

	userHandler := handler.NewUserHandler(userSvc)
	appointmentHandler := handler.NewAppointmentHandler(appointmentSvc)
	healthHandler := handler.NewHealthHandler(cfg.UsersFile, cfg.AppointmentsFile)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler.Liveness)
	mux.HandleFunc("GET /health/ready", healthHandler.Readiness)

	mux.HandleFunc("GET /docs", handler.ServeDocs())
	mux.HandleFunc("GET /docs/openapi.yaml", handler.ServeSpec(openapiSpec))

	mux.HandleFunc("GET /users", userHandler.List)
	mux.HandleFunc("POST /users", userHandler.Create)
	mux.HandleFunc("GET /users/{id}", userHandler.GetByID)
	mux.HandleFunc("PUT /users/{id}", userHandler.Update)

	mux.HandleFunc("GET /appointments", appointmentHandler.List)
	mux.HandleFunc("POST /appointments", appointmentHandler.Create)
	mux.HandleFunc("GET /appointments/disponiveis", appointmentHandler.AvailableSlots)
	mux.HandleFunc("GET /appointments/{userId}", appointmentHandler.ListByUser)
	mux.HandleFunc("DELETE /appointments/{id}", appointmentHandler.Cancel)

	rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	chain := middleware.Tracing(
		middleware.RateLimit(rl)(
			middleware.Logging(
				middleware.Recovery(mux),
			),
		),
	)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           chain,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func ensureDataDirs(files ...string) error {
	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(f), 0o755); err != nil {
			return fmt.Errorf("ensureDataDirs: %w", err)
		}
	}
	return nil
}
