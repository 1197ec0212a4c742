package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/handler"
	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/repository"
	"github.com/passforge/passforge-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService())
	strengthHandler := handler.NewStrengthHandler(service.NewStrengthService())

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(10, 20))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/strength", strengthHandler.HandleEvaluate)
	})

	// Initialize DB-backed auth and vault routes if the database is available.
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed — auth and vault routes disabled", "error", err)
	} else {
		sealer, err := crypto.NewSealer(cfg.VaultKey)
		if err != nil {
			slog.Error("invalid vault key", "error", err)
			os.Exit(1)
		}

		userRepo := repository.NewUserRepository(db)
		authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
		authHandler := handler.NewAuthHandler(authService)

		credRepo := repository.NewCredentialRepository(db)
		vaultService := service.NewVaultService(credRepo, sealer)
		vaultHandler := handler.NewVaultHandler(vaultService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/api/v1/auth/register", authHandler.HandleRegister)
			r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Get("/api/v1/auth/me", authHandler.HandleMe)

			r.Get("/api/v1/vault", vaultHandler.HandleList)
			r.Post("/api/v1/vault", vaultHandler.HandleCreate)
			r.Get("/api/v1/vault/audit", vaultHandler.HandleAudit)
			r.Get("/api/v1/vault/{credential_id}", vaultHandler.HandleReveal)
			r.Put("/api/v1/vault/{credential_id}", vaultHandler.HandleUpdate)
			r.Delete("/api/v1/vault/{credential_id}", vaultHandler.HandleDelete)
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
