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

	"github.com/joho/godotenv"

	"github.com/hongminglow/library-be/internal/auth"
	"github.com/hongminglow/library-be/internal/config"
	"github.com/hongminglow/library-be/internal/library"
	"github.com/hongminglow/library-be/internal/models/dto"
	"github.com/hongminglow/library-be/internal/server"
	"github.com/hongminglow/library-be/internal/storage/memory"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)
	if envErr != nil {
		logger.Info("no .env file found; relying on existing environment")
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	svc := library.NewService(memory.NewStore(), tokens, auth.NewHasher(cfg.BcryptCost), library.WithLogger(logger))

	if cfg.Seed.Enabled {
		seedAdmin(svc, cfg.Seed, logger)
	}

	srv := server.New(cfg, svc, tokens, logger)

	go func() {
		logger.Info("library backend listening", slog.String("addr", cfg.HTTPAddress()))
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error("graceful shutdown error", slog.Any("error", err))
	}
}

func seedAdmin(svc *library.Service, seed config.SeedAdmin, logger *slog.Logger) {
	admin, created, err := svc.SeedAdmin(context.Background(), dto.RegisterRequest{
		Name:     seed.Name,
		Email:    seed.Email,
		Password: seed.Password,
	})
	if err != nil {
		logger.Error("seed admin", slog.Any("error", err))
		os.Exit(1)
	}
	if created {
		logger.Info("admin user seeded", slog.Int64("user_id", admin.ID), slog.String("email", admin.Email))
	}
}
