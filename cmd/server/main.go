package main

import (
	"BoltPass/internal/auth"
	"BoltPass/internal/config"
	"BoltPass/internal/crypto"
	"BoltPass/internal/handlers"
	"BoltPass/internal/metrics"
	"BoltPass/internal/middleware"
	"BoltPass/internal/repo"
	"BoltPass/internal/service"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	cfg := config.NewConfig()
	if cfg.Version {
		fmt.Printf("BoltPass server\nVersion: %s\nBuild date: %s\n", version, buildDate)
		return
	}

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(cfg, sugar); err != nil {
		sugar.Errorw("Server stopped with error", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, sugar *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	key, degraded, err := crypto.LoadMasterKey(cfg.EncKey)
	if err != nil {
		return fmt.Errorf("load master key: %w", err)
	}
	if degraded {
		sugar.Warnw("ENC_KEY is not set: using a random key for this process, stored entries will be unreadable after restart")
	}
	cipher, err := crypto.NewVaultCipher(key)
	if err != nil {
		return fmt.Errorf("init cipher: %w", err)
	}
	if cfg.AuthSecret == "dev-secret-key" {
		sugar.Warnw("AUTH_SECRET is not set: using the development secret")
	}

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer func() {
		if err := repo.Close(gormDB); err != nil {
			sugar.Errorw("Failed to close database", "error", err)
		}
	}()

	tokens := auth.NewTokenService([]byte(cfg.AuthSecret), cfg.TokenTTL)
	m := metrics.New()

	h := handlers.NewHandler(handlers.Services{
		Users:      service.NewUserService(repo.NewUserRepository(gormDB), crypto.NewHasher(), tokens),
		Entries:    service.NewEntryService(repo.NewEntryRepository(gormDB), cipher, sugar),
		Categories: service.NewCategoryService(repo.NewCategoryRepository(gormDB)),
		Tokens:     tokens,
	}, m, sugar, cfg)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// секреты и DSN в лог не попадают
	sugar.Infow("Starting server",
		"addr", cfg.BaseURL,
		"cors_origins", cfg.AllowedOrigins(),
		"auth_rate_limit", cfg.AuthRateLimit,
		"token_ttl", cfg.TokenTTL,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	sugar.Infow("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
