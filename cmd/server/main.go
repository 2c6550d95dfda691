package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/levitica/hr-system/internal/api"
	"github.com/levitica/hr-system/internal/core/domain"
	"github.com/levitica/hr-system/internal/infrastructure/config"
	mongodb "github.com/levitica/hr-system/internal/infrastructure/db/mongo"
	redisdb "github.com/levitica/hr-system/internal/infrastructure/db/redis"
	"github.com/levitica/hr-system/internal/infrastructure/queue"
	"github.com/levitica/hr-system/internal/pkg/password"
	"github.com/levitica/hr-system/pkg/logger"
)

// @title        HR Management API
// @version      1.0
// @description  Authentication and admin account management service.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	accounts := mongodb.NewAccountRepository(db)
	if err := accounts.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	hasher := password.NewHasher(cfg.Auth.BcryptCost, log)
	if err := seedSuperadmin(ctx, accounts, hasher, cfg.Superadmin); err != nil {
		log.Fatal().Err(err).Msg("superadmin bootstrap failed")
	}

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("upload directory creation failed")
	}

	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, mongodb.NewAuditRepository(db), log)
	dispatcher.Start(ctx)

	e := api.NewRouter(cfg, db, rdb, log, dispatcher)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// seedSuperadmin ensures the configured superadmin account exists so the
// system is operable on first boot.
func seedSuperadmin(ctx context.Context, accounts *mongodb.AccountRepository, hasher *password.Hasher, cfg config.SuperadminConfig) error {
	_, err := accounts.FindByEmail(ctx, cfg.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return err
	}

	hash, err := hasher.Hash(cfg.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = accounts.Create(ctx, &domain.Account{
		Name:         cfg.Name,
		Email:        cfg.Email,
		PasswordHash: hash,
		Role:         domain.RoleSuperadmin,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	return err
}
