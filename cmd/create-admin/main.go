// Command create-admin seeds an operator account so the optional auth
// surface has something to log in with.
package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/spec-kit/query-service/internal/auth"
	"github.com/spec-kit/query-service/internal/config"
	"github.com/spec-kit/query-service/internal/domain"
	"github.com/spec-kit/query-service/internal/observability"
	"github.com/spec-kit/query-service/internal/persistence"
	"github.com/spec-kit/query-service/internal/repository"
)

func main() {
	name := flag.String("name", "Admin", "display name for the account")
	email := flag.String("email", "admin@example.com", "login email")
	password := flag.String("password", "", "plaintext password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("password is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()
	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	hash, err := auth.HashPassword(*password, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	user := &domain.User{
		Name:         *name,
		Email:        *email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}
	if err := repository.NewUserRepository(pg.PoolHandle()).Create(ctx, user); err != nil {
		logger.Fatal("failed to create admin", zap.Error(err))
	}
	logger.Info("admin account created", zap.String("id", user.ID), zap.String("email", user.Email))
}
