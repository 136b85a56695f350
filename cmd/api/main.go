// Package main is the entrypoint for the catalog API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/atcnextgen/catalog-api/internal/api"
	"github.com/atcnextgen/catalog-api/internal/core/ports"
	"github.com/atcnextgen/catalog-api/internal/core/service"
	"github.com/atcnextgen/catalog-api/internal/infrastructure/config"
	"github.com/atcnextgen/catalog-api/internal/infrastructure/db/memory"
	mongodb "github.com/atcnextgen/catalog-api/internal/infrastructure/db/mongo"
	"github.com/atcnextgen/catalog-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
	})

	// The token service cannot operate without a signing key; refuse to start.
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	var userRepo ports.UserRepository
	var productRepo ports.ProductRepository

	switch cfg.Store {
	case config.StoreMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		users := mongodb.NewUserRepository(db)
		products := mongodb.NewProductRepository(db)
		if err := users.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to create user indexes")
		}
		if err := products.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to create product indexes")
		}
		userRepo, productRepo = users, products
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongodb store")

	default:
		users := memory.NewUserRepository()
		products := memory.NewProductRepository()
		if err := memory.SeedDemo(ctx, users, products); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo data")
		}
		userRepo, productRepo = users, products
		log.Info().Msg("using in-memory store with demo data")
	}

	hasher := service.NewBcryptHasher(bcrypt.DefaultCost)
	tokens := service.NewTokenService(cfg.JWTSecret, service.DefaultTokenTTL)
	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	productService := service.NewProductService(productRepo, log)

	e := api.NewRouter(api.Deps{
		Auth:        authService,
		Products:    productService,
		Users:       userRepo,
		Tokens:      tokens,
		Development: cfg.Development(),
	}, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
