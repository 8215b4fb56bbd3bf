package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	postgres "github.com/amoura-app/amoura-backend/internal/adapter/postgres"
	billingrepo "github.com/amoura-app/amoura-backend/internal/adapter/postgres/billing"
	letterrepo "github.com/amoura-app/amoura-backend/internal/adapter/postgres/letter"
	userrepo "github.com/amoura-app/amoura-backend/internal/adapter/postgres/user"
	"github.com/amoura-app/amoura-backend/internal/adapter/redis"
	"github.com/amoura-app/amoura-backend/internal/auth"
	"github.com/amoura-app/amoura-backend/internal/config"
	authsvc "github.com/amoura-app/amoura-backend/internal/service/auth"
	billingsvc "github.com/amoura-app/amoura-backend/internal/service/billing"
	lettersvc "github.com/amoura-app/amoura-backend/internal/service/letter"
	usersvc "github.com/amoura-app/amoura-backend/internal/service/user"
	"github.com/amoura-app/amoura-backend/internal/transport/middleware"
	"github.com/amoura-app/amoura-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and Redis, wires repositories, services, and the HTTP router,
// then serves until ctx is cancelled and shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	db, err := postgres.NewDB(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	// Redis being down never blocks startup; health reports it.
	cache := redis.New(cfg.Redis)
	defer cache.Close()
	if err := cache.Ping(ctx); err != nil {
		logger.Warn("redis unreachable at startup", slog.Any("error", err))
	}

	users := userrepo.New(db)
	letters := letterrepo.New(db)
	transactions := billingrepo.New(db)
	txManager := postgres.NewTxManager(db)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	userService := usersvc.NewService(logger, users, txManager)
	letterService := lettersvc.NewService(logger, letters)
	billingService := billingsvc.NewService(logger, transactions, cache)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer rateLimiter.Stop()
	}

	router := rest.NewRouter(rest.RouterDeps{
		Config:      cfg,
		Logger:      logger,
		Auth:        rest.NewAuthHandler(authService, logger),
		User:        rest.NewUserHandler(userService, logger),
		Letter:      rest.NewLetterHandler(letterService, logger),
		Billing:     rest.NewBillingHandler(billingService, logger),
		Health:      rest.NewHealthHandler(db, cache, logger),
		Admin:       rest.NewAdminHandler(db, logger),
		Validator:   authService,
		RateLimiter: rateLimiter,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
