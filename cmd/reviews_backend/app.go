package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/customer_reviews_app/internal/adapters/captcha"
	"github.com/SscSPs/customer_reviews_app/internal/adapters/csrf"
	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_reviews_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/customer_reviews_app/internal/core/ports/services"
	"github.com/SscSPs/customer_reviews_app/internal/core/services"
	"github.com/SscSPs/customer_reviews_app/internal/platform/config"
	"github.com/SscSPs/customer_reviews_app/internal/repositories/cache"
	"github.com/SscSPs/customer_reviews_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/customer_reviews_app/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// app bundles the long-lived dependencies shared by the subcommands.
type app struct {
	pool     *pgxpool.Pool
	redis    *redis.Client
	services *portssvc.ServiceContainer
}

// newApp connects to the database and wires repositories and services.
func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{
		MaxConns:       cfg.DBMaxConns,
		ConnectTimeout: cfg.DBConnectTimeout,
		Ping:           cfg.EnableDBCheck,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}

	repos := pgsql.NewRepositoryProvider(pool)
	repos.ReviewRepo = cache.NewPublishedReviewCache(repos.ReviewRepo, cfg.PublishedCacheTTL)

	redisClient, err := newRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		pool.Close()
		return nil, err
	}

	container, err := newServices(ctx, cfg, repos)
	if err != nil {
		pool.Close()
		closeRedis(redisClient, logger)
		return nil, err
	}

	return &app{pool: pool, redis: redisClient, services: container}, nil
}

func newServices(ctx context.Context, cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	settings := services.NewCaptchaSettingsService(repos.SettingsRepo, domain.CaptchaSettings{
		SiteKey:   cfg.RecaptchaSiteKey,
		SecretKey: cfg.RecaptchaSecretKey,
	})

	verifier, err := newCaptchaVerifier(ctx, cfg, settings)
	if err != nil {
		return nil, err
	}

	nonces, err := csrf.NewNonceManager(cfg.NonceSecret, cfg.NonceTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create nonce manager: %w", err)
	}

	return services.NewServiceContainer(cfg, repos, services.ContainerDeps{
		Settings: settings,
		Verifier: verifier,
		Nonces:   nonces,
	}), nil
}

func newCaptchaVerifier(ctx context.Context, cfg *config.Config, settings portssvc.CaptchaSettingsSource) (portssvc.CaptchaVerifier, error) {
	if cfg.RecaptchaProvider == captcha.ProviderEnterprise {
		return captcha.NewEnterpriseVerifier(ctx, settings, captcha.EnterpriseConfig{
			ProjectID: cfg.RecaptchaProjectID,
			APIKey:    cfg.RecaptchaAPIKey,
			Timeout:   cfg.RecaptchaTimeout,
		}, nil)
	}
	return captcha.NewSiteVerifier(settings,
		captcha.WithVerifyURL(cfg.RecaptchaVerifyURL),
		captcha.WithTimeout(cfg.RecaptchaTimeout),
	), nil
}

// newRedisClient returns nil when no URL is configured.
func newRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func closeRedis(client *redis.Client, logger *slog.Logger) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.Error("Error closing redis client", slog.String("error", err.Error()))
	}
}

func (a *app) Close(logger *slog.Logger) {
	closeRedis(a.redis, logger)
	database.ClosePgxPool(a.pool)
}
