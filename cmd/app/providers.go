package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/valkey-io/valkey-go"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/auth"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/cosmic"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/guidance"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/moderation"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/ratelimit"
	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/subscription"
	"github.com/mariemajor/looking-beyond-cosmos/internal/infra/archive"
	"github.com/mariemajor/looking-beyond-cosmos/internal/infra/config"
	"github.com/mariemajor/looking-beyond-cosmos/internal/infra/cosmicrepo"
	"github.com/mariemajor/looking-beyond-cosmos/internal/infra/llm/chatgpt"
	"github.com/mariemajor/looking-beyond-cosmos/internal/infra/llm/tokenizer"
	"github.com/mariemajor/looking-beyond-cosmos/internal/infra/profilerepo"
	"github.com/mariemajor/looking-beyond-cosmos/internal/infra/ratestore"
	"github.com/mariemajor/looking-beyond-cosmos/internal/infra/reportrepo"
	"github.com/mariemajor/looking-beyond-cosmos/internal/infra/scheduler"
	"github.com/mariemajor/looking-beyond-cosmos/internal/infra/subscriptionrepo"
	"github.com/mariemajor/looking-beyond-cosmos/pkg/metrics"
)

// providePostgresPool returns nil when no DSN is configured or the database is unreachable,
// in which case every repository falls back to memory.
func providePostgresPool(cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	dsn := strings.TrimSpace(cfg.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repositories")
		return nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repositories", "error", err)
		return nil
	}
	if cfg.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repositories", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repositories", "error", err)
		pool.Close()
		return nil
	}
	logger.Info("postgres repositories enabled")
	return pool
}

func provideCosmicRepository(pool *pgxpool.Pool) cosmic.Repository {
	if pool == nil {
		return cosmicrepo.NewMemoryRepository()
	}
	return cosmicrepo.NewPostgresRepository(pool)
}

func provideSubscriptionRepository(pool *pgxpool.Pool) subscription.Repository {
	if pool == nil {
		return subscriptionrepo.NewMemoryRepository()
	}
	return subscriptionrepo.NewPostgresRepository(pool)
}

func provideReportRepository(pool *pgxpool.Pool) moderation.ReportRepository {
	if pool == nil {
		return reportrepo.NewMemoryRepository()
	}
	return reportrepo.NewPostgresRepository(pool)
}

func provideProfileRepository(pool *pgxpool.Pool) guidance.ProfileRepository {
	if pool == nil {
		return profilerepo.NewMemoryRepository()
	}
	return profilerepo.NewPostgresRepository(pool)
}

func provideWindowStore(cfg *config.Config, logger *slog.Logger) ratelimit.WindowStore {
	if !cfg.Valkey.Enabled {
		return ratestore.NewMemoryStore()
	}
	opt, err := buildValkeyOptions(cfg.Valkey.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return ratestore.NewMemoryStore()
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return ratestore.NewMemoryStore()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return ratestore.NewMemoryStore()
	}
	logger.Info("valkey rate window store enabled", "addr", cfg.Valkey.Addr)
	return ratestore.NewValkeyStore(client, cfg.Valkey.KeyPrefix)
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.TrimSpace(addr) == "" {
		return valkey.ClientOption{}, errors.New("valkey addr is empty")
	}
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

func provideArchive(cfg *config.Config, logger *slog.Logger) cosmic.Archive {
	storage := cfg.ObjectStorage
	if !storage.Enabled {
		return archive.NewMemoryArchive()
	}
	r2, err := archive.NewR2Archive(archive.R2Config{
		Endpoint:  storage.Endpoint,
		AccessKey: storage.AccessKey,
		SecretKey: storage.SecretKey,
		Bucket:    storage.Bucket,
		Region:    storage.Region,
	}, logger)
	if err != nil {
		logger.Error("object storage unavailable, keeping snapshots in memory", "error", err)
		return archive.NewMemoryArchive()
	}
	logger.Info("object storage archive enabled", "bucket", storage.Bucket)
	return r2
}

// unavailableChatClient answers every completion with an error so the API still serves
// the deterministic endpoints when no model credentials are configured.
type unavailableChatClient struct{}

func (unavailableChatClient) CreateChatCompletion(context.Context, chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error) {
	return chatgpt.ChatCompletionResponse{}, errors.New("llm api key is not configured")
}

func provideChatClient(cfg *config.Config, logger *slog.Logger) (guidance.ChatClient, error) {
	if strings.TrimSpace(cfg.LLM.APIKey) == "" {
		logger.Warn("llm api key not set, guidance chat is disabled")
		return unavailableChatClient{}, nil
	}
	client, err := chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Timeout)
	if err != nil {
		return nil, fmt.Errorf("chat client: %w", err)
	}
	return client, nil
}

// provideTokenizer loads the encoding in the background; chats before it finishes use the estimate.
func provideTokenizer(cfg *config.Config, logger *slog.Logger) guidance.TokenCounter {
	tok := tokenizer.New(cfg.LLM.Model, logger)
	go tok.Warm()
	return tok
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

func provideRateLimiter(cfg *config.Config, store ratelimit.WindowStore, logger *slog.Logger) guidance.RateLimiter {
	return ratelimit.NewLimiter(store, ratelimit.Config{
		MaxRequests: cfg.Guidance.MaxRequests,
		Window:      cfg.Guidance.Window,
	}, logger)
}

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:   cfg.Auth.JWTSecret,
		Audience: cfg.Auth.Audience,
		Leeway:   cfg.Auth.Leeway,
	}
}

func provideGuidanceConfig(cfg *config.Config) guidance.Config {
	return guidance.Config{
		Model:               cfg.LLM.Model,
		Temperature:         cfg.LLM.Temperature,
		MaxCompletionTokens: cfg.LLM.MaxCompletionTokens,
		Persona:             cfg.Guidance.Prompt,
		DefaultMessage:      cfg.Guidance.DefaultMessage,
		RequirePremium:      cfg.Guidance.RequirePremium,
	}
}

func provideGuidanceDependencies(
	client guidance.ChatClient,
	moderationSvc moderation.Service,
	limiter guidance.RateLimiter,
	subscriptionSvc subscription.Service,
	cosmicSvc cosmic.Service,
	profiles guidance.ProfileRepository,
	tokens guidance.TokenCounter,
	usage *metrics.Collectors,
) guidance.Dependencies {
	return guidance.Dependencies{
		Client:        client,
		Moderation:    moderationSvc,
		Limiter:       limiter,
		Subscriptions: subscriptionSvc,
		Cosmic:        cosmicSvc,
		Profiles:      profiles,
		Tokens:        tokens,
		Usage:         usage,
	}
}

func provideScheduler(cfg *config.Config, logger *slog.Logger) (*scheduler.Scheduler, error) {
	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		return nil, fmt.Errorf("scheduler timezone: %w", err)
	}
	return scheduler.New(loc, logger), nil
}
