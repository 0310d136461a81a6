package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kapu/alignment-bot-go/internal/adapter"
	"github.com/kapu/alignment-bot-go/internal/bot"
	"github.com/kapu/alignment-bot-go/internal/command"
	"github.com/kapu/alignment-bot-go/internal/config"
	"github.com/kapu/alignment-bot-go/internal/constants"
	"github.com/kapu/alignment-bot-go/internal/gateway"
	"github.com/kapu/alignment-bot-go/internal/service/ai"
	"github.com/kapu/alignment-bot-go/internal/service/alert"
	"github.com/kapu/alignment-bot-go/internal/service/briefing"
	"github.com/kapu/alignment-bot-go/internal/service/cache"
	"github.com/kapu/alignment-bot-go/internal/service/database"
	"github.com/kapu/alignment-bot-go/internal/service/user"
	"github.com/kapu/alignment-bot-go/internal/util"
)

const sendTimeout = 10 * time.Second

// Container bundles assembled services for constructing runtime components like Bot.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	Briefing *briefing.Service
	Alerts   *alert.Service

	botDeps *bot.Dependencies
}

// NewBot instantiates a bot using the pre-built dependency graph.
func (c *Container) NewBot() (*bot.Bot, error) {
	if c == nil || c.botDeps == nil {
		return nil, fmt.Errorf("bot dependencies not initialized")
	}
	return bot.NewBot(c.botDeps)
}

// Build assembles all infrastructure services and returns a container capable of
// creating fully-wired bots. Redis and PostgreSQL are connected here; the
// bot takes ownership of both and closes them on shutdown.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func() error
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				_ = closers[i]()
			}
		}
	}()

	location := util.LoadLocation(cfg.Briefing.Timezone, logger)

	// Messaging primitives
	gatewayClient := gateway.NewClient(cfg.Gateway.BaseURL, logger)
	gatewayWS := gateway.NewWebSocket(
		cfg.Gateway.WSURL,
		constants.WebSocketConfig.MaxReconnectAttempts,
		constants.WebSocketConfig.ReconnectDelay,
		constants.WebSocketConfig.PingInterval,
		logger,
	)
	messageAdapter := adapter.NewMessageAdapter(cfg.Bot.Prefix)
	formatter := adapter.NewResponseFormatter(cfg.Bot.Prefix)

	// Cache and database
	cacheSvc, err := cache.NewCacheService(cache.CacheConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache service: %w", err)
	}
	closers = append(closers, cacheSvc.Close)

	postgresSvc, err := database.NewPostgresService(database.PostgresConfig{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
		SSLMode:  cfg.Postgres.SSLMode,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres service: %w", err)
	}
	closers = append(closers, postgresSvc.Close)

	users := user.NewRepository(postgresSvc.GetDB(), logger)
	if err := users.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare user schema: %w", err)
	}

	// AI stack (optional)
	var narrator briefing.Narrator
	if cfg.Briefing.NarrationEnabled {
		models, err := buildModelManager(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create model manager: %w", err)
		}
		if !models.HealthCheck(ctx) {
			logger.Warn("Narration models unreachable, deterministic text will be used until they recover")
		}
		narrator = ai.NewNarrator(models, formatter.Summary, logger)
		logger.Info("Narration enabled")
	}

	healthCtx, healthCancel := context.WithTimeout(ctx, constants.RedisConfig.ReadyTimeout)
	logger.Info("Startup health",
		zap.Bool("redis", cacheSvc.IsConnected(healthCtx)),
		zap.Bool("gateway", gatewayClient.Ping(healthCtx)),
	)
	healthCancel()

	briefingSvc := briefing.NewService(cacheSvc, users, narrator, location, logger)
	alertSvc := alert.NewService(cacheSvc, briefingSvc, cfg.Briefing.AlertLeadMinutes, cfg.Briefing.MorningHour, logger)
	alertSvc.SetCheckInterval(cfg.Briefing.CheckInterval)

	sendMessage := func(room, message string) error {
		sendCtx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		return gatewayClient.SendMessage(sendCtx, room, message)
	}
	sendError := func(room, message string) error {
		return sendMessage(room, formatter.FormatError(message))
	}

	cmdDeps := &command.Dependencies{
		Briefing:    briefingSvc,
		Alerts:      alertSvc,
		Formatter:   formatter,
		SendMessage: sendMessage,
		SendError:   sendError,
		Logger:      logger,
	}
	registry := command.NewRegistry()
	command.RegisterAll(registry, cmdDeps)
	logger.Info("Commands registered", zap.Strings("commands", registry.Names()))

	deps := &bot.Dependencies{
		Logger:         logger,
		Client:         gatewayClient,
		WebSocket:      gatewayWS,
		MessageAdapter: messageAdapter,
		Formatter:      formatter,
		Dispatcher:     command.NewDispatcher(registry, command.NormalizeCommand, cmdDeps),
		Alerts:         alertSvc,
		CheckInterval:  cfg.Briefing.CheckInterval,
		Closers:        closers,
	}

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Briefing: briefingSvc,
		Alerts:   alertSvc,
		botDeps:  deps,
	}, nil
}

// buildModelManager prefers Gemini. With only an OpenAI key, OpenAI becomes
// the primary provider and there is no fallback.
func buildModelManager(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*ai.ModelManager, error) {
	if cfg.Gemini.APIKey != "" {
		return ai.NewModelManager(ctx, ai.ModelManagerConfig{
			GeminiAPIKey:       cfg.Gemini.APIKey,
			OpenAIAPIKey:       cfg.OpenAI.APIKey,
			DefaultGeminiModel: cfg.Gemini.Model,
			DefaultOpenAIModel: cfg.OpenAI.Model,
			EnableFallback:     cfg.OpenAI.EnableFallback,
		}, logger)
	}

	openaiProvider := ai.NewOpenAIProvider(cfg.OpenAI.APIKey, cfg.OpenAI.Model, logger)
	if openaiProvider == nil {
		return nil, fmt.Errorf("no model provider configured")
	}
	return ai.NewModelManagerWithProviders(openaiProvider, nil, logger), nil
}
