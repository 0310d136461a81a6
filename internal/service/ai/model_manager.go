package ai

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/kapu/alignment-bot-go/internal/constants"
	"github.com/kapu/alignment-bot-go/internal/util"
	"github.com/kapu/alignment-bot-go/pkg/errors"
)

var (
	statusCodeRegex = regexp.MustCompile(`\b(5\d{2})\b`)
	geminiCodeRegex = regexp.MustCompile(`"code":(\d{3})`)
	openaiCodeRegex = regexp.MustCompile(`^(\d{3})\s`)
)

// ModelManager sends prompts to the primary provider and, when enabled, to
// the fallback provider. Service failures trip a shared circuit breaker.
type ModelManager struct {
	primary        TextProvider
	fallback       TextProvider
	logger         *zap.Logger
	circuitBreaker *util.CircuitBreaker
}

type ModelManagerConfig struct {
	GeminiAPIKey       string
	OpenAIAPIKey       string
	DefaultGeminiModel string
	DefaultOpenAIModel string
	EnableFallback     bool
}

func NewModelManager(ctx context.Context, cfg ModelManagerConfig, logger *zap.Logger) (*ModelManager, error) {
	geminiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	defaultGemini := cfg.DefaultGeminiModel
	if defaultGemini == "" {
		defaultGemini = "gemini-2.5-flash"
	}
	defaultOpenAI := cfg.DefaultOpenAIModel
	if defaultOpenAI == "" {
		defaultOpenAI = "gpt-4.1-mini"
	}

	primary := NewGeminiProvider(geminiClient, defaultGemini, logger)

	var fallback TextProvider
	if cfg.EnableFallback {
		if openaiProvider := NewOpenAIProvider(cfg.OpenAIAPIKey, defaultOpenAI, logger); openaiProvider != nil {
			fallback = openaiProvider
			logger.Info("OpenAI fallback enabled", zap.String("model", defaultOpenAI))
		} else {
			logger.Info("OpenAI fallback disabled (no API key)")
		}
	}

	return NewModelManagerWithProviders(primary, fallback, logger), nil
}

// NewModelManagerWithProviders builds a manager around existing providers.
// fallback may be nil.
func NewModelManagerWithProviders(primary, fallback TextProvider, logger *zap.Logger) *ModelManager {
	return &ModelManager{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
		circuitBreaker: util.NewCircuitBreaker(
			constants.CircuitBreakerConfig.FailureThreshold,
			constants.CircuitBreakerConfig.ResetTimeout,
			logger,
		),
	}
}

// Generate returns the trimmed reply text.
func (mm *ModelManager) Generate(ctx context.Context, prompt string, preset ModelPreset, opts *GenerateOptions) (string, *GenerateMetadata, error) {
	if !mm.circuitBreaker.CanExecute() {
		status := mm.circuitBreaker.Status()
		fields := []zap.Field{
			zap.String("state", status.State.String()),
			zap.Int("failure_count", status.FailureCount),
		}
		if status.NextRetryTime != nil {
			fields = append(fields, zap.Time("next_retry", *status.NextRetryTime))
		}
		mm.logger.Warn("AI service unavailable (Circuit OPEN)", fields...)
		return "", nil, errors.NewServiceError("narration model temporarily unavailable", "ai", "generate", nil)
	}

	primaryResult, primaryErr := mm.invokeProvider(ctx, mm.primary, prompt, preset, opts)
	if primaryErr == nil {
		mm.circuitBreaker.RecordSuccess()
		return primaryResult.Text, &GenerateMetadata{Provider: mm.primary.Name(), Model: primaryResult.Model}, nil
	}

	if mm.fallback != nil {
		fallbackResult, fallbackErr := mm.invokeProvider(ctx, mm.fallback, prompt, preset, opts)
		if fallbackErr == nil {
			mm.circuitBreaker.RecordSuccess()
			return fallbackResult.Text, &GenerateMetadata{
				Provider:     mm.fallback.Name(),
				Model:        fallbackResult.Model,
				UsedFallback: true,
			}, nil
		}

		mm.recordFailure(primaryErr)
		mm.recordFailure(fallbackErr)
		return "", nil, errors.NewServiceError("narration failed", "ai", "generate", fallbackErr)
	}

	mm.recordFailure(primaryErr)
	return "", nil, errors.NewServiceError("narration failed", "ai", "generate", primaryErr)
}

func (mm *ModelManager) invokeProvider(ctx context.Context, provider TextProvider, prompt string, preset ModelPreset, opts *GenerateOptions) (ProviderResult, error) {
	if provider == nil {
		return ProviderResult{}, fmt.Errorf("model provider is not configured")
	}
	result, err := provider.Generate(ctx, prompt, preset, opts)
	if err != nil {
		return ProviderResult{}, err
	}
	result.Text = strings.TrimSpace(result.Text)
	if result.Text == "" {
		return ProviderResult{}, fmt.Errorf("%s API returned empty response", provider.Name())
	}
	return result, nil
}

func (mm *ModelManager) recordFailure(err error) {
	if !isServiceFailure(err) {
		return
	}

	timeout := constants.CircuitBreakerConfig.ResetTimeout
	if isRateLimitError(err) {
		timeout = constants.CircuitBreakerConfig.RateLimitTimeout
	}
	mm.circuitBreaker.RecordFailure(timeout)
}

// HealthCheck pings every configured provider and reports whether any
// answered.
func (mm *ModelManager) HealthCheck(ctx context.Context) bool {
	primaryOK := mm.primary != nil && mm.primary.Ping(ctx)
	fallbackOK := mm.fallback != nil && mm.fallback.Ping(ctx)

	mm.logger.Info("Health Check: Result",
		zap.Bool("primary", primaryOK),
		zap.Bool("fallback", fallbackOK),
	)
	return primaryOK || fallbackOK
}

func (mm *ModelManager) CircuitStatus() util.CircuitBreakerStatus {
	return mm.circuitBreaker.Status()
}

func (mm *ModelManager) ResetCircuit() {
	mm.circuitBreaker.Reset()
}

func isServiceFailure(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded") {
		return true
	}
	if isRateLimitError(err) {
		return true
	}
	if statusCodeRegex.MatchString(msg) {
		return true
	}
	if code, ok := providerStatusCode(msg); ok {
		return code >= 500 && code < 600
	}
	return false
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	if strings.Contains(msg, "429") || strings.Contains(msg, "Rate limit") || strings.Contains(msg, "quota") {
		return true
	}
	if code, ok := providerStatusCode(msg); ok {
		return code == 429
	}
	return false
}

func providerStatusCode(msg string) (int, bool) {
	for _, re := range []*regexp.Regexp{geminiCodeRegex, openaiCodeRegex} {
		if matches := re.FindStringSubmatch(msg); len(matches) > 1 {
			if code, err := strconv.Atoi(matches[1]); err == nil {
				return code, true
			}
		}
	}
	return 0, false
}
