package ai

import (
	"context"
	stderrors "errors"
	"strings"

	"go.uber.org/zap"

	"github.com/kapu/alignment-bot-go/internal/alignment"
	"github.com/kapu/alignment-bot-go/internal/constants"
	"github.com/kapu/alignment-bot-go/internal/insight"
	"github.com/kapu/alignment-bot-go/internal/prompt"
	"github.com/kapu/alignment-bot-go/internal/util"
	"github.com/kapu/alignment-bot-go/pkg/errors"
)

// TextGenerator is satisfied by *ModelManager.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, preset ModelPreset, opts *GenerateOptions) (string, *GenerateMetadata, error)
}

// Narrator turns a scored result into a short paragraph. Replies are checked
// against the terminology filter; a leak gets one stricter retry before the
// deterministic text is used.
type Narrator struct {
	models   TextGenerator
	prompts  *prompt.PromptBuilder
	filter   *insight.Filter
	fallback func(alignment.Result) string
	logger   *zap.Logger
}

// NewNarrator wires a narrator. models may be nil, in which case every call
// returns the fallback text.
func NewNarrator(models TextGenerator, fallback func(alignment.Result) string, logger *zap.Logger) *Narrator {
	if fallback == nil {
		fallback = func(r alignment.Result) string { return r.Insights.TopPriority }
	}
	return &Narrator{
		models:   models,
		prompts:  prompt.DefaultPromptBuilder(),
		filter:   insight.DefaultFilter(),
		fallback: fallback,
		logger:   logger,
	}
}

// Narrate reports true only when the text came from the model.
func (n *Narrator) Narrate(ctx context.Context, result alignment.Result) (string, bool) {
	if n.models == nil || result.Insights.SafeMode {
		return n.fallback(result), false
	}

	ctx, cancel := context.WithTimeout(ctx, constants.NarrationConfig.Timeout)
	defer cancel()

	data := prompt.NewNarrationData(result, insight.BannedTerms, constants.NarrationConfig.MaxReplyRunes)

	text, err := n.generate(ctx, n.prompts.Narration(data), PresetCreative)
	if err == nil {
		return text, true
	}

	var leak *errors.TerminologyLeakError
	if !stderrors.As(err, &leak) {
		n.logger.Warn("Narration failed, using fallback", zap.Error(err))
		return n.fallback(result), false
	}

	n.logger.Warn("Narration leaked a banned term, retrying", zap.String("term", leak.Term))
	text, err = n.generate(ctx, n.prompts.NarrationRetry(data), PresetPrecise)
	if err != nil {
		n.logger.Warn("Narration retry failed, using fallback", zap.Error(err))
		return n.fallback(result), false
	}
	return text, true
}

func (n *Narrator) generate(ctx context.Context, promptText string, preset ModelPreset) (string, error) {
	text, meta, err := n.models.Generate(ctx, promptText, preset, nil)
	if err != nil {
		return "", err
	}

	text = cleanReply(text)
	if text == "" {
		return "", errors.NewServiceError("empty narration", "ai", "narrate", nil)
	}
	if err := n.filter.Check(text); err != nil {
		return "", err
	}

	if meta != nil {
		n.logger.Debug("Narration generated",
			zap.String("provider", meta.Provider),
			zap.String("model", meta.Model),
			zap.Bool("fallback", meta.UsedFallback),
		)
	}
	return text, nil
}

func cleanReply(text string) string {
	text = strings.TrimSpace(text)
	text = strings.Trim(text, "\"`")
	text = util.CollapseSpaces(text)
	return util.TruncateString(text, constants.NarrationConfig.MaxReplyRunes)
}
