package command

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kapu/alignment-bot-go/internal/domain"
	"github.com/kapu/alignment-bot-go/internal/service/briefing"
	"github.com/kapu/alignment-bot-go/internal/util"
)

type TodayCommand struct {
	deps *Dependencies
}

func NewTodayCommand(deps *Dependencies) *TodayCommand {
	return &TodayCommand{deps: deps}
}

func (c *TodayCommand) Name() string {
	return "today"
}

func (c *TodayCommand) Description() string {
	return "Daily briefing for today or a given date"
}

func (c *TodayCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if c.deps.Briefing == nil {
		return fmt.Errorf("briefing service not configured")
	}

	date := c.deps.Briefing.CurrentDate(c.deps.now())
	if raw := strings.TrimSpace(stringParam(params, "date")); raw != "" {
		parsed, err := time.Parse(util.DateLayout, raw)
		if err != nil {
			return &invalidDateError{input: raw}
		}
		date = parsed
	}

	b, err := c.deps.Briefing.Today(ctx, cmdCtx.Room, cmdCtx.UserID, date)
	if stderrors.Is(err, briefing.ErrNotRegistered) {
		return err
	}
	if err != nil {
		c.deps.Logger.Error("Briefing failed", zap.String("user", cmdCtx.UserID), zap.Error(err))
		return c.deps.SendError(cmdCtx.Room, "Could not build your briefing right now. Please try again later.")
	}

	return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatBriefing(b))
}
