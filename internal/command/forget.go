package command

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kapu/alignment-bot-go/internal/domain"
)

type ForgetCommand struct {
	deps *Dependencies
}

func NewForgetCommand(deps *Dependencies) *ForgetCommand {
	return &ForgetCommand{deps: deps}
}

func (c *ForgetCommand) Name() string {
	return "forget"
}

func (c *ForgetCommand) Description() string {
	return "Delete your saved data and alerts"
}

// Execute removes the alert subscription first so no alert fires for a
// user whose data is gone.
func (c *ForgetCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, _ map[string]any) error {
	if c.deps.Briefing == nil {
		return fmt.Errorf("briefing service not configured")
	}

	if c.deps.Alerts != nil {
		if _, err := c.deps.Alerts.Unsubscribe(ctx, cmdCtx.Room, cmdCtx.UserID); err != nil {
			c.deps.Logger.Warn("Failed to remove alert subscription", zap.String("user", cmdCtx.UserID), zap.Error(err))
		}
	}

	deleted, err := c.deps.Briefing.Forget(ctx, cmdCtx.Room, cmdCtx.UserID)
	if err != nil {
		c.deps.Logger.Error("Forget failed", zap.String("user", cmdCtx.UserID), zap.Error(err))
		return c.deps.SendError(cmdCtx.Room, "Could not delete your data right now.")
	}

	return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatForgotten(deleted))
}
