package command

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kapu/alignment-bot-go/internal/domain"
	"github.com/kapu/alignment-bot-go/internal/service/briefing"
)

type AlertCommand struct {
	deps *Dependencies
}

func NewAlertCommand(deps *Dependencies) *AlertCommand {
	return &AlertCommand{deps: deps}
}

func (c *AlertCommand) Name() string {
	return "alert"
}

func (c *AlertCommand) Description() string {
	return "Turn window reminders on or off"
}

func (c *AlertCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if c.deps.Alerts == nil || c.deps.Briefing == nil {
		return fmt.Errorf("alert command services not configured")
	}

	switch stringParam(params, "action") {
	case "on":
		return c.handleOn(ctx, cmdCtx)
	case "off":
		removed, err := c.deps.Alerts.Unsubscribe(ctx, cmdCtx.Room, cmdCtx.UserID)
		if err != nil {
			return c.fail(cmdCtx, err)
		}
		return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatAlertUnsubscribed(removed))
	default:
		subscribed, err := c.deps.Alerts.IsSubscribed(ctx, cmdCtx.Room, cmdCtx.UserID)
		if err != nil {
			return c.fail(cmdCtx, err)
		}
		return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatAlertStatus(subscribed))
	}
}

func (c *AlertCommand) handleOn(ctx context.Context, cmdCtx *domain.CommandContext) error {
	registered, err := c.deps.Briefing.IsRegistered(ctx, cmdCtx.Room, cmdCtx.UserID)
	if err != nil {
		return c.fail(cmdCtx, err)
	}
	if !registered {
		return briefing.ErrNotRegistered
	}

	added, err := c.deps.Alerts.Subscribe(ctx, cmdCtx.Room, cmdCtx.UserID)
	if err != nil {
		return c.fail(cmdCtx, err)
	}
	return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatAlertSubscribed(added))
}

func (c *AlertCommand) fail(cmdCtx *domain.CommandContext, err error) error {
	c.deps.Logger.Error("Alert command failed", zap.String("user", cmdCtx.UserID), zap.Error(err))
	return c.deps.SendError(cmdCtx.Room, "Alert settings are unavailable right now.")
}
