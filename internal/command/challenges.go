package command

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kapu/alignment-bot-go/internal/domain"
	"github.com/kapu/alignment-bot-go/internal/service/briefing"
)

type ChallengesCommand struct {
	deps *Dependencies
}

func NewChallengesCommand(deps *Dependencies) *ChallengesCommand {
	return &ChallengesCommand{deps: deps}
}

func (c *ChallengesCommand) Name() string {
	return "challenges"
}

func (c *ChallengesCommand) Description() string {
	return "Growth notes for your birth date"
}

func (c *ChallengesCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if c.deps.Briefing == nil {
		return fmt.Errorf("briefing service not configured")
	}

	profile, err := c.deps.Briefing.Challenges(ctx, cmdCtx.Room, cmdCtx.UserID, stringParam(params, "name"))
	if stderrors.Is(err, briefing.ErrNotRegistered) {
		return err
	}
	if err != nil {
		c.deps.Logger.Error("Challenges failed", zap.String("user", cmdCtx.UserID), zap.Error(err))
		return c.deps.SendError(cmdCtx.Room, "Could not build your growth notes right now.")
	}

	return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatChallenges(profile))
}
