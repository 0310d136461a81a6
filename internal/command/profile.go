package command

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kapu/alignment-bot-go/internal/domain"
	"github.com/kapu/alignment-bot-go/pkg/errors"
)

type ProfileCommand struct {
	deps *Dependencies
}

func NewProfileCommand(deps *Dependencies) *ProfileCommand {
	return &ProfileCommand{deps: deps}
}

func (c *ProfileCommand) Name() string {
	return "profile"
}

func (c *ProfileCommand) Description() string {
	return "Save your birth date and optional birth place"
}

func (c *ProfileCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if c.deps.Briefing == nil {
		return fmt.Errorf("briefing service not configured")
	}

	birthDate := stringParam(params, "birth_date")
	if birthDate == "" {
		return errors.NewInvalidBirthDateError("", nil)
	}

	u, _, err := c.deps.Briefing.Register(ctx, cmdCtx.Room, cmdCtx.UserID, cmdCtx.Sender, birthDate, stringParam(params, "birth_place"))
	var invalid *errors.InvalidBirthDateError
	if stderrors.As(err, &invalid) {
		return err
	}
	if err != nil {
		c.deps.Logger.Error("Registration failed", zap.String("user", cmdCtx.UserID), zap.Error(err))
		return c.deps.SendError(cmdCtx.Room, "Could not save your birth date. Please try again later.")
	}

	return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatRegistered(u))
}
