package command

import (
	"context"
	stderrors "errors"
	"maps"

	"go.uber.org/zap"

	"github.com/kapu/alignment-bot-go/internal/domain"
	"github.com/kapu/alignment-bot-go/internal/service/briefing"
	"github.com/kapu/alignment-bot-go/pkg/errors"
)

// NormalizeFunc converts a domain command type plus params into the registry key
// and normalized parameter map used for execution.
type NormalizeFunc func(domain.CommandType, map[string]any) (string, map[string]any)

// invalidDateError reports a target date the today command could not parse.
type invalidDateError struct {
	input string
}

func (e *invalidDateError) Error() string {
	return "invalid date: " + e.input
}

type dispatcher struct {
	registry  *Registry
	normalize NormalizeFunc
	deps      *Dependencies
}

// NewDispatcher returns a dispatcher that runs events in order. Handlers
// return the user-input errors (no birth date on file, bad birth date, bad
// target date) and the dispatcher answers them through the formatter; any
// other error stops the batch and is returned.
func NewDispatcher(registry *Registry, normalize NormalizeFunc, deps *Dependencies) Dispatcher {
	return &dispatcher{registry: registry, normalize: normalize, deps: deps}
}

func (d *dispatcher) Publish(ctx context.Context, cmdCtx *domain.CommandContext, events ...CommandEvent) (int, error) {
	if d == nil || d.registry == nil || d.normalize == nil {
		return 0, nil
	}

	executed := 0
	for _, event := range events {
		if event.Type == domain.CommandUnknown {
			continue
		}

		key, params := d.normalize(event.Type, maps.Clone(event.Params))
		if params == nil {
			params = map[string]any{}
		}
		err := d.registry.Execute(ctx, cmdCtx, key, params)
		if err != nil && !d.reply(cmdCtx, event.Type, err) {
			return executed, err
		}
		executed++
	}
	return executed, nil
}

// reply answers user-input errors and reports whether err was one of them.
func (d *dispatcher) reply(cmdCtx *domain.CommandContext, cmdType domain.CommandType, err error) bool {
	if d.deps == nil || d.deps.Formatter == nil || d.deps.SendMessage == nil {
		return false
	}

	var (
		message  string
		badBirth *errors.InvalidBirthDateError
		badDate  *invalidDateError
	)
	switch {
	case stderrors.Is(err, briefing.ErrNotRegistered):
		message = d.deps.Formatter.FormatNotRegistered()
	case stderrors.As(err, &badBirth):
		message = d.deps.Formatter.FormatInvalidBirthDate(badBirth.Input)
	case stderrors.As(err, &badDate):
		message = d.deps.Formatter.FormatInvalidDate(badDate.input)
	default:
		return false
	}

	if sendErr := d.deps.SendMessage(cmdCtx.Room, message); sendErr != nil && d.deps.Logger != nil {
		d.deps.Logger.Warn("Failed to send reply",
			zap.String("command", cmdType.String()),
			zap.String("room", cmdCtx.Room),
			zap.Error(sendErr),
		)
	}
	return true
}
