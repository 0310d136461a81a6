package command

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kapu/alignment-bot-go/internal/adapter"
	"github.com/kapu/alignment-bot-go/internal/domain"
	"github.com/kapu/alignment-bot-go/internal/service/briefing"
	"github.com/kapu/alignment-bot-go/internal/service/user"
)

type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error
}

// CommandEvent is one parsed command waiting for dispatch.
type CommandEvent struct {
	Type   domain.CommandType
	Params map[string]any
}

type Dispatcher interface {
	Publish(ctx context.Context, cmdCtx *domain.CommandContext, events ...CommandEvent) (int, error)
}

// BriefingService is satisfied by *briefing.Service.
type BriefingService interface {
	Today(ctx context.Context, roomID, userID string, date time.Time) (*briefing.Briefing, error)
	Challenges(ctx context.Context, roomID, userID, name string) (domain.ChallengesProfile, error)
	Register(ctx context.Context, roomID, userID, displayName, birthDate, birthPlace string) (*user.User, domain.PersonalProfile, error)
	Forget(ctx context.Context, roomID, userID string) (bool, error)
	IsRegistered(ctx context.Context, roomID, userID string) (bool, error)
	CurrentDate(now time.Time) time.Time
}

// AlertService is satisfied by *alert.Service.
type AlertService interface {
	Subscribe(ctx context.Context, roomID, userID string) (bool, error)
	Unsubscribe(ctx context.Context, roomID, userID string) (bool, error)
	IsSubscribed(ctx context.Context, roomID, userID string) (bool, error)
}

type Dependencies struct {
	Briefing    BriefingService
	Alerts      AlertService
	Formatter   *adapter.ResponseFormatter
	SendMessage func(room, message string) error
	SendError   func(room, message string) error
	Now         func() time.Time
	Logger      *zap.Logger
}

func (d *Dependencies) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// NormalizeCommand maps a parsed command type to its registry key.
func NormalizeCommand(cmdType domain.CommandType, params map[string]any) (string, map[string]any) {
	switch cmdType {
	case domain.CommandAlertOn:
		params["action"] = "on"
		return "alert", params
	case domain.CommandAlertOff:
		params["action"] = "off"
		return "alert", params
	case domain.CommandAlertStatus:
		params["action"] = "status"
		return "alert", params
	default:
		return cmdType.String(), params
	}
}

// RegisterAll registers every command handler.
func RegisterAll(registry *Registry, deps *Dependencies) {
	registry.Register(NewTodayCommand(deps), "briefing", "day")
	registry.Register(NewProfileCommand(deps), "register", "birth")
	registry.Register(NewChallengesCommand(deps), "lessons", "growth")
	registry.Register(NewAlertCommand(deps), "alerts", "alarm")
	registry.Register(NewForgetCommand(deps), "unregister")
	registry.Register(NewHelpCommand(deps), "commands")
}

func stringParam(params map[string]any, key string) string {
	v, _ := params[key].(string)
	return v
}
