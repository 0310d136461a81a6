// Package bot runs the chat loop and the alert ticker.
package bot

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"

	"github.com/kapu/alignment-bot-go/internal/adapter"
	"github.com/kapu/alignment-bot-go/internal/command"
	"github.com/kapu/alignment-bot-go/internal/constants"
	"github.com/kapu/alignment-bot-go/internal/domain"
	"github.com/kapu/alignment-bot-go/internal/gateway"
	"github.com/kapu/alignment-bot-go/internal/service/alert"
)

// Sender delivers a message to a room; *gateway.Client satisfies it.
type Sender interface {
	SendMessage(ctx context.Context, room, message string) error
}

// MessageSource delivers inbound messages; *gateway.WebSocket satisfies it.
type MessageSource interface {
	Connect(ctx context.Context) error
	OnMessage(callback gateway.MessageCallback) func()
	Disconnect() error
}

// AlertScheduler is satisfied by *alert.Service.
type AlertScheduler interface {
	CheckDue(ctx context.Context, now time.Time) ([]domain.AlertNotification, error)
	MorningDue(ctx context.Context, now time.Time) ([]alert.MorningBriefing, error)
}

type Dependencies struct {
	Logger         *zap.Logger
	Client         Sender
	WebSocket      MessageSource
	MessageAdapter *adapter.MessageAdapter
	Formatter      *adapter.ResponseFormatter
	Dispatcher     command.Dispatcher
	Alerts         AlertScheduler
	CheckInterval  time.Duration
	Now            func() time.Time
	// Closers run in reverse order on Shutdown.
	Closers []func() error
}

type Bot struct {
	deps   *Dependencies
	logger *zap.Logger

	handlers conc.WaitGroup

	mu           sync.Mutex
	unsubscribe  func()
	shutdownOnce sync.Once
}

func NewBot(deps *Dependencies) (*Bot, error) {
	if deps == nil {
		return nil, fmt.Errorf("bot dependencies must not be nil")
	}
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if deps.Client == nil || deps.WebSocket == nil {
		return nil, fmt.Errorf("gateway client and websocket are required")
	}
	if deps.MessageAdapter == nil || deps.Formatter == nil || deps.Dispatcher == nil {
		return nil, fmt.Errorf("message adapter, formatter and dispatcher are required")
	}
	if deps.CheckInterval <= 0 {
		deps.CheckInterval = time.Minute
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &Bot{
		deps:   deps,
		logger: deps.Logger,
	}, nil
}

// Start connects to the gateway and blocks until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	unsubscribe := b.deps.WebSocket.OnMessage(func(msg *gateway.Message) {
		b.handlers.Go(func() {
			b.handleMessage(ctx, msg)
		})
	})
	b.mu.Lock()
	b.unsubscribe = unsubscribe
	b.mu.Unlock()

	if err := b.deps.WebSocket.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect gateway websocket: %w", err)
	}

	b.logger.Info("Bot running",
		zap.Duration("check_interval", b.deps.CheckInterval),
		zap.Bool("alerts", b.deps.Alerts != nil),
	)

	b.runAlertLoop(ctx)
	return nil
}

func (b *Bot) runAlertLoop(ctx context.Context) {
	if b.deps.Alerts == nil {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(b.deps.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.runAlertCycle(ctx, b.deps.Now())
		}
	}
}

// runAlertCycle sends every due window alert and morning briefing for now.
func (b *Bot) runAlertCycle(ctx context.Context, now time.Time) {
	sweepCtx, cancel := context.WithTimeout(ctx, constants.AlertConfig.SweepTimeout)
	defer cancel()

	notifications, err := b.deps.Alerts.CheckDue(sweepCtx, now)
	if err != nil {
		b.logger.Error("Alert check failed", zap.Error(err))
	}
	for _, n := range notifications {
		b.send(sweepCtx, n.RoomID, b.deps.Formatter.FormatAlertNotification(n))
	}

	briefings, err := b.deps.Alerts.MorningDue(sweepCtx, now)
	if err != nil {
		b.logger.Error("Morning briefing check failed", zap.Error(err))
	}
	for _, m := range briefings {
		if m.Briefing == nil {
			continue
		}
		b.send(sweepCtx, m.RoomID, b.deps.Formatter.FormatMorningBriefing(m.Briefing))
	}

	if len(notifications) > 0 || len(briefings) > 0 {
		b.logger.Info("Alerts sent",
			zap.Int("window_alerts", len(notifications)),
			zap.Int("morning_briefings", len(briefings)),
		)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *gateway.Message) {
	if msg == nil {
		return
	}

	parsed := b.deps.MessageAdapter.ParseMessage(msg)
	if parsed == nil || parsed.Type == domain.CommandUnknown {
		return
	}

	cmdCtx := buildCommandContext(msg)
	if cmdCtx.UserID == "" {
		b.logger.Warn("Dropping command without a user id", zap.String("room", msg.Room))
		return
	}

	b.logger.Debug("Command received",
		zap.String("type", parsed.Type.String()),
		zap.String("room", cmdCtx.Room),
		zap.String("user", cmdCtx.UserID),
	)

	event := command.CommandEvent{Type: parsed.Type, Params: parsed.Params}
	if _, err := b.deps.Dispatcher.Publish(ctx, cmdCtx, event); err != nil {
		b.logger.Error("Command failed",
			zap.String("type", parsed.Type.String()),
			zap.String("room", cmdCtx.Room),
			zap.Error(err),
		)
		b.send(ctx, cmdCtx.Room, b.deps.Formatter.FormatError("Something went wrong. Please try again later."))
	}
}

func buildCommandContext(msg *gateway.Message) *domain.CommandContext {
	sender := ""
	if msg.Sender != nil {
		sender = strings.TrimSpace(*msg.Sender)
	}

	userID := ""
	roomName := msg.Room
	if msg.JSON != nil {
		userID = strings.TrimSpace(msg.JSON.UserID)
		if msg.JSON.ChatID != "" {
			roomName = msg.JSON.ChatID
		}
	}
	if userID == "" {
		userID = sender
	}

	// Direct chats are named after the other participant.
	isGroupChat := sender == "" || sender != msg.Room

	return domain.NewCommandContext(msg.Room, roomName, userID, sender, msg.Msg, isGroupChat)
}

func (b *Bot) send(ctx context.Context, room, message string) {
	if err := b.deps.Client.SendMessage(ctx, room, message); err != nil {
		b.logger.Error("Failed to send message", zap.String("room", room), zap.Error(err))
	}
}

// Shutdown stops message handling, waits for in-flight commands and closes
// the infrastructure handed over in Dependencies.Closers.
func (b *Bot) Shutdown(ctx context.Context) error {
	var shutdownErr error
	b.shutdownOnce.Do(func() {
		b.mu.Lock()
		if b.unsubscribe != nil {
			b.unsubscribe()
		}
		b.mu.Unlock()

		if err := b.deps.WebSocket.Disconnect(); err != nil {
			b.logger.Warn("WebSocket disconnect failed", zap.Error(err))
		}

		done := make(chan struct{})
		go func() {
			b.handlers.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-ctx.Done():
			shutdownErr = fmt.Errorf("timed out waiting for command handlers: %w", ctx.Err())
		}

		for i := len(b.deps.Closers) - 1; i >= 0; i-- {
			if err := b.deps.Closers[i](); err != nil {
				b.logger.Warn("Close failed", zap.Error(err))
			}
		}
	})
	return shutdownErr
}
