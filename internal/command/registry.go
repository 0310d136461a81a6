package command

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/kapu/alignment-bot-go/internal/domain"
)

// ErrUnknownCommand is returned when a command dispatch is attempted for an
// unregistered key.
var ErrUnknownCommand = errors.New("unknown command")

// Registry maps command names and their aliases to handlers. Lookups are
// case-insensitive.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Command
	aliases  map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Command),
		aliases:  make(map[string]string),
	}
}

// Register adds a handler under its name plus any aliases. An alias that
// collides with a registered name is ignored.
func (r *Registry) Register(handler Command, aliases ...string) {
	if handler == nil {
		return
	}

	name := strings.ToLower(handler.Name())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = handler
	delete(r.aliases, name)
	for _, alias := range aliases {
		alias = strings.ToLower(strings.TrimSpace(alias))
		if alias == "" || alias == name {
			continue
		}
		if _, taken := r.handlers[alias]; taken {
			continue
		}
		r.aliases[alias] = name
	}
}

// Execute runs the handler registered for key or one of its aliases.
func (r *Registry) Execute(ctx context.Context, cmdCtx *domain.CommandContext, key string, params map[string]any) error {
	if r == nil {
		return fmt.Errorf("command registry is nil")
	}

	handler := r.lookup(key)
	if handler == nil {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, key)
	}

	return handler.Execute(ctx, cmdCtx, params)
}

// Count returns the number of registered handlers, aliases excluded.
func (r *Registry) Count() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// Names lists the canonical command names in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) lookup(key string) Command {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if handler, ok := r.handlers[key]; ok {
		return handler
	}
	if name, ok := r.aliases[key]; ok {
		return r.handlers[name]
	}
	return nil
}
