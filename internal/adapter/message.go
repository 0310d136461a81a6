package adapter

import (
	"regexp"
	"slices"
	"strings"

	"github.com/kapu/alignment-bot-go/internal/constants"
	"github.com/kapu/alignment-bot-go/internal/domain"
	"github.com/kapu/alignment-bot-go/internal/gateway"
	"github.com/kapu/alignment-bot-go/internal/util"
)

var controlCharsPattern = regexp.MustCompile(`[\x00-\x1F\x7F]`)

var (
	todayAliases      = []string{"today", "briefing", "day", "오늘"}
	profileAliases    = []string{"profile", "register", "birth", "등록"}
	challengesAliases = []string{"challenges", "lessons", "growth"}
	alertAliases      = []string{"alert", "alerts", "alarm", "알림"}
	forgetAliases     = []string{"forget", "unregister", "삭제"}
	helpAliases       = []string{"help", "commands", "도움말"}

	alertOnWords  = []string{"on", "enable", "start", "켜기"}
	alertOffWords = []string{"off", "disable", "stop", "끄기"}
)

// MessageAdapter converts chat messages to bot commands.
type MessageAdapter struct {
	prefix string
}

func NewMessageAdapter(prefix string) *MessageAdapter {
	return &MessageAdapter{prefix: prefix}
}

type ParsedCommand struct {
	Type       domain.CommandType
	Params     map[string]any
	RawMessage string
}

// ParseMessage parses a message. Anything without the prefix is unknown.
func (ma *MessageAdapter) ParseMessage(message *gateway.Message) *ParsedCommand {
	if message == nil || message.Msg == "" {
		return ma.createUnknownCommand("")
	}

	text := ma.sanitize(message.Msg)
	if !strings.HasPrefix(text, ma.prefix) {
		return ma.createUnknownCommand(text)
	}

	parts := strings.Fields(strings.TrimSpace(text[len(ma.prefix):]))
	if len(parts) == 0 {
		return ma.createUnknownCommand(text)
	}

	command := strings.ToLower(parts[0])
	args := parts[1:]

	switch {
	case slices.Contains(todayAliases, command):
		params := make(map[string]any)
		if len(args) > 0 {
			params["date"] = args[0]
		}
		return &ParsedCommand{Type: domain.CommandToday, Params: params, RawMessage: text}

	case slices.Contains(profileAliases, command):
		params := make(map[string]any)
		if len(args) > 0 {
			params["birth_date"] = args[0]
		}
		if len(args) > 1 {
			params["birth_place"] = strings.Join(args[1:], " ")
		}
		return &ParsedCommand{Type: domain.CommandProfile, Params: params, RawMessage: text}

	case slices.Contains(challengesAliases, command):
		params := make(map[string]any)
		if name := strings.Join(args, " "); name != "" {
			params["name"] = name
		}
		return &ParsedCommand{Type: domain.CommandChallenges, Params: params, RawMessage: text}

	case slices.Contains(alertAliases, command):
		return ma.parseAlertCommand(args, text)

	case slices.Contains(forgetAliases, command):
		return &ParsedCommand{Type: domain.CommandForget, Params: make(map[string]any), RawMessage: text}

	case slices.Contains(helpAliases, command):
		return &ParsedCommand{Type: domain.CommandHelp, Params: make(map[string]any), RawMessage: text}
	}

	return ma.createUnknownCommand(text)
}

func (ma *MessageAdapter) parseAlertCommand(args []string, rawMessage string) *ParsedCommand {
	cmdType := domain.CommandAlertStatus
	if len(args) > 0 {
		sub := strings.ToLower(args[0])
		switch {
		case slices.Contains(alertOnWords, sub):
			cmdType = domain.CommandAlertOn
		case slices.Contains(alertOffWords, sub):
			cmdType = domain.CommandAlertOff
		}
	}
	return &ParsedCommand{Type: cmdType, Params: make(map[string]any), RawMessage: rawMessage}
}

func (ma *MessageAdapter) createUnknownCommand(text string) *ParsedCommand {
	return &ParsedCommand{
		Type:       domain.CommandUnknown,
		Params:     make(map[string]any),
		RawMessage: text,
	}
}

func (ma *MessageAdapter) sanitize(input string) string {
	withoutControl := controlCharsPattern.ReplaceAllString(input, " ")
	normalized := util.CollapseSpaces(withoutControl)
	runes := []rune(normalized)
	if len(runes) > constants.StringLimits.Message {
		return string(runes[:constants.StringLimits.Message])
	}
	return normalized
}
