package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Gateway:  GatewayConfig{BaseURL: "http://localhost:3000", WSURL: "ws://localhost:3000/ws"},
		Postgres: PostgresConfig{Host: "localhost", Database: "alignment"},
		Briefing: BriefingConfig{MorningHour: 8, CheckInterval: time.Minute},
		Bot:      BotConfig{Prefix: "!"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"missing gateway", func(c *Config) { c.Gateway.BaseURL = "" }, true},
		{"bad morning hour", func(c *Config) { c.Briefing.MorningHour = 24 }, true},
		{"zero interval", func(c *Config) { c.Briefing.CheckInterval = 0 }, true},
		{"narration without keys", func(c *Config) { c.Briefing.NarrationEnabled = true }, true},
		{"narration with openai", func(c *Config) {
			c.Briefing.NarrationEnabled = true
			c.OpenAI.APIKey = "sk-test"
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ALERT_LEAD_MINUTES", "30, 15,15,x")
	t.Setenv("BRIEFING_MORNING_HOUR", "7")
	t.Setenv("CHECK_INTERVAL_SECONDS", "30")
	t.Setenv("NARRATION_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Briefing.AlertLeadMinutes) != 2 || cfg.Briefing.AlertLeadMinutes[0] != 30 {
		t.Fatalf("lead minutes = %v", cfg.Briefing.AlertLeadMinutes)
	}
	if cfg.Briefing.MorningHour != 7 || cfg.Briefing.CheckInterval != 30*time.Second {
		t.Fatalf("briefing = %+v", cfg.Briefing)
	}
}
