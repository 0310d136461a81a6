package constants

import "time"

var CacheTTL = struct {
	PersonalProfile  time.Duration
	EarthProfile     time.Duration
	Narration        time.Duration
	AlertSent        time.Duration
	MorningBriefSent time.Duration
}{
	PersonalProfile:  7 * 24 * time.Hour, // birth data changes only via !profile
	EarthProfile:     36 * time.Hour,
	Narration:        24 * time.Hour,
	AlertSent:        24 * time.Hour,
	MorningBriefSent: 24 * time.Hour,
}

var CacheKeys = struct {
	PersonalPrefix  string
	EarthPrefix     string
	NarrationPrefix string
	Subscribers     string
	AlertSentPrefix string
	MorningPrefix   string
}{
	PersonalPrefix:  "alignment:personal:",
	EarthPrefix:     "alignment:earth:",
	NarrationPrefix: "alignment:narration:",
	Subscribers:     "alignment:alert:subscribers",
	AlertSentPrefix: "alignment:alert:sent:",
	MorningPrefix:   "alignment:alert:morning:",
}

var WebSocketConfig = struct {
	MaxReconnectAttempts int
	ReconnectDelay       time.Duration
	PingInterval         time.Duration
}{
	MaxReconnectAttempts: 5,
	ReconnectDelay:       5 * time.Second,
	PingInterval:         30 * time.Second,
}

var RedisConfig = struct {
	ReadyTimeout time.Duration
}{
	ReadyTimeout: 5 * time.Second,
}

var DatabaseConfig = struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	PingTimeout     time.Duration
}{
	MaxOpenConns:    10,
	MaxIdleConns:    5,
	ConnMaxLifetime: 5 * time.Minute,
	PingTimeout:     5 * time.Second,
}

var CircuitBreakerConfig = struct {
	FailureThreshold int
	ResetTimeout     time.Duration
	RateLimitTimeout time.Duration
}{
	FailureThreshold: 3,
	ResetTimeout:     30 * time.Second,
	RateLimitTimeout: 1 * time.Hour, // 429 only
}

var AlertConfig = struct {
	MaxConcurrentUsers int
	SweepTimeout       time.Duration
}{
	MaxConcurrentUsers: 8,
	SweepTimeout:       30 * time.Second,
}

var NarrationConfig = struct {
	Timeout       time.Duration
	MaxInputRunes int
	MaxReplyRunes int
}{
	Timeout:       15 * time.Second,
	MaxInputRunes: 2000,
	MaxReplyRunes: 900,
}

var StringLimits = struct {
	DisplayName int
	BirthPlace  int
	Message     int
}{
	DisplayName: 40,
	BirthPlace:  80,
	Message:     2000,
}
