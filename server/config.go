package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/solidground/facade/internal/log"
)

type Config struct {
	Debug         bool            `cfg:"debug"`
	DevMode       bool            `cfg:"dev_mode"`
	ListenAddr    string          `cfg:"listen_addr"`
	HTTPTimeout   time.Duration   `cfg:"http_timeout"`
	JWTSecret     string          `cfg:"jwt_secret"`
	TokenTTL      time.Duration   `cfg:"token_ttl"`
	DataDir       string          `cfg:"data_dir"`
	UploadsDir    string          `cfg:"uploads_dir"`
	MaxUploadSize int64           `cfg:"max_upload_size"`
	Log           log.Config      `cfg:"log"`
	RateLimit     RateLimitConfig `cfg:"rate_limit"`
	Otel          OtelConfig      `cfg:"otel"`
}

func (c Config) String() string {
	return fmt.Sprintf("Debug: %t\nDevMode: %t\nListenAddr: %s\nHTTPTimeout: %s\nJWTSecret: %s\nTokenTTL: %s\nDataDir: %s\nUploadsDir: %s\nMaxUploadSize: %d\nLog: %s\nRateLimit: %s\nOtel: %s",
		c.Debug,
		c.DevMode,
		c.ListenAddr,
		c.HTTPTimeout,
		strings.Repeat("*", len(c.JWTSecret)),
		c.TokenTTL,
		c.DataDir,
		c.UploadsDir,
		c.MaxUploadSize,
		c.Log,
		c.RateLimit,
		c.Otel,
	)
}

type RateLimitConfig struct {
	Enabled   bool          `cfg:"enabled"`
	Requests  int           `cfg:"requests"`
	Duration  time.Duration `cfg:"duration"`
	Whitelist []string      `cfg:"whitelist"`
	Blacklist []string      `cfg:"blacklist"`
}

func (c RateLimitConfig) String() string {
	return fmt.Sprintf("\n Enabled: %t\n Requests: %d\n Duration: %s\n Whitelist: %v\n Blacklist: %v",
		c.Enabled,
		c.Requests,
		c.Duration,
		c.Whitelist,
		c.Blacklist,
	)
}

type OtelConfig struct {
	Enabled    bool          `cfg:"enabled"`
	InstanceID string        `cfg:"instance_id"`
	Trace      TraceConfig   `cfg:"trace"`
	Metrics    MetricsConfig `cfg:"metrics"`
}

func (c OtelConfig) String() string {
	return fmt.Sprintf("\n Enabled: %t\n InstanceID: %s\n Trace: %s\n Metrics: %s",
		c.Enabled,
		c.InstanceID,
		c.Trace,
		c.Metrics,
	)
}

type TraceConfig struct {
	Enabled  bool   `cfg:"enabled"`
	Endpoint string `cfg:"endpoint"`
	Insecure bool   `cfg:"insecure"`
}

func (c TraceConfig) String() string {
	return fmt.Sprintf("\n  Enabled: %t\n  Endpoint: %s\n  Insecure: %t",
		c.Enabled,
		c.Endpoint,
		c.Insecure,
	)
}

type MetricsConfig struct {
	Enabled    bool   `cfg:"enabled"`
	ListenAddr string `cfg:"listen_addr"`
}

func (c MetricsConfig) String() string {
	return fmt.Sprintf("\n  Enabled: %t\n  ListenAddr: %s",
		c.Enabled,
		c.ListenAddr,
	)
}
