package configs

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Session SessionConfig `mapstructure:"session"`
	Log     LogConfig     `mapstructure:"log"`
	Display DisplayConfig `mapstructure:"display"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

// SessionConfig holds dashboard session configuration
type SessionConfig struct {
	Secret     string        `mapstructure:"secret"`
	TTL        time.Duration `mapstructure:"ttl"`
	Sweep      string        `mapstructure:"sweep"` // cron spec for the idle session sweep
	CookieName string        `mapstructure:"cookie_name"`
	Secure     bool          `mapstructure:"secure"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

// DisplayConfig holds presentation settings
type DisplayConfig struct {
	Timezone string `mapstructure:"timezone"`
}

// IsDevelopment reports whether the server runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// envBindings maps config keys to their environment variables
var envBindings = map[string]string{
	"server.port":         "PORT",
	"server.env":          "GO_ENV",
	"session.secret":      "SESSION_SECRET",
	"session.ttl":         "SESSION_TTL",
	"session.sweep":       "SESSION_SWEEP",
	"session.cookie_name": "SESSION_COOKIE",
	"session.secure":      "SESSION_SECURE",
	"log.level":           "LOG_LEVEL",
	"log.encoding":        "LOG_ENCODING",
	"display.timezone":    "DISPLAY_TZ",
}

// Load loads configuration from environment variables with defaults
func Load() (*Config, error) {
	return LoadWith(viper.New())
}

// LoadWith loads configuration through the given viper instance
func LoadWith(v *viper.Viper) (*Config, error) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("session.secret", "")
	v.SetDefault("session.ttl", 2*time.Hour)
	v.SetDefault("session.sweep", "@every 5m")
	v.SetDefault("session.cookie_name", "session")
	v.SetDefault("session.secure", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "")
	v.SetDefault("display.timezone", "UTC")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Log.Encoding == "" {
		if cfg.IsDevelopment() {
			cfg.Log.Encoding = "console"
		} else {
			cfg.Log.Encoding = "json"
		}
	}
	cfg.Log.Development = cfg.IsDevelopment()

	if cfg.Session.Secret == "" && cfg.IsDevelopment() {
		cfg.Session.Secret = "dev-session-secret-change-me"
	}

	return &cfg, nil
}
