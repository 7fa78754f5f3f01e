// Package config loads bot configuration from defaults, an optional TOML
// file and ARTFEED_-prefixed environment variables, in that order.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the full runtime configuration.
type Config struct {
	Bot struct {
		Token       string        `koanf:"token"`
		PollTimeout time.Duration `koanf:"poll_timeout"`
	} `koanf:"bot"`

	Database struct {
		DSN string `koanf:"dsn"`
	} `koanf:"database"`

	Feed struct {
		// AutoAdvance sends the next unseen art right after a reaction
		// or comment; turn off to require an explicit View.
		AutoAdvance bool `koanf:"auto_advance"`
	} `koanf:"feed"`

	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
}

// Load reads configuration. path may be empty; the file layer is then
// skipped. ARTFEED_BOT_TOKEN etc. override file values.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	_ = k.Load(confmap.Provider(map[string]interface{}{
		"bot.poll_timeout":  30 * time.Second,
		"feed.auto_advance": true,
		"log.level":         "info",
	}, "."), nil)

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	_ = k.Load(env.Provider("ARTFEED_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "ARTFEED_")), "_", ".", -1)
	}), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Bot.Token == "" {
		return nil, fmt.Errorf("missing bot token (set bot.token or ARTFEED_BOT_TOKEN)")
	}
	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("missing database DSN (set database.dsn or ARTFEED_DATABASE_DSN)")
	}
	return &cfg, nil
}
