package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/stdinbridge/pkg/bridge"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the echo command.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatRedis = "redis"
)

// Config holds the settings of the echo command. Keys use "mapstructure" tags so the same
// struct decodes from YAML and JSON files.
type Config struct {
	Buffer       int           `json:"buffer" mapstructure:"buffer"`
	EOF          string        `json:"eof" mapstructure:"eof"`
	RetryBackoff time.Duration `json:"retry_backoff" mapstructure:"retry_backoff"`
	Format       string        `json:"format" mapstructure:"format"`
	Markdown     bool          `json:"markdown" mapstructure:"markdown"`
	MetricsAddr  string        `json:"metrics_addr" mapstructure:"metrics_addr"`
	Debug        bool          `json:"debug" mapstructure:"debug"`
	Redis        RedisConfig   `json:"redis" mapstructure:"redis"`
}

// RedisConfig configures the Redis sink.
type RedisConfig struct {
	Addr   string `json:"addr" mapstructure:"addr"`
	Key    string `json:"key" mapstructure:"key"`
	Stream bool   `json:"stream" mapstructure:"stream"`
	MaxLen int64  `json:"max_len" mapstructure:"max_len"`
}

// Default returns the configuration used when no file or flag says otherwise.
func Default() Config {
	return Config{
		Buffer:       10,
		EOF:          bridge.EOFAuto.String(),
		RetryBackoff: bridge.DefaultRetryBackoff,
		Format:       FormatText,
		Redis: RedisConfig{
			Addr: "localhost:6379",
			Key:  "stdinbridge:lines",
		},
	}
}

// Load reads a YAML or JSON file on top of Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return cfg, err
	}
	if err := decoder.Decode(raw); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}

	return cfg, cfg.Validate()
}

// Validate checks values that flags and files can get wrong.
func (c Config) Validate() error {
	if c.Buffer < 0 {
		return fmt.Errorf("buffer must not be negative, got %d", c.Buffer)
	}
	if c.RetryBackoff < 0 {
		return fmt.Errorf("retry_backoff must not be negative, got %s", c.RetryBackoff)
	}
	if _, err := bridge.ParseEOFPolicy(c.EOF); err != nil {
		return err
	}
	switch c.Format {
	case FormatText, FormatJSON:
	case FormatRedis:
		if c.Redis.Addr == "" || c.Redis.Key == "" {
			return fmt.Errorf("redis format needs redis.addr and redis.key")
		}
	default:
		return fmt.Errorf("unknown format %q (want text, json or redis)", c.Format)
	}
	return nil
}

// EOFPolicy returns the parsed EOF policy.
func (c Config) EOFPolicy() bridge.EOFPolicy {
	p, _ := bridge.ParseEOFPolicy(c.EOF)
	return p
}

// BridgeOptions translates the config into bridge options.
func (c Config) BridgeOptions() []bridge.Option {
	return []bridge.Option{
		bridge.WithEOFPolicy(c.EOFPolicy()),
		bridge.WithRetryBackoff(c.RetryBackoff),
	}
}
