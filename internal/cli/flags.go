package cli

import (
	"github.com/aretw0/stdinbridge/internal/config"
	"github.com/spf13/pflag"
)

// RegisterEchoFlags declares the echo flags with defaults taken from config.Default.
func RegisterEchoFlags(fs *pflag.FlagSet) {
	def := config.Default()
	fs.IntP("buffer", "b", def.Buffer, "Number of lines buffered between the reader and the consumer")
	fs.String("eof", def.EOF, "End-of-stream policy: auto, close or retry")
	fs.Duration("retry-backoff", def.RetryBackoff, "Pause between reads after a read error or a retried EOF")
	fs.StringP("format", "f", def.Format, "Output format: text, json or redis")
	fs.Bool("markdown", def.Markdown, "Render each line as markdown (text format only)")
	fs.String("metrics-addr", def.MetricsAddr, "Serve Prometheus metrics on this address (e.g. :2112)")
	fs.String("redis-addr", def.Redis.Addr, "Redis address for the redis format")
	fs.String("redis-key", def.Redis.Key, "Redis list or stream key")
	fs.Bool("redis-stream", def.Redis.Stream, "Write to a Redis stream (XADD) instead of a list")
	fs.Int64("redis-max-len", def.Redis.MaxLen, "Trim the Redis list or stream to this many entries (0 = unbounded)")
}

// ApplyFlags overrides cfg with every flag the user set explicitly.
func ApplyFlags(fs *pflag.FlagSet, cfg *config.Config) error {
	var err error
	set := func(name string, apply func() error) {
		if err == nil && fs.Changed(name) {
			err = apply()
		}
	}

	set("buffer", func() (e error) { cfg.Buffer, e = fs.GetInt("buffer"); return })
	set("eof", func() (e error) { cfg.EOF, e = fs.GetString("eof"); return })
	set("retry-backoff", func() (e error) { cfg.RetryBackoff, e = fs.GetDuration("retry-backoff"); return })
	set("format", func() (e error) { cfg.Format, e = fs.GetString("format"); return })
	set("markdown", func() (e error) { cfg.Markdown, e = fs.GetBool("markdown"); return })
	set("metrics-addr", func() (e error) { cfg.MetricsAddr, e = fs.GetString("metrics-addr"); return })
	set("redis-addr", func() (e error) { cfg.Redis.Addr, e = fs.GetString("redis-addr"); return })
	set("redis-key", func() (e error) { cfg.Redis.Key, e = fs.GetString("redis-key"); return })
	set("redis-stream", func() (e error) { cfg.Redis.Stream, e = fs.GetBool("redis-stream"); return })
	set("redis-max-len", func() (e error) { cfg.Redis.MaxLen, e = fs.GetInt64("redis-max-len"); return })
	set("debug", func() (e error) { cfg.Debug, e = fs.GetBool("debug"); return })
	if err != nil {
		return err
	}
	return cfg.Validate()
}
