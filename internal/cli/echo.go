package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/stdinbridge/internal/config"
	"github.com/aretw0/stdinbridge/internal/sink"
	"github.com/aretw0/stdinbridge/internal/telemetry"
	"github.com/aretw0/stdinbridge/pkg/bridge"
)

// NewSink builds the sink selected by cfg.Format.
func NewSink(ctx context.Context, cfg config.Config, out io.Writer) (sink.Sink, error) {
	switch cfg.Format {
	case config.FormatJSON:
		return sink.NewJSONLines(out), nil
	case config.FormatRedis:
		opts := []sink.RedisOption{sink.WithMaxLen(cfg.Redis.MaxLen)}
		if cfg.Redis.Stream {
			opts = append(opts, sink.AsStream())
		}
		return sink.DialRedis(ctx, cfg.Redis.Addr, cfg.Redis.Key, opts...)
	case config.FormatText:
		var opts []sink.TextOption
		if cfg.Markdown {
			renderer, err := sink.NewMarkdownRenderer()
			if err != nil {
				return nil, fmt.Errorf("markdown renderer: %w", err)
			}
			opts = append(opts, sink.WithRenderer(renderer))
		}
		return sink.NewText(out, opts...), nil
	}
	return nil, fmt.Errorf("unknown format %q", cfg.Format)
}

// RunEcho bridges in to the configured sink until in is exhausted (under the close policy)
// or ctx is cancelled. An interruption is not an error.
func RunEcho(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	s, err := NewSink(ctx, cfg, out)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			logger.Warn("Sink Close Failed", "err", err)
		}
	}()

	reg := telemetry.NewRegistry()
	metrics := bridge.NewMetrics(reg)

	if cfg.MetricsAddr != "" {
		metricsCtx, stop := context.WithCancel(ctx)
		defer stop()
		go func() {
			if err := telemetry.Serve(metricsCtx, cfg.MetricsAddr, telemetry.NewHandler(reg), logger); err != nil {
				logger.Error("Metrics Server Failed", "err", err)
			}
		}()
	}

	opts := append(cfg.BridgeOptions(), bridge.WithLogger(logger), bridge.WithMetrics(metrics))
	b := bridge.StartFrom(in, cfg.Buffer, opts...)
	defer b.Close()

	logger.Info("Echo Started", "format", cfg.Format, "buffer", cfg.Buffer, "eof", cfg.EOF)
	written, err := Drain(ctx, b, s)

	stats := b.Stats()
	logger.Info("Echo Finished",
		"written", written,
		"skipped_decode", stats.Decode,
		"read_errors", stats.ReadErrors,
	)
	return handleExecutionError(err)
}
