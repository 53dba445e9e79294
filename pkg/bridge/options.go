package bridge

import (
	"io"
	"log/slog"
	"time"
)

// DefaultRetryBackoff is the pause between read attempts after a read error, or after
// end-of-stream under EOFRetry.
const DefaultRetryBackoff = 50 * time.Millisecond

// Option defines a functional option for configuring a Bridge or the read loop.
type Option func(*settings)

type settings struct {
	logger  *slog.Logger
	policy  EOFPolicy
	backoff time.Duration
	metrics *Metrics
	counts  *counters
}

func newSettings(opts []Option) *settings {
	s := &settings{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		policy:  EOFAuto,
		backoff: DefaultRetryBackoff,
		counts:  &counters{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithLogger configures the structured logger. Only lifecycle events are logged;
// skipped lines and read errors are counted, never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithEOFPolicy sets what happens when the source reports end-of-stream.
func WithEOFPolicy(p EOFPolicy) Option {
	return func(s *settings) {
		s.policy = p
	}
}

// WithRetryBackoff sets the pause between attempts after a read error or a retried EOF.
// Zero disables the pause.
func WithRetryBackoff(d time.Duration) Option {
	return func(s *settings) {
		if d >= 0 {
			s.backoff = d
		}
	}
}

// WithMetrics records loop activity into m.
func WithMetrics(m *Metrics) Option {
	return func(s *settings) {
		s.metrics = m
	}
}
