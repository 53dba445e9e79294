package bridge

import (
	"context"
	"errors"
	"io"
	"time"
)

// Run executes the read loop on the calling goroutine: read a line from src, send it on out,
// repeat. Lines that fail to decode are skipped, read errors are skipped after a backoff, and
// end-of-stream is handled according to the EOF policy (EOFAuto closes for anything that is
// not a terminal).
//
// Run returns io.EOF when the source is exhausted under EOFClose, or ctx.Err() once ctx is
// done. It never closes out.
func Run(ctx context.Context, src LineSource, out chan<- string, opts ...Option) error {
	s := newSettings(opts)
	return s.run(ctx, src, out, s.policy.resolve(src))
}

func (s *settings) run(ctx context.Context, src LineSource, out chan<- string, policy EOFPolicy) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := src.ReadLine()
		if err != nil {
			// A cancelled read surfaces as an error from the source.
			if ctx.Err() != nil {
				return ctx.Err()
			}
			switch {
			case errors.Is(err, ErrInvalidEncoding):
				s.counts.decode.Add(1)
				s.metrics.skipped(reasonDecode)
				continue
			case errors.Is(err, io.EOF):
				s.counts.eofs.Add(1)
				s.metrics.eof()
				if policy != EOFRetry {
					return io.EOF
				}
			default:
				s.counts.readErrors.Add(1)
				s.metrics.skipped(reasonReadError)
			}
			if !pause(ctx, s.backoff) {
				return ctx.Err()
			}
			continue
		}

		select {
		case out <- line:
			s.counts.delivered.Add(1)
			s.metrics.delivered()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// pause waits for d and reports false if ctx ended first.
func pause(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
