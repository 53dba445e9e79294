package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/stdinbridge/internal/sink"
	"github.com/aretw0/stdinbridge/pkg/bridge"
)

// Drain receives lines from b and writes them to s until the bridge closes, ctx ends, or the
// sink fails. It returns the number of lines written.
func Drain(ctx context.Context, b *bridge.Bridge, s sink.Sink) (int, error) {
	written := 0
	for {
		line, err := b.Recv(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return written, nil
			}
			return written, err
		}
		if err := s.Write(ctx, line); err != nil {
			return written, fmt.Errorf("sink write: %w", err)
		}
		written++
	}
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}

func handleExecutionError(err error) error {
	if err == nil || isInterrupted(err) {
		return nil // Exit 0 for interruptions
	}
	return err
}
