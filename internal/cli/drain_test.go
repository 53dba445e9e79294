package cli

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/stdinbridge/pkg/bridge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	lines  []string
	failAt int
	closed bool
}

func (r *recordingSink) Write(ctx context.Context, line string) error {
	if r.failAt > 0 && len(r.lines)+1 == r.failAt {
		return errors.New("sink full")
	}
	r.lines = append(r.lines, line)
	return nil
}

func (r *recordingSink) Close() error {
	r.closed = true
	return nil
}

func TestDrain_UntilSourceExhausted(t *testing.T) {
	b := bridge.StartFrom(strings.NewReader("a\nb\nc\n"), 2)
	defer b.Close()
	s := &recordingSink{}

	n, err := Drain(context.Background(), b, s)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"a", "b", "c"}, s.lines)
}

func TestDrain_SinkError(t *testing.T) {
	b := bridge.StartFrom(strings.NewReader("a\nb\nc\n"), 2)
	defer b.Close()
	s := &recordingSink{failAt: 2}

	n, err := Drain(context.Background(), b, s)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink full")
	assert.Equal(t, 1, n)
}

func TestDrain_ContextCancelled(t *testing.T) {
	b := bridge.StartFrom(strings.NewReader("a\n"), 1, bridge.WithEOFPolicy(bridge.EOFRetry))
	defer b.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	n, err := Drain(ctx, b, &recordingSink{})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, n)
}

func TestHandleExecutionError(t *testing.T) {
	assert.NoError(t, handleExecutionError(nil))
	assert.NoError(t, handleExecutionError(context.Canceled))
	assert.Error(t, handleExecutionError(context.DeadlineExceeded))
	assert.Error(t, handleExecutionError(errors.New("boom")))
}
