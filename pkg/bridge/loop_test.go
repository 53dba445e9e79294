package bridge_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aretw0/stdinbridge/pkg/bridge"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(out chan string) []string {
	var got []string
	for {
		select {
		case l := <-out:
			got = append(got, l)
		default:
			return got
		}
	}
}

func TestRun_DeliversInOrder(t *testing.T) {
	input := []string{"one", "two", "three", "four", "five"}
	out := make(chan string, len(input))

	err := bridge.Run(context.Background(), newScript(io.EOF, lines(input...)...), out)

	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, input, drain(out))
}

func TestRun_SkipsDecodeAndReadErrors(t *testing.T) {
	src := newScript(io.EOF,
		step{line: "a"},
		step{err: bridge.ErrInvalidEncoding},
		step{err: errors.New("transient")},
		step{line: "b"},
	)
	out := make(chan string, 4)

	err := bridge.Run(context.Background(), src, out, bridge.WithRetryBackoff(0))

	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []string{"a", "b"}, drain(out))
}

func TestRun_RetryPolicyReadsPastEOF(t *testing.T) {
	src := newScript(io.EOF,
		step{line: "a"},
		step{err: io.EOF},
		step{err: io.EOF},
		step{line: "b"},
	)
	out := make(chan string)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- bridge.Run(ctx, src, out,
			bridge.WithEOFPolicy(bridge.EOFRetry),
			bridge.WithRetryBackoff(time.Millisecond))
	}()

	assert.Equal(t, "a", <-out)
	assert.Equal(t, "b", <-out)

	// Still running on an exhausted source.
	select {
	case err := <-done:
		t.Fatalf("loop exited early: %v", err)
	case <-time.After(20 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after cancel")
	}
}

func TestRun_CancelWhileQueueFull(t *testing.T) {
	out := make(chan string, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := bridge.Run(ctx, &endlessSource{}, out)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Len(t, out, 1)
}

func TestRun_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := bridge.NewMetrics(reg)

	src := newScript(io.EOF,
		step{line: "a"},
		step{err: bridge.ErrInvalidEncoding},
		step{err: errors.New("boom")},
		step{line: "b"},
	)
	out := make(chan string, 2)

	err := bridge.Run(context.Background(), src, out,
		bridge.WithMetrics(m),
		bridge.WithRetryBackoff(0),
		bridge.WithEOFPolicy(bridge.EOFClose))
	require.ErrorIs(t, err, io.EOF)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Delivered))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Skipped.WithLabelValues("decode")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Skipped.WithLabelValues("read_error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EOF))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Running))
}
