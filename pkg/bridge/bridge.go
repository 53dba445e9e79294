package bridge

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/muesli/cancelreader"
)

// Bridge is the handle to one running worker and its channel.
type Bridge struct {
	lines     chan string
	cancel    context.CancelFunc
	interrupt func() bool
	done      chan struct{}
	err       error
	counts    *counters
	logger    *slog.Logger
	closeOnce sync.Once
}

// Start begins reading os.Stdin into a channel of the given capacity and returns at once.
// A capacity of 0 makes the channel unbuffered; a negative capacity panics.
func Start(capacity int, opts ...Option) *Bridge {
	return StartFrom(os.Stdin, capacity, opts...)
}

// StartFrom is Start over an arbitrary reader. When r supports it (a pipe or terminal on
// Linux, macOS and Windows), Close interrupts a read that is already blocked.
func StartFrom(r io.Reader, capacity int, opts ...Option) *Bridge {
	s := newSettings(opts)
	policy := s.policy.resolve(r)

	var (
		interrupt func() bool
		closer    io.Closer
	)
	if cr, err := cancelreader.NewReader(r); err == nil {
		r, interrupt, closer = cr, cr.Cancel, cr
	}
	return start(NewLineReader(r), capacity, policy, interrupt, closer, s)
}

// StartSource runs the worker over src. Close stops the loop at its next read or send,
// but cannot interrupt a ReadLine call that is already blocked.
func StartSource(src LineSource, capacity int, opts ...Option) *Bridge {
	s := newSettings(opts)
	return start(src, capacity, s.policy.resolve(src), nil, nil, s)
}

func start(src LineSource, capacity int, policy EOFPolicy, interrupt func() bool, closer io.Closer, s *settings) *Bridge {
	ctx, cancel := context.WithCancel(context.Background())
	b := &Bridge{
		lines:     make(chan string, capacity),
		cancel:    cancel,
		interrupt: interrupt,
		done:      make(chan struct{}),
		counts:    s.counts,
		logger:    s.logger,
	}

	s.metrics.running(1)
	go b.work(ctx, src, policy, closer, s)
	return b
}

func (b *Bridge) work(ctx context.Context, src LineSource, policy EOFPolicy, closer io.Closer, s *settings) {
	// Blocking reads keep a thread of their own.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	b.logger.Debug("Bridge Started", "capacity", cap(b.lines), "eof_policy", policy)

	err := s.run(ctx, src, b.lines, policy)
	if closer != nil {
		_ = closer.Close()
	}

	switch {
	case errors.Is(err, io.EOF):
		b.logger.Debug("Bridge Source Exhausted", "delivered", b.counts.delivered.Load())
	default:
		b.logger.Debug("Bridge Stopped", "err", err)
	}

	b.err = err
	s.metrics.running(-1)
	// done first, so Err is already set for a consumer that sees lines closed.
	close(b.done)
	close(b.lines)
}

// Lines returns the receiving end. It is closed when the worker exits.
func (b *Bridge) Lines() <-chan string {
	return b.lines
}

// Recv waits for the next line. It returns io.EOF once the channel is closed and drained,
// or ctx.Err() if ctx ends first.
func (b *Bridge) Recv(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-b.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

// Close asks the worker to stop and interrupts a blocked read when the source allows it.
// It does not wait; use Done for that. Calling Close more than once is a no-op.
func (b *Bridge) Close() error {
	b.closeOnce.Do(func() {
		b.cancel()
		if b.interrupt != nil {
			b.interrupt()
		}
	})
	return nil
}

// Done is closed when the worker exits, just before the channel is closed.
func (b *Bridge) Done() <-chan struct{} {
	return b.done
}

// Err reports why the worker exited: io.EOF for an exhausted source, context.Canceled after
// Close. It is nil while the worker is running.
func (b *Bridge) Err() error {
	select {
	case <-b.done:
		return b.err
	default:
		return nil
	}
}

// Len is the number of lines buffered and not yet received.
func (b *Bridge) Len() int {
	return len(b.lines)
}

// Stats returns a snapshot of the loop counters.
func (b *Bridge) Stats() Stats {
	return b.counts.snapshot()
}
