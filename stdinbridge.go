package stdinbridge

import (
	_ "embed"

	"github.com/aretw0/stdinbridge/pkg/bridge"
)

// Version is the library version.
//
//go:embed VERSION
var Version string

// RecvFromStdin returns a channel that receives every line read from os.Stdin.
//
// A worker goroutine, locked to its own OS thread, blocks on stdin and sends each line with
// its newline removed. At most capacity lines are buffered; the worker waits while the buffer
// is full. The worker runs for the rest of the process: end-of-stream and read errors are
// retried after a short pause, and lines that are not valid UTF-8 are dropped.
func RecvFromStdin(capacity int) <-chan string {
	return Start(capacity, bridge.WithEOFPolicy(bridge.EOFRetry)).Lines()
}

// Start starts a bridge over os.Stdin. See bridge.Start.
func Start(capacity int, opts ...bridge.Option) *bridge.Bridge {
	return bridge.Start(capacity, opts...)
}
