package bridge_test

import (
	"sync"
	"sync/atomic"
)

type step struct {
	line string
	err  error
}

// scriptSource replays steps, then returns tail forever.
type scriptSource struct {
	mu    sync.Mutex
	steps []step
	tail  error
}

func newScript(tail error, steps ...step) *scriptSource {
	return &scriptSource{steps: steps, tail: tail}
}

func (s *scriptSource) ReadLine() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.steps) == 0 {
		return "", s.tail
	}
	next := s.steps[0]
	s.steps = s.steps[1:]
	return next.line, next.err
}

func lines(ls ...string) []step {
	out := make([]step, 0, len(ls))
	for _, l := range ls {
		out = append(out, step{line: l})
	}
	return out
}

// endlessSource never runs out of lines.
type endlessSource struct {
	reads atomic.Int64
}

func (e *endlessSource) ReadLine() (string, error) {
	e.reads.Add(1)
	return "tick", nil
}

