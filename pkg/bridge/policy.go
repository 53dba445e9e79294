package bridge

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// EOFPolicy decides what the read loop does when the source reports end-of-stream.
type EOFPolicy int

const (
	// EOFAuto retries on an interactive terminal and closes otherwise.
	EOFAuto EOFPolicy = iota
	// EOFClose ends the loop and closes the channel.
	EOFClose
	// EOFRetry keeps reading after end-of-stream, pausing between attempts.
	EOFRetry
)

func (p EOFPolicy) String() string {
	switch p {
	case EOFAuto:
		return "auto"
	case EOFClose:
		return "close"
	case EOFRetry:
		return "retry"
	default:
		return fmt.Sprintf("EOFPolicy(%d)", int(p))
	}
}

// ParseEOFPolicy parses "auto", "close" or "retry". An empty string yields EOFAuto.
func ParseEOFPolicy(s string) (EOFPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return EOFAuto, nil
	case "close":
		return EOFClose, nil
	case "retry":
		return EOFRetry, nil
	}
	return EOFAuto, fmt.Errorf("unknown eof policy %q (want auto, close or retry)", s)
}

// resolve turns EOFAuto into a concrete policy for the given input.
// On a terminal, EOF (Ctrl+D, or a signal interrupting the read) does not mean the stream is gone.
func (p EOFPolicy) resolve(input any) EOFPolicy {
	if p != EOFAuto {
		return p
	}
	if f, ok := input.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return EOFRetry
	}
	return EOFClose
}
