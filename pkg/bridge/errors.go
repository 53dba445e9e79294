package bridge

import "errors"

// ErrInvalidEncoding is returned by a LineSource when a line is not valid UTF-8.
// The read loop skips such lines.
var ErrInvalidEncoding = errors.New("line is not valid utf-8")
