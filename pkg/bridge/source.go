package bridge

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// LineSource is a blocking source of lines. ReadLine returns the next line without its
// terminator, io.EOF once the source is exhausted, or any other error for a failed read.
type LineSource interface {
	ReadLine() (string, error)
}

// LineReader adapts an io.Reader into a LineSource.
type LineReader struct {
	reader *bufio.Reader
}

// NewLineReader wraps r in a buffered line reader.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReader(r)}
}

// ReadLine reads up to and including the next '\n' and strips "\n" or "\r\n".
// A trailing line without a newline is returned as a normal line; io.EOF follows on the next call.
func (l *LineReader) ReadLine() (string, error) {
	text, err := l.reader.ReadString('\n')
	if err != nil && (err != io.EOF || text == "") {
		return "", err
	}

	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")

	if !utf8.ValidString(text) {
		return "", ErrInvalidEncoding
	}
	return text, nil
}
