package bridge_test

import (
	"io"
	"strings"
	"testing"

	"github.com/aretw0/stdinbridge/pkg/bridge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, src bridge.LineSource) ([]string, []error) {
	t.Helper()
	var got []string
	var errs []error
	for i := 0; i < 100; i++ {
		line, err := src.ReadLine()
		if err == io.EOF {
			return got, errs
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got = append(got, line)
	}
	t.Fatal("source never reported EOF")
	return nil, nil
}

func TestLineReader_StripsTerminators(t *testing.T) {
	got, errs := readAll(t, bridge.NewLineReader(strings.NewReader("a\nb\r\n\nc")))
	assert.Empty(t, errs)
	assert.Equal(t, []string{"a", "b", "", "c"}, got)
}

func TestLineReader_TrailingLineWithoutNewline(t *testing.T) {
	src := bridge.NewLineReader(strings.NewReader("hello"))

	line, err := src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hello", line)

	_, err = src.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineReader_InvalidUTF8(t *testing.T) {
	got, errs := readAll(t, bridge.NewLineReader(strings.NewReader("ok\n\xff\xfe\nnext\n")))
	assert.Equal(t, []string{"ok", "next"}, got)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], bridge.ErrInvalidEncoding)
}

func TestLineReader_EmptyInput(t *testing.T) {
	_, err := bridge.NewLineReader(strings.NewReader("")).ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}
