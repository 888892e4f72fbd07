package input

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prompt = "n? "

func read(t *testing.T, in string) (int64, string, error) {
	t.Helper()
	var out strings.Builder
	r := NewReader(strings.NewReader(in), &out, prompt, nil)
	n, err := r.ReadPositive(context.Background())
	return n, out.String(), err
}

func TestReadPositive_First(t *testing.T) {
	n, out, err := read(t, "7\n")
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, prompt, out)
}

func TestReadPositive_RepromptsOnNonPositive(t *testing.T) {
	n, out, err := read(t, "-5\n0\n13\n")
	require.NoError(t, err)
	assert.Equal(t, int64(13), n)
	assert.Equal(t, strings.Repeat(prompt, 3), out)
}

func TestReadPositive_TokensOnOneLine(t *testing.T) {
	n, out, err := read(t, "  -1 -2   42 99")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	assert.Equal(t, 3, strings.Count(out, prompt))
}

func TestReadPositive_LeadingPlus(t *testing.T) {
	n, _, err := read(t, "+11")
	require.NoError(t, err)
	assert.Equal(t, int64(11), n)
}

func TestReadPositive_Empty(t *testing.T) {
	_, _, err := read(t, "")
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestReadPositive_OnlyNonPositive(t *testing.T) {
	_, out, err := read(t, "0 -3")
	assert.ErrorIs(t, err, ErrNoInput)
	assert.Equal(t, 3, strings.Count(out, prompt))
}

func TestReadPositive_InvalidToken(t *testing.T) {
	_, _, err := read(t, "abc 7")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidNumber)
	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "abc", se.Token)
	assert.Contains(t, err.Error(), `"abc"`)
}

func TestReadPositive_TrailingGarbage(t *testing.T) {
	_, _, err := read(t, "12abc")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestReadPositive_OutOfRange(t *testing.T) {
	_, _, err := read(t, "99999999999999999999")
	require.Error(t, err)
	assert.ErrorIs(t, err, strconv.ErrRange)
	assert.Contains(t, err.Error(), "out of range")
}

func TestReadPositive_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewReader(strings.NewReader("5"), nil, prompt, nil)
	_, err := r.ReadPositive(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadPositive_NoPromptWriter(t *testing.T) {
	r := NewReader(strings.NewReader("3"), nil, prompt, nil)
	n, err := r.ReadPositive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestReadPositive_FlushesPrompt(t *testing.T) {
	var sink strings.Builder
	bw := bufio.NewWriter(&sink)
	r := NewReader(strings.NewReader("2"), bw, prompt, nil)
	_, err := r.ReadPositive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, prompt, sink.String())
}

func TestParseNumber(t *testing.T) {
	n, err := ParseNumber("-9223372036854775808")
	require.NoError(t, err)
	assert.Equal(t, int64(-9223372036854775808), n)

	_, err = ParseNumber("1.5")
	assert.ErrorIs(t, err, ErrInvalidNumber)

	_, err = ParseNumber("")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

// signalWriter reports each prompt so tests know the reader is about to block.
type signalWriter struct{ wrote chan struct{} }

func (w signalWriter) Write(p []byte) (int, error) {
	w.wrote <- struct{}{}
	return len(p), nil
}

func TestReadPositive_CanceledWhileBlocked(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	prompted := signalWriter{wrote: make(chan struct{}, 1)}
	r := NewReader(pr, prompted, prompt, nil)
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		_, err := r.ReadPositive(ctx)
		errCh <- err
	}()

	<-prompted.wrote
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("ReadPositive still blocked after cancel")
	}
}

func TestReadPositive_PendingReadResumes(t *testing.T) {
	pr, pw := io.Pipe()
	var out strings.Builder
	r := NewReader(pr, &out, prompt, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := r.ReadPositive(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	go func() {
		_, _ = io.WriteString(pw, "17\n")
		_ = pw.Close()
	}()
	n, err := r.ReadPositive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(17), n)
	assert.Equal(t, prompt, out.String(), "prompt is not repeated for the pending read")
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestReadPositive_PromptWriteError(t *testing.T) {
	r := NewReader(strings.NewReader("7"), failingWriter{err: io.ErrClosedPipe}, prompt, nil)
	_, err := r.ReadPositive(context.Background())
	require.Error(t, err)
	var pe *PromptError
	require.True(t, errors.As(err, &pe))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestReadPositive_PromptFlushError(t *testing.T) {
	bw := bufio.NewWriterSize(failingWriter{err: io.ErrShortWrite}, 16)
	r := NewReader(strings.NewReader("7"), bw, prompt, nil)
	_, err := r.ReadPositive(context.Background())
	var pe *PromptError
	require.True(t, errors.As(err, &pe))
	assert.ErrorIs(t, err, io.ErrShortWrite)
}
