// internal/input/reader.go
package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
)

var (
	// ErrNoInput means the stream ended before a positive integer was read.
	ErrNoInput = errors.New("no positive integer on input")
	// ErrInvalidNumber classifies tokens that are not base-10 integers.
	ErrInvalidNumber = errors.New("invalid number")
)

// SyntaxError reports a token that could not be parsed as an int64.
type SyntaxError struct {
	Token string
	Err   error // ErrInvalidNumber or strconv.ErrRange
}

func (e *SyntaxError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if errors.Is(e.Err, strconv.ErrRange) {
		return fmt.Sprintf("number %q out of range", e.Token)
	}
	return fmt.Sprintf("%v %q", e.Err, e.Token)
}

func (e *SyntaxError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PromptError wraps a failure to write or flush the prompt. It is an output
// error, not an input one.
type PromptError struct {
	Err error
}

func (e *PromptError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("write prompt: %v", e.Err)
}

func (e *PromptError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseNumber parses one base-10 integer token, with an optional sign.
func ParseNumber(tok string) (int64, error) {
	n, err := strconv.ParseInt(tok, 10, 64)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, &SyntaxError{Token: tok, Err: strconv.ErrRange}
	}
	return 0, &SyntaxError{Token: tok, Err: ErrInvalidNumber}
}

type scanResult struct {
	tok string
	ok  bool
	err error
}

// Reader prompts for integers on a whitespace-tokenized stream.
//
// Scanning runs on its own goroutine, one token per request, so a blocked
// read can be abandoned when the context is canceled.
type Reader struct {
	sc     *bufio.Scanner
	prompt io.Writer
	text   string
	log    *slog.Logger

	once    sync.Once
	req     chan struct{}
	res     chan scanResult
	pending bool        // a request was sent and its result not yet received
	end     *scanResult // sticky end-of-stream result
}

// NewReader returns a Reader that writes text to prompt before each read.
// A nil prompt writer disables prompting; a nil logger discards.
func NewReader(in io.Reader, prompt io.Writer, text string, log *slog.Logger) *Reader {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Reader{
		sc:     sc,
		prompt: prompt,
		text:   text,
		log:    log,
		req:    make(chan struct{}),
		res:    make(chan scanResult, 1),
	}
}

// ReadPositive prompts and reads until it gets an integer > 0.
// Non-positive values are rejected and prompted for again. Cancellation
// returns ctx.Err() even while a read is blocked.
func (r *Reader) ReadPositive(ctx context.Context) (int64, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if !r.pending {
			if err := r.showPrompt(); err != nil {
				return 0, &PromptError{Err: err}
			}
		}
		res, err := r.next(ctx)
		if err != nil {
			return 0, err
		}
		if !res.ok {
			if res.err != nil {
				return 0, fmt.Errorf("read input: %w", res.err)
			}
			return 0, ErrNoInput
		}
		n, err := ParseNumber(res.tok)
		if err != nil {
			return 0, err
		}
		if n <= 0 {
			r.log.Debug("input.rejected", "n", n)
			continue
		}
		return n, nil
	}
}

// next hands out one token. A read left pending by a canceled call is
// picked up by the following call instead of starting another.
func (r *Reader) next(ctx context.Context) (scanResult, error) {
	if r.end != nil {
		return *r.end, nil
	}
	r.once.Do(func() { go r.scan() })

	if !r.pending {
		select {
		case r.req <- struct{}{}:
			r.pending = true
		case <-ctx.Done():
			return scanResult{}, ctx.Err()
		}
	}

	select {
	case res := <-r.res:
		r.pending = false
		if !res.ok {
			r.end = &res
		}
		return res, nil
	case <-ctx.Done():
		return scanResult{}, ctx.Err()
	}
}

func (r *Reader) scan() {
	for range r.req {
		if !r.sc.Scan() {
			r.res <- scanResult{err: r.sc.Err()}
			return
		}
		r.res <- scanResult{tok: r.sc.Text(), ok: true}
	}
}

func (r *Reader) showPrompt() error {
	if r.prompt == nil || r.text == "" {
		return nil
	}
	if _, err := io.WriteString(r.prompt, r.text); err != nil {
		return err
	}
	if f, ok := r.prompt.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
