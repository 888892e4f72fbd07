// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"primecheck/internal/messages"
	"primecheck/internal/prime"
)

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// StartFunc spins up a writer goroutine: results go in on the first channel,
// the single terminal error comes back on the second once it is closed.
type StartFunc func(out io.Writer, cat messages.Catalog, bufSize int) (chan<- prime.Result, <-chan error)

// Writer registry (format → handler). Registered from init() in each format file.
var resultWriters = map[string]StartFunc{}

// Register is idempotent, last wins.
func Register(format string, fn StartFunc) { resultWriters[format] = fn }

// Formats lists registered formats in sorted order.
func Formats() []string {
	out := make([]string, 0, len(resultWriters))
	for f := range resultWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// StartResultWriter dispatches to the writer registered for format.
// An unknown format still returns a drained channel so senders never block.
func StartResultWriter(out io.Writer, format string, cat messages.Catalog, bufSize int) (chan<- prime.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	if fn, ok := resultWriters[format]; ok {
		return fn(out, cat, bufSize)
	}
	in := make(chan prime.Result, bufSize)
	errCh := make(chan error, 1)
	go func() {
		drain(in)
		errCh <- fmt.Errorf("unknown result format %q (no writer registered)", format)
	}()
	return in, errCh
}

func drain(in <-chan prime.Result) {
	for range in {
	}
}
