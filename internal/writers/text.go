// internal/writers/text.go
package writers

import (
	"io"

	"primecheck/internal/messages"
	"primecheck/internal/prime"
)

func init() { Register(FormatText, StartTextWriter) }

// StartTextWriter streams one catalog message per line.
func StartTextWriter(out io.Writer, cat messages.Catalog, bufSize int) (chan<- prime.Result, <-chan error) {
	in := make(chan prime.Result, bufSize)
	errCh := make(chan error, 1)
	go func() {
		errCh <- StreamText(out, cat, in)
	}()
	return in, errCh
}

// StreamText writes until in is closed. After a write error the rest of in
// is discarded and the first error returned.
func StreamText(w io.Writer, cat messages.Catalog, in <-chan prime.Result) error {
	for r := range in {
		if _, err := io.WriteString(w, cat.Result(r.N, r.Prime)+"\n"); err != nil {
			drain(in)
			return err
		}
	}
	return nil
}
