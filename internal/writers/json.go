// internal/writers/json.go
package writers

import (
	"io"

	"primecheck/internal/jsonutil"
	"primecheck/internal/messages"
	"primecheck/internal/prime"
	"primecheck/pkg/api"
)

func init() { Register(FormatJSON, StartJSONWriter) }

// StartJSONWriter buffers every result and writes one indented JSON array.
func StartJSONWriter(out io.Writer, cat messages.Catalog, bufSize int) (chan<- prime.Result, <-chan error) {
	in := make(chan prime.Result, bufSize)
	errCh := make(chan error, 1)
	go func() {
		list := make([]api.ResultV1, 0, bufSize)
		for r := range in {
			list = append(list, ToAPIResult(r, cat))
		}
		errCh <- jsonutil.EncodePretty(out, list)
	}()
	return in, errCh
}
