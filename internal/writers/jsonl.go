// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"primecheck/internal/jsonlutil"
	"primecheck/internal/messages"
	"primecheck/internal/prime"
)

func init() { Register(FormatJSONL, StartJSONLWriter) }

// StartJSONLWriter streams each result as one JSON line (v1).
func StartJSONLWriter(out io.Writer, cat messages.Catalog, bufSize int) (chan<- prime.Result, <-chan error) {
	return jsonlutil.Start[prime.Result](out, bufSize,
		func(enc *json.Encoder, r prime.Result) error {
			return enc.Encode(ToAPIResult(r, cat))
		},
		IsBrokenPipe,
	)
}
