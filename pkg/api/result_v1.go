// pkg/api/result_v1.go
package api

// ResultV1 is the stable JSON/JSONL schema for one primality check.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	N       int64  `json:"n"`
	Prime   bool   `json:"prime"`
	Divisor int64  `json:"divisor,omitempty"` // smallest factor of a composite
	Message string `json:"message"`
}
