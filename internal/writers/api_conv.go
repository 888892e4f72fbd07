package writers

import (
	"primecheck/internal/messages"
	"primecheck/internal/prime"
	"primecheck/pkg/api"
)

// ToAPIResult converts a result to the v1 wire schema.
func ToAPIResult(r prime.Result, cat messages.Catalog) api.ResultV1 {
	return api.ResultV1{
		N:       r.N,
		Prime:   r.Prime,
		Divisor: r.Divisor,
		Message: cat.Result(r.N, r.Prime),
	}
}
