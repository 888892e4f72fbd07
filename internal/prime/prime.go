// internal/prime/prime.go
package prime

// Result is the outcome of one primality check.
type Result struct {
	N     int64
	Prime bool
	// Divisor is the smallest d with 1 < d < N when N is composite, else 0.
	Divisor int64
}

// IsPrime reports whether n is prime using trial division by odd numbers
// up to floor(sqrt(n)).
func IsPrime(n int64) bool {
	return smallestDivisor(n) == 0 && n >= 2
}

// Check runs the predicate and records the witness divisor for composites.
func Check(n int64) Result {
	d := smallestDivisor(n)
	return Result{N: n, Prime: n >= 2 && d == 0, Divisor: d}
}

// smallestDivisor returns the least divisor in (1, n) or 0 if there is none.
// i <= n/i is the overflow-free form of i*i <= n.
func smallestDivisor(n int64) int64 {
	if n < 4 {
		return 0
	}
	if n%2 == 0 {
		return 2
	}
	for i := int64(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return i
		}
	}
	return 0
}
