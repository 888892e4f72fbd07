package prime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sieve(max int) []bool {
	composite := make([]bool, max+1)
	isPrime := make([]bool, max+1)
	for i := 2; i <= max; i++ {
		if composite[i] {
			continue
		}
		isPrime[i] = true
		for j := i * i; j <= max; j += i {
			composite[j] = true
		}
	}
	return isPrime
}

func TestIsPrime_Table(t *testing.T) {
	cases := []struct {
		n    int64
		want bool
	}{
		{math.MinInt64, false},
		{-7, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{7, true},
		{8, false},
		{9, false},
		{13, true},
		{25, false},
		{49, false},
		{97, true},
		{7919, true},
		{2147483647, true},
		{2147483649, false},
		{999999999989, true},
		{999983 * 1000003, false},
		{math.MaxInt64, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, IsPrime(tc.n), "IsPrime(%d)", tc.n)
	}
}

// Largest prime below 2^63; trial division runs ~1.5e9 odd candidates.
func TestIsPrime_LargestInt64Prime(t *testing.T) {
	if testing.Short() {
		t.Skip("slow: full trial division near MaxInt64")
	}
	assert.True(t, IsPrime(9223372036854775783))
	assert.False(t, IsPrime(9223372036854775781))
}

func TestIsPrime_AgreesWithSieve(t *testing.T) {
	const max = 10000
	ref := sieve(max)
	for n := 0; n <= max; n++ {
		require.Equalf(t, ref[n], IsPrime(int64(n)), "n=%d", n)
	}
}

func TestIsPrime_EvenAboveTwo(t *testing.T) {
	for n := int64(4); n <= 1000; n += 2 {
		require.False(t, IsPrime(n), "n=%d", n)
	}
}

// Perfect squares of primes are where a float sqrt bound goes wrong.
func TestIsPrime_SquaresOfPrimes(t *testing.T) {
	for _, p := range []int64{3, 5, 7, 11, 101, 1009, 65521} {
		assert.False(t, IsPrime(p*p), "p*p with p=%d", p)
	}
}

func TestCheck_Divisor(t *testing.T) {
	cases := []struct {
		n       int64
		prime   bool
		divisor int64
	}{
		{1, false, 0},
		{2, true, 0},
		{8, false, 2},
		{15, false, 3},
		{49, false, 7},
		{221, false, 13},
		{13, true, 0},
	}
	for _, tc := range cases {
		r := Check(tc.n)
		assert.Equal(t, tc.n, r.N)
		assert.Equalf(t, tc.prime, r.Prime, "prime(%d)", tc.n)
		assert.Equalf(t, tc.divisor, r.Divisor, "divisor(%d)", tc.n)
	}
}

func TestCheck_AgreesWithIsPrime(t *testing.T) {
	for n := int64(-10); n <= 2000; n++ {
		r := Check(n)
		require.Equal(t, IsPrime(n), r.Prime, "n=%d", n)
		if r.Divisor == 0 {
			continue
		}
		require.Zero(t, n%r.Divisor, "n=%d d=%d", n, r.Divisor)
		for d := int64(2); d < r.Divisor; d++ {
			require.NotZero(t, n%d, "n=%d has smaller divisor %d", n, d)
		}
	}
}
