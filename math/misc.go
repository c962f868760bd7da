package math

import (
	"github.com/db47h/bigint"
)

// constants
var (
	one  = bigint.NewInt(1)
	two  = bigint.NewInt(2)
	four = bigint.NewInt(4)
)

// pow returns x**n. Unlike bigint.Int.Pow, n is not range checked; callers
// are responsible for keeping the result size reasonable.
func pow(x bigint.Int, n uint64) bigint.Int {
	if n == 0 {
		return one
	}
	y := one
	for n > 1 {
		if n%2 != 0 {
			y = y.Mul(x)
		}
		x = x.Square()
		n /= 2
	}
	return x.Mul(y)
}

// digits returns the number of decimal digits of |x|, or 0 for x == 0.
func digits(x bigint.Int) int {
	if x.IsZero() {
		return 0
	}
	return len(x.Abs().String())
}
