package math

import (
	"github.com/db47h/bigint"
	"github.com/pkg/errors"
)

// GCD returns the greatest common divisor of a and b. The result is never
// negative; GCD(0, 0) is 0.
func GCD(a, b bigint.Int) bigint.Int {
	a, b = a.Abs(), b.Abs()
	for !b.IsZero() {
		r, _ := a.Rem(b)
		a, b = b, r
	}
	return a
}

// LCM returns the least common multiple of a and b. The result is never
// negative; LCM(x, 0) is 0.
func LCM(a, b bigint.Int) bigint.Int {
	if a.IsZero() || b.IsZero() {
		return bigint.Int{}
	}
	q, _ := a.Abs().Quo(GCD(a, b))
	return q.Mul(b.Abs())
}

// factorialSplit is the range length below which Factorial multiplies terms
// sequentially.
const factorialSplit = 16

// Factorial returns n!. It returns bigint.ErrArgumentRange for n < 0.
func Factorial(n int64) (bigint.Int, error) {
	if n < 0 {
		return bigint.Int{}, errors.Wrapf(bigint.ErrArgumentRange, "factorial of %d", n)
	}
	if n < 2 {
		return one, nil
	}
	return mulRange(2, n), nil
}

// mulRange returns the product of all integers in [a, b], a <= b, splitting
// the range in halves so that operands stay balanced.
func mulRange(a, b int64) bigint.Int {
	if b-a < factorialSplit {
		z := bigint.NewInt(a)
		for i := a + 1; i <= b; i++ {
			z = z.Mul(bigint.NewInt(i))
		}
		return z
	}
	m := a + (b-a)/2
	return mulRange(a, m).Mul(mulRange(m+1, b))
}
