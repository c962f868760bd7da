package math

import (
	"github.com/db47h/bigint"
	"github.com/pkg/errors"
)

// ErrNegative is returned by functions with no real integer result for a
// negative argument.
var ErrNegative = errors.New("negative argument")

// Sqrt returns ⌊√x⌋. It returns ErrNegative if x < 0.
func Sqrt(x bigint.Int) (bigint.Int, error) {
	if x.IsNegative() {
		return bigint.Int{}, errors.Wrapf(ErrNegative, "square root of %s", x)
	}
	return sqrt(x), nil
}

// sqrt returns ⌊√x⌋ for x >= 0.
func sqrt(x bigint.Int) bigint.Int {
	if x.Cmp(four) < 0 {
		if x.IsZero() {
			return x
		}
		return one
	}
	// Newton's method starting above the root: the iterates decrease
	// monotonically until they reach ⌊√x⌋.
	//   t2 = (t + x/t) / 2
	t, _ := one.Exp10(int64(digits(x)+1) / 2)
	for {
		q, _ := x.Quo(t)
		u, _ := t.Add(q).Quo(two)
		if u.Cmp(t) >= 0 {
			return t
		}
		t = u
	}
}

// Root returns the integer n-th root of x, truncated toward zero. Odd roots
// of negative values are negative; even roots of negative values return
// ErrNegative. n must be positive.
func Root(x bigint.Int, n int) (bigint.Int, error) {
	switch {
	case n <= 0:
		return bigint.Int{}, errors.Wrapf(bigint.ErrArgumentRange, "root of order %d", n)
	case x.IsNegative():
		if n%2 == 0 {
			return bigint.Int{}, errors.Wrapf(ErrNegative, "root of order %d of %s", n, x)
		}
		r, err := Root(x.Neg(), n)
		return r.Neg(), err
	case n == 1:
		return x, nil
	case n == 2:
		return sqrt(x), nil
	case x.Cmp(one) <= 0:
		return x, nil
	}
	// same as sqrt:
	//   t2 = ((n-1)t + x/t**(n-1)) / n
	nn := bigint.NewInt(int64(n))
	n1 := bigint.NewInt(int64(n - 1))
	t, _ := one.Exp10(int64((digits(x) + n - 1) / n))
	for {
		q, _ := x.Quo(pow(t, uint64(n-1)))
		u, _ := n1.Mul(t).Add(q).Quo(nn)
		if u.Cmp(t) >= 0 {
			return t, nil
		}
		t = u
	}
}
