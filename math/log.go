package math

import (
	stdmath "math"

	"github.com/db47h/bigint"
	"github.com/pkg/errors"
)

// Log returns ⌊log_b(x)⌋ for x > 0 and 2 <= b <= 10**9. It returns
// bigint.ErrArgumentRange for x <= 0 or a base out of range.
func Log(x bigint.Int, b int64) (int64, error) {
	if !x.IsPositive() {
		return 0, errors.Wrapf(bigint.ErrArgumentRange, "logarithm of %s", x)
	}
	if b < 2 || b >= 1e9 {
		return 0, errors.Wrapf(bigint.ErrArgumentRange, "logarithm in base %d", b)
	}
	if b == 10 {
		return int64(digits(x) - 1), nil
	}
	// estimate with floating point logarithms, then fix the estimate:
	//   b**k <= x < b**(k+1)
	bb := bigint.NewInt(b)
	k := int64(x.Log() / stdmath.Log(float64(b)))
	if k < 0 {
		k = 0
	}
	p := pow(bb, uint64(k))
	for p.Cmp(x) > 0 {
		k--
		p, _ = p.Quo(bb)
	}
	for {
		q := p.Mul(bb)
		if q.Cmp(x) > 0 {
			return k, nil
		}
		k++
		p = q
	}
}

// Log10 returns ⌊log10(x)⌋, the number of decimal digits of x minus one. See
// Log.
func Log10(x bigint.Int) (int64, error) {
	return Log(x, 10)
}

// Log2 returns ⌊log2(x)⌋, the bit length of x minus one. See Log.
func Log2(x bigint.Int) (int64, error) {
	return Log(x, 2)
}
