package math

import (
	"github.com/db47h/bigint"
	"github.com/db47h/bigint/context"
	"github.com/pkg/errors"
)

// eGuard is the number of extra digits computed by E. Each term of the
// series is truncated once.
const eGuard = 12

// E returns ⌊e×10**digits⌋, that is the first digits+1 decimal digits of
// Euler's number.
func E(digits int) (bigint.Int, error) {
	if digits < 0 {
		return bigint.Int{}, errors.Wrapf(bigint.ErrArgumentRange, "e with %d digits", digits)
	}
	if digits > bigint.MaxExp-eGuard {
		return bigint.Int{}, errors.Wrapf(bigint.ErrExponentRange, "e with %d digits", digits)
	}
	var (
		ctx = context.New(0)
		t   = ctx.Exp10(one, int64(digits+eGuard)) // 1/k!
		z   bigint.Int
	)
	// e = Σ 1/k!
	for k := int64(1); !t.IsZero(); k++ {
		z = ctx.Add(z, t)
		t = ctx.Quo(t, bigint.NewInt(k))
	}
	z = ctx.Exp10(z, -eGuard)
	return z, ctx.Err()
}
