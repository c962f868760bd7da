package math

import (
	"sync"

	"github.com/db47h/bigint"
	"github.com/db47h/bigint/context"
	"github.com/pkg/errors"
)

// piGuard is the number of extra digits computed by pi. Rounding errors grow
// with the number of iterations, which is logarithmic in the precision.
const piGuard = 2 * 9

// _pi caches the most precise value of π computed so far.
var _pi struct {
	sync.Mutex
	digits int
	v      bigint.Int
}

// Pi returns ⌊π×10**digits⌋, that is the first digits+1 decimal digits of π.
// The most precise value computed so far is cached; Pi is safe for
// concurrent use.
func Pi(digits int) (bigint.Int, error) {
	if digits < 0 {
		return bigint.Int{}, errors.Wrapf(bigint.ErrArgumentRange, "π with %d digits", digits)
	}
	if digits > bigint.MaxExp/2-piGuard {
		return bigint.Int{}, errors.Wrapf(bigint.ErrExponentRange, "π with %d digits", digits)
	}
	_pi.Lock()
	defer _pi.Unlock()
	if _pi.v.IsZero() || digits > _pi.digits {
		v, err := pi(digits)
		if err != nil {
			return bigint.Int{}, err
		}
		_pi.v, _pi.digits = v, digits
	}
	return _pi.v.Exp10(int64(digits - _pi.digits))
}

// pi computes ⌊π×10**digits⌋ with the Gauss-Legendre algorithm, in fixed
// point with piGuard extra digits.
func pi(digits int) (bigint.Int, error) {
	var (
		ctx = context.New(0)
		p   = int64(digits + piGuard)
		u   = ctx.Exp10(one, p) // 1.0
		a   = u
		b   = sqrt(ctx.Quo(u.Square(), two)) // 1/√2
		t   = ctx.Quo(u, four)               // ¼
		k   = one                            // 2**n
	)

	for {
		an := ctx.Quo(ctx.Add(a, b), two) // a_n+1 = (a_n + b_n)/2
		b = sqrt(ctx.Mul(a, b))           // b_n+1 = √(a_n×b_n)

		// t_n+1 = t_n - 2**n×(a_n - a_n+1)²
		d := ctx.Sub(a, an)
		t = ctx.Sub(t, ctx.Exp10(ctx.Mul(k, d.Square()), -p))
		a = an

		// a pending error zeroes a and b
		if ctx.Sub(a, b).CmpAbs(one) <= 0 {
			break
		}
		k = ctx.Mul(k, two)
	}
	// π = (a+b)²/4t
	z := ctx.Quo(ctx.Square(ctx.Add(a, b)), ctx.Mul(t, four))
	z = ctx.Exp10(z, -piGuard)
	return z, ctx.Err()
}
