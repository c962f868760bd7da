// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"math"
	"strconv"

	"fortio.org/safecast"
	"github.com/pkg/errors"
)

// Pow returns x**y.
//
// An exponent with |y| > MaxExp returns ErrExponentRange, even when x is
// 0 or ±1. Otherwise the following special cases apply, in order:
//
//	(±1)**y = ±1 or 1 depending on the parity of y
//	x**0    = 1
//	0**y    = ErrDivideByZero for y < 0
//	x**y    = 0 for y < 0 and |x| > 1
//	0**y    = 0 for y > 0
func (x Int) Pow(y Int) (Int, error) {
	if y.CmpAbs(maxExp) > 0 {
		return zero, errors.Wrapf(ErrExponentRange, "exponent %s", y)
	}
	if x.IsUnit() {
		if x.neg && y.IsOdd() {
			return minusOne, nil
		}
		return one, nil
	}
	switch {
	case len(y.abs) == 0:
		return one, nil
	case y.neg:
		if len(x.abs) == 0 {
			return zero, errors.Wrapf(ErrDivideByZero, "0**%s", y)
		}
		return zero, nil
	case len(x.abs) == 0:
		return zero, nil
	}

	e, _ := y.abs.uint64() // y <= MaxExp
	z := one
	for {
		if e&1 != 0 {
			z = z.Mul(x)
		}
		e >>= 1
		if e == 0 {
			break
		}
		x = x.Square()
	}
	return z, nil
}

// ModPow returns x**e mod m with the sign conventions of Rem: the result has
// the sign of x**e, or is zero. A zero m returns ErrDivideByZero and a
// negative e returns ErrExponentRange. The exponent is not limited to MaxExp.
func (x Int) ModPow(e, m Int) (Int, error) {
	if e.neg {
		return zero, errors.Wrapf(ErrExponentRange, "negative modular exponent %s", e)
	}
	if len(m.abs) == 0 {
		return zero, errors.WithStack(ErrDivideByZero)
	}
	z := one.rem(m)
	x = x.rem(m)
	ea := e.abs
	for len(ea) > 0 {
		var bit Word
		ea, bit = dec(nil).divW(ea, 2)
		if bit != 0 {
			z = z.Mul(x).rem(m)
		}
		if len(ea) > 0 {
			x = x.Square().rem(m)
		}
	}
	return z, nil
}

// Exp10 returns x * 10**n. For n < 0 the result is truncated toward zero.
// |n| > MaxExp returns ErrExponentRange.
func (x Int) Exp10(n int64) (Int, error) {
	if n > MaxExp || n < -MaxExp {
		return zero, errors.Wrapf(ErrExponentRange, "shift %d", n)
	}
	if n == 0 || len(x.abs) == 0 {
		return x, nil
	}
	shift := n
	if shift < 0 {
		shift = -shift
	}
	w, err := safecast.Conv[int](shift / _DW)
	if err != nil {
		return zero, errors.Wrapf(ErrExponentRange, "shift %d", n)
	}
	s := uint(shift % _DW)

	if n > 0 {
		z := Int{abs: x.abs}
		if s > 0 {
			z = z.mulSingleDigit(pow10(s))
		}
		return Int{neg: x.neg, abs: z.abs.shlWords(w)}, nil
	}

	// x < 10**(len(x.abs)*_DW)
	if shift >= int64(len(x.abs))*_DW {
		return zero, nil
	}
	z := x.abs[w:]
	if s > 0 {
		z, _ = dec(nil).divW(z, pow10(s))
	}
	return makeInt(z, x.neg), nil
}

// logDigits is the number of leading decimal digits used by Log for large
// values.
const logDigits = 30

// Log returns the natural logarithm of x as a float64. It returns -Inf for
// x == 0 and NaN for x < 0.
//
// Values with fewer than 30 digits are converted with Float64. Larger values
// only use their leading words, which is exact to float64 precision.
func (x Int) Log() float64 {
	switch {
	case len(x.abs) == 0:
		return math.Inf(-1)
	case x.neg:
		return math.NaN()
	}
	l := len(x.abs)
	if l*_DW < logDigits {
		return math.Log(x.Float64())
	}
	const n = (logDigits + _DW - 1) / _DW
	top := Int{abs: x.abs[l-n:]}
	return math.Log(top.Float64()) + float64(l-n)*math.Log(_DB)
}

// Float64 returns the float64 value nearest to x. Values too large for a
// float64 return ±Inf.
func (x Int) Float64() float64 {
	// ParseFloat returns ±Inf together with a range error; keep the value.
	f, _ := strconv.ParseFloat(x.String(), 64)
	return f
}
