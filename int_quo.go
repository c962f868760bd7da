// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"github.com/pkg/errors"
)

// QuoRem returns the quotient x/y and the remainder x%y for y != 0. It
// implements truncated division (like Go):
//
//	q = x/y      with the result truncated toward zero
//	r = x - y*q
//
// so that r has the sign of x and |r| < |y|. A zero y returns
// ErrDivideByZero.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if len(y.abs) == 0 {
		return zero, zero, errors.WithStack(ErrDivideByZero)
	}
	q, r = x.quoRem(y)
	return q, r, nil
}

// Quo returns the quotient x/y truncated toward zero. See QuoRem.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder x%y; the result has the sign of x. See QuoRem.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// QuoRemSmall is like QuoRem for a divisor n with 1 <= |n| < 10**9. A zero n
// returns ErrDivideByZero and any other n outside that range returns
// ErrArgumentRange.
func (x Int) QuoRemSmall(n int64) (q, r Int, err error) {
	if n == 0 {
		return zero, zero, errors.WithStack(ErrDivideByZero)
	}
	neg := n < 0
	if neg {
		n = -n
	}
	// -math.MinInt64 is still negative
	if n < 1 || n >= _DB {
		return zero, zero, errors.Wrapf(ErrArgumentRange, "divisor %d", n)
	}
	q, r = x.divRemSmall(Word(n), neg)
	return q, r, nil
}

// quoRem is QuoRem for y != 0.
func (x Int) quoRem(y Int) (q, r Int) {
	if len(x.abs) == 0 {
		return zero, zero
	}
	if len(y.abs) == 1 {
		return x.divRemSmall(y.abs[0], y.neg)
	}
	switch x.abs.cmp(y.abs) {
	case -1:
		return zero, x
	case 0:
		if x.neg == y.neg {
			return one, zero
		}
		return minusOne, zero
	}
	qa, ra := x.abs.div(y.abs)
	return makeInt(qa, x.neg != y.neg), makeInt(ra, x.neg)
}

// divRemSmall divides x by the single digit d (d > 0); neg is the sign of the
// divisor.
func (x Int) divRemSmall(d Word, neg bool) (q, r Int) {
	if len(x.abs) == 0 {
		return zero, zero
	}
	if d == 1 {
		return makeInt(x.abs, x.neg != neg), zero
	}
	qa, rw := dec(nil).divW(x.abs, d)
	return makeInt(qa, x.neg != neg), makeInt(dec(nil).setWord(rw), x.neg)
}

// rem returns x%m for m != 0.
func (x Int) rem(m Int) Int {
	_, r := x.quoRem(m)
	return r
}
