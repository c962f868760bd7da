// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"math"

	"fortio.org/safecast"
)

// An Int represents a signed integer of arbitrary size. The zero value for an
// Int is 0.
//
// Int values are immutable: every operation returns a new Int and never
// modifies its receiver or arguments. An Int may therefore be copied, shared
// and used concurrently without synchronization.
type Int struct {
	neg bool // sign
	abs dec  // absolute value of the integer
}

var (
	zero     = Int{}
	one      = Int{abs: dec{1}}
	minusOne = Int{neg: true, abs: dec{1}}
	maxExp   = Int{abs: dec(nil).setUint64(MaxExp)}
)

// small holds the shared values 0 through 36.
var small [MaxBase + 1]Int

func init() {
	for i := range small {
		small[i] = Int{abs: dec(nil).setWord(Word(i))}
	}
}

// makeInt returns the Int with magnitude abs and sign neg. Zero is never
// negative.
func makeInt(abs dec, neg bool) Int {
	abs = abs.norm()
	return Int{neg: len(abs) > 0 && neg, abs: abs}
}

// NewInt returns an Int set to x.
func NewInt(x int64) Int {
	if 0 <= x && x < int64(len(small)) {
		return small[x]
	}
	u := uint64(x)
	if x < 0 {
		u = -u // works for math.MinInt64 too
	}
	return Int{neg: x < 0, abs: dec(nil).setUint64(u)}
}

// NewUint64 returns an Int set to x.
func NewUint64(x uint64) Int {
	if x < uint64(len(small)) {
		return small[x]
	}
	return Int{abs: dec(nil).setUint64(x)}
}

// Int64 returns the int64 value of x and whether x fits in an int64.
func (x Int) Int64() (int64, bool) {
	u, ok := x.abs.uint64()
	if !ok {
		return 0, false
	}
	if x.neg {
		if u == 1<<63 {
			return math.MinInt64, true
		}
		v, err := safecast.Conv[int64](u)
		return -v, err == nil
	}
	v, err := safecast.Conv[int64](u)
	return v, err == nil
}

// IsInt64 reports whether x can be represented as an int64.
func (x Int) IsInt64() bool {
	_, ok := x.Int64()
	return ok
}

// Uint64 returns the uint64 value of x and whether x fits in a uint64.
// Negative values never fit.
func (x Int) Uint64() (uint64, bool) {
	if x.neg {
		return 0, false
	}
	return x.abs.uint64()
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
//
func (x Int) Sign() int {
	if len(x.abs) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool { return len(x.abs) == 0 }

// IsPositive reports whether x > 0.
func (x Int) IsPositive() bool { return !x.neg && len(x.abs) > 0 }

// IsNegative reports whether x < 0.
func (x Int) IsNegative() bool { return x.neg }

// IsEven reports whether x is even. Zero is even.
func (x Int) IsEven() bool { return len(x.abs) == 0 || x.abs[0]&1 == 0 }

// IsOdd reports whether x is odd.
func (x Int) IsOdd() bool { return !x.IsEven() }

// IsUnit reports whether |x| == 1.
func (x Int) IsUnit() bool { return len(x.abs) == 1 && x.abs[0] == 1 }

// Neg returns -x.
func (x Int) Neg() Int {
	if len(x.abs) == 0 {
		return x
	}
	return Int{neg: !x.neg, abs: x.abs}
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return Int{abs: x.abs}
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
func (x Int) Cmp(y Int) (r int) {
	switch {
	case x.neg == y.neg:
		r = x.abs.cmp(y.abs)
		if x.neg {
			r = -r
		}
	case x.neg:
		r = -1
	default:
		r = 1
	}
	return
}

// CmpAbs compares the absolute values of x and y and returns:
//
//	-1 if |x| <  |y|
//	 0 if |x| == |y|
//	+1 if |x| >  |y|
//
func (x Int) CmpAbs(y Int) int {
	return x.abs.cmp(y.abs)
}

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// Min returns the smaller of x and y.
func Min(x, y Int) Int {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max(x, y Int) Int {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Add returns the sum x+y.
func (x Int) Add(y Int) Int {
	switch {
	case len(y.abs) == 0:
		return x
	case len(x.abs) == 0:
		return y
	case x.neg != y.neg:
		return x.Sub(y.Neg())
	}
	return Int{neg: x.neg, abs: dec(nil).add(x.abs, y.abs)}
}

// Sub returns the difference x-y.
func (x Int) Sub(y Int) Int {
	switch {
	case len(y.abs) == 0:
		return x
	case len(x.abs) == 0:
		return y.Neg()
	case x.neg != y.neg:
		return x.Add(y.Neg())
	}
	// both operands have the same sign: compute |a| - |b| with the
	// operands swapped for negative values since -|x| - -|y| = |y| - |x|.
	a, b := x.abs, y.abs
	if x.neg {
		a, b = b, a
	}
	switch a.cmp(b) {
	case 0:
		return zero
	case -1:
		return Int{neg: true, abs: dec(nil).sub(b, a)}
	}
	return Int{abs: dec(nil).sub(a, b)}
}

// Next returns x+1.
func (x Int) Next() Int {
	switch {
	case len(x.abs) == 0:
		return one
	case x.neg:
		return makeInt(x.abs.decr(), true)
	}
	return Int{abs: x.abs.incr()}
}

// Prev returns x-1.
func (x Int) Prev() Int {
	switch {
	case len(x.abs) == 0:
		return minusOne
	case x.neg:
		return Int{neg: true, abs: x.abs.incr()}
	}
	return makeInt(x.abs.decr(), false)
}

// Mul returns the product x*y.
func (x Int) Mul(y Int) Int {
	switch {
	case len(x.abs) == 0 || len(y.abs) == 0:
		return zero
	case x.IsUnit():
		if x.neg {
			return y.Neg()
		}
		return y
	case y.IsUnit():
		if y.neg {
			return x.Neg()
		}
		return x
	case same(x.abs, y.abs):
		return x.Square()
	}
	return Int{neg: x.neg != y.neg, abs: dec(nil).mul(x.abs, y.abs)}
}

// mulSingleDigit returns x*n for x >= 0 and 0 <= n < _DB.
func (x Int) mulSingleDigit(n Word) Int {
	if n == 0 || len(x.abs) == 0 {
		return zero
	}
	return Int{abs: dec(nil).mulSingle(x.abs, n)}
}

// Square returns x*x.
func (x Int) Square() Int {
	switch {
	case len(x.abs) == 0:
		return zero
	case x.IsUnit():
		return one
	}
	return Int{abs: dec(nil).sqr(x.abs)}
}
