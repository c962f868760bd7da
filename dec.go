// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"math/bits"
	"sync"
)

// dec is an unsigned integer x of the form
//
//   x = x[n-1]*_DB^(n-1) + x[n-2]*_DB^(n-2) + ... + x[1]*_DB + x[0]
//
// with 0 <= x[i] < _DB and 0 <= i < n is stored in a slice of length n,
// with the digits x[i] as the slice elements.
//
// A number is normalized if the slice contains no leading 0 digits.
// During arithmetic operations, denormalized values may occur but are
// always normalized before returning the final result. The normalized
// representation of 0 is the empty or nil slice (length = 0).
//
// Methods of the form z.op(x, y) write their result into z's backing array
// when it is large enough. Callers that must preserve an operand pass a nil z.
type dec []Word

// norm truncates leading zero words.
func (z dec) norm() dec {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func (z dec) make(n int) dec {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most decs start small and stay that way; don't over-allocate.
		return make(dec, 1)
	}
	// Choosing a good value for e has significant performance impact
	// because it increases the chance that a value can be reused.
	const e = 4 // extra capacity
	return make(dec, n, n+e)
}

func (z dec) clear() {
	for i := range z {
		z[i] = 0
	}
}

func (z dec) set(x dec) dec {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z dec) setWord(x Word) dec {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (z dec) setUint64(x uint64) dec {
	if x < _DB {
		return z.setWord(Word(x))
	}
	// x >= _DB: at most 3 words
	n := 0
	for t := x; t > 0; t /= _DB {
		n++
	}
	z = z.make(n)
	for i := range z {
		z[i] = Word(x % _DB)
		x /= _DB
	}
	return z
}

// uint64 returns the value of x and whether it fits in a uint64.
func (x dec) uint64() (uint64, bool) {
	var v uint64
	for i := len(x) - 1; i >= 0; i-- {
		hi, lo := bits.Mul64(v, _DB)
		if hi != 0 {
			return 0, false
		}
		var c uint64
		v, c = bits.Add64(lo, uint64(x[i]), 0)
		if c != 0 {
			return 0, false
		}
	}
	return v, true
}

func (x dec) cmp(y dec) (r int) {
	m := len(x)
	n := len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			r = -1
		case m > n:
			r = 1
		}
		return
	}

	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}

	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return
}

// digits returns the number of decimal digits of x.
func (x dec) digits() uint {
	if len(x) == 0 {
		return 0
	}
	msw := len(x) - 1
	return uint(msw)*_DW + decDigits(x[msw])
}

func (z dec) add(x, y dec) dec {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.add(y, x)
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m > 0

	z = z.make(m + 1)
	c := addVV(z[0:n], x, y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c

	return z.norm()
}

// sub sets z = x - y. x must be >= y.
func (z dec) sub(x, y dec) dec {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		panic("underflow")
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m > 0

	z = z.make(m)
	c := subVV(z[0:n], x, y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("underflow")
	}

	return z.norm()
}

// incr returns x + 1 in a new slice. Only the words holding a carry are
// touched.
func (x dec) incr() dec {
	z := dec(nil).make(len(x) + 1)
	copy(z, x)
	z[len(x)] = 0
	for i := range z {
		if z[i] < _DMax {
			z[i]++
			break
		}
		z[i] = 0
	}
	return z.norm()
}

// decr returns x - 1 in a new slice. x must be > 0.
func (x dec) decr() dec {
	z := dec(nil).set(x)
	for i := range z {
		if z[i] > 0 {
			z[i]--
			break
		}
		z[i] = _DMax
	}
	return z.norm()
}

// mulAddWW sets z = x*y + r. y and r must be < _DB.
func (z dec) mulAddWW(x dec, y, r Word) dec {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setWord(r) // result is r
	}
	// m > 0

	z = z.make(m + 1)
	z[m] = mulAddVWW(z[0:m], x, y, r)

	return z.norm()
}

// mulSingle sets z = x*y for a single digit y < _DB.
func (z dec) mulSingle(x dec, y Word) dec {
	if len(x) == 1 {
		return z.setUint64(uint64(x[0]) * uint64(y))
	}
	return z.mulAddWW(x, y, 0)
}

// mul sets z = x*y using schoolbook multiplication. z must not alias x or y.
func (z dec) mul(x, y dec) dec {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.mul(y, x)
	case m == 0 || n == 0:
		return z[:0]
	case n == 1:
		return z.mulSingle(x, y[0])
	}
	// m >= n > 1

	if alias(z, x) || alias(z, y) {
		z = nil // z is an alias for x or y - cannot reuse
	}

	z = z.make(m + n)
	z.clear()
	for i, d := range y {
		if d != 0 {
			z[m+i] = addMulVVW(z[i:i+m], x, d)
		}
	}

	return z.norm()
}

// sqr sets z = x*x. Each cross product x[i]*x[j], i < j, is computed once and
// doubled; the diagonal terms x[i]*x[i] are added last.
func (z dec) sqr(x dec) dec {
	n := len(x)
	switch n {
	case 0:
		return z[:0]
	case 1:
		d := uint64(x[0])
		return z.setUint64(d * d)
	}

	if alias(z, x) {
		z = nil // z is an alias for x - cannot reuse
	}

	z = z.make(2 * n)
	z.clear()
	for i := 0; i < n-1; i++ {
		if d := x[i]; d != 0 {
			z[n+i] = addMulVVW(z[2*i+1:n+i], x[i+1:], d)
		}
	}
	addVV(z, z, z)

	t := getDec(2 * n)
	d := *t
	for i, w := range x {
		p := uint64(w) * uint64(w)
		d[2*i], d[2*i+1] = Word(p%_DB), Word(p/_DB)
	}
	addVV(z, z, d)
	putDec(t)

	return z.norm()
}

// divW sets z = x / y and returns the remainder. y must be non-zero.
func (z dec) divW(x dec, y Word) (q dec, r Word) {
	m := len(x)
	switch {
	case y == 0:
		panic("division by zero")
	case y == 1:
		q = z.set(x) // result is x
		return
	case m == 0:
		q = z[:0] // result is 0
		return
	}
	// m > 0
	z = z.make(m)
	r = divWVW(z, 0, x, y)
	q = z.norm()
	return
}

// shlWord returns z*_DB + w, shifting z in place.
func (z dec) shlWord(w Word) dec {
	z = append(z, 0)
	copy(z[1:], z)
	z[0] = w
	return z.norm()
}

// div returns q = x / y and r = x % y using long division. y must have at
// least two words and x >= y.
//
// The dividend is consumed one word at a time from the most significant end
// into a running partial remainder. Each quotient digit is estimated from the
// top words of the partial remainder and the divisor, then corrected
// downward until the product of the divisor and the digit no longer exceeds
// the partial remainder.
func (x dec) div(y dec) (q, r dec) {
	n := len(y)
	q = dec(nil).make(len(x))
	pt, ct := getDec(n+1), getDec(n+1)
	part, check := (*pt)[:0], *ct
	for i := len(x) - 1; i >= 0; i-- {
		part = part.shlWord(x[i])
		if part.cmp(y) < 0 {
			q[i] = 0
			continue
		}
		// y <= part < y*_DB, so part has n or n+1 words.
		l := len(part)
		x2, x1, x0 := uint64(0), uint64(part[l-1]), uint64(part[l-2])
		longer := l > n
		if longer {
			x2, x1, x0 = x1, x0, 0
		}
		guess := Word(estimateDigit(x2, x1, x0, uint64(y[n-1]), uint64(y[n-2]), longer, _DB))
		for {
			check = check.mulSingle(y, guess)
			if check.cmp(part) <= 0 {
				break
			}
			guess--
		}
		q[i] = guess
		part = part.sub(part, check)
	}
	r = dec(nil).set(part)
	*pt, *ct = part, check
	putDec(pt)
	putDec(ct)
	return q.norm(), r
}

// estimateDigit estimates the next quotient digit of a partial remainder P
// divided by a divisor Y in base b, with Y >= b and Y <= P < Y*b.
//
// y1 and y0 are the two most significant digits of Y. If P has one more digit
// than Y, x2 and x1 are its two most significant digits; otherwise x2 is 0, x1
// is the most significant digit and x0 the next one.
//
// The estimate is ceil(N / (y1*b + y0)) where N is (x2*b + x1 + 1)*b in the
// first case and x1*b + x0 in the second, clamped to b-1. It is never less
// than the true digit floor(P/Y) and exceeds it by at most 3.
func estimateDigit(x2, x1, x0, y1, y0 uint64, longer bool, b uint64) uint64 {
	den := y1*b + y0
	hi, lo := uint64(0), x1*b+x0
	if longer {
		hi, lo = bits.Mul64(x2*b+x1+1, b)
	}
	q, rem := bits.Div64(hi, lo, den)
	if rem != 0 {
		q++
	}
	if q > b-1 {
		q = b - 1
	}
	return q
}

// shlWords returns x * _DB**n in a new slice.
func (x dec) shlWords(n int) dec {
	if len(x) == 0 {
		return nil
	}
	z := dec(nil).make(len(x) + n)
	z[:n].clear()
	copy(z[n:], x)
	return z
}

func same(x, y []Word) bool {
	return len(x) == len(y) && len(x) > 0 && &x[0] == &y[0]
}

// alias reports whether x and y share the same base array.
func alias(x, y []Word) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// getDec returns a *dec of len n. The contents may not be zero.
// The pool holds *dec to avoid allocation when converting to interface{}.
func getDec(n int) *dec {
	var z *dec
	if v := decPool.Get(); v != nil {
		z = v.(*dec)
	}
	if z == nil {
		z = new(dec)
	}
	*z = z.make(n)
	return z
}

func putDec(x *dec) {
	decPool.Put(x)
}

var decPool sync.Pool
