// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// A Word is a single digit of a dec magnitude, in [0, _DB).
type Word uint32

const (
	// decimal digits per Word.
	_DW = 9
	// Decimal base for a Word: the largest power of ten below 2**32.
	_DB = 1000000000
	// Maximum value of a Word
	_DMax = _DB - 1
)

// All kernels below accumulate in uint64: x*y + z + c <= (_DB-1)**2 + 2*(_DB-1)
// which is far below 2**64.

//-----------------------------------------------------------------------------
// Arithmetic primitives
//

// add10WWW returns x + y + cIn in base _DB. The resulting carry c is either 0
// or 1.
func add10WWW(x, y, cIn Word) (s, c Word) {
	s = x + y + cIn
	if s >= _DB {
		return s - _DB, 1
	}
	return s, 0
}

// sub10WWW returns x - y - b in base _DB. The resulting borrow c is either 0
// or 1.
func sub10WWW(x, y, b Word) (d, c Word) {
	y += b
	if x >= y {
		return x - y, 0
	}
	return x + _DB - y, 1
}

// addVV sets z = x + y for len(z) words. The resulting carry c is either 0
// or 1.
func addVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = add10WWW(x[i], y[i], c)
	}
	return
}

// subVV sets z = x - y for len(z) words. The resulting borrow c is either 0
// or 1.
func subVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = sub10WWW(x[i], y[i], c)
	}
	return
}

// addVW sets z = x + y, y < _DB. The resulting carry c is either 0 or 1.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		if c == 0 {
			// copy remaining digits if not adding in-place
			if !same(z[i:], x[i:]) {
				copy(z[i:], x[i:])
			}
			return 0
		}
		z[i], c = add10WWW(x[i], c, 0)
	}
	return
}

// subVW sets z = x - y, y < _DB. The resulting borrow c is either 0 or 1.
func subVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		if c == 0 {
			if !same(z[i:], x[i:]) {
				copy(z[i:], x[i:])
			}
			return 0
		}
		z[i], c = sub10WWW(x[i], c, 0)
	}
	return
}

// mulAddVWW sets z = x*y + r and returns the carry word.
// y and r must be < _DB.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		t := uint64(x[i])*uint64(y) + uint64(c)
		c, z[i] = Word(t/_DB), Word(t%_DB)
	}
	return
}

// addMulVVW sets z += x*y and returns the carry word.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := 0; i < len(z) && i < len(x); i++ {
		t := uint64(x[i])*uint64(y) + uint64(z[i]) + uint64(c)
		c, z[i] = Word(t/_DB), Word(t%_DB)
	}
	return
}

// divWVW sets z = (xn*_DB**len(x) + x) / y and returns the remainder.
// xn must be < y.
func divWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	d := uint64(y)
	for i := len(z) - 1; i >= 0; i-- {
		t := uint64(r)*_DB + uint64(x[i])
		z[i], r = Word(t/d), Word(t%d)
	}
	return
}
