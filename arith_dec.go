// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "math/bits"

var pow10tab = [_DW + 1]Word{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

// pow10 returns 10**n for 0 <= n <= _DW.
func pow10(n uint) Word { return pow10tab[n] }

var pow2digitsTab = [...]uint{
	1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5,
	5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10, 10,
}

// decDigits returns n such that 10**(n-1) <= x < 10**n.
// In other words, n is the number of digits required to represent x.
// Returns 0 for x == 0.
func decDigits(x Word) (n uint) {
	if x == 0 {
		return 0
	}
	n = pow2digitsTab[bits.Len32(uint32(x))]
	if n > _DW || x < pow10tab[n-1] {
		n--
	}
	return n
}

// decMaxPow returns (b**n, n) with n the largest power of b such that
// b**n < _DB. In other words, at most n digits in base b fit into a Word.
func decMaxPow(b Word) (p Word, n int) {
	p, n = b, 1
	for lim := _DMax / b; p <= lim; n++ {
		p *= b
	}
	return p, n
}

// pow returns x**n for n > 0, and 1 otherwise.
func pow(x Word, n int) (p Word) {
	// n == sum of bi * 2**i, for 0 <= i < imax, and bi is 0 or 1
	// thus x**n == product of x**(2**i) for all i where bi == 1
	// (Russian Peasant Method for exponentiation)
	p = 1
	for n > 0 {
		if n&1 != 0 {
			p *= x
		}
		x *= x
		n >>= 1
	}
	return
}
