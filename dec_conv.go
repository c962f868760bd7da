// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements radix conversion of dec magnitudes.

package bigint

import (
	"math"
	"strconv"
)

// digitVal returns the value of the alphanumeric ch, or MaxBase if ch is not
// a digit or a letter. Letters are case insensitive.
func digitVal(ch byte) Word {
	switch {
	case '0' <= ch && ch <= '9':
		return Word(ch - '0')
	case 'a' <= ch && ch <= 'z':
		return Word(ch - 'a' + 10)
	case 'A' <= ch && ch <= 'Z':
		return Word(ch - 'A' + 10)
	}
	return MaxBase
}

// setString sets z to the value of the digit string s in the given base.
// All characters of s must be valid digits in base.
func (z dec) setString(s string, base int) dec {
	if base == 10 {
		return z.setDecimal(s)
	}

	// Algorithm: Collect digits in groups of at most n digits in di
	// and then use mulAddWW for every such group to add them to the
	// result.
	z = z[:0]
	b1 := Word(base)
	bn, n := decMaxPow(b1) // at most n digits in base b1 fit into a Word
	di := Word(0)          // 0 <= di < b1**i < bn
	i := 0                 // 0 <= i < n
	for k := 0; k < len(s); k++ {
		di = di*b1 + digitVal(s[k])
		i++
		// if di is "full", add it to the result
		if i == n {
			z = z.mulAddWW(z, bn, di)
			di = 0
			i = 0
		}
	}
	// add remaining digits to result
	if i > 0 {
		z = z.mulAddWW(z, pow(b1, i), di)
	}
	return z.norm()
}

// setDecimal sets z to the value of the decimal digit string s. Digits are
// grouped by _DW from the least significant end, one group per Word.
func (z dec) setDecimal(s string) dec {
	n := (len(s) + _DW - 1) / _DW
	z = z.make(n)
	for i := range z {
		end := len(s) - i*_DW
		start := end - _DW
		if start < 0 {
			start = 0
		}
		var w Word
		for _, ch := range []byte(s[start:end]) {
			w = w*10 + Word(ch-'0')
		}
		z[i] = w
	}
	return z.norm()
}

// utoa converts x to an ASCII representation in the given base using the
// given digit characters; base must be between 2 and MaxBase, inclusive.
func (x dec) utoa(base int, charset string) []byte {
	return x.itoa(false, base, charset)
}

// itoa is like utoa but it prepends a '-' if neg && x != 0.
func (x dec) itoa(neg bool, base int, charset string) []byte {
	if base < 2 || base > MaxBase {
		panic("invalid base")
	}

	// x == 0
	if len(x) == 0 {
		return []byte("0")
	}
	// len(x) > 0

	if base == 10 {
		return x.decimalString(neg)
	}

	// allocate buffer for conversion
	i := int(float64(x.digits())/math.Log10(float64(base))) + 1 // off by 1 at most
	if neg {
		i++
	}
	s := make([]byte, 0, i)

	// Extract digits from the least significant end by repeated division
	// of a local copy of x. Each division by bb yields ndigits base b digits.
	b := Word(base)
	bb, ndigits := decMaxPow(b)
	q := dec(nil).set(x)
	var r Word
	for len(q) > 0 {
		q, r = q.divW(q, bb)
		for j := 0; j < ndigits && (len(q) > 0 || r > 0); j++ {
			s = append(s, charset[r%b])
			r /= b
		}
	}
	if neg {
		s = append(s, '-')
	}

	// reverse
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return s
}

// decimalString writes the most significant Word as is, then every other
// Word zero padded to _DW digits.
func (x dec) decimalString(neg bool) []byte {
	s := make([]byte, 0, len(x)*_DW+1)
	if neg {
		s = append(s, '-')
	}
	s = strconv.AppendUint(s, uint64(x[len(x)-1]), 10)
	var group [_DW]byte
	for i := len(x) - 2; i >= 0; i-- {
		w := x[i]
		for j := _DW - 1; j >= 0; j-- {
			t := w / 10
			group[j] = '0' + byte(w-t*10)
			w = t
		}
		s = append(s, group[:]...)
	}
	return s
}
