// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Int-to-string conversion functions.

package bigint

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

var (
	// "a * 10 ^ b", "a x 10 ** b" and the like
	timesTenRe = regexp.MustCompile(`\s*[*xX]\s*10\s*(\^|\*\*)\s*`)
	// [sign] integer [. fraction] e exponent
	exponentialRe = regexp.MustCompile(`^([+-])?(\d+)\.?(\d*)[eE]([+-]?\d+)$`)
)

// Parse returns the Int represented by s. The base is selected by an optional
// prefix following the sign: "0x" or "0X" selects base 16, "0c" or "0C" base
// 8, "0b" or "0B" base 2. Otherwise the base is 10 and s may also use
// exponential notation:
//
//	1e9
//	-13.441*10^5
//	56789 * 10 ** -2
//
// Any fractional part left after applying the exponent is truncated, as is a
// plain decimal fraction like "123.45". Empty digit strings parse as 0.
func Parse(s string) (Int, error) {
	return parse(s, 0)
}

// ParseBase is like Parse with an explicit base in [2, MaxBase]. Base 10 also
// accepts exponential notation; bases 16, 8 and 2 also accept the matching
// "0x", "0c" or "0b" prefix.
func ParseBase(s string, base int) (Int, error) {
	if base < 2 || base > MaxBase {
		return zero, errors.Wrapf(ErrRadix, "base %d", base)
	}
	return parse(s, base)
}

// MustParse is like Parse but panics if s cannot be parsed. It simplifies
// the initialization of package level variables.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

func parse(s string, base int) (Int, error) {
	if base == 0 || base == 10 {
		x, ok, err := parseExponential(s)
		if ok || err != nil {
			return x, err
		}
	}

	// sign
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	// base prefix
	if i+1 < len(s) && s[i] == '0' {
		b := 0
		switch s[i+1] {
		case 'x', 'X':
			b = 16
		case 'c', 'C':
			b = 8
		case 'b', 'B':
			b = 2
		}
		if b != 0 && (base == 0 || base == b) {
			base = b
			i += 2
		}
	}
	if base == 0 {
		base = 10
	}

	// digits
	start := i
	for i < len(s) && digitVal(s[i]) < MaxBase {
		i++
	}
	digits := s[start:i]

	// optional decimal fraction
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && '0' <= s[i] && s[i] <= '9' {
			i++
		}
	}
	if i != len(s) {
		return zero, errors.Wrapf(ErrFormat, "%q", s)
	}

	b := Word(base)
	for k := 0; k < len(digits); k++ {
		if digitVal(digits[k]) >= b {
			return zero, errors.Wrapf(ErrFormat, "bad digit %q for base %d in %q", digits[k], base, s)
		}
	}

	// strip leading zeros
	for len(digits) > 0 && digits[0] == '0' {
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return zero, nil
	}
	return Int{neg: neg, abs: dec(nil).setString(digits, base)}, nil
}

// parseExponential parses s as a decimal number in exponential notation. It
// returns ok == false if s is not in exponential form.
func parseExponential(s string) (x Int, ok bool, err error) {
	if loc := timesTenRe.FindStringIndex(s); loc != nil {
		s = s[:loc[0]] + "e" + s[loc[1]:]
	}
	m := exponentialRe.FindStringSubmatch(s)
	if m == nil {
		return zero, false, nil
	}
	sign, ip, fp, es := m[1], m[2], m[3], m[4]
	exp, err := strconv.ParseInt(es, 10, 64)
	switch {
	case err != nil && es[0] == '-', err == nil && exp+int64(len(ip)) <= 0:
		// |value| < 1
		return zero, true, nil
	case err != nil || exp > MaxExp:
		return zero, true, errors.Wrapf(ErrExponentRange, "%q", s)
	}
	// ip.fp * 10**exp == ipfp * 10**(exp - len(fp))
	x = makeInt(dec(nil).setDecimal(ip+fp), sign == "-")
	x, err = x.Exp10(exp - int64(len(fp)))
	if err != nil {
		return zero, true, errors.WithMessagef(err, "%q", s)
	}
	return x, true, nil
}

// Text returns the string representation of x in the given base. Base must
// be between 2 and 36, inclusive; ErrRadix is returned otherwise. Letters for
// digit values >= 10 are upper case, and negative values are prefixed with
// '-'. No base prefix is added.
func (x Int) Text(base int) (string, error) {
	if base < 2 || base > MaxBase {
		return "", errors.Wrapf(ErrRadix, "base %d", base)
	}
	return string(x.abs.itoa(x.neg, base, upperDigits)), nil
}

// String returns the decimal representation of x.
func (x Int) String() string {
	if len(x.abs) == 0 {
		return "0"
	}
	return string(x.abs.decimalString(x.neg))
}

func charset(ch rune) (int, string) {
	switch ch {
	case 'b':
		return 2, lowerDigits
	case 'o', 'O':
		return 8, lowerDigits
	case 'd', 's', 'v':
		return 10, lowerDigits
	case 'x':
		return 16, lowerDigits
	case 'X':
		return 16, upperDigits
	}
	return 0, "" // unknown format
}

// write count copies of text to s
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			_, _ = s.Write(b)
		}
	}
}

// Format implements fmt.Formatter. It accepts the formats 'b' (binary), 'o'
// (octal with 0 prefix), 'O' (octal with 0o prefix), 'd' (decimal), 'x'
// (lowercase hexadecimal) and 'X' (uppercase hexadecimal); 's' and 'v' are
// like 'd'. The '+', '-', ' ' and '#' flags, minimum digits precision, field
// width and zero padding are supported as for package fmt's integer verbs.
func (x Int) Format(s fmt.State, ch rune) {
	base, cs := charset(ch)
	if base == 0 {
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", ch, x.String())
		return
	}

	// determine sign character
	sign := ""
	switch {
	case x.neg:
		sign = "-"
	case s.Flag('+'): // supersedes ' ' when both specified
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	// determine prefix characters for indicating output base
	prefix := ""
	if s.Flag('#') {
		switch ch {
		case 'b':
			prefix = "0b"
		case 'o':
			prefix = "0"
		case 'x':
			prefix = "0x"
		case 'X':
			prefix = "0X"
		}
	}
	if ch == 'O' {
		prefix = "0o"
	}

	digits := x.abs.utoa(base, cs)

	var left int  // space characters to left of digits for right justification ("%8d")
	var zeros int // zero characters as left-most digits ("%.8d")
	var right int // space characters to right of digits for left justification ("%-8d")

	// determine number padding from precision: the least number of digits to output
	precision, precisionSet := s.Precision()
	if precisionSet {
		switch {
		case len(digits) < precision:
			zeros = precision - len(digits) // count of zero padding
		case len(digits) == 1 && digits[0] == '0' && precision == 0:
			return // print nothing if zero value (x == 0) and zero precision ("." or ".0")
		}
	}

	// determine field pad from width: the least number of characters to output
	length := len(sign) + len(prefix) + zeros + len(digits)
	if width, widthSet := s.Width(); widthSet && length < width { // pad as specified
		switch d := width - length; {
		case s.Flag('-'):
			// pad on the right with spaces; supersedes '0' when both specified
			right = d
		case s.Flag('0') && !precisionSet:
			// pad with zeros unless precision also specified
			zeros = d
		default:
			// pad on the left with spaces
			left = d
		}
	}

	// print number as [left pad][sign][prefix][zero pad][digits][right pad]
	writeMultiple(s, " ", left)
	writeMultiple(s, sign, 1)
	writeMultiple(s, prefix, 1)
	writeMultiple(s, "0", zeros)
	_, _ = s.Write(digits)
	writeMultiple(s, " ", right)
}

// Scan implements fmt.Scanner. It accepts the formats 'b' (binary), 'o'
// (octal), 'd' (decimal), 'x' and 'X' (hexadecimal); 's' and 'v' select the
// base from the number's prefix as Parse does.
//
// Since Int values are immutable, Scan is the one method that assigns to its
// receiver.
func (z *Int) Scan(s fmt.ScanState, ch rune) error {
	base := 0
	switch ch {
	case 'b':
		base = 2
	case 'o':
		base = 8
	case 'd':
		base = 10
	case 'x', 'X':
		base = 16
	case 's', 'v':
		// let Parse determine the base
	default:
		return errors.Errorf("bigint.Int.Scan: invalid verb %q", ch)
	}
	tok, err := s.Token(true, nil)
	if err != nil {
		return errors.Wrap(err, "bigint.Int.Scan")
	}
	x, err := parse(string(tok), base)
	if err != nil {
		return err
	}
	*z = x
	return nil
}
