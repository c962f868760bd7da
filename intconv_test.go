// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var parseTests = []struct {
	in   string
	base int
	out  string
	err  error
}{
	{"", 0, "0", nil},
	{"0", 0, "0", nil},
	{"-0", 0, "0", nil},
	{"+", 0, "0", nil},
	{"123", 0, "123", nil},
	{"+123", 0, "123", nil},
	{"-123", 0, "-123", nil},
	{"000000000000000000000042", 0, "42", nil},
	{"123456789012345678901234567890", 0, "123456789012345678901234567890", nil},
	{"123.999", 0, "123", nil},
	{"-0.5", 0, "0", nil},
	{"12.", 0, "12", nil},
	{"0x1F", 0, "31", nil},
	{"-0XfF", 0, "-255", nil},
	{"0c17", 0, "15", nil},
	{"0b1011", 0, "11", nil},
	{"0x", 0, "0", nil},
	{"0b12", 0, "", ErrFormat},
	{"0x1g", 0, "", ErrFormat},
	{"12a", 0, "", ErrFormat},
	{"1 2", 0, "", ErrFormat},
	{" 12", 0, "", ErrFormat},
	{"1.2.3", 0, "", ErrFormat},
	{"1.2a", 0, "", ErrFormat},
	{"--1", 0, "", ErrFormat},

	// exponential notation
	{"1e9", 0, "1000000000", nil},
	{"1E9", 10, "1000000000", nil},
	{"-2e3", 0, "-2000", nil},
	{"1.234*10^3", 0, "1234", nil},
	{"56789 * 10 ** -2", 0, "567", nil},
	{"-13.441*10^5", 0, "-1344100", nil},
	{"1.12300e-1", 0, "0", nil},
	{"5x10^2", 0, "500", nil},
	{"7e-400000000000000000000", 0, "0", nil},
	{"1e2147483648", 0, "", ErrExponentRange},
	{"1e400000000000000000000", 0, "", ErrExponentRange},

	// explicit bases
	{"ff", 16, "255", nil},
	{"FF", 16, "255", nil},
	{"0xff", 16, "255", nil},
	{"0b11", 16, "2833", nil},
	{"0b11", 2, "3", nil},
	{"0c777", 8, "511", nil},
	{"z", 36, "35", nil},
	{"-ZZ", 36, "-1295", nil},
	{"102", 2, "", ErrFormat},
	{"1e9", 16, "489", nil},
	{"1", 1, "", ErrRadix},
	{"1", 37, "", ErrRadix},
	{"bad", 37, "", ErrRadix},
}

func TestParse(t *testing.T) {
	for _, d := range parseTests {
		var x Int
		var err error
		if d.base == 0 {
			x, err = Parse(d.in)
		} else {
			x, err = ParseBase(d.in, d.base)
		}
		if d.err != nil {
			assert.True(t, errors.Is(err, d.err), "parse(%q, %d): got error %v, want %v", d.in, d.base, err, d.err)
			continue
		}
		if !assert.NoError(t, err, "parse(%q, %d)", d.in, d.base) {
			continue
		}
		valid(t, x)
		assert.Equal(t, d.out, x.String(), "parse(%q, %d)", d.in, d.base)
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("not a number") })
	assert.NotPanics(t, func() { MustParse("-1234") })
}

func TestTextRoundTrip(t *testing.T) {
	for i := 0; i < 300; i++ {
		x := rndInt(5)
		bx := toBig(x)
		for base := 2; base <= MaxBase; base++ {
			s, err := x.Text(base)
			require.NoError(t, err)
			require.Equal(t, strings.ToUpper(bx.Text(base)), s, "base %d", base)
			y, err := ParseBase(s, base)
			require.NoError(t, err, "ParseBase(%q, %d)", s, base)
			require.True(t, y.Equal(x), "base %d: %s -> %q -> %s", base, x, s, y)
		}
	}
}

func TestText(t *testing.T) {
	for _, d := range []struct {
		x    string
		base int
		out  string
	}{
		{"0", 2, "0"},
		{"0", 36, "0"},
		{"255", 16, "FF"},
		{"-255", 16, "-FF"},
		{"255", 2, "11111111"},
		{"1000000000", 10, "1000000000"},
		{"1000000001", 10, "1000000001"},
		{"-1000000000000000000", 10, "-1000000000000000000"},
		{"1295", 36, "ZZ"},
		{"18446744073709551616", 16, "10000000000000000"},
	} {
		s, err := MustParse(d.x).Text(d.base)
		require.NoError(t, err)
		assert.Equal(t, d.out, s, "%s in base %d", d.x, d.base)
	}

	_, err := NewInt(5).Text(1)
	assert.True(t, errors.Is(err, ErrRadix))
	_, err = NewInt(5).Text(37)
	assert.True(t, errors.Is(err, ErrRadix))
}

func TestIntString(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := rndInt(20)
		require.Equal(t, toBig(x).String(), x.String())
	}
}

func TestFormat(t *testing.T) {
	for _, d := range []struct {
		format string
		in     string
		out    string
	}{
		{"%b", "0", "0"},
		{"%b", "5", "101"},
		{"%#b", "5", "0b101"},
		{"%o", "8", "10"},
		{"%#o", "8", "010"},
		{"%O", "8", "0o10"},
		{"%d", "-10", "-10"},
		{"%s", "-10", "-10"},
		{"%v", "1234567890123", "1234567890123"},
		{"%x", "255", "ff"},
		{"%X", "255", "FF"},
		{"%#x", "-255", "-0xff"},
		{"%#X", "255", "0XFF"},
		{"%+d", "7", "+7"},
		{"% d", "7", " 7"},
		{"%8d", "-42", "     -42"},
		{"%-8d|", "-42", "-42     |"},
		{"%08d", "-42", "-0000042"},
		{"%.5d", "42", "00042"},
		{"%8.5d", "42", "   00042"},
		{"%.0d", "0", ""},
		{"%.d", "0", ""},
		{"%.0d", "1", "1"},
		{"%#10x", "255", "      0xff"},
		{"%q", "12", "%!q(bigint.Int=12)"},
	} {
		got := fmt.Sprintf(d.format, MustParse(d.in))
		assert.Equal(t, d.out, got, "Sprintf(%q, %s)", d.format, d.in)
	}
}

func TestFormatAgainstBig(t *testing.T) {
	formats := []string{"%d", "%x", "%X", "%o", "%b", "%#x", "%+d", "%30d", "%-30d", "%030d", "%.40d"}
	for i := 0; i < 200; i++ {
		x := rndInt(3)
		bx := toBig(x)
		for _, f := range formats {
			require.Equal(t, fmt.Sprintf(f, bx), fmt.Sprintf(f, x), "format %q", f)
		}
	}
}

func TestScan(t *testing.T) {
	for _, d := range []struct {
		format string
		in     string
		out    string
		ok     bool
	}{
		{"%d", "123456789012345678901234567890", "123456789012345678901234567890", true},
		{"%d", "-42", "-42", true},
		{"%x", "ff", "255", true},
		{"%X", "0xFF", "255", true},
		{"%b", "1010", "10", true},
		{"%o", "777", "511", true},
		{"%v", "0x10", "16", true},
		{"%s", "1e12", "1000000000000", true},
		{"%d", "12z", "", false},
		{"%q", "12", "", false},
	} {
		var x Int
		_, err := fmt.Sscanf(d.in, d.format, &x)
		if !d.ok {
			assert.Error(t, err, "Sscanf(%q, %q)", d.in, d.format)
			continue
		}
		require.NoError(t, err, "Sscanf(%q, %q)", d.in, d.format)
		assert.Equal(t, d.out, x.String())
	}

	var x, y Int
	n, err := fmt.Sscan("  31   -0x1f", &x, &y)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, x.Equal(y.Neg()))
}

func TestSetDecimalGroups(t *testing.T) {
	for n := 1; n <= 40; n++ {
		s := strings.Repeat("7", n)
		x := dec(nil).setDecimal(s)
		want, _ := new(big.Int).SetString(s, 10)
		require.Zero(t, want.Cmp(wordsToBig(x)), "%d digits", n)
	}
}

func BenchmarkString(b *testing.B) {
	x := fromBig(new(big.Int).Exp(big.NewInt(3), big.NewInt(20000), nil))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.String()
	}
}

func BenchmarkParse(b *testing.B) {
	s := new(big.Int).Exp(big.NewInt(3), big.NewInt(20000), nil).String()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(s)
	}
}

func BenchmarkText16(b *testing.B) {
	x := fromBig(new(big.Int).Exp(big.NewInt(3), big.NewInt(5000), nil))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = x.Text(16)
	}
}
