// Package math provides integer functions built on top of bigint.Int.
//
// The functions in this package only use the public API of package bigint.
// Fixed point results, like Pi or E, are returned as integers scaled by a
// power of ten.
package math

import "github.com/db47h/bigint"

// Pow returns x**y. See bigint.Int.Pow for special cases.
//
// This function is a proxy for x.Pow(y).
func Pow(x, y bigint.Int) (bigint.Int, error) {
	return x.Pow(y)
}

// ModPow returns x**e mod m. See bigint.Int.ModPow for special cases.
//
// This function is a proxy for x.ModPow(e, m).
func ModPow(x, e, m bigint.Int) (bigint.Int, error) {
	return x.ModPow(e, m)
}

// Abs returns |x|.
//
// This function is a proxy for x.Abs().
func Abs(x bigint.Int) bigint.Int {
	return x.Abs()
}
