// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides error-collecting contexts for bigint expressions.
//
// Operations that can fail in package bigint return an error along with
// their result, which makes long expressions tedious to write. A Context
// wraps these operations so that they only return an Int:
//
//    func (c *Context) UnaryOp(x bigint.Int) bigint.Int
//    func (c *Context) BinaryOp(x, y bigint.Int) bigint.Int
//
// The first error encountered is recorded in the Context. Further operations
// with the context are no-ops returning 0 until (*Context).Err is called to
// check for errors and reset the error state.
//
// A Context is not safe for concurrent use; the Int values it returns are.
package context

import (
	"github.com/db47h/bigint"
	"github.com/pkg/errors"
)

// A Context is a wrapper around bigint operations that facilitates error
// handling and text conversions in a fixed base.
type Context struct {
	base int
	err  error
}

// New creates a new context using the given base for text conversions. A base
// of 0 selects base 10 for output and the base prefix rules of bigint.Parse
// for input.
func New(base int) *Context {
	return new(Context).SetBase(base)
}

// Base returns the base used by c for text conversions.
func (c *Context) Base() int {
	return c.base
}

// SetBase sets c's base for text conversions and returns c. An invalid base
// is recorded as an error on first use.
func (c *Context) SetBase(base int) *Context {
	c.base = base
	return c
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// check returns x, or records err and returns 0 if err is not nil.
func (c *Context) check(x bigint.Int, err error) bigint.Int {
	if err != nil {
		c.err = err
		return bigint.Int{}
	}
	return x
}

// Parse returns the value of s in c's base.
func (c *Context) Parse(s string) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	if c.base == 0 {
		return c.check(bigint.Parse(s))
	}
	return c.check(bigint.ParseBase(s, c.base))
}

// ParseBase returns the value of s in the given base.
func (c *Context) ParseBase(s string, base int) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	return c.check(bigint.ParseBase(s, base))
}

// Text returns the representation of x in c's base. It returns the empty
// string if an error is pending.
func (c *Context) Text(x bigint.Int) string {
	if c.err != nil {
		return ""
	}
	base := c.base
	if base == 0 {
		base = 10
	}
	s, err := x.Text(base)
	if err != nil {
		c.err = err
		return ""
	}
	return s
}

// Add returns the sum x+y.
func (c *Context) Add(x, y bigint.Int) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	return x.Add(y)
}

// Sub returns the difference x-y.
func (c *Context) Sub(x, y bigint.Int) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	return x.Sub(y)
}

// Mul returns the product x*y.
func (c *Context) Mul(x, y bigint.Int) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	return x.Mul(y)
}

// Square returns x*x.
func (c *Context) Square(x bigint.Int) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	return x.Square()
}

// Quo returns the quotient x/y truncated toward zero.
func (c *Context) Quo(x, y bigint.Int) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	return c.check(x.Quo(y))
}

// Rem returns the remainder x%y.
func (c *Context) Rem(x, y bigint.Int) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	return c.check(x.Rem(y))
}

// QuoRem returns the quotient and remainder of x/y.
func (c *Context) QuoRem(x, y bigint.Int) (q, r bigint.Int) {
	if c.err != nil {
		return
	}
	q, r, err := x.QuoRem(y)
	if err != nil {
		c.err = err
		return bigint.Int{}, bigint.Int{}
	}
	return q, r
}

// Pow returns x**y.
func (c *Context) Pow(x, y bigint.Int) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	return c.check(x.Pow(y))
}

// ModPow returns x**e mod m.
func (c *Context) ModPow(x, e, m bigint.Int) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	return c.check(x.ModPow(e, m))
}

// Exp10 returns x * 10**n.
func (c *Context) Exp10(x bigint.Int, n int64) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	return c.check(x.Exp10(n))
}

// Neg returns -x.
func (c *Context) Neg(x bigint.Int) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	return x.Neg()
}

// Abs returns |x|.
func (c *Context) Abs(x bigint.Int) bigint.Int {
	if c.err != nil {
		return bigint.Int{}
	}
	return x.Abs()
}

// Int64 returns the int64 value of x. Values that do not fit record an error
// wrapping bigint.ErrArgumentRange.
func (c *Context) Int64(x bigint.Int) int64 {
	if c.err != nil {
		return 0
	}
	v, ok := x.Int64()
	if !ok {
		c.err = errors.Wrapf(bigint.ErrArgumentRange, "%s overflows int64", x)
		return 0
	}
	return v
}
