// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigint implements arbitrary-precision signed integer arithmetic.

Unlike big.Int, the magnitude of an Int is stored in a little-endian Word slice
of base 10**9 digits, 9 decimal digits per 32 bits Word. All arithmetic
operations are performed directly in base 10**9, which makes conversion to and
from decimal text linear in the number of digits.

The zero value for an Int corresponds to 0. Thus, new values can be declared
in the usual ways and denote 0 without further initialization:

    var x bigint.Int // x is an Int of value 0

Alternatively, new Int values can be created with the functions:

    func NewInt(x int64) Int
    func NewUint64(x uint64) Int
    func Parse(s string) (Int, error)
    func ParseBase(s string, base int) (Int, error)

Int values are immutable. Operations are methods of the form

    func (x Int) Unary() Int              // z = unary x
    func (x Int) Binary(y Int) Int        // z = x binary y
    func (x Int) Pred() P                 // p = pred(x)

and never modify their receiver or arguments, so that expressions chain
naturally:

    z := a.Mul(b).Add(c)

Immutability makes Ints safe for concurrent use without synchronization. Since
operands are never overwritten, two Ints may share the same underlying digits.

Operations that can fail return an error as their last result instead of
panicking: division by zero, out of range exponents or shift counts, invalid
bases and malformed text. The returned errors wrap the sentinel errors
ErrRadix, ErrFormat, ErrDivideByZero, ErrExponentRange and ErrArgumentRange
and can be tested with errors.Is.

Division truncates toward zero, like Go's integer division: the remainder has
the sign of the dividend.

Int implements the fmt package's Formatter and Scanner interfaces, the
encoding TextMarshaler, json Marshaler and gob GobEncoder interfaces with
their decoding counterparts, and the CustomEncoder and CustomDecoder
interfaces of github.com/vmihailenco/msgpack/v5.
*/
package bigint
