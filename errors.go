// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "github.com/pkg/errors"

// Errors returned by this package are wrapped with context about the failing
// input; use errors.Is (or errors.Cause from github.com/pkg/errors) to test
// for them.
var (
	// ErrRadix is returned for a conversion base outside [2, MaxBase].
	ErrRadix = errors.New("bigint: radix out of range")
	// ErrFormat is returned when parsing text that is not a valid integer
	// in the requested base.
	ErrFormat = errors.New("bigint: invalid integer syntax")
	// ErrDivideByZero is returned for a zero divisor or modulus, and when
	// raising zero to a negative power.
	ErrDivideByZero = errors.New("bigint: division by zero")
	// ErrExponentRange is returned when an exponent or shift count exceeds
	// MaxExp in magnitude.
	ErrExponentRange = errors.New("bigint: exponent out of range")
	// ErrArgumentRange is returned by QuoRemSmall for a divisor whose
	// magnitude is not a single digit word.
	ErrArgumentRange = errors.New("bigint: argument out of range")
)
