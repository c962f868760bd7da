// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bigcalc is an arbitrary-precision integer calculator.
//
//	bigcalc add 123456789012345678901234567890 987654321
//	bigcalc --radix 16 mul DEADBEEF CAFEBABE
//	bigcalc modpow 5 3 13
//	echo "pow 2 100" | bigcalc batch
package main

import (
	"os"

	"github.com/fatih/color"
)

var errColor = color.New(color.FgRed, color.Bold)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errColor.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
