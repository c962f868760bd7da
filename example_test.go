// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint_test

import (
	"errors"
	"fmt"

	"github.com/db47h/bigint"
)

func ExampleParse() {
	for _, s := range []string{"123", "-0x1F", "1.234*10^3", "56789 * 10 ** -2", "1e20", "12.75"} {
		x, err := bigint.Parse(s)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%-18q %v\n", s, x)
	}
	// Output:
	// "123"              123
	// "-0x1F"            -31
	// "1.234*10^3"       1234
	// "56789 * 10 ** -2" 567
	// "1e20"             100000000000000000000
	// "12.75"            12
}

func ExampleParseBase() {
	x, err := bigint.ParseBase("ff", 16)
	if err != nil {
		panic(err)
	}
	s, _ := x.Text(16)
	fmt.Println(x, s)

	_, err = bigint.ParseBase("12", 40)
	fmt.Println(errors.Is(err, bigint.ErrRadix))
	// Output:
	// 255 FF
	// true
}

func ExampleInt_QuoRem() {
	q, r, err := bigint.NewInt(-7).QuoRem(bigint.NewInt(2))
	fmt.Println(q, r, err)

	_, _, err = bigint.NewInt(1).QuoRem(bigint.Int{})
	fmt.Println(errors.Is(err, bigint.ErrDivideByZero))
	// Output:
	// -3 -1 <nil>
	// true
}

func ExampleInt_Pow() {
	x, _ := bigint.NewInt(2).Pow(bigint.NewInt(100))
	fmt.Println(x)
	// Output: 1267650600228229401496703205376
}

func ExampleInt_ModPow() {
	x, _ := bigint.NewInt(5).ModPow(bigint.NewInt(3), bigint.NewInt(13))
	fmt.Println(x)
	// Output: 8
}

func ExampleInt_Format() {
	x := bigint.MustParse("-255")
	fmt.Printf("%d %x %#X %b %O %08d\n", x, x, x, x.Abs(), x.Abs(), x)
	// Output: -255 -ff -0XFF 11111111 0o377 -0000255
}

func ExampleInt_Scan() {
	var x, y bigint.Int
	if _, err := fmt.Sscan("18446744073709551616 0x10", &x, &y); err != nil {
		panic(err)
	}
	fmt.Println(x.Mul(y))
	// Output: 295147905179352825856
}

func ExampleInt_Exp10() {
	x := bigint.NewInt(123456)
	a, _ := x.Exp10(3)
	b, _ := x.Exp10(-4)
	fmt.Println(a, b)
	// Output: 123456000 12
}
