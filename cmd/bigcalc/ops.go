// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/db47h/bigint"
	"github.com/db47h/bigint/context"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// An operation is a calculator function taking a fixed number of arguments.
type operation struct {
	name  string
	args  string // argument names, for usage messages
	short string
	eval  func(c *context.Context, args []string) ([]string, error)
}

// arity returns the number of arguments of op.
func (op *operation) arity() int {
	return len(strings.Fields(op.args))
}

var operations = []*operation{
	{"add", "x y", "Print x+y", intOp(func(c *context.Context, x []bigint.Int) []bigint.Int {
		return []bigint.Int{c.Add(x[0], x[1])}
	})},
	{"sub", "x y", "Print x-y", intOp(func(c *context.Context, x []bigint.Int) []bigint.Int {
		return []bigint.Int{c.Sub(x[0], x[1])}
	})},
	{"mul", "x y", "Print x*y", intOp(func(c *context.Context, x []bigint.Int) []bigint.Int {
		return []bigint.Int{c.Mul(x[0], x[1])}
	})},
	{"sq", "x", "Print x*x", intOp(func(c *context.Context, x []bigint.Int) []bigint.Int {
		return []bigint.Int{c.Square(x[0])}
	})},
	{"div", "x y", "Print x/y truncated toward zero", intOp(func(c *context.Context, x []bigint.Int) []bigint.Int {
		return []bigint.Int{c.Quo(x[0], x[1])}
	})},
	{"rem", "x y", "Print x%y, with the sign of x", intOp(func(c *context.Context, x []bigint.Int) []bigint.Int {
		return []bigint.Int{c.Rem(x[0], x[1])}
	})},
	{"divrem", "x y", "Print the quotient and remainder of x/y", intOp(func(c *context.Context, x []bigint.Int) []bigint.Int {
		q, r := c.QuoRem(x[0], x[1])
		return []bigint.Int{q, r}
	})},
	{"pow", "x y", "Print x**y", intOp(func(c *context.Context, x []bigint.Int) []bigint.Int {
		return []bigint.Int{c.Pow(x[0], x[1])}
	})},
	{"modpow", "x e m", "Print x**e mod m", intOp(func(c *context.Context, x []bigint.Int) []bigint.Int {
		return []bigint.Int{c.ModPow(x[0], x[1], x[2])}
	})},
	{"exp10", "x n", "Print x*10**n, truncated toward zero for n < 0", intOp(func(c *context.Context, x []bigint.Int) []bigint.Int {
		return []bigint.Int{c.Exp10(x[0], c.Int64(x[1]))}
	})},
	{"cmp", "x y", "Print -1, 0 or 1 as x is less than, equal to or greater than y", evalCmp},
	{"conv", "x base", "Print x in the given base", evalConv},
	{"log", "x", "Print the natural logarithm of x", evalLog},
}

// operationByName returns the operation with the given name, or nil.
func operationByName(name string) *operation {
	for _, op := range operations {
		if op.name == name {
			return op
		}
	}
	return nil
}

// intOp returns an eval function that parses its arguments, applies f and
// formats the results, all in the context's base.
func intOp(f func(c *context.Context, x []bigint.Int) []bigint.Int) func(*context.Context, []string) ([]string, error) {
	return func(c *context.Context, args []string) ([]string, error) {
		x := parseArgs(c, args)
		rs := f(c, x)
		out := make([]string, len(rs))
		for i, r := range rs {
			out[i] = c.Text(r)
		}
		return out, c.Err()
	}
}

func parseArgs(c *context.Context, args []string) []bigint.Int {
	x := make([]bigint.Int, len(args))
	for i, s := range args {
		x[i] = c.Parse(s)
	}
	return x
}

func evalCmp(c *context.Context, args []string) ([]string, error) {
	x := parseArgs(c, args)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return []string{strconv.Itoa(x[0].Cmp(x[1]))}, nil
}

func evalConv(c *context.Context, args []string) ([]string, error) {
	x := c.Parse(args[0])
	if err := c.Err(); err != nil {
		return nil, err
	}
	base, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, errors.Wrapf(bigint.ErrRadix, "base %q", args[1])
	}
	s, err := x.Text(base)
	if err != nil {
		return nil, err
	}
	return []string{s}, nil
}

func evalLog(c *context.Context, args []string) ([]string, error) {
	x := c.Parse(args[0])
	if err := c.Err(); err != nil {
		return nil, err
	}
	return []string{strconv.FormatFloat(x.Log(), 'g', -1, 64)}, nil
}

// eval runs op on args with a fresh context in the configured radix.
func (a *app) eval(op *operation, args []string) ([]string, error) {
	if len(args) != op.arity() {
		return nil, errors.Errorf("%s: expected %d arguments, got %d", op.name, op.arity(), len(args))
	}
	res, err := op.eval(context.New(a.cfg.Radix), args)
	if err != nil {
		return nil, errors.WithMessage(err, op.name)
	}
	return res, nil
}

func (a *app) newOpCmd(op *operation) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s %s", op.name, op.args),
		Short: op.short,
		Args:  cobra.ExactArgs(op.arity()),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Debug("evaluating", zap.Strings("args", args))
			res, err := a.eval(op, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(res, " "))
			return err
		},
	}
}
