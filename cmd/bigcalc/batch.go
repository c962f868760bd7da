// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// A batchLine is one line of batch input along with its evaluation result.
type batchLine struct {
	n    int // line number, 1 based
	text string
	res  []string
	err  error
}

func (a *app) newBatchCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Evaluate one operation per input line",
		Long: `batch reads lines of the form "op arg..." from standard input or from a
file and prints one result line per input line, in input order. Lines are
evaluated concurrently. Empty lines and lines starting with '#' are skipped.
A failed line prints an error in its place; the command then exits with
status 1 once all lines are done.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return errors.WithStack(err)
				}
				defer f.Close()
				in = f
			}
			return a.batch(in, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read input from file instead of stdin")
	return cmd
}

// readBatch returns the non-empty, non-comment lines of r.
func readBatch(r io.Reader) ([]*batchLine, error) {
	var lines []*batchLine
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for n := 1; s.Scan(); n++ {
		text := strings.TrimSpace(s.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		lines = append(lines, &batchLine{n: n, text: text})
	}
	return lines, errors.Wrap(s.Err(), "reading batch input")
}

// batch evaluates all lines of r with at most a.cfg.Workers lines in flight
// and writes results to w in input order.
func (a *app) batch(r io.Reader, w io.Writer) error {
	lines, err := readBatch(r)
	if err != nil {
		return err
	}
	start := time.Now()

	var g errgroup.Group
	g.SetLimit(a.cfg.Workers)
	for _, l := range lines {
		g.Go(func() error {
			fields := strings.Fields(l.text)
			op := operationByName(fields[0])
			if op == nil {
				l.err = errors.Errorf("unknown operation %q", fields[0])
				return nil
			}
			l.res, l.err = a.eval(op, fields[1:])
			return nil
		})
	}
	_ = g.Wait() // errors are per line

	failed := 0
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if l.err != nil {
			failed++
			a.log.Warn("line failed", zap.Int("line", l.n), zap.Error(l.err))
			errColor.Fprintf(bw, "line %d: %v\n", l.n, l.err)
			continue
		}
		fmt.Fprintln(bw, strings.Join(l.res, " "))
	}
	if err = bw.Flush(); err != nil {
		return errors.WithStack(err)
	}
	a.log.Info("batch done",
		zap.Int("lines", len(lines)),
		zap.Int("failed", failed),
		zap.Duration("elapsed", time.Since(start)))
	if failed > 0 {
		return errors.Errorf("%d of %d lines failed", failed, len(lines))
	}
	return nil
}
