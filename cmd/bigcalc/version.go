// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// version can be overridden at build time with
//
//	-ldflags "-X main.version=v1.2.3"
var version = "v0.1.0-dev"

var versionColor = color.New(color.FgGreen, color.Bold)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the bigcalc version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "bigcalc %s (%s %s/%s)\n",
				versionColor.Sprint(version), runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return err
		},
	}
}
