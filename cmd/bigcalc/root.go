// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/db47h/bigint/internal/config"
	"github.com/db47h/bigint/internal/logging"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds the state shared by all subcommands once flags and the
// configuration file have been processed.
type app struct {
	configPath string
	cfg        config.Config
	log        *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "bigcalc",
		Short:         "Arbitrary-precision integer calculator",
		Long:          "bigcalc evaluates arithmetic on integers of any size, in any base from 2 to 36.\nNegative arguments must follow a \"--\" separator.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a TOML configuration file")
	flags.Int("radix", a.cfg.Radix, "base of input and output numbers (2-36, 0 for prefix detection)")
	flags.String("color", a.cfg.Color, "colorize output (auto|on|off)")
	flags.String("log-level", a.cfg.LogLevel, "log level (debug|info|warn|error)")
	flags.String("log-format", a.cfg.LogFormat, "log format (console|json)")
	flags.Int("workers", a.cfg.Workers, "maximum number of batch lines evaluated concurrently")

	for _, op := range operations {
		rootCmd.AddCommand(a.newOpCmd(op))
	}
	rootCmd.AddCommand(a.newBatchCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads the configuration file, applies flag overrides and builds the
// logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("radix") {
		cfg.Radix, _ = flags.GetInt("radix")
	}
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	switch cfg.Color {
	case config.ColorOn:
		color.NoColor = false
	case config.ColorOff:
		color.NoColor = true
	}

	l, err := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = l.Named(cmd.Name())
	a.log.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.Int("radix", cfg.Radix),
		zap.Int("workers", cfg.Workers))
	return nil
}
