// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging builds the zap loggers used by bigcalc.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the logger settings.
type Config struct {
	// Level is a zap level name. Empty selects "warn".
	Level string
	// Format is "console" or "json". Empty selects "console".
	Format string
	// Writer receives log records. Nil selects os.Stderr.
	Writer io.Writer
}

// ParseLevel converts a level name, case insensitive, to a zapcore.Level.
func ParseLevel(s string) (zapcore.Level, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return l, errors.Errorf("invalid log level %q", s)
	}
	return l, nil
}

// New returns a logger configured by c.
func New(c Config) (*zap.Logger, error) {
	if c.Level == "" {
		c.Level = "warn"
	}
	level, err := ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.NameKey = "name"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch c.Format {
	case "", "console":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, errors.Errorf("invalid log format %q", c.Format)
	}

	return zap.New(zapcore.NewCore(encoder, writeSyncer(c.Writer), level)), nil
}

// writeSyncer wraps w for use by a zapcore.Core. Writers, with the exception
// of an *os.File, need to be safe for concurrent use.
func writeSyncer(w io.Writer) zapcore.WriteSyncer {
	switch t := w.(type) {
	case nil:
		return zapcore.Lock(os.Stderr)
	case *os.File:
		return zapcore.Lock(t)
	case zapcore.WriteSyncer:
		return t
	default:
		return zapcore.AddSync(w)
	}
}
