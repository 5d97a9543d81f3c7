// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Format modes available
const (
	Plain Format = iota
	JSON
)

// Format of the logs written by a core.
type Format int

// ToFormat chooses a log format from its name
func ToFormat(f string) (Format, error) {
	switch strings.ToUpper(f) {
	case "PLAIN":
		return Plain, nil
	case "JSON":
		return JSON, nil
	default:
		return Plain, fmt.Errorf("unknown log format: %q", f)
	}
}

func (f Format) String() string {
	if f == JSON {
		return "json"
	}
	return "plain"
}

func (f Format) Encoder() zapcore.Encoder {
	if f == JSON {
		return zapcore.NewJSONEncoder(jsonEncoderConfig)
	}
	return zapcore.NewConsoleEncoder(consoleEncoderConfig)
}

var (
	consoleEncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("[01-02|15:04:05.000]"),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	jsonEncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.NanosDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
)

func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).String())
}
