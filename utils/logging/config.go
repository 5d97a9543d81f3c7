// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config defines the configuration of a logger
type Config struct {
	// DisplayLevel is the level written to stderr.
	DisplayLevel Level `json:"displayLevel"`
	// LogLevel is the level written to the log file, if Directory is set.
	LogLevel  Level  `json:"logLevel"`
	LogFormat Format `json:"logFormat"`

	// Directory holds rotated log files. Empty disables file logging.
	Directory string `json:"directory"`
	// MaxSize is the size, in megabytes, a log file may reach before it is
	// rotated.
	MaxSize int `json:"maxSize"`
	// MaxFiles is the number of rotated files to keep.
	MaxFiles int `json:"maxFiles"`
	// MaxAge is the number of days rotated files are kept.
	MaxAge   int  `json:"maxAge"`
	Compress bool `json:"compress"`
}

func DefaultConfig() Config {
	return Config{
		DisplayLevel: Info,
		LogLevel:     Debug,
		LogFormat:    Plain,
		MaxSize:      8,
		MaxFiles:     7,
		MaxAge:       30,
	}
}

// New returns a logger named [name] configured by [config].
func New(name string, config Config) Logger {
	cores := []WrappedCore{
		NewWrappedCore(config.DisplayLevel, nopCloser{os.Stderr}, config.LogFormat.Encoder()),
	}
	if config.Directory != "" {
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(config.Directory, name+".log"),
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxFiles,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		}
		cores = append(cores, NewWrappedCore(config.LogLevel, rw, JSON.Encoder()))
	}
	return NewLogger(name, cores...)
}

// nopCloser keeps Stop from closing stderr.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
