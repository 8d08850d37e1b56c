// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package logger

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sirupsen/logrus"
)

type LogFormat string

const (
	levelOpt  = "level"
	formatOpt = "format"

	logFormatText          LogFormat = "text"
	logFormatJSON          LogFormat = "json"
	logFormatTextTimestamp LogFormat = "text-ts"
	logFormatJSONTimestamp LogFormat = "json-ts"

	defaultLogFormat LogFormat    = logFormatText
	defaultLogLevel  logrus.Level = logrus.InfoLevel
)

// FieldLogger is the logger handed to packages. Sub-systems derive their own
// with GetLogger().With(logfields.LogSubsys, name).
type FieldLogger = *slog.Logger

// LogOptions maps configuration key-value pairs related to logging.
type LogOptions map[string]string

func (o LogOptions) getLogLevel() (level logrus.Level) {
	l, ok := o[levelOpt]
	if !ok {
		return defaultLogLevel
	}

	var err error
	if level, err = logrus.ParseLevel(l); err != nil {
		DefaultSlogLogger.Warn("Ignoring user-configured log level", "error", err)
		return defaultLogLevel
	}
	return
}

func (o LogOptions) getLogFormat() LogFormat {
	format, ok := o[formatOpt]
	if !ok {
		return defaultLogFormat
	}

	// It was already validate with PopulateLogOpts()
	return LogFormat(strings.ToLower(format))
}

// PopulateLogOpts populates the logger options making sure that passed values are valid.
func PopulateLogOpts(o LogOptions, level string, format string) {
	if level != "" {
		_, err := logrus.ParseLevel(level)
		if err != nil {
			DefaultSlogLogger.Warn("Ignoring user-configured log level", "error", fmt.Errorf("incorrect log level '%s'", level))
		} else {
			o[levelOpt] = level
		}
	}

	if format != "" {
		format = strings.ToLower(format)
		switch LogFormat(format) {
		case logFormatText, logFormatJSON, logFormatTextTimestamp, logFormatJSONTimestamp:
			o[formatOpt] = format
		default:
			DefaultSlogLogger.Warn("Ignoring user-configured log format",
				"error", fmt.Errorf("incorrect log format '%s', expected 'text', 'json', 'text-ts' or 'json-ts'", format))
		}
	}
}

// SetupLogging setup logger options taking into consideration the debug flag.
// Options that didn't go through PopulateLogOpts are validated here and the
// default logger is left untouched when they are invalid.
func SetupLogging(o LogOptions, debug bool) error {
	if l, ok := o[levelOpt]; ok {
		if _, err := logrus.ParseLevel(l); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
	}
	if f, ok := o[formatOpt]; ok {
		switch LogFormat(strings.ToLower(f)) {
		case logFormatText, logFormatJSON, logFormatTextTimestamp, logFormatJSONTimestamp:
		default:
			return fmt.Errorf("invalid log format '%s', expected 'text', 'json', 'text-ts' or 'json-ts'", f)
		}
	}

	if debug {
		o = copyOpts(o)
		o[levelOpt] = logrus.DebugLevel.String()
	}
	InitializeSlog(o, false)
	return nil
}

func copyOpts(o LogOptions) LogOptions {
	ret := make(LogOptions, len(o)+1)
	for k, v := range o {
		ret[k] = v
	}
	return ret
}

// GetLogLevel returns the level the default logger was configured with.
func GetLogLevel() slog.Level {
	return logLevel.Level()
}

// GetLogger returns the DefaultSlogLogger that was previously setup
func GetLogger() FieldLogger {
	return DefaultSlogLogger
}
