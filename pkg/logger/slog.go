// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"

	"github.com/cilium/oserror/pkg/logger/logfields"
)

// logrErrorKey is the key used by the logr library for the error parameter.
const logrErrorKey = "err"

// SlogNopHandler discards all logs.
var SlogNopHandler slog.Handler = nopHandler{}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (n nopHandler) WithAttrs([]slog.Attr) slog.Handler      { return n }
func (n nopHandler) WithGroup(string) slog.Handler           { return n }

var logLevel = func() *slog.LevelVar {
	v := new(slog.LevelVar)
	v.Set(slogLevel(defaultLogLevel))
	return v
}()

var slogHandlerOpts = &slog.HandlerOptions{
	AddSource:   false,
	Level:       logLevel,
	ReplaceAttr: replaceAttrFnWithoutTimestamp,
}

// DefaultSlogLogger is for convenient usage. Will be overwritten once InitializeSlog is called.
var DefaultSlogLogger = slog.New(slog.NewTextHandler(
	os.Stderr,
	slogHandlerOpts,
))

func slogLevel(l logrus.Level) slog.Level {
	switch l {
	case logrus.DebugLevel, logrus.TraceLevel:
		return slog.LevelDebug
	case logrus.InfoLevel:
		return slog.LevelInfo
	case logrus.WarnLevel:
		return slog.LevelWarn
	case logrus.ErrorLevel, logrus.PanicLevel, logrus.FatalLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitializeSlog configures DefaultSlogLogger from the log options, writing
// to stderr unless useStdout is set.
func InitializeSlog(logOpts LogOptions, useStdout bool) {
	var writer io.Writer = os.Stderr
	if useStdout {
		writer = os.Stdout
	}
	InitializeSlogWithWriter(logOpts, writer)
}

// InitializeSlogWithWriter is InitializeSlog with an explicit destination.
func InitializeSlogWithWriter(logOpts LogOptions, writer io.Writer) {
	logLevel.Set(slogLevel(logOpts.getLogLevel()))
	opts := *slogHandlerOpts

	logFormat := logOpts.getLogFormat()
	switch logFormat {
	case logFormatJSON, logFormatText:
		opts.ReplaceAttr = replaceAttrFnWithoutTimestamp
	case logFormatJSONTimestamp, logFormatTextTimestamp:
		opts.ReplaceAttr = replaceAttrFn
	}

	switch logFormat {
	case logFormatJSON, logFormatJSONTimestamp:
		DefaultSlogLogger = slog.New(slog.NewJSONHandler(
			writer,
			&opts,
		))
	default:
		DefaultSlogLogger = slog.New(slog.NewTextHandler(
			writer,
			&opts,
		))
	}
}

func replaceAttrFn(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		// Adjust to timestamp format that logrus uses; except that we can't
		// force slog to quote the value like logrus does...
		return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
	case slog.LevelKey:
		// Lower-case the log level
		return slog.Attr{
			Key:   a.Key,
			Value: slog.StringValue(strings.ToLower(a.Value.String())),
		}
	case logrErrorKey:
		// Uniform the attribute identifying the error
		return slog.Attr{
			Key:   logfields.Error,
			Value: a.Value,
		}
	}
	return a
}

func replaceAttrFnWithoutTimestamp(groups []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		// Drop timestamps
		return slog.Attr{}
	default:
		return replaceAttrFn(groups, a)
	}
}

// InitializeLogr routes the library's logs into an existing logr.Logger,
// replacing DefaultSlogLogger. slog levels map onto logr verbosity, so debug
// records need a sink enabled at V(4).
func InitializeLogr(l logr.Logger) {
	DefaultSlogLogger = slog.New(logr.ToSlogHandler(l))
}
