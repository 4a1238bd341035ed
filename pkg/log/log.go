// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log holds the process-wide logrus logger, and the context-scoped entries
// the catalog and the diagcat tool log through.
package log

import (
	"context"
	"io"
	"math"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/confutil"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// field values longer than this are truncated
const maxFieldValueLength = 61

var (
	rootLogger = logrus.NewEntry(logrus.StandardLogger())

	// L returns the logger carried by the context, or the root logger
	L = loggerFromContext

	configured atomic.Bool
)

type ctxLogKey struct{}

// in increasing verbosity; the first name for a level is the one GetLevel reports
var levelNames = []struct {
	name  string
	level logrus.Level
}{
	{"error", logrus.ErrorLevel},
	{"warn", logrus.WarnLevel},
	{"warning", logrus.WarnLevel},
	{"info", logrus.InfoLevel},
	{"debug", logrus.DebugLevel},
	{"trace", logrus.TraceLevel},
}

func lookupLevel(name string) (logrus.Level, bool) {
	name = strings.ToLower(name)
	for _, ln := range levelNames {
		if ln.name == name {
			return ln.level, true
		}
	}
	return logrus.InfoLevel, false
}

// IsValidLevel reports whether SetLevel understands the name (case-insensitive)
func IsValidLevel(name string) bool {
	_, ok := lookupLevel(name)
	return ok
}

// SetLevel sets the level of the process-wide logger. Unrecognized names select info.
func SetLevel(name string) {
	level, _ := lookupLevel(name)
	logrus.SetLevel(level)
}

func GetLevel() string {
	current := logrus.GetLevel()
	for _, ln := range levelNames {
		if ln.level == current {
			return ln.name
		}
	}
	return "info"
}

func IsDebugEnabled() bool {
	return logrus.IsLevelEnabled(logrus.DebugLevel)
}

func IsTraceEnabled() bool {
	return logrus.IsLevelEnabled(logrus.TraceLevel)
}

// InitConfig applies a logging configuration to the process-wide logger.
// Fields left nil take their value from Defaults.
func InitConfig(conf *Config) {
	configured.Store(true)

	SetLevel(confutil.StringNotEmpty(conf.Level, *Defaults.Level))
	logrus.SetOutput(newOutput(conf))

	format := confutil.StringNotEmpty(conf.Format, *Defaults.Format)
	logrus.SetReportCaller(format == "detailed")
	logrus.SetFormatter(newFormatter(format, conf))
}

// EnsureInit applies the default configuration, unless InitConfig has already run
func EnsureInit() {
	if !configured.Load() {
		InitConfig(&Config{})
	}
}

func newOutput(conf *Config) io.Writer {
	switch confutil.StringNotEmpty(conf.Output, *Defaults.Output) {
	case "file":
		filename := confutil.StringNotEmpty(conf.File.Filename, *Defaults.File.Filename)
		rootLogger.Infof("Logs diverted to %s", filename)
		maxSize := confutil.ByteSize(conf.File.MaxSize, 0, *Defaults.File.MaxSize)
		maxAge := confutil.DurationMin(conf.File.MaxAge, 0, *Defaults.File.MaxAge)
		return &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    int(math.Ceil(float64(maxSize) / 1024 / 1024)),           // megabytes, rounded up
			MaxAge:     int(math.Ceil(float64(maxAge) / float64(24*time.Hour))), // days, rounded up
			MaxBackups: confutil.IntMin(conf.File.MaxBackups, 0, *Defaults.File.MaxBackups),
			Compress:   confutil.Bool(conf.File.Compress, *Defaults.File.Compress),
		}
	case "stdout":
		return os.Stdout
	default:
		return os.Stderr
	}
}

type utcFormatter struct {
	logrus.Formatter
}

func (f *utcFormatter) Format(e *logrus.Entry) ([]byte, error) {
	e.Time = e.Time.UTC()
	return f.Formatter.Format(e)
}

func newFormatter(format string, conf *Config) logrus.Formatter {
	timestampFormat := confutil.StringNotEmpty(conf.TimeFormat, *Defaults.TimeFormat)
	disableColor := confutil.Bool(conf.DisableColor, *Defaults.DisableColor)
	forceColor := confutil.Bool(conf.ForceColor, *Defaults.ForceColor)

	var formatter logrus.Formatter
	switch format {
	case "json":
		formatter = &logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  confutil.StringNotEmpty(conf.JSON.TimestampField, *Defaults.JSON.TimestampField),
				logrus.FieldKeyLevel: confutil.StringNotEmpty(conf.JSON.LevelField, *Defaults.JSON.LevelField),
				logrus.FieldKeyMsg:   confutil.StringNotEmpty(conf.JSON.MessageField, *Defaults.JSON.MessageField),
				logrus.FieldKeyFunc:  confutil.StringNotEmpty(conf.JSON.FuncField, *Defaults.JSON.FuncField),
				logrus.FieldKeyFile:  confutil.StringNotEmpty(conf.JSON.FileField, *Defaults.JSON.FileField),
			},
		}
	case "detailed":
		formatter = &logrus.TextFormatter{
			DisableColors:   disableColor,
			ForceColors:     forceColor,
			TimestampFormat: timestampFormat,
			FullTimestamp:   true,
		}
	default:
		formatter = &prefixed.TextFormatter{
			DisableColors:   disableColor,
			ForceColors:     forceColor,
			TimestampFormat: timestampFormat,
			ForceFormatting: true,
			FullTimestamp:   true,
		}
	}
	if confutil.Bool(conf.UTC, *Defaults.UTC) {
		formatter = &utcFormatter{formatter}
	}
	return formatter
}

// WithLogger returns a context whose L() is the given entry
func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	EnsureInit()
	return context.WithValue(ctx, ctxLogKey{}, logger)
}

// WithLogField returns a context whose logger carries the field on every line
func WithLogField(ctx context.Context, key, value string) context.Context {
	if len(value) > maxFieldValueLength {
		value = value[:maxFieldValueLength] + "..."
	}
	return WithLogger(ctx, loggerFromContext(ctx).WithField(key, value))
}

func loggerFromContext(ctx context.Context) *logrus.Entry {
	if logger, ok := ctx.Value(ctxLogKey{}).(*logrus.Entry); ok {
		return logger
	}
	return rootLogger
}
