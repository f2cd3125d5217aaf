package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

// logger forwards gorm's log output to zerolog.
type logger struct {
	Logger zerolog.Logger
}

// LogMode is a no-op, levels are controlled through zerolog.
func (l *logger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *logger) Info(_ context.Context, msg string, args ...interface{}) {
	l.Logger.Info().Msgf(msg, args...)
}

func (l *logger) Warn(_ context.Context, msg string, args ...interface{}) {
	l.Logger.Warn().Msgf(msg, args...)
}

func (l *logger) Error(_ context.Context, msg string, args ...interface{}) {
	l.Logger.Error().Msgf(msg, args...)
}

// Trace logs every statement with its duration. Failed statements are
// logged at error level, except for not-found results since those are
// expected and answered to the caller.
func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()

	event := l.Logger.Debug()
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		event = l.Logger.Error().Err(err)
	}

	event.
		Str("sql", sql).
		Int64("rows", rows).
		Dur("duration", time.Since(begin)).
		Msg("[GORM] query")
}
