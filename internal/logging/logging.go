package logging

import (
	"context"
	"io"
	"log/slog"
	"slices"

	"github.com/svgedit/svgedit/internal/pubsub"
	"golang.org/x/exp/maps"
)

const DefaultLevel = "info"

var levels = map[string]slog.Level{
	"debug":      slog.LevelDebug,
	DefaultLevel: slog.LevelInfo,
	"warn":       slog.LevelWarn,
	"error":      slog.LevelError,
}

// ValidLevels returns valid strings for choosing a log level. Returns the
// default log level first.
func ValidLevels() []string {
	keys := maps.Keys(levels)
	slices.SortFunc(keys, func(a, b string) int {
		if a == DefaultLevel {
			return -1
		}
		if b == DefaultLevel {
			return 1
		}
		// Sort remaining in alphabetical order.
		if a < b {
			return -1
		}
		return 1
	})
	return keys
}

// Interface is the logging interface accepted by components that log.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Options struct {
	// The log level of the logger
	Level string
	// Any additional writers the log handler should write to.
	AdditionalWriters []io.Writer
}

// Logger wraps slog, keeping a record of every message and emitting each one
// as an event for the TUI to display.
type Logger struct {
	*slog.Logger

	writer *writer
	broker *pubsub.Broker[Message]
}

// NewLogger constructs Logger with the given options. An unrecognised level
// falls back to the default level.
func NewLogger(opts Options) *Logger {
	level, ok := levels[opts.Level]
	if !ok {
		level = levels[DefaultLevel]
	}

	logger := &Logger{}
	logger.broker = pubsub.NewBroker[Message](Discard)
	logger.writer = &writer{broker: logger.broker}

	handler := slog.NewTextHandler(
		io.MultiWriter(append(opts.AdditionalWriters, logger.writer)...),
		&slog.HandlerOptions{Level: level},
	)
	logger.Logger = slog.New(handler)

	return logger
}

// Messages lists the log messages received thus far, oldest first.
func (l *Logger) Messages() []Message {
	return l.writer.list()
}

// Subscribe to log messages.
func (l *Logger) Subscribe(ctx context.Context) <-chan pubsub.Event[Message] {
	return l.broker.Subscribe(ctx)
}

// Shutdown closes all subscriptions to log messages.
func (l *Logger) Shutdown() {
	l.broker.Shutdown()
}
