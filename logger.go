package formrules

import (
	"fmt"
	"log/slog"
)

// Logger receives transport problems such as undecodable bodies and dropped
// websocket connections. The first argument is the message, the rest are slog-style
// key/value pairs.
type Logger interface {
	Warn(args ...any) error
	Error(args ...any) error
	Info(args ...any) error
}

type slogLogger struct {
	l *slog.Logger
}

// NewSlogLogger adapts l to Logger. A nil l uses slog.Default() at call time.
func NewSlogLogger(l *slog.Logger) Logger {
	return &slogLogger{l: l}
}

func (s *slogLogger) logger() *slog.Logger {
	if s.l == nil {
		return slog.Default()
	}
	return s.l
}

func (s *slogLogger) Warn(args ...any) error {
	msg, attrs := splitArgs(args)
	s.logger().Warn(msg, attrs...)
	return nil
}

func (s *slogLogger) Error(args ...any) error {
	msg, attrs := splitArgs(args)
	s.logger().Error(msg, attrs...)
	return nil
}

func (s *slogLogger) Info(args ...any) error {
	msg, attrs := splitArgs(args)
	s.logger().Info(msg, attrs...)
	return nil
}

func splitArgs(args []any) (string, []any) {
	if len(args) == 0 {
		return "", nil
	}
	if msg, ok := args[0].(string); ok {
		return msg, args[1:]
	}
	return fmt.Sprint(args[0]), args[1:]
}
