// Package log provides a thin wrapper around logrus with context-aware
// helpers that stamp each line with the request id of the current turn.
package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	logcontext "github.com/va6996/tinyagent/context"
)

// Logger is the global logger instance
var Logger = logrus.New()

// TurnFormatter formats entries as [<time>] [LEVEL] [file:line] <message> [req:<id>]
type TurnFormatter struct {
	TimestampFormat string
}

// Format implements logrus.Formatter.
func (f *TurnFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	fmt.Fprintf(b, "[%s] ", entry.Time.Format(f.TimestampFormat))
	fmt.Fprintf(b, "[%s] ", strings.ToUpper(entry.Level.String()))

	// Walk the stack past logrus and this wrapper to find the real caller.
	if file, line := callerLocation(); file != "" {
		fmt.Fprintf(b, "[%s:%d] ", file, line)
	}

	b.WriteString(entry.Message)

	if requestID, ok := entry.Data["request_id"].(string); ok && requestID != "" {
		fmt.Fprintf(b, " [req:%s]", requestID)
	}
	for key, value := range entry.Data {
		if key != "request_id" {
			fmt.Fprintf(b, " %s=%v", key, value)
		}
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func callerLocation() (string, int) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		skip := strings.Contains(frame.File, "github.com/sirupsen/logrus") ||
			strings.HasSuffix(frame.File, "log/log.go") ||
			strings.Contains(frame.File, "runtime/")
		if !skip {
			parts := strings.Split(frame.File, "/")
			return parts[len(parts)-1], frame.Line
		}
		if !more {
			return "", 0
		}
	}
}

// Init initializes the logger with default settings
func Init() {
	Logger.SetFormatter(&TurnFormatter{TimestampFormat: "2006-01-02 15:04:05"})
	Logger.SetLevel(logrus.InfoLevel)
}

// SetLevel sets the global log level from a logrus level name ("debug",
// "info", ...). Unknown names keep the current level.
func SetLevel(name string) {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		Logger.Warnf("unknown log level %q, keeping %s", name, Logger.GetLevel())
		return
	}
	Logger.SetLevel(level)
}

// SetOutput sets the global log output
func SetOutput(out io.Writer) {
	Logger.SetOutput(out)
}

func withRequestID(ctx context.Context) *logrus.Entry {
	return Logger.WithField("request_id", logcontext.RequestIDFromContext(ctx))
}

// Debugf logs a formatted message at debug level
func Debugf(ctx context.Context, format string, args ...interface{}) {
	withRequestID(ctx).Debugf(format, args...)
}

// Infof logs a formatted message at info level
func Infof(ctx context.Context, format string, args ...interface{}) {
	withRequestID(ctx).Infof(format, args...)
}

// Info logs a message at info level
func Info(ctx context.Context, args ...interface{}) {
	withRequestID(ctx).Info(args...)
}

// Warnf logs a formatted message at warning level
func Warnf(ctx context.Context, format string, args ...interface{}) {
	withRequestID(ctx).Warnf(format, args...)
}

// Errorf logs a formatted message at error level
func Errorf(ctx context.Context, format string, args ...interface{}) {
	withRequestID(ctx).Errorf(format, args...)
}

// Fatalf logs a formatted message at fatal level and exits
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	withRequestID(ctx).Fatalf(format, args...)
}
