package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Context keys read by WithContext. They are plain strings so that values set
// with gin's c.Set are found through (*gin.Context).Value.
const (
	RequestIDKey = "request_id"
	SubjectKey   = "subject"
)

// Logger is a logrus entry whose With* methods keep returning *Logger.
// Level methods (Info, Warnf, ...) come from the embedded entry.
type Logger struct {
	*logrus.Entry
}

// New returns a logger writing through the standard logrus logger
func New() *Logger {
	return &Logger{Entry: logrus.NewEntry(logrus.StandardLogger())}
}

// WithContext returns a logger tagged with the request id and the
// authenticated subject found in ctx. Callers without a subject log as
// "anonymous", which is what public intake requests look like.
func WithContext(ctx context.Context) *Logger {
	l := New()
	if ctx == nil {
		return l
	}

	fields := logrus.Fields{"user": "anonymous"}
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		fields["request_id"] = requestID
	}
	if subject, ok := ctx.Value(SubjectKey).(string); ok && subject != "" {
		fields["user"] = subject
	}
	return &Logger{Entry: l.Entry.WithFields(fields)}
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithField(key, value)}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithFields(fields)}
}

// WithError adds err under the "error" field
func (l *Logger) WithError(err error) *Logger {
	return &Logger{Entry: l.Entry.WithError(err)}
}
