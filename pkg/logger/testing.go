package logger

import (
	"sync"
	"testing"
)

// TestLogger routes log output through the test runner and records entries
// so tests can assert on what was logged. Loggers derived with WithField
// record into the same entry list.
type TestLogger struct {
	T *testing.T

	rec    *recorder
	fields map[string]interface{}
}

// Entry is one recorded log call
type Entry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

type recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewTestLogger creates a logger bound to a test
func NewTestLogger(t *testing.T) *TestLogger {
	return &TestLogger{T: t, rec: &recorder{}, fields: map[string]interface{}{}}
}

func (l *TestLogger) log(level, msg string) {
	l.rec.mu.Lock()
	l.rec.entries = append(l.rec.entries, Entry{Level: level, Message: msg, Fields: l.fields})
	l.rec.mu.Unlock()
	if l.T != nil {
		l.T.Logf("[%s] %s", level, msg)
	}
}

func (l *TestLogger) Debug(msg string) { l.log("DEBUG", msg) }
func (l *TestLogger) Info(msg string)  { l.log("INFO", msg) }
func (l *TestLogger) Warn(msg string)  { l.log("WARN", msg) }
func (l *TestLogger) Error(msg string) { l.log("ERROR", msg) }
func (l *TestLogger) Fatal(msg string) { l.log("FATAL", msg) }

func (l *TestLogger) WithField(key string, value interface{}) Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

func (l *TestLogger) WithFields(fields map[string]interface{}) Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &TestLogger{T: l.T, rec: l.rec, fields: merged}
}

// Entries returns a copy of the recorded log calls
func (l *TestLogger) Entries() []Entry {
	l.rec.mu.Lock()
	defer l.rec.mu.Unlock()
	out := make([]Entry, len(l.rec.entries))
	copy(out, l.rec.entries)
	return out
}
