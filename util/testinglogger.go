package util

import (
	"log"
	"sync"
	"testing"
)

// NewTestingLogger returns a logger whose lines go to tb.Log.
func NewTestingLogger(tb testing.TB) *log.Logger {
	return log.New(&CommitLogger{
		Committer: func(p []byte) {
			tb.Log(string(p))
		},
	}, "", 0)
}

// RecordingLogger keeps every logged line so tests can assert on messages.
type RecordingLogger struct {
	*log.Logger

	mu    sync.Mutex
	lines []string
}

func NewRecordingLogger(tb testing.TB) *RecordingLogger {
	r := &RecordingLogger{}
	r.Logger = log.New(&CommitLogger{
		Committer: func(p []byte) {
			line := string(p)
			r.mu.Lock()
			r.lines = append(r.lines, line)
			r.mu.Unlock()
			if tb != nil {
				tb.Log(line)
			}
		},
	}, "", 0)
	return r
}

func (r *RecordingLogger) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]string, len(r.lines))
	copy(list, r.lines)
	return list
}
