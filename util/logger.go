package util

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"
)

// PanicSafeLogger tees log output to a log file and the console. The file is
// synced on Flush so a panic trace survives the process exiting.
type PanicSafeLogger struct {
	f  *os.File
	mw io.Writer
}

var std *PanicSafeLogger

func NewPanicSafeLogger(f *os.File, console io.Writer) *PanicSafeLogger {
	var mw io.Writer = console
	if f != nil {
		mw = io.MultiWriter(console, f)
	}
	std = &PanicSafeLogger{
		f:  f,
		mw: mw,
	}
	return std
}

func (l *PanicSafeLogger) Write(p []byte) (n int, err error) {
	return l.mw.Write(p)
}

func (l *PanicSafeLogger) Flush() error {
	if l.f == nil {
		return nil
	}
	return l.f.Sync()
}

func (l *PanicSafeLogger) Close() error {
	if l.f == nil {
		return nil
	}
	_ = l.f.Sync()
	return l.f.Close()
}

func FlushLogger() error {
	if std == nil {
		return nil
	}
	return std.Flush()
}

func LogPanic(err any) {
	log.Printf("paniced with %v\n%s\n", err, string(debug.Stack()))
	_ = FlushLogger()
}

// LogFileName returns a timestamped log file name safe for every filesystem.
func LogFileName(prefix string, now time.Time) string {
	ts := now.UTC().Format("2006-01-02T15:04:05.000Z")
	ts = strings.ReplaceAll(ts, ":", "-")
	ts = strings.ReplaceAll(ts, ".", "-")
	return fmt.Sprintf("%s-%s.log", prefix, ts)
}

// OpenLogFile creates a new log file under dir. A dir of "-" disables file
// logging and returns a nil file.
func OpenLogFile(dir, prefix string) (*os.File, error) {
	if dir == "-" {
		return nil, nil
	}
	if dir == "" {
		dir = os.TempDir()
	}
	logPath := filepath.Join(dir, LogFileName(prefix, time.Now()))
	return os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
