package util

import "bytes"

// CommitLogger buffers written bytes and hands each complete line to
// Committer. It is meant to sit behind a log.Logger.
type CommitLogger struct {
	Committer func(p []byte)
	buf       []byte
}

func (l *CommitLogger) Write(p []byte) (n int, err error) {
	l.buf = append(l.buf, p...)
	for {
		i := bytes.IndexByte(l.buf, '\n')
		if i < 0 {
			break
		}
		if l.Committer != nil {
			l.Committer(l.buf[:i])
		}
		l.buf = l.buf[i+1:]
	}
	if len(l.buf) == 0 {
		l.buf = nil
	}
	return len(p), nil
}

// Commit hands any partial line to Committer.
func (l *CommitLogger) Commit() {
	if len(l.buf) > 0 && l.Committer != nil {
		l.Committer(l.buf)
	}
	l.Reset()
}

func (l *CommitLogger) Reset() {
	l.buf = l.buf[:0]
}
