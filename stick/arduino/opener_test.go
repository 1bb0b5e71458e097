package arduino

import (
	"errors"
	"sync"
	"testing"
	"time"

	"go.bug.st/serial"

	"servostick/stick"
	"servostick/util"
)

// fakeSerial implements only the serial.Port methods Port uses.
type fakeSerial struct {
	serial.Port

	block    chan struct{}
	closeErr error

	mu      sync.Mutex
	written []byte
	drains  int
	closes  int
}

func newFakeSerial() *fakeSerial {
	return &fakeSerial{block: make(chan struct{})}
}

func (f *fakeSerial) unblock() {
	select {
	case <-f.block:
	default:
		close(f.block)
	}
}

func (f *fakeSerial) Write(b []byte) (int, error) {
	<-f.block
	f.mu.Lock()
	defer f.mu.Unlock()
	f.written = append(f.written, b...)
	return len(b), nil
}

func (f *fakeSerial) Drain() error {
	<-f.block
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drains++
	return nil
}

func (f *fakeSerial) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closes++
	return f.closeErr
}

func newTestPort(t *testing.T, f *fakeSerial, timeout time.Duration) *Port {
	t.Cleanup(f.unblock)
	return &Port{
		f:            f,
		name:         "/dev/ttyACM0",
		writeTimeout: timeout,
		logger:       util.NewTestingLogger(t),
		open:         true,
	}
}

func TestPort_Write(t *testing.T) {
	f := newFakeSerial()
	f.unblock()
	p := newTestPort(t, f, 500*time.Millisecond)

	n, err := p.Write([]byte("1065"))
	if err != nil || n != 4 {
		t.Fatalf("Write() = %d, %v", n, err)
	}
	if err = p.Close(); err != nil {
		t.Fatal(err)
	}
	if string(f.written) != "1065" || f.drains != 1 || f.closes != 1 {
		t.Fatalf("written = %q, drains = %d, closes = %d", f.written, f.drains, f.closes)
	}
}

func TestPort_WriteTimeout(t *testing.T) {
	f := newFakeSerial()
	p := newTestPort(t, f, 50*time.Millisecond)

	start := time.Now()
	_, err := p.Write([]byte("1065"))
	if !errors.Is(err, ErrWriteTimeout) {
		t.Fatalf("expected ErrWriteTimeout, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("write took %v", elapsed)
	}

	// drain would block on the stalled device; close must not wait for it:
	start = time.Now()
	if err = p.Close(); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("close took %v", elapsed)
	}
	if f.drains != 0 || f.closes != 1 {
		t.Fatalf("drains = %d, closes = %d", f.drains, f.closes)
	}
}

type stuckDrain struct {
	*fakeSerial
}

func (f stuckDrain) Write(b []byte) (int, error) { return len(b), nil }
func (f stuckDrain) Drain() error {
	select {}
}

func TestPort_CloseBoundsDrain(t *testing.T) {
	f := newFakeSerial()
	p := newTestPort(t, f, 50*time.Millisecond)
	p.f = stuckDrain{f}

	if _, err := p.Write([]byte("2020")); err != nil {
		t.Fatal(err)
	}

	start := time.Now()
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("close took %v", elapsed)
	}
	if f.closes != 1 {
		t.Fatalf("closes = %d", f.closes)
	}
}

func TestPort_CloseError(t *testing.T) {
	f := newFakeSerial()
	f.unblock()
	f.closeErr = errors.New("device gone")
	p := newTestPort(t, f, 50*time.Millisecond)

	err := p.Close()
	if !errors.Is(err, f.closeErr) {
		t.Fatalf("expected wrapped close error, got %v", err)
	}
	if err = p.Close(); err != nil {
		t.Fatalf("second Close() = %v, want nil", err)
	}
	if f.closes != 1 {
		t.Fatalf("closes = %d, want 1", f.closes)
	}
}

func TestPort_WriteAfterClose(t *testing.T) {
	f := newFakeSerial()
	f.unblock()
	p := newTestPort(t, f, 50*time.Millisecond)

	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if p.IsOpen() {
		t.Fatal("port still reports open")
	}
	if _, err := p.Write([]byte("1065")); !errors.Is(err, stick.ErrPortNotOpen) {
		t.Fatalf("expected ErrPortNotOpen, got %v", err)
	}
}
