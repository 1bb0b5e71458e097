package arduino

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"go.bug.st/serial"

	"servostick/stick"
)

var (
	ErrWriteTimeout = errors.New("arduino: serial write timed out")
	ErrDrainTimeout = errors.New("arduino: serial drain timed out")
)

// Opener opens the microcontroller's serial port with go.bug.st/serial.
type Opener struct {
	Logger *log.Logger
}

func (o *Opener) Open(id string, cfg stick.PortConfig) (stick.Port, error) {
	if err := checkAccess(id); err != nil {
		return nil, err
	}

	f, err := serial.Open(id, &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("arduino: failed to open %s at %d baud: %w", id, cfg.BaudRate, err)
	}

	if cfg.ReadTimeout > 0 {
		if err = f.SetReadTimeout(cfg.ReadTimeout); err != nil {
			f.Close()
			return nil, fmt.Errorf("arduino: failed to set read timeout: %w", err)
		}
	}

	return &Port{
		f:            f,
		name:         id,
		writeTimeout: cfg.WriteTimeout,
		open:         true,
		logger:       o.Logger,
	}, nil
}

// Port wraps a serial.Port, adding open-state tracking and a write timeout
// which the underlying library does not offer.
type Port struct {
	f            serial.Port
	name         string
	writeTimeout time.Duration
	logger       *log.Logger

	mu       sync.Mutex
	open     bool
	timedOut bool
}

type writeResult struct {
	n   int
	err error
}

func (p *Port) Write(b []byte) (int, error) {
	if !p.IsOpen() {
		return 0, stick.ErrPortNotOpen
	}
	if p.writeTimeout <= 0 {
		return p.f.Write(b)
	}

	done := make(chan writeResult, 1)
	go func() {
		n, err := p.f.Write(b)
		done <- writeResult{n, err}
	}()

	select {
	case r := <-done:
		return r.n, r.err
	case <-time.After(p.writeTimeout):
		p.mu.Lock()
		p.timedOut = true
		p.mu.Unlock()
		return 0, ErrWriteTimeout
	}
}

func (p *Port) IsOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}

func (p *Port) Close() (err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return nil
	}
	p.open = false

	// a device that stopped accepting writes will never drain either:
	if !p.timedOut {
		p.drain()
	}

	// closing also unblocks any write still stuck after a timeout:
	err = p.f.Close()
	if err != nil {
		return fmt.Errorf("arduino: could not close serial port: %w", err)
	}
	return
}

// drain waits for queued bytes to reach the device, at most writeTimeout.
func (p *Port) drain() {
	done := make(chan error, 1)
	go func() {
		done <- p.f.Drain()
	}()

	var timeout <-chan time.Time
	if p.writeTimeout > 0 {
		timeout = time.After(p.writeTimeout)
	}

	var derr error
	select {
	case derr = <-done:
	case <-timeout:
		derr = ErrDrainTimeout
	}
	if derr != nil && p.logger != nil {
		p.logger.Printf("arduino: drain %s: %v\n", p.name, derr)
	}
}
