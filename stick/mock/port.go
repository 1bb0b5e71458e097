package mock

import (
	"errors"
	"sync"
	"time"

	"servostick/stick"
)

var ErrClosed = errors.New("mock: write on closed port")

// Write records a single Write call made against a Port.
type Write struct {
	Data []byte
	At   time.Time
}

// Port records every write made to it. FailWrite, when set, is consulted
// before each write with its zero-based index.
type Port struct {
	NotOpen   bool
	FailWrite func(i int) error
	CloseErr  error

	mu     sync.Mutex
	writes []Write
	closes int
}

func (p *Port) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closes > 0 {
		return 0, ErrClosed
	}

	i := len(p.writes)
	data := make([]byte, len(b))
	copy(data, b)
	p.writes = append(p.writes, Write{Data: data, At: time.Now()})

	if p.FailWrite != nil {
		if err := p.FailWrite(i); err != nil {
			return 0, err
		}
	}
	return len(b), nil
}

func (p *Port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closes++
	return p.CloseErr
}

func (p *Port) IsOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.NotOpen && p.closes == 0
}

// Writes returns a copy of the recorded writes.
func (p *Port) Writes() []Write {
	p.mu.Lock()
	defer p.mu.Unlock()
	list := make([]Write, len(p.writes))
	copy(list, p.writes)
	return list
}

// Payloads returns the recorded writes as strings.
func (p *Port) Payloads() []string {
	writes := p.Writes()
	list := make([]string, 0, len(writes))
	for _, w := range writes {
		list = append(list, string(w.Data))
	}
	return list
}

// Closes reports how many times Close was called.
func (p *Port) Closes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closes
}

// Opener hands out Port on every Open call, or fails with Err.
type Opener struct {
	Port *Port
	Err  error

	Opened []string
	Config stick.PortConfig
}

func (o *Opener) Open(id string, cfg stick.PortConfig) (stick.Port, error) {
	o.Opened = append(o.Opened, id)
	o.Config = cfg
	if o.Err != nil {
		return nil, o.Err
	}
	if o.Port == nil {
		o.Port = &Port{}
	}
	return o.Port, nil
}
