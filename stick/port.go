package stick

import "time"

// Port is an open serial channel to the microcontroller.
type Port interface {
	Write(p []byte) (n int, err error)
	Close() error
	IsOpen() bool
}

// Opener opens a serial channel by device ID.
type Opener interface {
	Open(id string, cfg PortConfig) (Port, error)
}

type PortConfig struct {
	BaudRate     int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

const (
	DefaultBaudRate = 115200
	DefaultTimeout  = 500 * time.Millisecond
	// DefaultSettle is the pause between the player 1 and player 2 commands.
	DefaultSettle = 500 * time.Millisecond
)

var DefaultPortConfig = PortConfig{
	BaudRate:     DefaultBaudRate,
	ReadTimeout:  DefaultTimeout,
	WriteTimeout: DefaultTimeout,
}

// writeAll keeps writing until buf is sent or the port fails.
func writeAll(f Port, buf []byte) error {
	sent := 0
	for sent < len(buf) {
		n, e := f.Write(buf[sent:])
		if e != nil {
			return e
		}
		if n <= 0 {
			return ErrShortWrite
		}
		sent += n
	}
	return nil
}
