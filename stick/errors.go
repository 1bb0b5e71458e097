package stick

import (
	"errors"
	"fmt"
)

var (
	ErrPortNotOpen  = errors.New("stick: serial port did not report itself open")
	ErrShortWrite   = errors.New("stick: serial port accepted zero bytes")
	ErrNoDeviceName = errors.New("stick: no device name given")
)

// OpenError is returned when the serial channel cannot be opened. It is the
// only failure that prevents any command from being written.
type OpenError struct {
	Port    string
	wrapped error
}

func (e *OpenError) Unwrap() error { return e.wrapped }
func (e *OpenError) Error() string {
	return fmt.Sprintf("stick: could not open serial port %s: %v", e.Port, e.wrapped)
}

// WriteError records a failed write of one player's command.
type WriteError struct {
	Player  Player
	wrapped error
}

func (e *WriteError) Unwrap() error { return e.wrapped }
func (e *WriteError) Error() string {
	return fmt.Sprintf("stick: could not write %s command: %v", e.Player, e.wrapped)
}
