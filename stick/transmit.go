package stick

import (
	"log"
	"time"

	"go.uber.org/multierr"
)

// Transmitter sends a mode to both player channels of the microcontroller.
type Transmitter struct {
	Opener Opener
	Config PortConfig
	// Settle is the pause between the two player commands; zero means DefaultSettle.
	Settle time.Duration
	// Sleep is used for the settle pause; nil means time.Sleep.
	Sleep  func(time.Duration)
	Logger *log.Logger
}

// NewTransmitter returns a Transmitter with the default port settings.
func NewTransmitter(opener Opener) *Transmitter {
	return &Transmitter{
		Opener: opener,
		Config: DefaultPortConfig,
		Settle: DefaultSettle,
	}
}

// Transmit opens the port identified by id, writes the player 1 command,
// waits for the device to settle, writes the player 2 command and closes the
// port. Write failures do not stop the remaining writes; the port is closed
// on every path once it has been opened.
func (t *Transmitter) Transmit(id string, m Mode) (err error) {
	logger := orDefault(t.Logger)

	if id == "" {
		return ErrNoDeviceName
	}

	cfg := t.Config
	if cfg.BaudRate <= 0 {
		cfg.BaudRate = DefaultBaudRate
	}

	f, oerr := t.Opener.Open(id, cfg)
	if oerr != nil {
		logger.Printf("stick: error opening serial port to arduino on %s: %v\n", id, oerr)
		return &OpenError{Port: id, wrapped: oerr}
	}

	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Printf("stick: could not close serial port %s: %v\n", id, cerr)
			err = multierr.Append(err, cerr)
		}
	}()

	if !f.IsOpen() {
		logger.Printf("stick: error opening serial port to arduino on %s\n", id)
		return ErrPortNotOpen
	}

	logger.Printf("stick: connected to arduino on %s\n", id)
	for i, p := range Players() {
		if i > 0 {
			t.settle()
		}

		logger.Printf("stick: setting %s to %s\n", p, m)
		if werr := writeAll(f, EncodeCommand(p, m)); werr != nil {
			logger.Printf("stick: error writing joystick state for %s: %v\n", p, werr)
			err = multierr.Append(err, &WriteError{Player: p, wrapped: werr})
		}
	}

	return
}

func (t *Transmitter) settle() {
	d := t.Settle
	if d <= 0 {
		d = DefaultSettle
	}
	sleep := t.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	sleep(d)
}
