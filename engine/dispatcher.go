package engine

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"servostick/controls"
	"servostick/stick"
)

type Outcome int

const (
	OutcomeUsage Outcome = iota
	// OutcomeIgnored means the `set` argument was not a known mode.
	OutcomeIgnored
	// OutcomeNoConfig means there was no controls file to resolve a game from.
	OutcomeNoConfig
	OutcomeNoDevice
	OutcomeApplied
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUsage:
		return "usage"
	case OutcomeIgnored:
		return "ignored"
	case OutcomeNoConfig:
		return "no config"
	case OutcomeNoDevice:
		return "no device"
	case OutcomeApplied:
		return "applied"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// ExitCode is always 0 so that a game-launch wrapper is never interrupted,
// unless strict is set, in which case a failed transmission exits 1.
func (o Outcome) ExitCode(strict bool) int {
	if strict && o == OutcomeFailed {
		return 1
	}
	return 0
}

// Usage returns the usage line for the program named prog.
func Usage(prog string) string {
	args := make([]string, 0, 3)
	for _, m := range stick.Modes() {
		args = append(args, m.SetArgument())
	}
	return fmt.Sprintf("Usage: %s set (%s) %s = diagonal. %s game \"RomName\"",
		prog, strings.Join(args, "|"), stick.FortyFiveDegrees.SetArgument(), prog)
}

// Dispatcher turns a command line into a joystick mode change.
type Dispatcher struct {
	Program   string
	Config    Config
	Inventory stick.Inventory
	Opener    stick.Opener
	Logger    *log.Logger
	// Sleep replaces time.Sleep for the settle pause.
	Sleep func(time.Duration)

	// LastError is the error of the most recent transmission, if any.
	LastError error
}

func NewDispatcher(prog string, cfg Config, inv stick.Inventory, opener stick.Opener, logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		Program:   prog,
		Config:    cfg,
		Inventory: inv,
		Opener:    opener,
		Logger:    logger,
	}
}

func (d *Dispatcher) logger() *log.Logger {
	if d.Logger == nil {
		return log.Default()
	}
	return d.Logger
}

// Dispatch runs one command. args excludes the program name.
func (d *Dispatcher) Dispatch(args []string) Outcome {
	logger := d.logger()
	d.LastError = nil

	if len(args) != 2 {
		logger.Println(Usage(d.Program))
		return OutcomeUsage
	}

	// both verbs accept what a frontend passes for a ROM, e.g. "4.zip":
	verb, arg := args[0], controls.NormalizeROMName(args[1])
	switch verb {
	case "set":
		mode, ok := stick.ParseSetArgument(arg)
		if !ok {
			logger.Printf("ignoring joystick set command due to invalid joystick mode %s\n", arg)
			return OutcomeIgnored
		}
		return d.Apply(mode)

	case "game":
		return d.Game(arg)
	}

	logger.Println(Usage(d.Program))
	return OutcomeUsage
}

// Game resolves the mode for romName from the controls file and applies it.
func (d *Dispatcher) Game(romName string) Outcome {
	logger := d.logger()

	path := orElse(d.Config.ControlsFile, controls.DefaultFile)
	doc, err := controls.Load(path)
	if errors.Is(err, controls.ErrNoControlsFile) {
		logger.Printf("no controls file at %s, leaving joystick unchanged\n", path)
		return OutcomeNoConfig
	}
	if err != nil {
		logger.Printf("%v\n", err)
		doc = nil
	}

	res := controls.Resolve(doc, romName, logger)
	if res.Found {
		logger.Printf("game %s uses %q\n", romName, res.Control)
	}
	return d.Apply(res.Mode)
}

// Apply locates the device and sends mode to both players.
func (d *Dispatcher) Apply(mode stick.Mode) Outcome {
	logger := d.logger()
	logger.Printf("writing joystick state %s\n", mode)

	id := d.Config.Port
	if id == "" {
		l := stick.Locator{
			Inventory: d.Inventory,
			Marker:    d.Config.Marker,
			Logger:    logger,
		}
		var ok bool
		id, ok = l.Locate()
		if !ok {
			logger.Println("no arduino found")
			return OutcomeNoDevice
		}
	}
	logger.Printf("arduino found on port: %s\n", id)

	err := d.transmitter().Transmit(id, mode)
	if err != nil {
		d.LastError = err
		logger.Printf("could not set joystick to %s: %v\n", mode, err)
		return OutcomeFailed
	}
	return OutcomeApplied
}

func (d *Dispatcher) transmitter() *stick.Transmitter {
	return &stick.Transmitter{
		Opener: d.Opener,
		Config: d.Config.portConfig(),
		Settle: d.Config.Settle,
		Sleep:  d.Sleep,
		Logger: d.logger(),
	}
}
