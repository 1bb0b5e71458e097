package controls

import (
	"log"

	"servostick/stick"
)

const (
	FourWayJoystick         = "4-way Joystick"
	DiagonalFourWayJoystick = "Diagonal 4-way Joystick"
	EightWayJoystick        = "8-way Joystick"
)

// DefaultMode is applied whenever a game's controls cannot be determined.
const DefaultMode = stick.EightWay

// ModeForControl maps a declared control name to a joystick mode. Unknown
// names get DefaultMode.
func ModeForControl(name string) stick.Mode {
	switch name {
	case FourWayJoystick:
		return stick.FourWay
	case DiagonalFourWayJoystick:
		return stick.FortyFiveDegrees
	case EightWayJoystick:
		return stick.EightWay
	default:
		return DefaultMode
	}
}

type Resolution struct {
	Mode stick.Mode
	// Found is false when the game was missing or had no usable control entry.
	Found   bool
	Control string
}

// Resolve picks the joystick mode for romName. It never fails: a nil
// document, a missing game or a malformed entry all resolve to DefaultMode.
func Resolve(doc *Document, romName string, logger *log.Logger) Resolution {
	if logger == nil {
		logger = log.Default()
	}

	game, ok := doc.Find(romName)
	if !ok {
		logger.Printf("controls: can't find game %s, defaulting to 8-way joystick\n", romName)
		return Resolution{Mode: DefaultMode}
	}

	name, ok := game.ControlName()
	if !ok {
		logger.Printf("controls: can't find controls for game %s, defaulting to 8-way joystick\n", romName)
		return Resolution{Mode: DefaultMode}
	}

	return Resolution{
		Mode:    ModeForControl(name),
		Found:   true,
		Control: name,
	}
}
