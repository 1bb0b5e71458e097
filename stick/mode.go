package stick

import "strings"

// Mode is the mechanical geometry the restrictor plate is rotated into.
type Mode int

const (
	FourWay Mode = iota
	EightWay
	FortyFiveDegrees
)

var modes = []Mode{FourWay, EightWay, FortyFiveDegrees}

// Modes returns all joystick modes in declaration order.
func Modes() []Mode {
	list := make([]Mode, len(modes))
	copy(list, modes)
	return list
}

// AngleCode returns the 3-digit zero-padded servo angle sent to the
// microcontroller for this mode.
// EightWay and FortyFiveDegrees currently share an angle.
func (m Mode) AngleCode() string {
	switch m {
	case FourWay:
		return "065"
	case EightWay:
		return "020"
	case FortyFiveDegrees:
		return "020"
	}
	// unknown values are treated like the safe default:
	return "020"
}

func (m Mode) String() string {
	switch m {
	case FourWay:
		return "4-way"
	case EightWay:
		return "8-way"
	case FortyFiveDegrees:
		return "45-degree"
	}
	return "unknown"
}

// SetArgument is the argument of the `set` verb that selects this mode.
func (m Mode) SetArgument() string {
	switch m {
	case FourWay:
		return "4"
	case EightWay:
		return "8"
	case FortyFiveDegrees:
		return "45"
	}
	return ""
}

// ParseSetArgument maps the argument of the `set` verb to a Mode.
func ParseSetArgument(arg string) (Mode, bool) {
	arg = strings.TrimSpace(arg)
	for _, m := range modes {
		if m.SetArgument() == arg {
			return m, true
		}
	}
	return EightWay, false
}
