package stick

import "strconv"

// Player identifies one of the two joystick channels on the microcontroller.
type Player int

const (
	Player1 Player = 1
	Player2 Player = 2
)

// CommandSize is the length of every command written to the device.
const CommandSize = 4

// Players returns the channels in transmission order.
func Players() []Player {
	return []Player{Player1, Player2}
}

func (p Player) String() string {
	return "player " + strconv.Itoa(int(p))
}

// EncodeCommand builds the wire command for one player: a single channel
// digit followed by the mode's angle code, e.g. "1065".
func EncodeCommand(p Player, m Mode) []byte {
	cmd := make([]byte, 0, CommandSize)
	cmd = strconv.AppendInt(cmd, int64(p), 10)
	cmd = append(cmd, m.AngleCode()...)
	return cmd
}
