package stick

import "testing"

func TestEncodeCommand(t *testing.T) {
	tests := []struct {
		player Player
		mode   Mode
		want   string
	}{
		{Player1, FourWay, "1065"},
		{Player2, FourWay, "2065"},
		{Player1, EightWay, "1020"},
		{Player2, FortyFiveDegrees, "2020"},
	}
	for _, tt := range tests {
		got := EncodeCommand(tt.player, tt.mode)
		if string(got) != tt.want {
			t.Errorf("EncodeCommand(%v, %v) = %q, want %q", tt.player, tt.mode, got, tt.want)
		}
		if len(got) != CommandSize {
			t.Errorf("EncodeCommand(%v, %v) has %d bytes", tt.player, tt.mode, len(got))
		}
	}
}

func TestPlayers_Order(t *testing.T) {
	p := Players()
	if len(p) != 2 || p[0] != Player1 || p[1] != Player2 {
		t.Fatalf("Players() = %v", p)
	}
}
