package controls

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// DefaultFile is looked up in the current working directory.
const DefaultFile = "controls.json"

var ErrNoControlsFile = errors.New("controls: controls file does not exist")

// Document is the subset of a controls.json file that describes each game's
// player controls.
type Document struct {
	Games []Game `json:"games"`
}

type Game struct {
	RomName string   `json:"romname"`
	Players []Player `json:"players"`
}

type Player struct {
	Controls []Control `json:"controls"`
}

type Control struct {
	Name string `json:"name"`
}

var errNoRomName = errors.New("controls: game has no romname")

// UnmarshalJSON decodes games one at a time so that a single malformed entry
// does not make the rest of the document unreadable. Entries without a
// romname are skipped.
func (d *Document) UnmarshalJSON(b []byte) error {
	var raw struct {
		Games []json.RawMessage `json:"games"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	d.Games = make([]Game, 0, len(raw.Games))
	for _, rg := range raw.Games {
		var g Game
		if err := json.Unmarshal(rg, &g); err != nil {
			continue
		}
		d.Games = append(d.Games, g)
	}
	return nil
}

// UnmarshalJSON requires a string romname. Players and controls of the wrong
// shape decode as empty so only the entries actually consulted can make a
// game unusable.
func (g *Game) UnmarshalJSON(b []byte) error {
	var raw struct {
		RomName *string         `json:"romname"`
		Players json.RawMessage `json:"players"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		// romname of the wrong type lands here too:
		return err
	}
	if raw.RomName == nil {
		return errNoRomName
	}

	*g = Game{RomName: *raw.RomName}

	var players []json.RawMessage
	if json.Unmarshal(raw.Players, &players) != nil {
		return nil
	}
	g.Players = make([]Player, 0, len(players))
	for _, rp := range players {
		g.Players = append(g.Players, decodePlayer(rp))
	}
	return nil
}

func decodePlayer(b json.RawMessage) (p Player) {
	var raw struct {
		Controls json.RawMessage `json:"controls"`
	}
	if json.Unmarshal(b, &raw) != nil {
		return
	}

	var controls []json.RawMessage
	if json.Unmarshal(raw.Controls, &controls) != nil {
		return
	}
	p.Controls = make([]Control, 0, len(controls))
	for _, rc := range controls {
		p.Controls = append(p.Controls, decodeControl(rc))
	}
	return
}

func decodeControl(b json.RawMessage) (c Control) {
	var raw struct {
		Name json.RawMessage `json:"name"`
	}
	if json.Unmarshal(b, &raw) != nil {
		return
	}
	// a name that is not a string is treated as absent:
	_ = json.Unmarshal(raw.Name, &c.Name)
	return
}

// Load reads and parses a controls file. A missing file is reported as
// ErrNoControlsFile.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoControlsFile
		}
		return nil, fmt.Errorf("controls: could not open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("controls: %s: %w", path, err)
	}
	return doc, nil
}

func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}
	if err := json.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("could not parse controls document: %w", err)
	}
	return doc, nil
}

// Find returns the first game whose romname equals romName exactly.
func (d *Document) Find(romName string) (*Game, bool) {
	if d == nil {
		return nil, false
	}
	for i := range d.Games {
		if d.Games[i].RomName == romName {
			return &d.Games[i], true
		}
	}
	return nil, false
}

// ControlName returns the name of the first player's first control.
func (g *Game) ControlName() (string, bool) {
	if g == nil || len(g.Players) == 0 {
		return "", false
	}
	ctrls := g.Players[0].Controls
	if len(ctrls) == 0 || ctrls[0].Name == "" {
		return "", false
	}
	return ctrls[0].Name, true
}

// NormalizeROMName turns a frontend argument such as " pacman.zip " into the
// romname used as lookup key.
func NormalizeROMName(arg string) string {
	name := strings.TrimSpace(arg)
	if len(name) >= 4 && strings.EqualFold(name[len(name)-4:], ".zip") {
		name = name[:len(name)-4]
	}
	return strings.TrimSpace(name)
}
