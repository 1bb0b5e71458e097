package stick

import (
	"log"
	"strings"
)

// DefaultMarker is the substring looked for in device descriptions.
const DefaultMarker = "Arduino"

// DeviceInfo describes one serial device reported by the host.
type DeviceInfo struct {
	// platform-specific identifier passed to Opener, e.g. "COM5" or "/dev/ttyACM0"
	ID string
	// free-text description, only used for matching
	Description string
}

// Inventory lists the serial devices currently connected to the host.
// Implementations must query the live system on every call.
type Inventory interface {
	Devices() ([]DeviceInfo, error)
}

// MatchDevice returns the ID of the first device whose description contains
// marker. Matching is case-sensitive.
func MatchDevice(devices []DeviceInfo, marker string) (id string, ok bool) {
	for _, d := range devices {
		if strings.Contains(d.Description, marker) {
			return d.ID, true
		}
	}
	return "", false
}

// Locator finds the microcontroller among the devices of an Inventory.
type Locator struct {
	Inventory Inventory
	Marker    string
	Logger    *log.Logger
}

// Locate returns the ID of the first matching device. A failing inventory
// query is reported as "not found" rather than as an error.
func (l *Locator) Locate() (id string, ok bool) {
	logger := orDefault(l.Logger)
	if l.Inventory == nil {
		return "", false
	}

	devices, err := l.Inventory.Devices()
	if err != nil {
		logger.Printf("stick: device inventory unavailable: %v\n", err)
		return "", false
	}

	marker := l.Marker
	if marker == "" {
		marker = DefaultMarker
	}
	return MatchDevice(devices, marker)
}

// FindArduinoPort locates the first device described as an Arduino.
func FindArduinoPort(inv Inventory) (id string, ok bool) {
	l := Locator{Inventory: inv, Marker: DefaultMarker}
	return l.Locate()
}

func orDefault(l *log.Logger) *log.Logger {
	if l == nil {
		return log.Default()
	}
	return l
}
