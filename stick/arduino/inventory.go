package arduino

import (
	"fmt"

	"go.bug.st/serial/enumerator"

	"servostick/stick"
)

// Inventory lists serial ports via the platform enumerator. Nothing is
// cached; every call queries the host.
type Inventory struct {
	// list is replaced in tests
	list func() ([]*enumerator.PortDetails, error)
}

func NewInventory() *Inventory {
	return &Inventory{list: enumerator.GetDetailedPortsList}
}

func (i *Inventory) Devices() ([]stick.DeviceInfo, error) {
	list := i.list
	if list == nil {
		list = enumerator.GetDetailedPortsList
	}

	ports, err := list()
	if err != nil {
		return nil, fmt.Errorf("arduino: could not enumerate serial ports: %w", err)
	}

	devices := make([]stick.DeviceInfo, 0, len(ports))
	for _, port := range ports {
		if port == nil {
			continue
		}
		devices = append(devices, stick.DeviceInfo{
			ID:          port.Name,
			Description: describe(port),
		})
	}
	return devices, nil
}

func describe(port *enumerator.PortDetails) string {
	if port.Product != "" {
		return port.Product
	}
	if port.IsUSB {
		return fmt.Sprintf("%s (%s:%s)", port.Name, port.VID, port.PID)
	}
	return port.Name
}
