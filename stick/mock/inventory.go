package mock

import "servostick/stick"

// Inventory is a fixed device list used in place of the host's serial
// device enumeration.
type Inventory struct {
	List []stick.DeviceInfo
	Err  error

	Calls int
}

func (i *Inventory) Devices() ([]stick.DeviceInfo, error) {
	i.Calls++
	if i.Err != nil {
		return nil, i.Err
	}
	return i.List, nil
}
