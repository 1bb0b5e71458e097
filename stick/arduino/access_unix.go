//go:build unix

package arduino

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sys/unix"
)

// checkAccess reports missing permissions on the device node before the
// open call turns them into a generic error.
func checkAccess(name string) error {
	if !strings.HasPrefix(name, "/") {
		return nil
	}

	err := unix.Access(name, unix.R_OK|unix.W_OK)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, unix.ENOENT):
		return fmt.Errorf("arduino: device %s is not connected: %w", name, err)
	case errors.Is(err, unix.EACCES), errors.Is(err, unix.EPERM):
		return fmt.Errorf("arduino: no permission to use %s (is the user in the dialout group?): %w", name, err)
	}
	return nil
}
