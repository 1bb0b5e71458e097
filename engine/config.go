package engine

import (
	"os"
	"strconv"
	"strings"
	"time"

	"servostick/controls"
	"servostick/stick"
)

// Config holds the settings read from SERVOSTICK_* environment variables.
type Config struct {
	ControlsFile string
	// Port skips device discovery when set.
	Port       string
	Marker     string
	BaudRate   int
	Settle     time.Duration
	StrictExit bool
	// LogDir is where the log file is written; "-" disables the log file.
	LogDir string
}

func DefaultConfig() Config {
	return Config{
		ControlsFile: controls.DefaultFile,
		Marker:       stick.DefaultMarker,
		BaudRate:     stick.DefaultBaudRate,
		Settle:       stick.DefaultSettle,
		LogDir:       os.TempDir(),
	}
}

func orElse(a, b string) string {
	if a == "" {
		return b
	}
	return a
}

// ConfigFromEnv reads the configuration through getenv, falling back to
// defaults for unset or unparsable values.
func ConfigFromEnv(getenv func(string) string) Config {
	if getenv == nil {
		getenv = os.Getenv
	}
	c := DefaultConfig()

	c.ControlsFile = orElse(strings.TrimSpace(getenv("SERVOSTICK_CONTROLS")), c.ControlsFile)
	c.Port = strings.TrimSpace(getenv("SERVOSTICK_PORT"))
	c.Marker = orElse(getenv("SERVOSTICK_MARKER"), c.Marker)
	c.LogDir = orElse(strings.TrimSpace(getenv("SERVOSTICK_LOG_DIR")), c.LogDir)

	if n, err := strconv.Atoi(getenv("SERVOSTICK_BAUD")); err == nil && n > 0 {
		c.BaudRate = n
	}
	if n, err := strconv.Atoi(getenv("SERVOSTICK_SETTLE_MS")); err == nil && n > 0 {
		c.Settle = time.Duration(n) * time.Millisecond
	}
	if b, err := strconv.ParseBool(getenv("SERVOSTICK_STRICT_EXIT")); err == nil {
		c.StrictExit = b
	}

	return c
}

func (c Config) portConfig() stick.PortConfig {
	pc := stick.DefaultPortConfig
	if c.BaudRate > 0 {
		pc.BaudRate = c.BaudRate
	}
	return pc
}
