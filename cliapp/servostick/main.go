package main

import (
	"log"
	"os"
	"path/filepath"

	"servostick/engine"
	"servostick/stick/arduino"
	"servostick/util"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) (code int) {
	cfg := engine.ConfigFromEnv(os.Getenv)

	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.LUTC)
	logFile, err := util.OpenLogFile(cfg.LogDir, "servostick")
	if err != nil {
		log.Printf("could not open log file in '%s' for writing: %v\n", cfg.LogDir, err)
	}
	logger := util.NewPanicSafeLogger(logFile, os.Stdout)
	log.SetOutput(logger)
	defer logger.Close()

	// the joystick is optional hardware; never crash the frontend that launched us:
	defer func() {
		if p := recover(); p != nil {
			util.LogPanic(p)
			code = 0
		}
	}()

	prog := "servostick"
	if len(args) > 0 {
		prog = filepath.Base(args[0])
	}

	d := engine.NewDispatcher(
		prog,
		cfg,
		arduino.NewInventory(),
		&arduino.Opener{Logger: log.Default()},
		log.Default(),
	)

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	outcome := d.Dispatch(rest)
	return outcome.ExitCode(cfg.StrictExit)
}
