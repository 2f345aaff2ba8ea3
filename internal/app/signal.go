package app

import (
	"os"
	"os/signal"
	"syscall"
)

// reloadSignals subscribes to SIGHUP.
func reloadSignals() chan os.Signal {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGHUP)

	return ch
}

func stopSignals(ch chan os.Signal) { signal.Stop(ch) }
