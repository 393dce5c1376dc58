//go:build !windows

package shutdown

import (
	"os"
	"os/signal"
	"syscall"
)

// Notify relays the signals that should end the process to ch.
func Notify(ch chan os.Signal) {
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
}
