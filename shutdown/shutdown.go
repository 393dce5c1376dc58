// Package shutdown routes termination signals to a single handler.
package shutdown

import (
	"os"
	"os/signal"
)

// Handle calls fn once, from a background goroutine, with the first
// termination signal received. The returned stop func detaches the handler.
func Handle(fn func(os.Signal)) (stop func()) {
	ch := make(chan os.Signal, 1)
	Notify(ch)
	done := make(chan struct{})
	go func() {
		select {
		case sig := <-ch:
			fn(sig)
		case <-done:
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}
