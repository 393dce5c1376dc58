package shell

import (
	"fmt"
	"strings"
	"sync"

	"tavern/log"
)

// Registry keeps the PTT accelerator in State and the OS hotkey facility
// in agreement: at most one shortcut is registered at any time.
type Registry struct {
	// bindMu serializes store-and-register so the stored accelerator and
	// the single live binding change together. It is never State.mu.
	bindMu sync.Mutex

	state     *State
	shortcuts Shortcuts
	host      Host
}

func NewRegistry(state *State, shortcuts Shortcuts, host Host) *Registry {
	return &Registry{state: state, shortcuts: shortcuts, host: host}
}

// Set stores newKey and binds it globally. On registration failure the
// new value stays stored; the caller decides whether to retry.
func (r *Registry) Set(newKey string) error {
	if strings.TrimSpace(newKey) == "" {
		return ErrInvalidAccelerator
	}
	r.bindMu.Lock()
	defer r.bindMu.Unlock()
	prev := r.state.ReplaceAccelerator(newKey)
	log.Infof("ptt accelerator %q -> %q", prev, newKey)
	return r.register(newKey)
}

// Rebind registers whatever accelerator is currently stored.
func (r *Registry) Rebind() error {
	r.bindMu.Lock()
	defer r.bindMu.Unlock()
	return r.register(r.state.Accelerator())
}

func (r *Registry) register(accel string) error {
	r.shortcuts.UnregisterAll()
	err := r.shortcuts.Register(accel,
		func() { emit(r.host, EventPTTDown) },
		func() { emit(r.host, EventPTTUp) },
	)
	log.Accelerator(accel, err == nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}
	return nil
}
