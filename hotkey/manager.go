package hotkey

import (
	"fmt"
	"sync"
)

type binding struct {
	accel Accelerator
	hk    Hotkey
	stop  chan struct{}
}

// Manager is the process-wide global shortcut facility. It tracks every
// shortcut it registered so they can all be released at once.
type Manager struct {
	mu     sync.Mutex
	build  func(Accelerator) (Hotkey, error)
	active []*binding
}

func NewManager() *Manager {
	return &Manager{build: New}
}

// NewManagerWith uses build instead of the platform backend.
func NewManagerWith(build func(Accelerator) (Hotkey, error)) *Manager {
	return &Manager{build: build}
}

// Register binds accel and calls onPress/onRelease from a background
// goroutine for every keydown/keyup until the shortcut is unregistered.
func (m *Manager) Register(accel string, onPress, onRelease func()) error {
	a, err := ParseAccelerator(accel)
	if err != nil {
		return err
	}
	hk, err := m.build(a)
	if err != nil {
		return fmt.Errorf("binding %s: %w", a, err)
	}
	if err := hk.Register(); err != nil {
		return fmt.Errorf("registering %s: %w", a, err)
	}

	b := &binding{accel: a, hk: hk, stop: make(chan struct{})}
	go b.forward(onPress, onRelease)

	m.mu.Lock()
	m.active = append(m.active, b)
	m.mu.Unlock()
	return nil
}

// UnregisterAll releases every shortcut registered through m.
func (m *Manager) UnregisterAll() {
	m.mu.Lock()
	active := m.active
	m.active = nil
	m.mu.Unlock()

	for _, b := range active {
		close(b.stop)
		b.hk.Unregister()
	}
}

// Active returns the accelerators currently registered.
func (m *Manager) Active() []Accelerator {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Accelerator, 0, len(m.active))
	for _, b := range m.active {
		out = append(out, b.accel)
	}
	return out
}

func (b *binding) forward(onPress, onRelease func()) {
	for {
		select {
		case <-b.stop:
			return
		case _, ok := <-b.hk.Keydown():
			if !ok {
				return
			}
			if onPress != nil {
				onPress()
			}
		case _, ok := <-b.hk.Keyup():
			if !ok {
				return
			}
			if onRelease != nil {
				onRelease()
			}
		}
	}
}
