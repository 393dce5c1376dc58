package hotkey

import "sync"

// Fake is an in-memory Hotkey for tests. Press/Release simulate the user.
type Fake struct {
	Accel   Accelerator
	Err     error
	keydown chan struct{}
	keyup   chan struct{}

	mu           sync.Mutex
	registered   bool
	unregistered bool
}

func NewFake(a Accelerator) *Fake {
	return &Fake{
		Accel:   a,
		keydown: make(chan struct{}, 1),
		keyup:   make(chan struct{}, 1),
	}
}

func (f *Fake) Register() error {
	if f.Err != nil {
		return f.Err
	}
	f.mu.Lock()
	f.registered = true
	f.mu.Unlock()
	return nil
}

func (f *Fake) Unregister() {
	f.mu.Lock()
	f.unregistered = true
	f.mu.Unlock()
}

func (f *Fake) Registered() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.registered && !f.unregistered
}

func (f *Fake) Keydown() <-chan struct{} { return f.keydown }
func (f *Fake) Keyup() <-chan struct{}   { return f.keyup }

func (f *Fake) Press()   { f.keydown <- struct{}{} }
func (f *Fake) Release() { f.keyup <- struct{}{} }
