package shell

import (
	"errors"
	"sync"
)

type emitted struct {
	name    string
	payload []any
}

type fakeWindow struct {
	mu       sync.Mutex
	visible  bool
	focused  bool
	queryErr error
	emitErr  error
	events   []emitted
}

func (w *fakeWindow) IsVisible() (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.queryErr != nil {
		return true, w.queryErr
	}
	return w.visible, nil
}

func (w *fakeWindow) Show() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.visible = true
	return nil
}

func (w *fakeWindow) Hide() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.visible = false
	w.focused = false
	return nil
}

func (w *fakeWindow) SetFocus() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.focused = true
	return nil
}

func (w *fakeWindow) Emit(event string, payload ...any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.emitErr != nil {
		return w.emitErr
	}
	w.events = append(w.events, emitted{event, payload})
	return nil
}

func (w *fakeWindow) eventNames() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	names := make([]string, 0, len(w.events))
	for _, e := range w.events {
		names = append(names, e.name)
	}
	return names
}

func (w *fakeWindow) isVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

// fakeHost returns win when it is non-nil; a nil win means no main window.
type fakeHost struct {
	win *fakeWindow
}

func (h *fakeHost) MainWindow() (Window, bool) {
	if h.win == nil {
		return nil, false
	}
	return h.win, true
}

type fakeShortcuts struct {
	mu            sync.Mutex
	err           error
	unregisterAll int
	registered    []string
	onRegister    func(accel string)
	press         func()
	release       func()
}

func (s *fakeShortcuts) UnregisterAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unregisterAll++
}

func (s *fakeShortcuts) Register(accel string, onPress, onRelease func()) error {
	if s.onRegister != nil {
		s.onRegister(accel)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.registered = append(s.registered, accel)
	s.press, s.release = onPress, onRelease
	return nil
}

type fakeNotifier struct {
	err   error
	calls [][2]string
}

func (n *fakeNotifier) Notify(title, body string) error {
	n.calls = append(n.calls, [2]string{title, body})
	return n.err
}

var errOS = errors.New("os said no")

type harness struct {
	win       *fakeWindow
	host      *fakeHost
	shortcuts *fakeShortcuts
	notifier  *fakeNotifier
	exits     []int
	c         *Coordinator
}

func newHarness() *harness {
	h := &harness{
		win:       &fakeWindow{visible: true},
		shortcuts: &fakeShortcuts{},
		notifier:  &fakeNotifier{},
	}
	h.host = &fakeHost{win: h.win}
	h.c = New(Config{
		Host:      h.host,
		Shortcuts: h.shortcuts,
		Notifier:  h.notifier,
		SkinsDir:  func() (string, bool) { return "", false },
		Exit:      func(code int) { h.exits = append(h.exits, code) },
	})
	return h
}
