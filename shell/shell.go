// Package shell coordinates desktop state for the Tavern client: the
// push-to-talk accelerator, the tray menu and main window visibility.
// It sits between OS callbacks and the embedded UI, which it talks to
// only through fire-and-forget events on the main window.
package shell

import "tavern/log"

// Events emitted to the UI.
const (
	EventTrayState      = "tray-state"
	EventPTTDown        = "ptt-down"
	EventPTTUp          = "ptt-up"
	EventTrayToggleMute = "tray-toggle-mute"
	EventTrayDisconnect = "tray-disconnect"
	EventSkinsChanged   = "skins-changed"
)

// DefaultAccelerator is bound at every startup.
const DefaultAccelerator = "`"

// Window is a borrowed handle to the main window. It is only valid for the
// operation that looked it up and must not be kept.
type Window interface {
	IsVisible() (bool, error)
	Show() error
	Hide() error
	SetFocus() error
	Emit(event string, payload ...any) error
}

// Host is the runtime that owns the main window.
type Host interface {
	MainWindow() (Window, bool)
}

// Shortcuts is the OS global hotkey facility.
type Shortcuts interface {
	UnregisterAll()
	Register(accel string, onPress, onRelease func()) error
}

// Notifier is the OS notification center.
type Notifier interface {
	Notify(title, body string) error
}

func emit(host Host, event string, payload ...any) {
	w, ok := host.MainWindow()
	if !ok {
		log.Debug("no main window for " + event)
		return
	}
	if err := w.Emit(event, payload...); err != nil {
		log.Debug("emit " + event + ": " + err.Error())
		return
	}
	log.Event(event)
}
