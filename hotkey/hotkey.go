// Package hotkey provides global keyboard shortcuts with press/release
// events, addressed by accelerator strings such as "`" or "Ctrl+Shift+P".
package hotkey

// Hotkey is a single OS-level global shortcut.
type Hotkey interface {
	Register() error
	Unregister()
	Keydown() <-chan struct{}
	Keyup() <-chan struct{}
}
