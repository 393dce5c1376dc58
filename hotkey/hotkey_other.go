//go:build darwin || windows

package hotkey

import (
	"fmt"

	"golang.design/x/hotkey"
)

var commonKeys = map[string]hotkey.Key{
	"A": hotkey.KeyA, "B": hotkey.KeyB, "C": hotkey.KeyC, "D": hotkey.KeyD,
	"E": hotkey.KeyE, "F": hotkey.KeyF, "G": hotkey.KeyG, "H": hotkey.KeyH,
	"I": hotkey.KeyI, "J": hotkey.KeyJ, "K": hotkey.KeyK, "L": hotkey.KeyL,
	"M": hotkey.KeyM, "N": hotkey.KeyN, "O": hotkey.KeyO, "P": hotkey.KeyP,
	"Q": hotkey.KeyQ, "R": hotkey.KeyR, "S": hotkey.KeyS, "T": hotkey.KeyT,
	"U": hotkey.KeyU, "V": hotkey.KeyV, "W": hotkey.KeyW, "X": hotkey.KeyX,
	"Y": hotkey.KeyY, "Z": hotkey.KeyZ,
	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,
	"F1": hotkey.KeyF1, "F2": hotkey.KeyF2, "F3": hotkey.KeyF3, "F4": hotkey.KeyF4,
	"F5": hotkey.KeyF5, "F6": hotkey.KeyF6, "F7": hotkey.KeyF7, "F8": hotkey.KeyF8,
	"F9": hotkey.KeyF9, "F10": hotkey.KeyF10, "F11": hotkey.KeyF11, "F12": hotkey.KeyF12,
	"Space":  hotkey.KeySpace,
	"Tab":    hotkey.KeyTab,
	"Enter":  hotkey.KeyReturn,
	"Escape": hotkey.KeyEscape,
}

type xHotkey struct {
	hk      *hotkey.Hotkey
	keydown chan struct{}
	keyup   chan struct{}
	stop    chan struct{}
}

// New creates a hotkey using golang.design/x/hotkey (Cocoa/Win32).
func New(a Accelerator) (Hotkey, error) {
	key, ok := commonKeys[a.Key]
	if !ok {
		key, ok = platformKeys[a.Key]
	}
	if !ok {
		return nil, fmt.Errorf("%w %q on this platform", ErrUnknownKey, a.Key)
	}
	mods := make([]hotkey.Modifier, 0, len(a.Mods))
	for _, m := range a.Mods {
		hm, ok := modifierMap[m]
		if !ok {
			return nil, fmt.Errorf("%w %s on this platform", ErrUnknownModifier, m)
		}
		mods = append(mods, hm)
	}
	return &xHotkey{
		hk:      hotkey.New(mods, key),
		keydown: make(chan struct{}, 1),
		keyup:   make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}, nil
}

func (h *xHotkey) Register() error {
	if err := h.hk.Register(); err != nil {
		return err
	}
	go relay(h.hk.Keydown(), h.keydown, h.stop)
	go relay(h.hk.Keyup(), h.keyup, h.stop)
	return nil
}

func relay(src <-chan hotkey.Event, dst chan<- struct{}, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case _, ok := <-src:
			if !ok {
				return
			}
			select {
			case dst <- struct{}{}:
			default:
			}
		}
	}
}

func (h *xHotkey) Unregister() {
	close(h.stop)
	h.hk.Unregister()
}

func (h *xHotkey) Keydown() <-chan struct{} {
	return h.keydown
}

func (h *xHotkey) Keyup() <-chan struct{} {
	return h.keyup
}

func Diagnose() (string, error) {
	return "hotkey support available (golang.design/x/hotkey)", nil
}
