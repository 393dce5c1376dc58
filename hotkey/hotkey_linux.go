//go:build linux

package hotkey

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	evKey      = 1
	keyPress   = 1
	keyRelease = 0
)

// input_event is 24 bytes on 64-bit Linux:
// timeval (16 bytes) + type (2) + code (2) + value (4)
const inputEventSize = 24

// Linux input event codes (linux/input-event-codes.h).
var evdevKeys = map[string]uint16{
	"Escape": 1, "1": 2, "2": 3, "3": 4, "4": 5, "5": 6, "6": 7, "7": 8,
	"8": 9, "9": 10, "0": 11, "Minus": 12, "Equal": 13, "Tab": 15,
	"Q": 16, "W": 17, "E": 18, "R": 19, "T": 20, "Y": 21, "U": 22, "I": 23,
	"O": 24, "P": 25, "Enter": 28, "A": 30, "S": 31, "D": 32, "F": 33,
	"G": 34, "H": 35, "J": 36, "K": 37, "L": 38, "Backquote": 41,
	"Z": 44, "X": 45, "C": 46, "V": 47, "B": 48, "N": 49, "M": 50,
	"Space": 57, "F1": 59, "F2": 60, "F3": 61, "F4": 62, "F5": 63,
	"F6": 64, "F7": 65, "F8": 66, "F9": 67, "F10": 68, "F11": 87, "F12": 88,
}

var evdevModifiers = map[uint16]Modifier{
	29:  ModCtrl,  // KEY_LEFTCTRL
	97:  ModCtrl,  // KEY_RIGHTCTRL
	42:  ModShift, // KEY_LEFTSHIFT
	54:  ModShift, // KEY_RIGHTSHIFT
	56:  ModAlt,   // KEY_LEFTALT
	100: ModAlt,   // KEY_RIGHTALT
	125: ModSuper, // KEY_LEFTMETA
	126: ModSuper, // KEY_RIGHTMETA
}

type evdevHotkey struct {
	accel   Accelerator
	code    uint16
	keydown chan struct{}
	keyup   chan struct{}
	files   []*os.File
	stop    chan struct{}
	once    sync.Once
}

// New creates a hotkey using evdev (reads /dev/input directly).
// Requires user to be in the 'input' group.
func New(a Accelerator) (Hotkey, error) {
	code, ok := evdevKeys[a.Key]
	if !ok {
		return nil, fmt.Errorf("%w %q on this platform", ErrUnknownKey, a.Key)
	}
	return &evdevHotkey{
		accel:   a,
		code:    code,
		keydown: make(chan struct{}, 1),
		keyup:   make(chan struct{}, 1),
	}, nil
}

func (h *evdevHotkey) Register() error {
	keyboards, err := findKeyboards()
	if err != nil {
		return fmt.Errorf("finding keyboards: %w", err)
	}
	if len(keyboards) == 0 {
		return fmt.Errorf("no keyboard devices found (is user in 'input' group?)")
	}

	h.stop = make(chan struct{})

	for _, path := range keyboards {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		h.files = append(h.files, f)
		go h.readEvents(f)
	}

	if len(h.files) == 0 {
		return fmt.Errorf("could not open any keyboard device (run: sudo usermod -aG input $USER, then re-login)")
	}

	return nil
}

func (h *evdevHotkey) readEvents(f *os.File) {
	buf := make([]byte, inputEventSize*16)
	held := map[Modifier]int{}
	var active bool

	for {
		select {
		case <-h.stop:
			return
		default:
		}

		n, err := f.Read(buf)
		if err != nil {
			return
		}

		for i := 0; i+inputEventSize <= n; i += inputEventSize {
			evType := binary.LittleEndian.Uint16(buf[i+16:])
			evCode := binary.LittleEndian.Uint16(buf[i+18:])
			evValue := int32(binary.LittleEndian.Uint32(buf[i+20:]))

			if evType != evKey {
				continue
			}

			pressed := evValue == keyPress
			released := evValue == keyRelease

			if mod, ok := evdevModifiers[evCode]; ok {
				switch {
				case pressed:
					held[mod]++
				case released && held[mod] > 0:
					held[mod]--
				}
				continue
			}

			if evCode != h.code {
				continue
			}
			if pressed && !active && h.modifiersHeld(held) {
				active = true
				signal(h.keydown)
			} else if released && active {
				active = false
				signal(h.keyup)
			}
		}
	}
}

func (h *evdevHotkey) modifiersHeld(held map[Modifier]int) bool {
	for _, m := range h.accel.Mods {
		if held[m] == 0 {
			return false
		}
	}
	return true
}

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func (h *evdevHotkey) Unregister() {
	h.once.Do(func() {
		if h.stop != nil {
			close(h.stop)
		}
		for _, f := range h.files {
			f.Close()
		}
	})
}

func (h *evdevHotkey) Keydown() <-chan struct{} {
	return h.keydown
}

func (h *evdevHotkey) Keyup() <-chan struct{} {
	return h.keyup
}

func findKeyboards() ([]string, error) {
	entries, err := os.ReadDir("/dev/input")
	if err != nil {
		return nil, err
	}

	var keyboards []string
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "event") {
			continue
		}
		path := filepath.Join("/dev/input", e.Name())
		if isKeyboard(e.Name()) {
			keyboards = append(keyboards, path)
		}
	}
	return keyboards, nil
}

func isKeyboard(eventName string) bool {
	capsPath := filepath.Join("/sys/class/input", eventName, "device", "capabilities", "key")
	data, err := os.ReadFile(capsPath)
	if err != nil {
		return false
	}
	// Real keyboards have long key capability bitmaps
	caps := strings.TrimSpace(string(data))
	return len(caps) > 10
}

// Diagnose checks hotkey/evdev access and returns a status message.
func Diagnose() (string, error) {
	keyboards, err := findKeyboards()
	if err != nil {
		return "", fmt.Errorf("cannot scan input devices: %w", err)
	}
	if len(keyboards) == 0 {
		return "", fmt.Errorf("no keyboard devices found (is user in 'input' group?)")
	}

	var opened string
	for _, path := range keyboards {
		f, err := os.Open(path)
		if err == nil {
			f.Close()
			opened = path
			break
		}
	}
	if opened == "" {
		return "", fmt.Errorf("found %d keyboard(s) but cannot open any (run: sudo usermod -aG input $USER)", len(keyboards))
	}

	return fmt.Sprintf("%d keyboard(s) found, opened %s", len(keyboards), opened), nil
}
