package hotkey

import (
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrEmptyAccelerator = errors.New("empty accelerator")
	ErrUnknownKey       = errors.New("unknown key")
	ErrUnknownModifier  = errors.New("unknown modifier")
)

type Modifier int

const (
	ModCtrl Modifier = iota + 1
	ModShift
	ModAlt
	ModSuper
)

func (m Modifier) String() string {
	switch m {
	case ModCtrl:
		return "Ctrl"
	case ModShift:
		return "Shift"
	case ModAlt:
		return "Alt"
	case ModSuper:
		return "Super"
	}
	return fmt.Sprintf("Modifier(%d)", int(m))
}

// Accelerator is a parsed shortcut. Key holds a canonical key name
// ("A", "7", "F5", "Space", "Backquote", ...).
type Accelerator struct {
	Mods []Modifier
	Key  string
}

func (a Accelerator) Has(m Modifier) bool {
	return slices.Contains(a.Mods, m)
}

func (a Accelerator) String() string {
	parts := make([]string, 0, len(a.Mods)+1)
	for _, m := range a.Mods {
		parts = append(parts, m.String())
	}
	return strings.Join(append(parts, a.Key), "+")
}

// goos decides what CommandOrControl means; tests override it.
var goos = runtime.GOOS

var modifierNames = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"shift":   ModShift,
	"alt":     ModAlt,
	"option":  ModAlt,
	"super":   ModSuper,
	"cmd":     ModSuper,
	"command": ModSuper,
	"meta":    ModSuper,
	"win":     ModSuper,
}

var keyNames = map[string]string{
	"`":         "Backquote",
	"backquote": "Backquote",
	"grave":     "Backquote",
	"space":     "Space",
	"tab":       "Tab",
	"enter":     "Enter",
	"return":    "Enter",
	"escape":    "Escape",
	"esc":       "Escape",
	"-":         "Minus",
	"minus":     "Minus",
	"=":         "Equal",
	"equal":     "Equal",
}

// ParseAccelerator parses a Tauri-style accelerator: zero or more
// "+"-separated modifiers followed by exactly one key.
func ParseAccelerator(s string) (Accelerator, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Accelerator{}, ErrEmptyAccelerator
	}

	parts := strings.Split(s, "+")
	var acc Accelerator
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return Accelerator{}, fmt.Errorf("%q: empty segment", s)
		}
		if i == len(parts)-1 {
			key, err := canonicalKey(part)
			if err != nil {
				return Accelerator{}, fmt.Errorf("%q: %w", s, err)
			}
			acc.Key = key
			break
		}
		mod, err := parseModifier(part)
		if err != nil {
			return Accelerator{}, fmt.Errorf("%q: %w", s, err)
		}
		if !acc.Has(mod) {
			acc.Mods = append(acc.Mods, mod)
		}
	}
	return acc, nil
}

func parseModifier(name string) (Modifier, error) {
	lower := strings.ToLower(name)
	if lower == "commandorcontrol" || lower == "cmdorctrl" {
		if goos == "darwin" {
			return ModSuper, nil
		}
		return ModCtrl, nil
	}
	if m, ok := modifierNames[lower]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownModifier, name)
}

func canonicalKey(name string) (string, error) {
	lower := strings.ToLower(name)
	if k, ok := keyNames[lower]; ok {
		return k, nil
	}
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'a' && c <= 'z':
			return strings.ToUpper(name), nil
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return name, nil
		}
	}
	if len(lower) >= 2 && lower[0] == 'f' {
		n, err := strconv.Atoi(lower[1:])
		if err == nil && n >= 1 && n <= 12 && strconv.Itoa(n) == lower[1:] {
			return "F" + lower[1:], nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKey, name)
}
