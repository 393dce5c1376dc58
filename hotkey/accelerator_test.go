package hotkey

import (
	"errors"
	"slices"
	"testing"
)

func TestParseAccelerator(t *testing.T) {
	tests := []struct {
		in   string
		mods []Modifier
		key  string
	}{
		{"`", nil, "Backquote"},
		{"Backquote", nil, "Backquote"},
		{"a", nil, "A"},
		{"f5", nil, "F5"},
		{"F12", nil, "F12"},
		{"Ctrl+Shift+Space", []Modifier{ModCtrl, ModShift}, "Space"},
		{"  alt + return ", []Modifier{ModAlt}, "Enter"},
		{"Super+Ctrl+Ctrl+7", []Modifier{ModSuper, ModCtrl}, "7"},
		{"Option+-", []Modifier{ModAlt}, "Minus"},
	}
	for _, tt := range tests {
		got, err := ParseAccelerator(tt.in)
		if err != nil {
			t.Errorf("ParseAccelerator(%q): %v", tt.in, err)
			continue
		}
		if got.Key != tt.key || !slices.Equal(got.Mods, tt.mods) {
			t.Errorf("ParseAccelerator(%q) = %v, want mods %v key %s", tt.in, got, tt.mods, tt.key)
		}
	}
}

func TestParseAcceleratorErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrEmptyAccelerator},
		{"   ", ErrEmptyAccelerator},
		{"F13", ErrUnknownKey},
		{"Ctrl+PageDown", ErrUnknownKey},
		{"Hyper+A", ErrUnknownModifier},
	}
	for _, tt := range tests {
		_, err := ParseAccelerator(tt.in)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseAccelerator(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}

	if _, err := ParseAccelerator("Ctrl+"); err == nil {
		t.Error("expected error for trailing +")
	}
}

func TestCommandOrControl(t *testing.T) {
	orig := goos
	t.Cleanup(func() { goos = orig })

	goos = "darwin"
	a, err := ParseAccelerator("CommandOrControl+K")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Has(ModSuper) || a.Has(ModCtrl) {
		t.Errorf("darwin: got %v, want Super+K", a)
	}

	goos = "windows"
	a, err = ParseAccelerator("CmdOrCtrl+K")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Has(ModCtrl) || a.Has(ModSuper) {
		t.Errorf("windows: got %v, want Ctrl+K", a)
	}
}

func TestAcceleratorString(t *testing.T) {
	a, err := ParseAccelerator("shift+ctrl+x")
	if err != nil {
		t.Fatal(err)
	}
	if got := a.String(); got != "Shift+Ctrl+X" {
		t.Errorf("String() = %q, want Shift+Ctrl+X", got)
	}
}
