//go:build !linux && !darwin && !windows

package hotkey

import "errors"

var errUnsupported = errors.New("global hotkeys are not supported on this platform")

func New(Accelerator) (Hotkey, error) {
	return nil, errUnsupported
}

func Diagnose() (string, error) {
	return "", errUnsupported
}
