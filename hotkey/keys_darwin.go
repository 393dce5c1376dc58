package hotkey

import "golang.design/x/hotkey"

// Virtual key codes from HIToolbox/Events.h.
var platformKeys = map[string]hotkey.Key{
	"Backquote": hotkey.Key(0x32),
	"Minus":     hotkey.Key(0x1B),
	"Equal":     hotkey.Key(0x18),
}

var modifierMap = map[Modifier]hotkey.Modifier{
	ModCtrl:  hotkey.ModCtrl,
	ModShift: hotkey.ModShift,
	ModAlt:   hotkey.ModOption,
	ModSuper: hotkey.ModCmd,
}
