package hotkey

import "golang.design/x/hotkey"

// VK_OEM_* codes.
var platformKeys = map[string]hotkey.Key{
	"Backquote": hotkey.Key(0xC0),
	"Minus":     hotkey.Key(0xBD),
	"Equal":     hotkey.Key(0xBB),
}

var modifierMap = map[Modifier]hotkey.Modifier{
	ModCtrl:  hotkey.ModCtrl,
	ModShift: hotkey.ModShift,
	ModAlt:   hotkey.ModAlt,
	ModSuper: hotkey.ModWin,
}
