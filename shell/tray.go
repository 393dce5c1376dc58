package shell

import "tavern/log"

// TrayController reacts to tray menu selections and tray icon clicks.
type TrayController struct {
	host   Host
	window *WindowController
	exit   func(code int)
}

func NewTrayController(host Host, window *WindowController, exit func(int)) *TrayController {
	return &TrayController{host: host, window: window, exit: exit}
}

func (t *TrayController) HandleMenu(item MenuItem) {
	log.Info("tray_menu: " + item.ID())
	switch item {
	case ToggleWindow:
		t.window.Toggle()
	case ToggleMute:
		emit(t.host, EventTrayToggleMute)
	case Disconnect:
		emit(t.host, EventTrayDisconnect)
	case Quit:
		t.exit(0)
	}
}

// HandleMenuID dispatches by menu id. Unknown ids are ignored.
func (t *TrayController) HandleMenuID(id string) {
	item, ok := ParseMenuItem(id)
	if !ok {
		log.Debug("ignoring unknown tray menu id " + id)
		return
	}
	t.HandleMenu(item)
}

func (t *TrayController) HandleIconClick() {
	t.window.Toggle()
}
