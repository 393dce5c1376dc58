package shell

// MenuItem is one entry of the fixed tray menu.
type MenuItem int

const (
	ToggleWindow MenuItem = iota
	ToggleMute
	Disconnect
	Quit
)

type MenuEntry struct {
	Item  MenuItem
	ID    string
	Label string
}

var menu = [...]MenuEntry{
	{ToggleWindow, "toggle_window", "Show / Hide Tavern"},
	{ToggleMute, "toggle_mute", "Mute / Unmute"},
	{Disconnect, "disconnect", "Disconnect"},
	{Quit, "quit", "Quit Tavern"},
}

// Menu returns the tray menu in display order.
func Menu() []MenuEntry {
	out := make([]MenuEntry, len(menu))
	copy(out, menu[:])
	return out
}

func (m MenuItem) ID() string {
	if m < 0 || int(m) >= len(menu) {
		return ""
	}
	return menu[m].ID
}

func (m MenuItem) Label() string {
	if m < 0 || int(m) >= len(menu) {
		return ""
	}
	return menu[m].Label
}

// ParseMenuItem maps a menu id back to its item.
func ParseMenuItem(id string) (MenuItem, bool) {
	for _, e := range menu {
		if e.ID == id {
			return e.Item, true
		}
	}
	return 0, false
}
