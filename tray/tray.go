// Package tray owns the native tray icon and its menu.
package tray

import (
	"sync"

	"github.com/energye/systray"

	"tavern/log"
)

// Handler receives tray interactions.
type Handler interface {
	HandleMenuID(id string)
	HandleIconClick()
}

type Item struct {
	ID    string
	Label string
}

const (
	StateConnected    = "connected"
	StateDisconnected = "disconnected"
	StateMuted        = "muted"
)

var (
	quitCh    = make(chan struct{})
	closeOnce sync.Once

	handler Handler
	items   []Item

	mu    sync.Mutex
	ready bool
	state = StateDisconnected
)

// Start creates the tray icon on the host's native event loop and returns
// a channel closed once the tray has exited.
func Start(menu []Item, h Handler) <-chan struct{} {
	items = menu
	handler = h
	start, _ := systray.RunWithExternalLoop(onReady, onExit)
	start()
	return quitCh
}

func onReady() {
	mu.Lock()
	ready = true
	cur := state
	mu.Unlock()
	apply(cur)

	for _, it := range items {
		id := it.ID
		item := systray.AddMenuItem(it.Label, it.Label)
		item.Click(func() {
			if handler != nil {
				handler.HandleMenuID(id)
			}
		})
	}

	systray.SetOnClick(func(systray.IMenu) {
		if handler != nil {
			handler.HandleIconClick()
		}
	})
	systray.SetOnRClick(func(menu systray.IMenu) {
		if err := menu.ShowMenu(); err != nil {
			log.Warnf("tray menu: %v", err)
		}
	})
	systray.CreateMenu()
}

// SetState switches the icon and tooltip to one of the known connection
// states. Unknown states are ignored.
func SetState(s string) {
	if _, ok := icons[s]; !ok {
		log.Debug("tray: ignoring unknown state " + s)
		return
	}
	mu.Lock()
	state = s
	isReady := ready
	mu.Unlock()
	if isReady {
		apply(s)
	}
}

func apply(s string) {
	systray.SetIcon(icons[s])
	systray.SetTooltip(tooltip(s))
}

func tooltip(s string) string {
	return "Tavern – " + s
}

func Quit() {
	closeOnce.Do(func() { close(quitCh) })
	systray.Quit()
}

func onExit() {
	closeOnce.Do(func() { close(quitCh) })
}
