// Package desktop runs the Tavern shell inside a Wails window and binds the
// shell commands to the embedded UI.
package desktop

import (
	"context"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"tavern/shell"
)

// Host tracks the Wails runtime context of the main window. The context is
// only available between startup and shutdown.
type Host struct {
	mu      sync.Mutex
	ctx     context.Context
	visible bool

	onReady func()
	onClose func() bool
}

func NewHost(startHidden bool) *Host {
	return &Host{visible: !startHidden}
}

// OnReady registers fn to run once the window runtime is available.
func (h *Host) OnReady(fn func()) { h.onReady = fn }

// OnClose registers the close-request hook. fn reports whether the close
// should be prevented.
func (h *Host) OnClose(fn func() bool) { h.onClose = fn }

func (h *Host) MainWindow() (shell.Window, bool) {
	h.mu.Lock()
	ctx := h.ctx
	h.mu.Unlock()
	if ctx == nil {
		return nil, false
	}
	return &window{host: h, ctx: ctx}, true
}

func (h *Host) startup(ctx context.Context) {
	h.mu.Lock()
	h.ctx = ctx
	h.mu.Unlock()
	if h.onReady != nil {
		h.onReady()
	}
}

func (h *Host) shutdown(context.Context) {
	h.mu.Lock()
	h.ctx = nil
	h.mu.Unlock()
}

func (h *Host) beforeClose(context.Context) bool {
	if h.onClose == nil {
		return false
	}
	return h.onClose()
}

func (h *Host) setVisible(v bool) {
	h.mu.Lock()
	h.visible = v
	h.mu.Unlock()
}

func (h *Host) isVisible() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.visible
}

// window adapts the Wails v2 runtime. Wails v2 cannot report visibility,
// so the host remembers what it last asked for.
type window struct {
	host *Host
	ctx  context.Context
}

func (w *window) IsVisible() (bool, error) {
	return w.host.isVisible(), nil
}

func (w *window) Show() error {
	runtime.WindowShow(w.ctx)
	runtime.WindowUnminimise(w.ctx)
	w.host.setVisible(true)
	return nil
}

func (w *window) Hide() error {
	runtime.WindowHide(w.ctx)
	w.host.setVisible(false)
	return nil
}

// SetFocus raises the window. The v2 runtime has no focus call; flipping
// always-on-top brings it to the front on all platforms.
func (w *window) SetFocus() error {
	runtime.WindowSetAlwaysOnTop(w.ctx, true)
	runtime.WindowSetAlwaysOnTop(w.ctx, false)
	return nil
}

func (w *window) Emit(event string, payload ...any) error {
	runtime.EventsEmit(w.ctx, event, payload...)
	return nil
}
