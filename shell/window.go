package shell

import "tavern/log"

// WindowController shows, hides and focuses the main window. Failures are
// logged and dropped: visibility is cosmetic and must never wedge the tray.
type WindowController struct {
	host Host
}

func NewWindowController(host Host) *WindowController {
	return &WindowController{host: host}
}

func (c *WindowController) ShowAndFocus() {
	if w, ok := c.host.MainWindow(); ok {
		showAndFocus(w)
	}
}

func (c *WindowController) Hide() {
	if w, ok := c.host.MainWindow(); ok {
		warn("hide window", w.Hide())
	}
}

func (c *WindowController) Toggle() {
	w, ok := c.host.MainWindow()
	if !ok {
		return
	}
	visible, err := w.IsVisible()
	if err != nil {
		warn("query window visibility", err)
		visible = false
	}
	if visible {
		warn("hide window", w.Hide())
		return
	}
	showAndFocus(w)
}

// InterceptClose handles a close request on the main window by hiding it.
// It always reports true: the default close is suppressed and the process
// stays in the tray.
func (c *WindowController) InterceptClose() bool {
	log.Info("close requested, hiding to tray")
	c.Hide()
	return true
}

func showAndFocus(w Window) {
	warn("show window", w.Show())
	warn("focus window", w.SetFocus())
}

func warn(op string, err error) {
	if err != nil {
		log.Warnf("%s: %v", op, err)
	}
}
