package desktop

import (
	"tavern/shell"
	"tavern/skins"
)

type TrayStatePayload struct {
	State string `json:"state"`
}

type PttPayload struct {
	Accelerator string `json:"accelerator"`
}

type NotifyPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Commands is bound to the UI; every exported method is callable from
// JavaScript.
type Commands struct {
	shell *shell.Coordinator
}

func NewCommands(c *shell.Coordinator) *Commands {
	return &Commands{shell: c}
}

func (c *Commands) SetTrayState(p TrayStatePayload) error {
	c.shell.SetTrayState(p.State)
	return nil
}

func (c *Commands) SetGlobalPttKey(p PttPayload) error {
	return c.shell.SetGlobalPTTKey(p.Accelerator)
}

func (c *Commands) NotifyDesktop(p NotifyPayload) error {
	return c.shell.NotifyDesktop(p.Title, p.Body)
}

func (c *Commands) ListSkins() ([]skins.Entry, error) {
	return c.shell.ListSkins()
}

func (c *Commands) FocusMainWindow() error {
	c.shell.FocusMainWindow()
	return nil
}
