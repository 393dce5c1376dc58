package shell

import (
	"os"

	"tavern/log"
	"tavern/skins"
)

type Config struct {
	Host      Host
	Shortcuts Shortcuts
	Notifier  Notifier

	// SkinsDir resolves the skins directory. Defaults to skins.Dir.
	SkinsDir func() (string, bool)
	// Exit terminates the process. Defaults to os.Exit.
	Exit func(code int)
	// OnTrayState, if set, receives every tray state the UI reports so the
	// native tray icon can follow it.
	OnTrayState func(state string)
}

// Coordinator owns the desktop shell state and exposes the command surface
// used by the embedded UI.
type Coordinator struct {
	host        Host
	state       *State
	accel       *Registry
	window      *WindowController
	tray        *TrayController
	notify      *NotificationBridge
	skinsDir    func() (string, bool)
	onTrayState func(string)
}

func New(cfg Config) *Coordinator {
	if cfg.SkinsDir == nil {
		cfg.SkinsDir = skins.Dir
	}
	if cfg.Exit == nil {
		cfg.Exit = os.Exit
	}
	state := NewState(DefaultAccelerator)
	window := NewWindowController(cfg.Host)
	return &Coordinator{
		host:        cfg.Host,
		state:       state,
		accel:       NewRegistry(state, cfg.Shortcuts, cfg.Host),
		window:      window,
		tray:        NewTrayController(cfg.Host, window, cfg.Exit),
		notify:      NewNotificationBridge(cfg.Notifier),
		skinsDir:    cfg.SkinsDir,
		onTrayState: cfg.OnTrayState,
	}
}

// Start binds the default PTT accelerator.
func (c *Coordinator) Start() error {
	return c.accel.Rebind()
}

func (c *Coordinator) Accelerator() string {
	return c.state.Accelerator()
}

// SetTrayState broadcasts the connection state back to the UI and to the
// native tray. It never fails.
func (c *Coordinator) SetTrayState(state string) {
	emit(c.host, EventTrayState, state)
	if c.onTrayState != nil {
		c.onTrayState(state)
	}
	log.Command("set_tray_state", nil)
}

func (c *Coordinator) SetGlobalPTTKey(accel string) error {
	err := c.accel.Set(accel)
	log.Command("set_global_ptt_key", err)
	return err
}

func (c *Coordinator) NotifyDesktop(title, body string) error {
	err := c.notify.Notify(title, body)
	log.Command("notify_desktop", err)
	return err
}

func (c *Coordinator) ListSkins() ([]skins.Entry, error) {
	dir, ok := c.skinsDir()
	if !ok {
		log.Command("list_skins", nil)
		return []skins.Entry{}, nil
	}
	entries, err := skins.List(dir)
	log.Command("list_skins", err)
	return entries, err
}

func (c *Coordinator) FocusMainWindow() {
	c.window.ShowAndFocus()
	log.Command("focus_main_window", nil)
}

func (c *Coordinator) HandleMenuID(id string) {
	c.tray.HandleMenuID(id)
}

func (c *Coordinator) HandleIconClick() {
	c.tray.HandleIconClick()
}

// InterceptClose is the main window's close-request hook; see
// WindowController.InterceptClose.
func (c *Coordinator) InterceptClose() bool {
	return c.window.InterceptClose()
}

// SkinsChanged tells the UI to list skins again.
func (c *Coordinator) SkinsChanged() {
	emit(c.host, EventSkinsChanged)
}
