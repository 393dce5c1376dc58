package desktop

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tavern/shell"
	"tavern/skins"
)

type nopShortcuts struct{ err error }

func (nopShortcuts) UnregisterAll() {}
func (s nopShortcuts) Register(string, func(), func()) error {
	return s.err
}

type nopNotifier struct{ err error }

func (n nopNotifier) Notify(string, string) error { return n.err }

func TestMainWindowOnlyAfterStartup(t *testing.T) {
	h := NewHost(false)
	if _, ok := h.MainWindow(); ok {
		t.Fatal("no window expected before startup")
	}

	ready := false
	h.OnReady(func() { ready = true })
	h.startup(context.Background())
	if !ready {
		t.Error("OnReady not called on startup")
	}
	if _, ok := h.MainWindow(); !ok {
		t.Error("window expected after startup")
	}

	h.shutdown(context.Background())
	if _, ok := h.MainWindow(); ok {
		t.Error("no window expected after shutdown")
	}
}

func TestStartHiddenVisibility(t *testing.T) {
	if NewHost(true).isVisible() {
		t.Error("hidden start should report not visible")
	}
	if !NewHost(false).isVisible() {
		t.Error("normal start should report visible")
	}
}

func TestBeforeCloseUsesHook(t *testing.T) {
	h := NewHost(false)
	if h.beforeClose(context.Background()) {
		t.Error("without a hook the close should proceed")
	}

	c := shell.New(shell.Config{Host: h, Shortcuts: nopShortcuts{}, Notifier: nopNotifier{}})
	h.OnClose(c.InterceptClose)
	if !h.beforeClose(context.Background()) {
		t.Error("close should be prevented")
	}
}

func TestCommandsSurfaceErrors(t *testing.T) {
	h := NewHost(false)
	c := shell.New(shell.Config{
		Host:      h,
		Shortcuts: nopShortcuts{err: errors.New("taken")},
		Notifier:  nopNotifier{err: errors.New("unavailable")},
		SkinsDir:  func() (string, bool) { return "", false },
	})
	cmds := NewCommands(c)

	if err := cmds.SetGlobalPttKey(PttPayload{Accelerator: " "}); !errors.Is(err, shell.ErrInvalidAccelerator) {
		t.Errorf("blank key: %v", err)
	}
	if err := cmds.SetGlobalPttKey(PttPayload{Accelerator: "F4"}); !errors.Is(err, shell.ErrRegistrationFailed) {
		t.Errorf("taken key: %v", err)
	}
	if err := cmds.NotifyDesktop(NotifyPayload{Title: "a", Body: "b"}); !errors.Is(err, shell.ErrNotificationFailed) {
		t.Errorf("notify: %v", err)
	}
	if err := cmds.SetTrayState(TrayStatePayload{State: "muted"}); err != nil {
		t.Errorf("set tray state: %v", err)
	}
	if err := cmds.FocusMainWindow(); err != nil {
		t.Errorf("focus: %v", err)
	}
}

func TestCommandsListSkins(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "b.tavern-skin"), []byte(`{"name":"B","css":"div{}"}`), 0644); err != nil {
		t.Fatal(err)
	}
	c := shell.New(shell.Config{
		Host:      NewHost(false),
		Shortcuts: nopShortcuts{},
		Notifier:  nopNotifier{},
		SkinsDir:  func() (string, bool) { return dir, true },
	})

	got, err := NewCommands(c).ListSkins()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != (skins.Entry{Name: "B", CSS: "div{}"}) {
		t.Errorf("got %+v", got)
	}
}
