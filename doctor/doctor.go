// Package doctor runs interactive checks of the pieces Tavern borrows from
// the operating system.
package doctor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"tavern/hotkey"
	"tavern/notify"
	"tavern/shell"
	"tavern/shutdown"
	"tavern/skins"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	headStyle = lipgloss.NewStyle().Bold(true)
)

type check struct {
	title string
	run   func(r *report) bool
}

type report struct {
	out         io.Writer
	in          *bufio.Reader
	interactive bool
}

func (r *report) pass(format string, args ...any) {
	fmt.Fprintf(r.out, "  %s %s\n", passStyle.Render("PASS:"), fmt.Sprintf(format, args...))
}

func (r *report) fail(format string, args ...any) {
	fmt.Fprintf(r.out, "  %s %s\n", failStyle.Render("FAIL:"), fmt.Sprintf(format, args...))
}

func (r *report) confirm(question string) bool {
	if !r.interactive {
		return true
	}
	fmt.Fprintf(r.out, "%s [y/n]: ", question)
	answer, _ := r.in.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}

// Run executes interactive diagnostic checks and returns an exit code (0=all pass, 1=any fail).
func Run() int {
	resetTerminal()
	setupInterruptHandler()

	r := &report{
		out:         os.Stdout,
		in:          bufio.NewReader(os.Stdin),
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}

	code := 1
	runOnMain(func() {
		if runChecks(r, defaultChecks()) {
			code = 0
		}
	})
	return code
}

func defaultChecks() []check {
	return []check{
		{"Skins directory", checkSkins},
		{"Global push-to-talk key", checkHotkey},
		{"Desktop notifications", checkNotify},
	}
}

func runChecks(r *report, checks []check) bool {
	fmt.Fprintln(r.out, headStyle.Render("tavern doctor - interactive system diagnostics"))

	allPass := true
	for i, c := range checks {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "[%d/%d] %s\n", i+1, len(checks), c.title)
		if !c.run(r) {
			allPass = false
		}
	}

	fmt.Fprintln(r.out)
	if allPass {
		fmt.Fprintln(r.out, "All checks passed!")
	} else {
		fmt.Fprintln(r.out, "Some checks failed. See details above.")
	}
	return allPass
}

func setupInterruptHandler() {
	shutdown.Handle(func(os.Signal) {
		println("\nInterrupted")
		os.Exit(1)
	})
}

func checkSkins(r *report) bool {
	dir, ok := skins.Dir()
	if !ok {
		r.pass("no home directory, skins disabled")
		return true
	}
	return listSkins(r, dir)
}

func listSkins(r *report, dir string) bool {
	entries, err := skins.List(dir)
	if err != nil {
		r.fail("%v", err)
		return false
	}
	fmt.Fprintf(r.out, "  %s\n", dir)
	for _, e := range entries {
		fmt.Fprintf(r.out, "    %s (%d bytes of CSS)\n", e.Name, len(e.CSS))
	}
	r.pass("%d skin(s) loaded", len(entries))
	return true
}

func checkHotkey(r *report) bool {
	if info, err := hotkey.Diagnose(); err != nil {
		fmt.Fprintf(r.out, "  Warning: %v\n", err)
	} else if info != "" {
		fmt.Fprintf(r.out, "  %s\n", info)
	}

	fmt.Fprintf(r.out, "Press %s...\n", shell.DefaultAccelerator)
	return waitForPress(r, hotkey.NewManager(), shell.DefaultAccelerator, 10*time.Second)
}

func waitForPress(r *report, m *hotkey.Manager, accel string, timeout time.Duration) bool {
	down := make(chan struct{}, 1)
	up := make(chan struct{}, 1)
	err := m.Register(accel,
		func() { nonBlockingSend(down) },
		func() { nonBlockingSend(up) },
	)
	if err != nil {
		r.fail("could not register %s: %v", accel, err)
		return false
	}
	defer m.UnregisterAll()

	select {
	case <-down:
		r.pass("key press detected")
		select {
		case <-up:
		case <-time.After(5 * time.Second):
		}
		// The key may leave the terminal in raw mode
		resetTerminal()
		return true
	case <-time.After(timeout):
		r.fail("timeout waiting for %s", accel)
		return false
	}
}

func nonBlockingSend(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func checkNotify(r *report) bool {
	return sendNotification(r, notify.New("Tavern", nil))
}

func sendNotification(r *report, n shell.Notifier) bool {
	if err := n.Notify("Tavern doctor", "If you can read this, notifications work."); err != nil {
		r.fail("%v", err)
		return false
	}
	if !r.confirm("Did a notification appear?") {
		r.fail("notification not confirmed")
		return false
	}
	r.pass("notification delivered")
	return true
}
