// Package notify sends desktop notifications through the OS notification
// center.
package notify

import (
	"fmt"
	"strings"

	"github.com/gen2brain/beeep"
)

type Notifier struct {
	send func(title, body string, icon any) error
	icon []byte
}

// New returns a notifier that shows icon (PNG bytes, may be nil) next to
// every message.
func New(appName string, icon []byte) *Notifier {
	beeep.AppName = appName
	return &Notifier{send: beeep.Notify, icon: icon}
}

// Notify forwards title and body verbatim.
func (n *Notifier) Notify(title, body string) error {
	var icon any = ""
	if len(n.icon) > 0 {
		icon = n.icon
	}
	if err := n.send(title, body, icon); err != nil {
		return describe(err)
	}
	return nil
}

// describe flattens the platform error into something a user can act on.
func describe(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "org.freedesktop.Notifications"):
		return fmt.Errorf("no notification service running: %w", err)
	case strings.Contains(strings.ToLower(msg), "not authorized"),
		strings.Contains(strings.ToLower(msg), "denied"):
		return fmt.Errorf("notifications not permitted: %w", err)
	}
	return err
}
