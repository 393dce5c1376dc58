package shell

import "fmt"

// NotificationBridge forwards notifications to the OS. Unlike the other
// desktop operations it reports failure, so the UI can fall back to an
// in-app toast.
type NotificationBridge struct {
	notifier Notifier
}

func NewNotificationBridge(n Notifier) *NotificationBridge {
	return &NotificationBridge{notifier: n}
}

func (b *NotificationBridge) Notify(title, body string) error {
	if err := b.notifier.Notify(title, body); err != nil {
		return fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}
	return nil
}
