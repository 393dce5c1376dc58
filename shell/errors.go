package shell

import "errors"

var (
	ErrInvalidAccelerator = errors.New("PTT key cannot be empty")
	ErrRegistrationFailed = errors.New("failed to register shortcut")
	ErrNotificationFailed = errors.New("notification failed")
)
