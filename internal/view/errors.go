package view

import "errors"

var (
	// ErrNotReady is returned by actions whose page data has not loaded.
	ErrNotReady = errors.New("view is not ready")
	// ErrControlDisabled is returned when the action's control renders disabled.
	ErrControlDisabled = errors.New("control is disabled")
)
