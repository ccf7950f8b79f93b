package calculator

import "errors"

// ErrClipboardUnavailable is returned when no clipboard is attached
var ErrClipboardUnavailable = errors.New("clipboard unavailable")
