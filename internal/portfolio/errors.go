package portfolio

import "errors"

// ErrPersist is returned when the key-value backend rejected a write. The
// caller's notifier has already been told.
var ErrPersist = errors.New("failed to save data")
