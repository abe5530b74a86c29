package domain

import "errors"

// ErrConcurrentModification is returned when an aggregate changed in storage
// after it was loaded.
var ErrConcurrentModification = errors.New("aggregate was modified concurrently")
