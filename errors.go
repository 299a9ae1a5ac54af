package srcdump

import "errors"

// Sentinel errors for library operations.
var (
	// ErrNilSink is returned by Service.Dump when no sink is configured.
	ErrNilSink = errors.New("sink cannot be nil")
)
