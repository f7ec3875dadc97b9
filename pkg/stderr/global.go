package stderr

import "sync"

var (
	globalOnce sync.Once
	global     *Stderr
)

// Global returns the process-wide shared logger, lazily constructing it
// from the environment on first use. The instance persists for the
// process lifetime.
//
// Initialization is once-only, but the returned logger carries the same
// single-writer obligation as any other Stderr: programs logging from
// multiple goroutines must serialize their calls.
func Global() *Stderr {
	globalOnce.Do(func() {
		global = New()
	})
	return global
}
