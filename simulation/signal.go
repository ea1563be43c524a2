package simulation

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
)

// posixSignalFlag is the process-wide "a termination signal arrived" flag
// spec'd as not re-entrant across concurrent engines in the same process:
// CheckForPOSIXSignal clears it, so one interrupt is observed by only the
// first Base that checks after it arrives.
var posixSignalFlag atomic.Bool

var posixSignalOnce sync.Once

// installPOSIXSignalHandler registers the process's SIGINT/SIGTERM
// handler exactly once, regardless of how many engines are constructed.
func installPOSIXSignalHandler() {
	posixSignalOnce.Do(func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		go func() {
			for range ch {
				posixSignalFlag.Store(true)
			}
		}()
	})
}

// CheckForPOSIXSignal reports whether a termination signal has arrived,
// latching b.IsTerminating true the first time it observes one. The
// process-wide flag is cleared on call entry, so only the first Base to
// call this after a signal arrives observes it; any other engine running
// concurrently in the same process will not, which is why the flag is
// documented as not re-entrant across concurrent engines. Outer loops
// (relaxation, refinement, multi-beta sweeps) must poll this between
// iterations and exit cleanly, preserving whatever partial result they
// have accumulated.
func (b *Base[C]) CheckForPOSIXSignal() bool {
	if posixSignalFlag.Swap(false) {
		b.IsTerminating = true
	}
	return b.IsTerminating
}
