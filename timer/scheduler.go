package timer

import "time"

// Handle is a pending deferred callback. Stop reports whether the call was
// prevented.
type Handle interface {
	Stop() bool
}

// Scheduler defers single-shot callbacks.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Handle
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Handle {
	return time.AfterFunc(d, f)
}

// RealScheduler runs callbacks on the runtime timer goroutines.
var RealScheduler Scheduler = realScheduler{}
