package timer

import "github.com/benjamonnguyen/pomomo-tui"

// Observer is notified synchronously, in registration order, after every
// timer mutation. Update must not call back into the Timer.
type Observer interface {
	Update(pomomo.Snapshot)
}

type ObserverFunc func(pomomo.Snapshot)

func (f ObserverFunc) Update(s pomomo.Snapshot) {
	f(s)
}
