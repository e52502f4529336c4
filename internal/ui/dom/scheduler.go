package dom

import "time"

// Task is a pending deferred callback.
type Task interface {
	// Stop cancels the callback. It reports false when the callback already
	// ran or was stopped before.
	Stop() bool
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Task
}

// RealScheduler schedules on the runtime timer.
var RealScheduler Scheduler = timerScheduler{}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, fn func()) Task {
	return time.AfterFunc(d, fn)
}
