package htmldoc

import (
	"time"

	"github.com/Its-donkey/sweet-treats/internal/ui/dom"
)

// Clock is a manual dom.Scheduler. Callbacks only run from Advance, on the
// caller's goroutine, in due order.
type Clock struct {
	now   time.Duration
	seq   int
	tasks []*clockTask
}

type clockTask struct {
	at      time.Duration
	seq     int
	fn      func()
	done    bool
	stopped bool
}

func (t *clockTask) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.stopped = true
	return true
}

var _ dom.Scheduler = (*Clock)(nil)

// NewClock returns a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// AfterFunc implements dom.Scheduler.
func (c *Clock) AfterFunc(d time.Duration, fn func()) dom.Task {
	c.seq++
	task := &clockTask{at: c.now + d, seq: c.seq, fn: fn}
	c.tasks = append(c.tasks, task)
	return task
}

// Now is the elapsed manual time.
func (c *Clock) Now() time.Duration { return c.now }

// Pending counts callbacks that are scheduled and not yet run or stopped.
func (c *Clock) Pending() int {
	n := 0
	for _, t := range c.tasks {
		if !t.done {
			n++
		}
	}
	return n
}

// Advance moves time forward by d, running every callback that falls due.
func (c *Clock) Advance(d time.Duration) {
	deadline := c.now + d
	for {
		next := c.nextDue(deadline)
		if next == nil {
			break
		}
		c.now = next.at
		next.done = true
		next.fn()
	}
	c.now = deadline
	c.compact()
}

func (c *Clock) nextDue(deadline time.Duration) *clockTask {
	var next *clockTask
	for _, t := range c.tasks {
		if t.done || t.at > deadline {
			continue
		}
		if next == nil || t.at < next.at || (t.at == next.at && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (c *Clock) compact() {
	kept := c.tasks[:0]
	for _, t := range c.tasks {
		if !t.done {
			kept = append(kept, t)
		}
	}
	c.tasks = kept
}
