package controls

import (
	"sync"
	"time"

	"github.com/Its-donkey/sweet-treats/internal/ui/dom"
)

// PopupHideDelay lets the exit transition finish before the popup leaves layout.
const PopupHideDelay = 400 * time.Millisecond

// Popup shows and hides an overlay in two phases.
type Popup struct {
	el    dom.Element
	sched dom.Scheduler

	mu      sync.Mutex
	pending dom.Task
	gen     uint64
}

// NewPopup binds a popup element to a scheduler for its deferred hide.
func NewPopup(el dom.Element, sched dom.Scheduler) *Popup {
	if sched == nil {
		sched = dom.RealScheduler
	}
	return &Popup{el: el, sched: sched}
}

// Show makes the popup visible and cancels any hide still in flight.
func (p *Popup) Show() bool {
	p.cancelPending()
	p.el.AddClass(ClassShow)
	p.el.RemoveClass(ClassHidden)
	return true
}

// Hide starts the exit transition now and removes the popup from layout
// after PopupHideDelay. A later Show or Hide supersedes this one.
func (p *Popup) Hide() bool {
	p.mu.Lock()
	p.stopLocked()
	gen := p.gen
	p.el.RemoveClass(ClassShow)
	p.pending = p.sched.AfterFunc(PopupHideDelay, func() {
		p.mu.Lock()
		current := p.gen == gen
		if current {
			p.pending = nil
		}
		p.mu.Unlock()
		// A timer that fired just as it was stopped must not hide a re-shown popup.
		if current {
			p.el.AddClass(ClassHidden)
		}
	})
	p.mu.Unlock()
	return true
}

// HidePending reports whether a deferred hide is scheduled.
func (p *Popup) HidePending() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending != nil
}

func (p *Popup) cancelPending() {
	p.mu.Lock()
	p.stopLocked()
	p.mu.Unlock()
}

func (p *Popup) stopLocked() {
	p.gen++
	if p.pending != nil {
		p.pending.Stop()
		p.pending = nil
	}
}
