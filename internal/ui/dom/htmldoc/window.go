package htmldoc

import "github.com/Its-donkey/sweet-treats/internal/ui/dom"

// Window is the viewport of a headless Document.
type Window struct {
	doc     *Document
	events  listenerSet
	scrollY float64

	scrolledTo bool
	lastTop    float64
	lastSmooth bool
}

var _ dom.Viewport = (*Window)(nil)

// ScrollY implements dom.Viewport.
func (w *Window) ScrollY() float64 { return w.scrollY }

// ScrollTo implements dom.Viewport. Without a layout engine a smooth scroll
// lands immediately; the request is recorded for LastScrollTo.
func (w *Window) ScrollTo(top float64, smooth bool) {
	w.scrolledTo = true
	w.lastTop = top
	w.lastSmooth = smooth
	w.Scroll(top)
}

// On implements dom.Viewport.
func (w *Window) On(event string, h dom.Handler) dom.Release {
	return w.events.add(event, h)
}

// Scroll moves the viewport to y and fires a scroll event.
func (w *Window) Scroll(y float64) *Event {
	if y < 0 {
		y = 0
	}
	w.scrollY = y
	evt := &Event{typ: dom.EventScroll}
	w.events.fire(dom.EventScroll, evt)
	return evt
}

// LastScrollTo returns the most recent ScrollTo request.
func (w *Window) LastScrollTo() (top float64, smooth bool, ok bool) {
	return w.lastTop, w.lastSmooth, w.scrolledTo
}
