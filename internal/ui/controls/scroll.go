package controls

import "github.com/Its-donkey/sweet-treats/internal/ui/dom"

// ScrollThreshold is the offset the viewport must pass before the back to
// top control appears.
const ScrollThreshold = 200

// BackToTop is the floating control that returns to the top of the page.
type BackToTop struct {
	button   dom.Element
	viewport dom.Viewport
}

// NewBackToTop binds the control to the viewport it scrolls.
func NewBackToTop(button dom.Element, viewport dom.Viewport) *BackToTop {
	return &BackToTop{button: button, viewport: viewport}
}

// Update shows the control above the threshold and hides it otherwise. It
// reports whether the control is visible.
func (b *BackToTop) Update(offset float64) bool {
	if offset > ScrollThreshold {
		b.button.AddClass(ClassShow)
		b.button.SetStyle("display", "block")
		return true
	}
	b.button.RemoveClass(ClassShow)
	b.button.SetStyle("display", "none")
	return false
}

// Visible reports whether the control is showing.
func (b *BackToTop) Visible() bool {
	return b.button.HasClass(ClassShow)
}

// ScrollToTop smoothly scrolls the viewport to the top edge.
func (b *BackToTop) ScrollToTop() {
	b.viewport.ScrollTo(0, true)
}
