package controls

import "github.com/Its-donkey/sweet-treats/internal/ui/dom"

// Dropdown is a menu opened by its trigger and closed by clicks elsewhere.
type Dropdown struct {
	trigger dom.Element
	menu    dom.Element
}

// NewDropdown pairs a trigger with its menu.
func NewDropdown(trigger, menu dom.Element) *Dropdown {
	return &Dropdown{trigger: trigger, menu: menu}
}

// Toggle opens a closed menu or closes an open one and reports whether it is open.
func (d *Dropdown) Toggle() bool {
	return d.menu.ToggleClass(ClassShow)
}

// IsOpen reports whether the menu is showing.
func (d *Dropdown) IsOpen() bool {
	return d.menu.HasClass(ClassShow)
}

// CloseIfOutside closes the menu when target lies outside both the trigger
// and the menu. A nil target counts as outside. It reports whether it closed.
func (d *Dropdown) CloseIfOutside(target dom.Element) bool {
	if target != nil && (d.trigger.Contains(target) || d.menu.Contains(target)) {
		return false
	}
	if !d.IsOpen() {
		return false
	}
	d.menu.RemoveClass(ClassShow)
	return true
}
