package controls

import (
	"github.com/Its-donkey/sweet-treats/internal/ui/dom"
)

// Tab pairs a tab button with the panel it reveals.
type Tab struct {
	Day    string
	Button dom.Element
	Panel  dom.Element
}

// Tabs keeps exactly one panel visible.
type Tabs struct {
	tabs []Tab
}

// NewTabs discovers every tab button and its tab-<day> panel. Buttons whose
// panel is missing are reported and left out.
func NewTabs(doc dom.Document) (*Tabs, error) {
	t := &Tabs{}
	var missing []string
	for _, btn := range doc.QueryAll(SelectorTabButton) {
		day := btn.Data("day")
		panel := doc.ByID(tabPanelPrefix + day)
		if day == "" || panel == nil {
			missing = append(missing, tabPanelPrefix+day)
			continue
		}
		t.tabs = append(t.tabs, Tab{Day: day, Button: btn, Panel: panel})
	}
	if len(missing) > 0 {
		return t, &dom.MissingElementsError{IDs: missing}
	}
	return t, nil
}

// Tabs returns the bound tabs in page order.
func (t *Tabs) Tabs() []Tab {
	if t == nil {
		return nil
	}
	return t.tabs
}

// Activate shows day's panel. Every tab is deactivated first, including the
// one being activated, so the outcome never depends on iteration order. An
// unknown day changes nothing and reports false.
func (t *Tabs) Activate(day string) bool {
	target := -1
	for i, tab := range t.tabs {
		if tab.Day == day {
			target = i
			break
		}
	}
	if target < 0 {
		return false
	}
	for _, tab := range t.tabs {
		tab.Button.RemoveClass(ClassActive)
		tab.Button.SetAttr("aria-selected", "false")
		tab.Panel.AddClass(ClassHidden)
	}
	active := t.tabs[target]
	active.Button.AddClass(ClassActive)
	active.Button.SetAttr("aria-selected", "true")
	active.Panel.RemoveClass(ClassHidden)
	return true
}

// Active returns the day whose panel is visible, or "" when none is.
func (t *Tabs) Active() string {
	for _, tab := range t.tabs {
		if !tab.Panel.HasClass(ClassHidden) {
			return tab.Day
		}
	}
	return ""
}

// Next returns the day after the active one, wrapping around.
func (t *Tabs) Next() string {
	if len(t.tabs) == 0 {
		return ""
	}
	active := t.Active()
	for i, tab := range t.tabs {
		if tab.Day == active {
			return t.tabs[(i+1)%len(t.tabs)].Day
		}
	}
	return t.tabs[0].Day
}
