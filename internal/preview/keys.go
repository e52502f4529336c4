package preview

import "github.com/charmbracelet/bubbles/key"

// keyMap binds preview keys to page interactions.
type keyMap struct {
	Flip        key.Binding
	FlipKey     key.Binding
	SpinStart   key.Binding
	SpinStop    key.Binding
	PopupShow   key.Binding
	PopupHide   key.Binding
	Dropdown    key.Binding
	ClickAway   key.Binding
	NextTab     key.Binding
	FAQ         key.Binding
	ScrollDown  key.Binding
	ScrollUp    key.Binding
	BackToTop   key.Binding
	SubmitValid key.Binding
	SubmitBad   key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Flip: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "flip card"),
		),
		FlipKey: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "flip focused card"),
		),
		SpinStart: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start baking"),
		),
		SpinStop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "stop baking"),
		),
		PopupShow: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "show offer"),
		),
		PopupHide: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "close offer"),
		),
		Dropdown: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		ClickAway: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "click elsewhere"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next special"),
		),
		FAQ: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "toggle question"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		BackToTop: key.NewBinding(
			key.WithKeys("t", "home"),
			key.WithHelp("t", "back to top"),
		),
		SubmitValid: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "send valid message"),
		),
		SubmitBad: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "send invalid message"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.SpinStart, k.PopupShow, k.NextTab, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flip, k.FlipKey, k.SpinStart, k.SpinStop, k.PopupShow, k.PopupHide},
		{k.Dropdown, k.ClickAway, k.NextTab, k.FAQ},
		{k.ScrollDown, k.ScrollUp, k.BackToTop, k.SubmitValid, k.SubmitBad},
		{k.Help, k.Quit},
	}
}
