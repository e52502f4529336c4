// Package dom defines the capabilities the interactive layer needs from a page.
//
// Controllers never look elements up themselves. A Document is resolved into a
// Registry once at startup and the resulting handles are injected, so the same
// controllers drive the browser (jsdom) and a headless document (htmldoc).
package dom

// Event names dispatched by the page.
const (
	EventClick   = "click"
	EventKeyDown = "keydown"
	EventInput   = "input"
	EventSubmit  = "submit"
	EventScroll  = "scroll"
)

// Handler reacts to a dispatched event.
type Handler func(Event)

// Release detaches a previously registered handler.
type Release func()

// Event is a single user action delivered to a Handler.
type Event interface {
	Type() string
	// Target is the element the event originated on, or nil when it did not
	// originate on an element (the document or the window).
	Target() Element
	Key() string
	PreventDefault()
}

// Element is a named node of the page.
type Element interface {
	ID() string

	AddClass(name string)
	RemoveClass(name string)
	// ToggleClass flips the class and reports whether it is now present.
	ToggleClass(name string) bool
	HasClass(name string) bool

	// Attr returns the attribute value or "" when it is absent.
	Attr(name string) string
	SetAttr(name, value string)
	// Data returns the data-<key> attribute.
	Data(key string) string

	Style(property string) string
	// SetStyle assigns an inline style property; an empty value removes it.
	SetStyle(property, value string)
	// ScrollHeight is the natural height of the content in pixels.
	ScrollHeight() int

	Text() string
	SetText(text string)
	Value() string
	SetValue(value string)
	// Reset restores the default values of every control in a form.
	Reset()

	// Contains reports whether other is this element or one of its descendants.
	Contains(other Element) bool
	// NextSibling returns the next element sibling, or nil.
	NextSibling() Element

	On(event string, h Handler) Release
}

// Document exposes the page's element tree.
type Document interface {
	// ByID returns the element with the given id, or nil.
	ByID(id string) Element
	QueryAll(selector string) []Element
	On(event string, h Handler) Release
}

// Viewport is the scrollable window around the document.
type Viewport interface {
	ScrollY() float64
	ScrollTo(top float64, smooth bool)
	On(event string, h Handler) Release
}
