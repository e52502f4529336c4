// Package htmldoc is a headless dom.Document backed by goquery.
//
// It parses the same markup the page server renders and lets tests and the
// terminal preview dispatch user events against it. Events bubble from the
// target through its ancestors, then to the document and the window, the way
// a browser delivers them. There is no layout engine: scroll height comes from
// a data-scroll-height attribute or a line estimate based on text length.
package htmldoc

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/Its-donkey/sweet-treats/internal/ui/dom"
)

const (
	estimatedLineHeight = 24
	estimatedLineChars  = 60
	estimatedPadding    = 16
)

type listener struct {
	fn      dom.Handler
	removed bool
}

type listenerSet map[string][]*listener

func (s listenerSet) add(event string, h dom.Handler) dom.Release {
	l := &listener{fn: h}
	s[event] = append(s[event], l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		kept := s[event][:0]
		for _, existing := range s[event] {
			if existing != l {
				kept = append(kept, existing)
			}
		}
		s[event] = kept
	}
}

func (s listenerSet) fire(event string, evt *Event) {
	// Copy so handlers may release themselves while firing.
	pending := append([]*listener(nil), s[event]...)
	for _, l := range pending {
		if !l.removed {
			l.fn(evt)
		}
	}
}

// Document is a parsed page with event dispatch.
type Document struct {
	doc       *goquery.Document
	listeners map[*html.Node]listenerSet
	docEvents listenerSet
	values    map[*html.Node]string
	window    *Window
}

// Load parses markup from r.
func Load(r io.Reader) (*Document, error) {
	parsed, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	d := &Document{
		doc:       parsed,
		listeners: make(map[*html.Node]listenerSet),
		docEvents: make(listenerSet),
		values:    make(map[*html.Node]string),
	}
	d.window = &Window{doc: d, events: make(listenerSet)}
	return d, nil
}

// Parse is Load over a string.
func Parse(markup string) (*Document, error) {
	return Load(strings.NewReader(markup))
}

// Window returns the viewport that owns this document.
func (d *Document) Window() *Window {
	return d.window
}

// Selection exposes the underlying goquery document for assertions.
func (d *Document) Selection() *goquery.Selection {
	return d.doc.Selection
}

// ByID implements dom.Document.
func (d *Document) ByID(id string) dom.Element {
	if el := d.Element(id); el != nil {
		return el
	}
	return nil
}

// Element is ByID returning the concrete type, or nil.
func (d *Document) Element(id string) *Element {
	match := d.doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		value, _ := s.Attr("id")
		return value == id
	}).First()
	return d.wrap(match)
}

// QueryAll implements dom.Document.
func (d *Document) QueryAll(selector string) []dom.Element {
	var out []dom.Element
	d.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, d.wrap(s))
	})
	return out
}

// On implements dom.Document.
func (d *Document) On(event string, h dom.Handler) dom.Release {
	return d.docEvents.add(event, h)
}

func (d *Document) wrap(sel *goquery.Selection) *Element {
	if sel == nil || sel.Length() == 0 {
		return nil
	}
	return &Element{doc: d, sel: sel.First()}
}

// Dispatch delivers an event of the given type to target and lets it bubble.
// A nil target delivers to the document and window only.
func (d *Document) Dispatch(target *Element, eventType, key string) *Event {
	evt := &Event{typ: eventType, target: target, key: key}
	if target != nil {
		for node := target.node(); node != nil; node = node.Parent {
			if set, ok := d.listeners[node]; ok {
				set.fire(eventType, evt)
			}
		}
	}
	d.docEvents.fire(eventType, evt)
	d.window.events.fire(eventType, evt)
	return evt
}

// Click clicks the element with the given id. It returns nil when the id is unknown.
func (d *Document) Click(id string) *Event {
	el := d.Element(id)
	if el == nil {
		return nil
	}
	return d.Dispatch(el, dom.EventClick, "")
}

// ClickSelector clicks the n-th element matching selector.
func (d *Document) ClickSelector(selector string, n int) *Event {
	el := d.wrap(d.doc.Find(selector).Eq(n))
	if el == nil {
		return nil
	}
	return d.Dispatch(el, dom.EventClick, "")
}

// ClickOutside dispatches a click that did not land on any element.
func (d *Document) ClickOutside() *Event {
	return d.Dispatch(nil, dom.EventClick, "")
}

// KeyDown presses key while the element with the given id has focus.
func (d *Document) KeyDown(id, key string) *Event {
	el := d.Element(id)
	if el == nil {
		return nil
	}
	return d.Dispatch(el, dom.EventKeyDown, key)
}

// Type replaces the value of a control and fires an input event.
func (d *Document) Type(id, value string) *Event {
	el := d.Element(id)
	if el == nil {
		return nil
	}
	el.SetValue(value)
	return d.Dispatch(el, dom.EventInput, "")
}

// Submit fires a submit event on the form with the given id.
func (d *Document) Submit(id string) *Event {
	el := d.Element(id)
	if el == nil {
		return nil
	}
	return d.Dispatch(el, dom.EventSubmit, "")
}

// HTML renders the current state of the document.
func (d *Document) HTML() (string, error) {
	return d.doc.Html()
}

// Element is a single node of a Document.
type Element struct {
	doc *Document
	sel *goquery.Selection
}

var _ dom.Element = (*Element)(nil)

func (e *Element) node() *html.Node {
	return e.sel.Get(0)
}

// Selection exposes the goquery selection for assertions.
func (e *Element) Selection() *goquery.Selection {
	return e.sel
}

func (e *Element) ID() string { return e.Attr("id") }

func (e *Element) AddClass(name string) { e.sel.AddClass(name) }

func (e *Element) RemoveClass(name string) { e.sel.RemoveClass(name) }

func (e *Element) ToggleClass(name string) bool {
	e.sel.ToggleClass(name)
	return e.sel.HasClass(name)
}

func (e *Element) HasClass(name string) bool { return e.sel.HasClass(name) }

func (e *Element) Attr(name string) string {
	value, _ := e.sel.Attr(name)
	return value
}

func (e *Element) SetAttr(name, value string) { e.sel.SetAttr(name, value) }

func (e *Element) Data(key string) string { return e.Attr("data-" + key) }

func (e *Element) Style(property string) string {
	for _, decl := range parseStyle(e.Attr("style")) {
		if decl.property == property {
			return decl.value
		}
	}
	return ""
}

func (e *Element) SetStyle(property, value string) {
	decls := parseStyle(e.Attr("style"))
	kept := decls[:0]
	replaced := false
	for _, decl := range decls {
		if decl.property != property {
			kept = append(kept, decl)
			continue
		}
		if value != "" && !replaced {
			kept = append(kept, styleDecl{property: property, value: value})
			replaced = true
		}
	}
	if value != "" && !replaced {
		kept = append(kept, styleDecl{property: property, value: value})
	}
	if len(kept) == 0 {
		e.sel.RemoveAttr("style")
		return
	}
	e.sel.SetAttr("style", formatStyle(kept))
}

func (e *Element) ScrollHeight() int {
	if raw := strings.TrimSpace(e.Data("scroll-height")); raw != "" {
		if px, err := strconv.Atoi(raw); err == nil {
			return px
		}
	}
	text := strings.TrimSpace(e.sel.Text())
	lines := 1 + utf8.RuneCountInString(text)/estimatedLineChars
	return lines*estimatedLineHeight + estimatedPadding
}

func (e *Element) Text() string { return e.sel.Text() }

func (e *Element) SetText(text string) { e.sel.SetText(text) }

func (e *Element) Value() string {
	if value, ok := e.doc.values[e.node()]; ok {
		return value
	}
	return e.defaultValue()
}

func (e *Element) defaultValue() string {
	if goquery.NodeName(e.sel) == "textarea" {
		return e.sel.Text()
	}
	return e.Attr("value")
}

func (e *Element) SetValue(value string) { e.doc.values[e.node()] = value }

func (e *Element) Reset() {
	e.sel.Find("input, textarea, select").Each(func(_ int, s *goquery.Selection) {
		delete(e.doc.values, s.Get(0))
	})
}

func (e *Element) Contains(other dom.Element) bool {
	o, ok := other.(*Element)
	if !ok || o == nil {
		return false
	}
	target := o.node()
	return e.node() == target || e.sel.Contains(target)
}

func (e *Element) NextSibling() dom.Element {
	if next := e.doc.wrap(e.sel.Next()); next != nil {
		return next
	}
	return nil
}

func (e *Element) On(event string, h dom.Handler) dom.Release {
	set, ok := e.doc.listeners[e.node()]
	if !ok {
		set = make(listenerSet)
		e.doc.listeners[e.node()] = set
	}
	return set.add(event, h)
}

// Event is a dispatched user action.
type Event struct {
	typ       string
	target    *Element
	key       string
	prevented bool
}

var _ dom.Event = (*Event)(nil)

func (e *Event) Type() string { return e.typ }

func (e *Event) Target() dom.Element {
	if e.target == nil {
		return nil
	}
	return e.target
}

func (e *Event) Key() string { return e.key }

func (e *Event) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether a handler suppressed default handling.
func (e *Event) DefaultPrevented() bool { return e.prevented }

type styleDecl struct {
	property string
	value    string
}

func parseStyle(raw string) []styleDecl {
	var decls []styleDecl
	for _, part := range strings.Split(raw, ";") {
		property, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		property = strings.ToLower(strings.TrimSpace(property))
		value = strings.TrimSpace(value)
		if property == "" {
			continue
		}
		decls = append(decls, styleDecl{property: property, value: value})
	}
	return decls
}

func formatStyle(decls []styleDecl) string {
	parts := make([]string, 0, len(decls))
	for _, decl := range decls {
		parts = append(parts, decl.property+": "+decl.value)
	}
	return strings.Join(parts, "; ")
}
