//go:build js && wasm

// Package jsdom adapts the browser DOM, through syscall/js, to package dom.
package jsdom

import (
	"strings"
	"syscall/js"

	"github.com/Its-donkey/sweet-treats/internal/ui/dom"
)

// Document returns the global browser document.
func Document() *Doc {
	return &Doc{v: js.Global().Get("document")}
}

// Window returns the global browser window.
func Window() *Win {
	return &Win{v: js.Global()}
}

// Doc wraps the browser document.
type Doc struct {
	v js.Value
}

var _ dom.Document = (*Doc)(nil)

// ByID implements dom.Document.
func (d *Doc) ByID(id string) dom.Element {
	found := d.v.Call("getElementById", id)
	if !found.Truthy() {
		return nil
	}
	return &Element{v: found}
}

// QueryAll implements dom.Document.
func (d *Doc) QueryAll(selector string) []dom.Element {
	list := d.v.Call("querySelectorAll", selector)
	n := list.Get("length").Int()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &Element{v: list.Index(i)})
	}
	return out
}

// On implements dom.Document.
func (d *Doc) On(event string, h dom.Handler) dom.Release {
	return listen(d.v, event, h)
}

// Win wraps the browser window.
type Win struct {
	v js.Value
}

var _ dom.Viewport = (*Win)(nil)

// ScrollY implements dom.Viewport.
func (w *Win) ScrollY() float64 {
	return w.v.Get("scrollY").Float()
}

// ScrollTo implements dom.Viewport.
func (w *Win) ScrollTo(top float64, smooth bool) {
	behavior := "auto"
	if smooth {
		behavior = "smooth"
	}
	w.v.Call("scrollTo", map[string]any{"top": top, "behavior": behavior})
}

// On implements dom.Viewport.
func (w *Win) On(event string, h dom.Handler) dom.Release {
	return listen(w.v, event, h)
}

// Element wraps a browser element.
type Element struct {
	v js.Value
}

var _ dom.Element = (*Element)(nil)

func (e *Element) ID() string { return e.v.Get("id").String() }

func (e *Element) AddClass(name string) { e.v.Get("classList").Call("add", name) }

func (e *Element) RemoveClass(name string) { e.v.Get("classList").Call("remove", name) }

func (e *Element) ToggleClass(name string) bool {
	return e.v.Get("classList").Call("toggle", name).Bool()
}

func (e *Element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e *Element) Attr(name string) string {
	return stringOrEmpty(e.v.Call("getAttribute", name))
}

func (e *Element) SetAttr(name, value string) { e.v.Call("setAttribute", name, value) }

func (e *Element) Data(key string) string {
	return stringOrEmpty(e.v.Get("dataset").Get(key))
}

func (e *Element) Style(property string) string {
	return e.v.Get("style").Call("getPropertyValue", property).String()
}

func (e *Element) SetStyle(property, value string) {
	style := e.v.Get("style")
	if value == "" {
		style.Call("removeProperty", property)
		return
	}
	style.Call("setProperty", property, value)
}

func (e *Element) ScrollHeight() int { return e.v.Get("scrollHeight").Int() }

func (e *Element) Text() string { return stringOrEmpty(e.v.Get("textContent")) }

func (e *Element) SetText(text string) { e.v.Set("textContent", text) }

func (e *Element) Value() string { return stringOrEmpty(e.v.Get("value")) }

func (e *Element) SetValue(value string) { e.v.Set("value", value) }

func (e *Element) Reset() {
	if fn := e.v.Get("reset"); fn.Type() == js.TypeFunction {
		e.v.Call("reset")
	}
}

func (e *Element) Contains(other dom.Element) bool {
	o, ok := other.(*Element)
	if !ok || o == nil {
		return false
	}
	return e.v.Call("contains", o.v).Bool()
}

func (e *Element) NextSibling() dom.Element {
	next := e.v.Get("nextElementSibling")
	if !next.Truthy() {
		return nil
	}
	return &Element{v: next}
}

func (e *Element) On(event string, h dom.Handler) dom.Release {
	return listen(e.v, event, h)
}

// Event wraps a browser event.
type Event struct {
	v js.Value
}

var _ dom.Event = (*Event)(nil)

func (e *Event) Type() string { return e.v.Get("type").String() }

func (e *Event) Target() dom.Element {
	target := e.v.Get("target")
	if !target.Truthy() {
		return nil
	}
	// Only element nodes; the document and window are not elements.
	if nodeType := target.Get("nodeType"); nodeType.Type() != js.TypeNumber || nodeType.Int() != 1 {
		return nil
	}
	return &Element{v: target}
}

func (e *Event) Key() string { return stringOrEmpty(e.v.Get("key")) }

func (e *Event) PreventDefault() { e.v.Call("preventDefault") }

func listen(target js.Value, event string, h dom.Handler) dom.Release {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		h(&Event{v: args[0]})
		return nil
	})
	target.Call("addEventListener", event, fn)
	released := false
	return func() {
		if released {
			return
		}
		released = true
		target.Call("removeEventListener", event, fn)
		fn.Release()
	}
}

func stringOrEmpty(v js.Value) string {
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

// ConsoleWriter forwards log lines to the browser console.
type ConsoleWriter struct {
	console js.Value
}

// NewConsoleWriter binds to window.console.
func NewConsoleWriter() *ConsoleWriter {
	return &ConsoleWriter{console: js.Global().Get("console")}
}

func (w *ConsoleWriter) Write(p []byte) (int, error) {
	if !w.console.Truthy() {
		return len(p), nil
	}
	line := strings.TrimRight(string(p), "\n")
	method := "log"
	switch {
	case strings.Contains(line, `"level":"ERROR"`):
		method = "error"
	case strings.Contains(line, `"level":"WARN"`):
		method = "warn"
	}
	w.console.Call(method, line)
	return len(p), nil
}
