package htmldoc

import (
	"strings"
	"testing"

	"github.com/Its-donkey/sweet-treats/internal/ui/dom"
)

const sample = `<html><body>
<form id="form">
  <div id="outer"><button id="inner" class="btn">Go</button></div>
  <input id="field" value="start">
  <textarea id="notes">draft</textarea>
</form>
<div id="panel" style="color: red; max-height: 10px"></div>
<p id="para">` + "text" + `</p>
<div id="measured" data-scroll-height="321"></div>
</body></html>`

func mustParse(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse(sample)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestEventsBubbleToDocumentAndWindow(t *testing.T) {
	doc := mustParse(t)
	var order []string
	doc.Element("inner").On(dom.EventClick, func(dom.Event) { order = append(order, "inner") })
	doc.Element("outer").On(dom.EventClick, func(dom.Event) { order = append(order, "outer") })
	doc.On(dom.EventClick, func(evt dom.Event) {
		order = append(order, "document:"+evt.Target().ID())
	})
	doc.Window().On(dom.EventClick, func(dom.Event) { order = append(order, "window") })

	doc.Click("inner")
	want := "inner,outer,document:inner,window"
	if got := strings.Join(order, ","); got != want {
		t.Fatalf("order = %s, want %s", got, want)
	}
}

func TestClickOutsideHasNoTarget(t *testing.T) {
	doc := mustParse(t)
	var target dom.Element = &Element{}
	doc.On(dom.EventClick, func(evt dom.Event) { target = evt.Target() })
	doc.ClickOutside()
	if target != nil {
		t.Fatalf("target = %v, want nil", target)
	}
}

func TestReleaseRemovesListener(t *testing.T) {
	doc := mustParse(t)
	calls := 0
	release := doc.Element("inner").On(dom.EventClick, func(dom.Event) { calls++ })
	doc.Click("inner")
	release()
	release()
	doc.Click("inner")
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestValuesAndReset(t *testing.T) {
	doc := mustParse(t)
	if got := doc.Element("field").Value(); got != "start" {
		t.Fatalf("input value = %q", got)
	}
	if got := doc.Element("notes").Value(); got != "draft" {
		t.Fatalf("textarea value = %q", got)
	}
	var seen string
	doc.Element("field").On(dom.EventInput, func(evt dom.Event) {
		seen = doc.Element("field").Value()
	})
	doc.Type("field", "typed")
	if seen != "typed" {
		t.Fatalf("input handler saw %q", seen)
	}
	doc.Element("notes").SetValue("edited")
	doc.Element("form").Reset()
	if got := doc.Element("field").Value(); got != "start" {
		t.Fatalf("reset input value = %q", got)
	}
	if got := doc.Element("notes").Value(); got != "draft" {
		t.Fatalf("reset textarea value = %q", got)
	}
}

func TestStyleEditing(t *testing.T) {
	doc := mustParse(t)
	panel := doc.Element("panel")
	if got := panel.Style("max-height"); got != "10px" {
		t.Fatalf("max-height = %q", got)
	}
	panel.SetStyle("max-height", "40px")
	panel.SetStyle("display", "block")
	if got := panel.Style("max-height"); got != "40px" {
		t.Fatalf("max-height = %q", got)
	}
	panel.SetStyle("color", "")
	panel.SetStyle("max-height", "")
	if got := panel.Attr("style"); got != "display: block" {
		t.Fatalf("style = %q", got)
	}
}

func TestScrollHeight(t *testing.T) {
	doc := mustParse(t)
	if got := doc.Element("measured").ScrollHeight(); got != 321 {
		t.Fatalf("measured = %d", got)
	}
	if got := doc.Element("para").ScrollHeight(); got != estimatedLineHeight+estimatedPadding {
		t.Fatalf("estimated = %d", got)
	}
}

func TestContainsAndClasses(t *testing.T) {
	doc := mustParse(t)
	outer, inner := doc.Element("outer"), doc.Element("inner")
	if !outer.Contains(inner) || !outer.Contains(outer) || inner.Contains(outer) {
		t.Fatal("unexpected containment")
	}
	if !inner.ToggleClass("on") || !inner.HasClass("btn") {
		t.Fatal("toggle should add the class and keep others")
	}
	if inner.ToggleClass("on") {
		t.Fatal("second toggle should remove the class")
	}
	if doc.ByID("nope") != nil {
		t.Fatal("unknown id should be a nil interface")
	}
}

func TestSubmitAndKeyDown(t *testing.T) {
	doc := mustParse(t)
	doc.Element("form").On(dom.EventSubmit, func(evt dom.Event) { evt.PreventDefault() })
	if evt := doc.Submit("form"); !evt.DefaultPrevented() {
		t.Fatal("expected default prevented")
	}
	var key string
	doc.Element("inner").On(dom.EventKeyDown, func(evt dom.Event) { key = evt.Key() })
	doc.KeyDown("inner", "Enter")
	if key != "Enter" {
		t.Fatalf("key = %q", key)
	}
	if doc.Click("missing") != nil {
		t.Fatal("click on unknown id should return nil")
	}
}

func TestWindowScroll(t *testing.T) {
	doc := mustParse(t)
	win := doc.Window()
	var seen []float64
	win.On(dom.EventScroll, func(dom.Event) { seen = append(seen, win.ScrollY()) })
	win.Scroll(-5)
	win.ScrollTo(0, true)
	if len(seen) != 2 || seen[0] != 0 {
		t.Fatalf("scroll events = %v", seen)
	}
	if _, smooth, ok := win.LastScrollTo(); !ok || !smooth {
		t.Fatal("expected recorded smooth scroll")
	}
}
