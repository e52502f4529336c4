package controls

import (
	"testing"
	"time"

	"github.com/Its-donkey/sweet-treats/internal/ui/dom/htmldoc"
)

func parse(t *testing.T, markup string) *htmldoc.Document {
	t.Helper()
	doc, err := htmldoc.Parse(markup)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestToggleFlipIsAnInvolution(t *testing.T) {
	doc := parse(t, `<div id="card"></div>`)
	card := doc.Element("card")
	if !ToggleFlip(card) {
		t.Fatal("first toggle should flip")
	}
	if ToggleFlip(card) {
		t.Fatal("second toggle should flip back")
	}
	if card.HasClass(ClassFlipped) {
		t.Fatal("card should be back to its original state")
	}
}

func TestSpinnerGuards(t *testing.T) {
	doc := parse(t, `<div id="spinner" class="hidden"></div>`)
	el := doc.Element("spinner")
	state := &SpinnerState{}

	if StopSpinner(state, el) {
		t.Fatal("stop while inactive should report false")
	}
	if !el.HasClass(ClassHidden) {
		t.Fatal("stop while inactive should not alter presentation")
	}
	if !StartSpinner(state, el) {
		t.Fatal("first start should succeed")
	}
	if StartSpinner(state, el) {
		t.Fatal("second start should report false")
	}
	if el.HasClass(ClassHidden) {
		t.Fatal("spinner should stay visible")
	}
	if !StopSpinner(state, el) || state.Active() {
		t.Fatal("stop while active should succeed")
	}
}

func TestPopupHideIsDeferred(t *testing.T) {
	doc := parse(t, `<div id="popup" class="hidden"></div>`)
	clock := htmldoc.NewClock()
	p := NewPopup(doc.Element("popup"), clock)
	el := doc.Element("popup")

	p.Show()
	p.Hide()
	if el.HasClass(ClassHidden) {
		t.Fatal("hidden marker set synchronously")
	}
	if !p.HidePending() {
		t.Fatal("expected a pending hide")
	}
	clock.Advance(PopupHideDelay - time.Millisecond)
	if el.HasClass(ClassHidden) {
		t.Fatal("hidden marker set before the delay elapsed")
	}
	clock.Advance(time.Millisecond)
	if !el.HasClass(ClassHidden) {
		t.Fatal("hidden marker not set after the delay")
	}
	if p.HidePending() {
		t.Fatal("no hide should be pending after it ran")
	}
}

func TestPopupShowCancelsPendingHide(t *testing.T) {
	doc := parse(t, `<div id="popup" class="hidden"></div>`)
	clock := htmldoc.NewClock()
	p := NewPopup(doc.Element("popup"), clock)
	el := doc.Element("popup")

	p.Show()
	p.Hide()
	clock.Advance(100 * time.Millisecond)
	p.Show()
	clock.Advance(time.Second)
	if el.HasClass(ClassHidden) || !el.HasClass(ClassShow) {
		t.Fatal("a stale hide must not hide a re-shown popup")
	}
	if clock.Pending() != 0 {
		t.Fatalf("pending tasks = %d, want 0", clock.Pending())
	}
}

func TestPopupRepeatedHideRestartsDelay(t *testing.T) {
	doc := parse(t, `<div id="popup" class="show"></div>`)
	clock := htmldoc.NewClock()
	p := NewPopup(doc.Element("popup"), clock)
	el := doc.Element("popup")

	p.Hide()
	clock.Advance(300 * time.Millisecond)
	p.Hide()
	clock.Advance(300 * time.Millisecond)
	if el.HasClass(ClassHidden) {
		t.Fatal("second hide should restart the delay")
	}
	clock.Advance(100 * time.Millisecond)
	if !el.HasClass(ClassHidden) {
		t.Fatal("popup should be hidden once the latest delay elapsed")
	}
}

func TestTabsIgnoreUnknownDay(t *testing.T) {
	doc := parse(t, `
		<button class="tab-btn active" data-day="mon"></button>
		<button class="tab-btn" data-day="tue"></button>
		<div id="tab-mon"></div><div id="tab-tue" class="hidden"></div>`)
	tabs, err := NewTabs(doc)
	if err != nil {
		t.Fatalf("new tabs: %v", err)
	}
	if tabs.Activate("sun") {
		t.Fatal("unknown day should report false")
	}
	if tabs.Active() != "mon" {
		t.Fatalf("active = %q, want mon", tabs.Active())
	}
	if !tabs.Activate(tabs.Next()) || tabs.Active() != "tue" {
		t.Fatal("expected to move to tue")
	}
	if tabs.Next() != "mon" {
		t.Fatal("next should wrap around")
	}
	if !doc.Element("tab-mon").HasClass(ClassHidden) {
		t.Fatal("mon panel should be hidden")
	}
}

func TestTabsReportMissingPanel(t *testing.T) {
	doc := parse(t, `<button class="tab-btn" data-day="mon"></button><button class="tab-btn" data-day="tue"></button><div id="tab-mon"></div>`)
	tabs, err := NewTabs(doc)
	if err == nil {
		t.Fatal("expected error for missing panel")
	}
	if len(tabs.Tabs()) != 1 {
		t.Fatalf("tabs = %d, want 1", len(tabs.Tabs()))
	}
}

func TestFAQToggleUsesMeasuredHeight(t *testing.T) {
	doc := parse(t, `
		<button class="faq-question" aria-expanded="false">Q1</button><div class="faq-answer" data-scroll-height="120"></div>
		<button class="faq-question" aria-expanded="false">Q2</button><div class="faq-answer"></div>`)
	faq, err := NewFAQ(doc)
	if err != nil {
		t.Fatalf("new faq: %v", err)
	}
	if !faq.Toggle(0) {
		t.Fatal("expected expand")
	}
	item := faq.Items()[0]
	if got := item.Answer.Style("max-height"); got != "120px" {
		t.Fatalf("max-height = %q, want 120px", got)
	}
	if item.Answer.Attr("aria-hidden") != "false" {
		t.Fatal("expanded answer should not be aria-hidden")
	}
	if faq.Items()[1].Expanded() {
		t.Fatal("second item should be untouched")
	}
	if faq.Toggle(0) {
		t.Fatal("expected collapse")
	}
	if got := item.Answer.Style("max-height"); got != "" {
		t.Fatalf("collapsed max-height = %q, want cleared", got)
	}
	if faq.Toggle(5) {
		t.Fatal("out of range toggle should report false")
	}
}

func TestDropdownCloseIfOutside(t *testing.T) {
	doc := parse(t, `<button id="btn"><span id="icon"></span></button><ul id="menu"><li id="item"></li></ul><p id="else"></p>`)
	d := NewDropdown(doc.Element("btn"), doc.Element("menu"))
	if d.CloseIfOutside(nil) {
		t.Fatal("closed menu cannot close")
	}
	d.Toggle()
	if d.CloseIfOutside(doc.Element("icon")) || d.CloseIfOutside(doc.Element("item")) {
		t.Fatal("clicks on the trigger or menu should not close")
	}
	if !d.CloseIfOutside(doc.Element("else")) || d.IsOpen() {
		t.Fatal("click elsewhere should close")
	}
}

func TestBackToTopThreshold(t *testing.T) {
	doc := parse(t, `<button id="top" style="display: none"></button>`)
	b := NewBackToTop(doc.Element("top"), doc.Window())
	if b.Update(200) {
		t.Fatal("200 should hide")
	}
	if !b.Update(201) || !b.Visible() {
		t.Fatal("201 should show")
	}
}
