package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Its-donkey/sweet-treats/internal/ui/controls"
	"github.com/Its-donkey/sweet-treats/internal/ui/forms"
)

func newModel(t *testing.T) Model {
	t.Helper()
	m, err := New(Options{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return m
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestKeysDriveControls(t *testing.T) {
	m := newModel(t)

	m = press(t, m, "f")
	if !m.hasClass(controls.IDTreatBox, controls.ClassFlipped) {
		t.Fatal("f should flip the card")
	}
	m = press(t, m, "enter")
	if m.hasClass(controls.IDTreatBox, controls.ClassFlipped) {
		t.Fatal("enter should flip the card back")
	}

	m = press(t, m, "s")
	if !m.page.Spin.Active() || !m.spinning {
		t.Fatal("s should start the spinner and its animation")
	}
	m = press(t, m, "x")
	if m.page.Spin.Active() {
		t.Fatal("x should stop the spinner")
	}

	m = press(t, m, "m")
	if !m.hasClass(controls.IDDropdownMenu, controls.ClassShow) {
		t.Fatal("m should open the menu")
	}
	m = press(t, m, "esc")
	if m.hasClass(controls.IDDropdownMenu, controls.ClassShow) {
		t.Fatal("esc should close the menu")
	}

	m = press(t, m, "tab")
	if got := m.page.Tabs.Active(); got != "wednesday" {
		t.Fatalf("active tab = %q, want wednesday", got)
	}

	m = press(t, m, "2")
	if !m.page.FAQ.Items()[1].Expanded() || m.page.FAQ.Items()[0].Expanded() {
		t.Fatal("2 should expand only the second question")
	}

	m = press(t, m, "j", "j")
	if !m.page.BackToTop.Visible() {
		t.Fatal("scrolling past the threshold should show back to top")
	}
	m = press(t, m, "t")
	if m.doc.Window().ScrollY() != 0 || m.page.BackToTop.Visible() {
		t.Fatal("t should return to the top")
	}
}

func TestPopupHideRunsThroughUpdateLoop(t *testing.T) {
	m := newModel(t)
	m = press(t, m, "o", "c")
	if m.hasClass(controls.IDPopup, controls.ClassHidden) {
		t.Fatal("hide must be deferred")
	}
	tasks := m.sched.outstanding()
	if len(tasks) != 1 {
		t.Fatalf("outstanding tasks = %d, want 1", len(tasks))
	}
	next, _ := m.Update(deferredMsg{task: tasks[0]})
	m = next.(Model)
	if !m.hasClass(controls.IDPopup, controls.ClassHidden) {
		t.Fatal("popup should be hidden once the deferred task runs")
	}
}

func TestReshowCancelsDeferredHide(t *testing.T) {
	m := newModel(t)
	m = press(t, m, "o", "c")
	stale := m.sched.outstanding()[0]
	m = press(t, m, "o")
	next, _ := m.Update(deferredMsg{task: stale})
	m = next.(Model)
	if m.hasClass(controls.IDPopup, controls.ClassHidden) || !m.hasClass(controls.IDPopup, controls.ClassShow) {
		t.Fatal("stale hide must not hide the re-shown popup")
	}
}

func TestSubmitKeys(t *testing.T) {
	m := newModel(t)
	m = press(t, m, "b")
	if m.text(controls.IDNameError) != forms.NameError || m.text(controls.IDEmailError) != forms.EmailError {
		t.Fatal("invalid sample should show errors")
	}
	m = press(t, m, "v")
	if m.text(controls.IDFormSuccess) != forms.SuccessText || m.text(controls.IDNameError) != "" {
		t.Fatal("valid sample should show only the success message")
	}
	if m.text(controls.IDCharCount) != "0/500" {
		t.Fatalf("counter = %q", m.text(controls.IDCharCount))
	}
}

func TestViewRendersState(t *testing.T) {
	m := newModel(t)
	m = press(t, m, "f")
	out := m.View()
	if out == "" {
		t.Fatal("empty view")
	}
	if want := m.data.Treat.Ingredients[0]; !strings.Contains(out, want) {
		t.Fatalf("flipped card should list ingredients, missing %q", want)
	}
}

func TestQuitAndHelp(t *testing.T) {
	m := newModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	m = next.(Model)
	if !m.help.ShowAll {
		t.Fatal("? should expand help")
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should quit")
	}
}
