// Package preview drives the bakery page controls from a terminal. The page
// is rendered into a headless document, every control is bound exactly as in
// the browser, and key presses are dispatched as DOM events.
package preview

import (
	"bytes"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Its-donkey/sweet-treats/internal/ui/controls"
	"github.com/Its-donkey/sweet-treats/internal/ui/dom"
	"github.com/Its-donkey/sweet-treats/internal/ui/dom/htmldoc"
	"github.com/Its-donkey/sweet-treats/internal/ui/page"
	"github.com/Its-donkey/sweet-treats/logging"
)

const (
	scrollStep = 150
	maxLogs    = 6
)

// Sample submissions sent by the submit keys.
var (
	validSample   = [3]string{"Jo Baker", "jo@example.com", "I loved the croissants, thanks!"}
	invalidSample = [3]string{"A", "bad", "short"}
)

// Options configures the preview.
type Options struct {
	Data  page.Data
	Level logging.Level
	// LogWriter also receives every log entry, e.g. a file. Optional.
	LogWriter io.Writer
}

type logMsg logging.Entry

// Model is the Bubble Tea model for the preview.
type Model struct {
	doc   *htmldoc.Document
	page  *controls.Page
	sched *teaScheduler
	data  page.Data

	logs     chan logging.Entry
	recent   []logging.Entry
	bindErr  error
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	spinning bool
	width    int
	theme    Theme
}

// New renders the page and binds its controls.
func New(opts Options) (Model, error) {
	data := opts.Data
	if data.SiteName == "" {
		data = page.DefaultData()
	}

	var buf bytes.Buffer
	if err := page.Render(&buf, data); err != nil {
		return Model{}, err
	}
	doc, err := htmldoc.Load(&buf)
	if err != nil {
		return Model{}, err
	}

	writers := []io.Writer{io.Discard}
	if opts.LogWriter != nil {
		writers = []io.Writer{opts.LogWriter}
	}
	logger := logging.New("ui-preview", opts.Level, writers...)
	logs := make(chan logging.Entry, 64)
	logger.Subscribe(logs)

	sched := &teaScheduler{}
	bound, bindErr := controls.Bind(controls.Env{
		Document:  doc,
		Viewport:  doc.Window(),
		Scheduler: sched,
		Logger:    logger,
	})
	if bound == nil {
		return Model{}, bindErr
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	theme := DefaultTheme()
	s.Style = theme.Styles().Spinner

	return Model{
		doc:     doc,
		page:    bound,
		sched:   sched,
		data:    data,
		logs:    logs,
		bindErr: bindErr,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		spinner: s,
		theme:   theme,
	}, nil
}

func waitForLog(ch <-chan logging.Entry) tea.Cmd {
	return func() tea.Msg {
		return logMsg(<-ch)
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForLog(m.logs)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case deferredMsg:
		m.sched.run(msg.task)
		return m, m.sched.drain()

	case spinner.TickMsg:
		if !m.page.Spin.Active() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case logMsg:
		m.recent = append(m.recent, logging.Entry(msg))
		if len(m.recent) > maxLogs {
			m.recent = m.recent[len(m.recent)-maxLogs:]
		}
		return m, waitForLog(m.logs)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.dispatch(msg)

	cmds := []tea.Cmd{m.sched.drain()}
	if m.page.Spin != nil && m.page.Spin.Active() && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

// dispatch turns a key into the DOM event a visitor would produce.
func (m Model) dispatch(msg tea.KeyMsg) {
	doc := m.doc
	switch {
	case key.Matches(msg, m.keys.Flip):
		doc.Click(controls.IDFlipButton)
	case key.Matches(msg, m.keys.FlipKey):
		doc.KeyDown(controls.IDTreatBox, domKey(msg))
	case key.Matches(msg, m.keys.SpinStart):
		doc.Click(controls.IDSpinnerStart)
	case key.Matches(msg, m.keys.SpinStop):
		doc.Click(controls.IDSpinnerStop)
	case key.Matches(msg, m.keys.PopupShow):
		doc.Click(controls.IDPopupOpen)
	case key.Matches(msg, m.keys.PopupHide):
		doc.Click(controls.IDPopupClose)
	case key.Matches(msg, m.keys.Dropdown):
		doc.Click(controls.IDDropdownBtn)
	case key.Matches(msg, m.keys.ClickAway):
		doc.ClickOutside()
	case key.Matches(msg, m.keys.NextTab):
		m.clickNextTab()
	case key.Matches(msg, m.keys.FAQ):
		if n, err := strconv.Atoi(msg.String()); err == nil {
			doc.ClickSelector(controls.SelectorFAQQuestion, n-1)
		}
	case key.Matches(msg, m.keys.ScrollDown):
		doc.Window().Scroll(doc.Window().ScrollY() + scrollStep)
	case key.Matches(msg, m.keys.ScrollUp):
		doc.Window().Scroll(doc.Window().ScrollY() - scrollStep)
	case key.Matches(msg, m.keys.BackToTop):
		doc.Click(controls.IDBackToTop)
	case key.Matches(msg, m.keys.SubmitValid):
		m.submit(validSample)
	case key.Matches(msg, m.keys.SubmitBad):
		m.submit(invalidSample)
	}
}

// domKey maps a terminal key to the KeyboardEvent.key value a browser reports.
func domKey(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyEnter:
		return "Enter"
	case tea.KeySpace:
		return " "
	}
	return msg.String()
}

func (m Model) clickNextTab() {
	next := m.page.Tabs.Next()
	for _, tab := range m.page.Tabs.Tabs() {
		if btn, ok := tab.Button.(*htmldoc.Element); ok && tab.Day == next {
			m.doc.Dispatch(btn, dom.EventClick, "")
			return
		}
	}
}

func (m Model) submit(values [3]string) {
	m.doc.Type(controls.IDName, values[0])
	m.doc.Type(controls.IDEmail, values[1])
	m.doc.Type(controls.IDMessage, values[2])
	m.doc.Submit(controls.IDContactForm)
}
