package controls

import (
	"errors"
	"fmt"

	"github.com/Its-donkey/sweet-treats/internal/ui/dom"
	"github.com/Its-donkey/sweet-treats/logging"
)

// Env is what Bind needs from the host.
type Env struct {
	Document  dom.Document
	Viewport  dom.Viewport
	Scheduler dom.Scheduler
	Logger    *logging.Logger
}

// Page holds every bound controller. Controllers whose elements were missing
// stay nil.
type Page struct {
	Card      dom.Element
	Spinner   dom.Element
	Spin      *SpinnerState
	Popup     *Popup
	Dropdown  *Dropdown
	Tabs      *Tabs
	FAQ       *FAQ
	Contact   *ContactForm
	BackToTop *BackToTop

	releases []dom.Release
}

type binder struct {
	env  Env
	reg  *dom.Registry
	page *Page
	errs []error
}

type feature struct {
	name string
	ids  []string
	bind func(*binder) error
}

var features = []feature{
	{name: "flip", ids: []string{IDTreatBox, IDFlipButton}, bind: (*binder).bindFlip},
	{name: "spinner", ids: []string{IDSpinner, IDSpinnerStart, IDSpinnerStop}, bind: (*binder).bindSpinner},
	{name: "popup", ids: []string{IDPopup, IDPopupOpen, IDPopupClose}, bind: (*binder).bindPopup},
	{name: "dropdown", ids: []string{IDDropdownBtn, IDDropdownMenu}, bind: (*binder).bindDropdown},
	{name: "tabs", bind: (*binder).bindTabs},
	{name: "faq", bind: (*binder).bindFAQ},
	{name: "contact", ids: []string{
		IDContactForm, IDName, IDEmail, IDMessage, IDCharCount,
		IDNameError, IDEmailError, IDMessageError, IDFormSuccess,
	}, bind: (*binder).bindContact},
	{name: "back-to-top", ids: []string{IDBackToTop}, bind: (*binder).bindBackToTop},
}

// RequiredIDs lists every element id Bind resolves.
func RequiredIDs() []string {
	var ids []string
	for _, f := range features {
		ids = append(ids, f.ids...)
	}
	return ids
}

// Bind resolves the page's elements once and attaches every handler. A
// feature whose elements are missing is skipped and reported; the others are
// still bound, so the returned Page is usable even when err is non-nil.
func Bind(env Env) (*Page, error) {
	if env.Document == nil {
		return nil, errors.New("bind controls: no document")
	}
	if env.Scheduler == nil {
		env.Scheduler = dom.RealScheduler
	}
	reg, _ := dom.Resolve(env.Document, RequiredIDs()...)
	b := &binder{env: env, reg: reg, page: &Page{}}

	for _, f := range features {
		if missing := reg.Missing(f.ids...); len(missing) > 0 {
			b.fail(f.name, &dom.MissingElementsError{IDs: missing})
			continue
		}
		if err := f.bind(b); err != nil {
			b.fail(f.name, err)
			continue
		}
		env.Logger.Debug(category, "feature bound", map[string]any{"feature": f.name})
	}
	if len(b.errs) > 0 {
		return b.page, fmt.Errorf("bind controls: %w", errors.Join(b.errs...))
	}
	return b.page, nil
}

// Release detaches every handler Bind attached.
func (p *Page) Release() {
	for i := len(p.releases) - 1; i >= 0; i-- {
		p.releases[i]()
	}
	p.releases = nil
}

func (b *binder) fail(name string, err error) {
	b.env.Logger.Error(category, "feature not bound", err, map[string]any{"feature": name})
	b.errs = append(b.errs, fmt.Errorf("%s: %w", name, err))
}

func (b *binder) on(target interface {
	On(string, dom.Handler) dom.Release
}, event, name string, h dom.Handler) {
	b.page.releases = append(b.page.releases, target.On(event, guard(b.env.Logger, name, h)))
}

func (b *binder) bindFlip() error {
	card := b.reg.Element(IDTreatBox)
	b.page.Card = card
	flip := func(source string) {
		flipped := ToggleFlip(card)
		b.env.Logger.Debug(category, "card flipped", map[string]any{"flipped": flipped, "source": source})
	}
	b.on(b.reg.Element(IDFlipButton), dom.EventClick, "flip-button", func(dom.Event) { flip("button") })
	b.on(card, dom.EventClick, "flip-card", func(dom.Event) { flip("card") })
	b.on(card, dom.EventKeyDown, "flip-key", func(evt dom.Event) {
		if !IsFlipKey(evt.Key()) {
			return
		}
		evt.PreventDefault()
		flip("keyboard")
	})
	return nil
}

func (b *binder) bindSpinner() error {
	spinner := b.reg.Element(IDSpinner)
	state := &SpinnerState{}
	b.page.Spinner = spinner
	b.page.Spin = state
	b.on(b.reg.Element(IDSpinnerStart), dom.EventClick, "spinner-start", func(dom.Event) {
		if StartSpinner(state, spinner) {
			b.env.Logger.Debug(category, "spinner started", nil)
		}
	})
	b.on(b.reg.Element(IDSpinnerStop), dom.EventClick, "spinner-stop", func(dom.Event) {
		if StopSpinner(state, spinner) {
			b.env.Logger.Debug(category, "spinner stopped", nil)
		}
	})
	return nil
}

func (b *binder) bindPopup() error {
	popup := NewPopup(b.reg.Element(IDPopup), b.env.Scheduler)
	b.page.Popup = popup
	b.on(b.reg.Element(IDPopupOpen), dom.EventClick, "popup-show", func(dom.Event) { popup.Show() })
	b.on(b.reg.Element(IDPopupClose), dom.EventClick, "popup-hide", func(dom.Event) { popup.Hide() })
	return nil
}

func (b *binder) bindDropdown() error {
	dropdown := NewDropdown(b.reg.Element(IDDropdownBtn), b.reg.Element(IDDropdownMenu))
	b.page.Dropdown = dropdown
	b.on(b.reg.Element(IDDropdownBtn), dom.EventClick, "dropdown-toggle", func(dom.Event) { dropdown.Toggle() })
	b.on(b.env.Document, dom.EventClick, "dropdown-outside", func(evt dom.Event) { dropdown.CloseIfOutside(evt.Target()) })
	return nil
}

func (b *binder) bindTabs() error {
	tabs, err := NewTabs(b.env.Document)
	b.page.Tabs = tabs
	for _, tab := range tabs.Tabs() {
		day := tab.Day
		b.on(tab.Button, dom.EventClick, "tab-"+day, func(dom.Event) {
			tabs.Activate(day)
			b.env.Logger.Debug(category, "tab activated", map[string]any{"day": day})
		})
	}
	return err
}

func (b *binder) bindFAQ() error {
	faq, err := NewFAQ(b.env.Document)
	b.page.FAQ = faq
	for i, item := range faq.Items() {
		b.on(item.Question, dom.EventClick, fmt.Sprintf("faq-%d", i), func(dom.Event) { item.Toggle() })
	}
	return err
}

func (b *binder) bindContact() error {
	c := &ContactForm{
		Form:         b.reg.Element(IDContactForm),
		Name:         b.reg.Element(IDName),
		Email:        b.reg.Element(IDEmail),
		Message:      b.reg.Element(IDMessage),
		NameError:    b.reg.Element(IDNameError),
		EmailError:   b.reg.Element(IDEmailError),
		MessageError: b.reg.Element(IDMessageError),
		Success:      b.reg.Element(IDFormSuccess),
		Counter:      b.reg.Element(IDCharCount),
		Errors:       b.env.Document.QueryAll(SelectorFieldError),
	}
	b.page.Contact = c
	b.on(c.Message, dom.EventInput, "char-count", func(dom.Event) { UpdateCounter(c.Message, c.Counter) })
	b.on(c.Form, dom.EventSubmit, "contact-submit", func(evt dom.Event) {
		errs := c.Submit(evt)
		b.env.Logger.Info(category, "contact form submitted", map[string]any{
			"valid":  errs.Valid(),
			"errors": errs.Count(),
		})
	})
	return nil
}

func (b *binder) bindBackToTop() error {
	if b.env.Viewport == nil {
		return errors.New("no viewport")
	}
	btt := NewBackToTop(b.reg.Element(IDBackToTop), b.env.Viewport)
	b.page.BackToTop = btt
	b.on(b.env.Viewport, dom.EventScroll, "scroll", func(dom.Event) { btt.Update(b.env.Viewport.ScrollY()) })
	b.on(b.reg.Element(IDBackToTop), dom.EventClick, "back-to-top", func(dom.Event) { btt.ScrollToTop() })
	return nil
}
