// Package controls implements the bakery page's interactive behaviour on top
// of the dom capability layer.
package controls

import (
	"fmt"

	"github.com/Its-donkey/sweet-treats/internal/ui/dom"
	"github.com/Its-donkey/sweet-treats/logging"
)

// Style classes shared with the stylesheet.
const (
	ClassFlipped = "flipped"
	ClassHidden  = "hidden"
	ClassShow    = "show"
	ClassActive  = "active"
)

// Element ids the page must provide.
const (
	IDTreatBox     = "treat-box"
	IDFlipButton   = "flip-btn"
	IDSpinner      = "spinner"
	IDSpinnerStart = "spinner-start"
	IDSpinnerStop  = "spinner-stop"
	IDPopup        = "popup"
	IDPopupOpen    = "popup-btn"
	IDPopupClose   = "popup-close"
	IDDropdownBtn  = "dropdown-btn"
	IDDropdownMenu = "dropdown-menu"
	IDContactForm  = "contact-form"
	IDName         = "name"
	IDEmail        = "email"
	IDMessage      = "message"
	IDCharCount    = "char-count"
	IDNameError    = "name-error"
	IDEmailError   = "email-error"
	IDMessageError = "message-error"
	IDFormSuccess  = "form-success"
	IDBackToTop    = "back-to-top"
)

// Selectors for the repeated groups.
const (
	SelectorTabButton   = ".tab-btn"
	SelectorFAQQuestion = ".faq-question"
	SelectorFieldError  = ".error"
	tabPanelPrefix      = "tab-"
)

const category = "ui"

// guard wraps a handler so a panic is logged instead of escaping into the
// event loop and taking the other handlers down with it.
func guard(logger *logging.Logger, name string, h dom.Handler) dom.Handler {
	return func(evt dom.Event) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error(category, "handler panicked", fmt.Errorf("%v", r), map[string]any{"handler": name})
			}
		}()
		h(evt)
	}
}
