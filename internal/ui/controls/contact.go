package controls

import (
	"github.com/Its-donkey/sweet-treats/internal/ui/dom"
	"github.com/Its-donkey/sweet-treats/internal/ui/forms"
	"github.com/Its-donkey/sweet-treats/internal/ui/model"
)

// ContactForm projects contact form validation onto the page.
type ContactForm struct {
	Form         dom.Element
	Name         dom.Element
	Email        dom.Element
	Message      dom.Element
	NameError    dom.Element
	EmailError   dom.Element
	MessageError dom.Element
	Success      dom.Element
	Counter      dom.Element
	// Errors lists every field error element cleared before validating.
	Errors []dom.Element
}

// Values reads the current field values.
func (c *ContactForm) Values() model.ContactForm {
	return model.ContactForm{
		Name:    c.Name.Value(),
		Email:   c.Email.Value(),
		Message: c.Message.Value(),
	}
}

// Submit handles a submission attempt. Default handling is always suppressed.
// Previous messages are cleared, every field is validated, and either the
// failing fields' errors or the success message is shown, never both.
func (c *ContactForm) Submit(evt dom.Event) model.ContactErrors {
	if evt != nil {
		evt.PreventDefault()
	}
	for _, el := range c.Errors {
		el.SetText("")
	}
	c.NameError.SetText("")
	c.EmailError.SetText("")
	c.MessageError.SetText("")
	c.Success.SetText("")

	errs := forms.ValidateContactForm(c.Values())
	if errs.Valid() {
		c.Success.SetText(forms.SuccessText)
		c.Form.Reset()
		c.Counter.SetText(forms.CounterText(""))
		return errs
	}
	if errs.Name != "" {
		c.NameError.SetText(errs.Name)
	}
	if errs.Email != "" {
		c.EmailError.SetText(errs.Email)
	}
	if errs.Message != "" {
		c.MessageError.SetText(errs.Message)
	}
	return errs
}
