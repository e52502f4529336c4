package controls

import (
	"github.com/Its-donkey/sweet-treats/internal/ui/dom"
	"github.com/Its-donkey/sweet-treats/internal/ui/forms"
)

// UpdateCounter shows the message length out of the limit.
func UpdateCounter(message, display dom.Element) string {
	text := forms.CounterText(message.Value())
	display.SetText(text)
	return text
}
