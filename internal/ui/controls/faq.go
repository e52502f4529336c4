package controls

import (
	"fmt"

	"github.com/Its-donkey/sweet-treats/internal/ui/dom"
)

// FAQItem is a question button and the answer panel that follows it.
type FAQItem struct {
	Question dom.Element
	Answer   dom.Element
}

// Expanded reads the state of record: the question's aria-expanded attribute.
func (f FAQItem) Expanded() bool {
	return f.Question.Attr("aria-expanded") == "true"
}

// Toggle expands a collapsed item or collapses an expanded one and reports
// whether it is now expanded. The attributes follow the visual state.
func (f FAQItem) Toggle() bool {
	if f.Expanded() {
		f.Answer.SetStyle("max-height", "")
		f.Question.SetAttr("aria-expanded", "false")
		f.Answer.SetAttr("aria-hidden", "true")
		return false
	}
	f.Answer.SetStyle("max-height", fmt.Sprintf("%dpx", f.Answer.ScrollHeight()))
	f.Question.SetAttr("aria-expanded", "true")
	f.Answer.SetAttr("aria-hidden", "false")
	return true
}

// FAQ is the set of independent collapsible items.
type FAQ struct {
	items []FAQItem
}

// NewFAQ pairs every question with its next sibling. Questions without one
// are reported and left out.
func NewFAQ(doc dom.Document) (*FAQ, error) {
	f := &FAQ{}
	var missing []string
	for i, q := range doc.QueryAll(SelectorFAQQuestion) {
		answer := q.NextSibling()
		if answer == nil {
			missing = append(missing, fmt.Sprintf("faq answer %d", i))
			continue
		}
		f.items = append(f.items, FAQItem{Question: q, Answer: answer})
	}
	if len(missing) > 0 {
		return f, &dom.MissingElementsError{IDs: missing}
	}
	return f, nil
}

// Items returns the bound items in page order.
func (f *FAQ) Items() []FAQItem {
	if f == nil {
		return nil
	}
	return f.items
}

// Toggle flips item i. It reports false for an out-of-range index.
func (f *FAQ) Toggle(i int) bool {
	if i < 0 || i >= len(f.items) {
		return false
	}
	return f.items[i].Toggle()
}
