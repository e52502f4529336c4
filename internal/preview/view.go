package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Its-donkey/sweet-treats/internal/ui/controls"
)

// View implements tea.Model.
func (m Model) View() string {
	st := m.theme.Styles()
	var b strings.Builder
	b.WriteString(st.Title.Render(m.data.SiteName))
	b.WriteString("\n")

	left := lipgloss.JoinVertical(lipgloss.Left,
		st.Section.Render(m.viewCard(st)),
		st.Section.Render(m.viewOven(st)),
		st.Section.Render(m.viewMenu(st)),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		st.Section.Render(m.viewTabs(st)),
		st.Section.Render(m.viewFAQ(st)),
		st.Section.Render(m.viewContact(st)),
	)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")
	b.WriteString(m.viewScroll(st))
	b.WriteString("\n")
	if m.bindErr != nil {
		b.WriteString(st.Error.Render(m.bindErr.Error()))
		b.WriteString("\n")
	}
	for _, entry := range m.recent {
		b.WriteString(st.Muted.Render(fmt.Sprintf("%s %s %s", entry.Level, entry.Category, entry.Message)))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) hasClass(id, class string) bool {
	el := m.doc.Element(id)
	return el != nil && el.HasClass(class)
}

func (m Model) text(id string) string {
	if el := m.doc.Element(id); el != nil {
		return strings.TrimSpace(el.Text())
	}
	return ""
}

func (m Model) viewCard(st Styles) string {
	treat := m.data.Treat
	if m.hasClass(controls.IDTreatBox, controls.ClassFlipped) {
		return st.Heading.Render("Ingredients") + "\n" +
			strings.Join(treat.Ingredients, ", ") + "\n" + treat.Price
	}
	return st.Heading.Render(treat.Name) + "\n" + treat.Tagline
}

func (m Model) viewOven(st Styles) string {
	oven := st.Muted.Render("oven idle")
	if m.page.Spin != nil && m.page.Spin.Active() {
		oven = m.spinner.View() + " baking"
	}
	popup := "offer hidden"
	switch {
	case m.hasClass(controls.IDPopup, controls.ClassShow):
		popup = st.Active.Render("offer: " + m.text("popup-title"))
	case m.page.Popup != nil && m.page.Popup.HidePending():
		popup = st.Muted.Render("offer closing")
	}
	return st.Heading.Render("Fresh from the oven") + "\n" + oven + "\n" + popup
}

func (m Model) viewMenu(st Styles) string {
	if !m.hasClass(controls.IDDropdownMenu, controls.ClassShow) {
		return st.Heading.Render("Menu ▸")
	}
	lines := []string{st.Heading.Render("Menu ▾")}
	for _, link := range m.data.Menu {
		lines = append(lines, "  "+link.Label)
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewTabs(st Styles) string {
	active := m.page.Tabs.Active()
	labels := make([]string, 0, len(m.data.Specials))
	body := ""
	for _, special := range m.data.Specials {
		if special.Day == active {
			labels = append(labels, st.Active.Render(special.Label))
			body = special.Title + "\n" + st.Muted.Render(special.Description)
			continue
		}
		labels = append(labels, special.Label)
	}
	return strings.Join(labels, " | ") + "\n" + body
}

func (m Model) viewFAQ(st Styles) string {
	lines := []string{st.Heading.Render("Questions")}
	for i, item := range m.page.FAQ.Items() {
		marker := "▸"
		if item.Expanded() {
			marker = "▾"
		}
		lines = append(lines, fmt.Sprintf("%d %s %s", i+1, marker, strings.TrimSpace(item.Question.Text())))
		if item.Expanded() {
			lines = append(lines, "    "+st.Muted.Render(strings.TrimSpace(item.Answer.Text())))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewContact(st Styles) string {
	lines := []string{st.Heading.Render("Get in touch") + "  " + st.Muted.Render(m.text(controls.IDCharCount))}
	for _, id := range []string{controls.IDNameError, controls.IDEmailError, controls.IDMessageError} {
		if msg := m.text(id); msg != "" {
			lines = append(lines, st.Error.Render(msg))
		}
	}
	if msg := m.text(controls.IDFormSuccess); msg != "" {
		lines = append(lines, st.Success.Render(msg))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewScroll(st Styles) string {
	line := fmt.Sprintf("scroll %.0fpx", m.doc.Window().ScrollY())
	if m.page.BackToTop != nil && m.page.BackToTop.Visible() {
		line += "  " + st.Active.Render("↑ back to top")
	}
	return st.Muted.Render(line)
}
