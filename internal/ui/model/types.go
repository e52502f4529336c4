package model

// ContactForm holds the contact form values read at submission time.
type ContactForm struct {
	Name    string
	Email   string
	Message string
}

// ContactErrors carries one message per failing field; empty means valid.
type ContactErrors struct {
	Name    string
	Email   string
	Message string
}

// Valid reports whether no field failed.
func (e ContactErrors) Valid() bool {
	return e.Name == "" && e.Email == "" && e.Message == ""
}

// Count returns the number of failing fields.
func (e ContactErrors) Count() int {
	n := 0
	for _, msg := range []string{e.Name, e.Email, e.Message} {
		if msg != "" {
			n++
		}
	}
	return n
}

// DaySpecial is one tab of the weekly specials panel.
type DaySpecial struct {
	Day         string
	Label       string
	Title       string
	Description string
	Items       []string
}

// FAQEntry is a question with its collapsible answer.
type FAQEntry struct {
	Question string
	Answer   string
}

// Treat is the featured product shown on the flip-card.
type Treat struct {
	Name        string
	Tagline     string
	Ingredients []string
	Price       string
}

// MenuLink is an entry of the navigation dropdown.
type MenuLink struct {
	Label string
	Href  string
}
