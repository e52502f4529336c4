package forms

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/Its-donkey/sweet-treats/internal/ui/model"
)

const (
	// MinNameLength and MinMessageLength are inclusive minimums on trimmed input.
	MinNameLength    = 2
	MinMessageLength = 10
	// MaxMessageLength is shown by the live counter.
	MaxMessageLength = 500

	NameError    = "Please enter your name (at least 2 characters)."
	EmailError   = "Please enter a valid email address."
	MessageError = "Message should be at least 10 characters."
	SuccessText  = "Thank you for reaching out! We will get back to you soon."
)

// nonBlank excludes the same whitespace a browser's \s does, plus '@'.
const nonBlank = `[^\s\v\p{Z}\x{FEFF}@]+`

var emailPattern = regexp.MustCompile(`^` + nonBlank + `@` + nonBlank + `\.` + nonBlank + `$`)

// ValidateContactForm checks every field independently and returns a message
// for each one that fails.
func ValidateContactForm(form model.ContactForm) model.ContactErrors {
	var errs model.ContactErrors
	if TextLength(Trim(form.Name)) < MinNameLength {
		errs.Name = NameError
	}
	if !ValidEmail(form.Email) {
		errs.Email = EmailError
	}
	if TextLength(Trim(form.Message)) < MinMessageLength {
		errs.Message = MessageError
	}
	return errs
}

// ValidEmail reports whether the trimmed value looks like local@domain.tld.
func ValidEmail(value string) bool {
	return emailPattern.MatchString(Trim(value))
}

// Trim strips leading and trailing whitespace, including the byte order mark.
func Trim(value string) string {
	return strings.TrimFunc(value, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

// TextLength counts UTF-16 code units, matching what the browser reports for
// a field's length and what its maxlength attribute enforces.
func TextLength(value string) int {
	n := 0
	for _, r := range value {
		if r > 0xFFFF {
			n += 2
			continue
		}
		n++
	}
	return n
}

// CounterText renders the live character counter for a message.
func CounterText(message string) string {
	return strconv.Itoa(TextLength(message)) + "/" + strconv.Itoa(MaxMessageLength)
}
