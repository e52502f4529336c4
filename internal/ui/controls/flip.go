package controls

import "github.com/Its-donkey/sweet-treats/internal/ui/dom"

// ToggleFlip turns the card over and reports whether it now shows its back.
func ToggleFlip(card dom.Element) bool {
	return card.ToggleClass(ClassFlipped)
}

// IsFlipKey reports whether key flips a focused card.
func IsFlipKey(key string) bool {
	return key == "Enter" || key == " "
}
