package controls

import "github.com/Its-donkey/sweet-treats/internal/ui/dom"

// SpinnerState is the shared "spinner is running" flag. It is owned by the
// caller and passed to StartSpinner and StopSpinner.
type SpinnerState struct {
	active bool
}

// Active reports whether the spinner is running.
func (s *SpinnerState) Active() bool {
	return s.active
}

// StartSpinner reveals the spinner unless it is already running. It reports
// whether the transition happened.
func StartSpinner(state *SpinnerState, spinner dom.Element) bool {
	if state.active {
		return false
	}
	spinner.RemoveClass(ClassHidden)
	state.active = true
	return true
}

// StopSpinner hides the spinner unless it is already stopped. It reports
// whether the transition happened.
func StopSpinner(state *SpinnerState, spinner dom.Element) bool {
	if !state.active {
		return false
	}
	spinner.AddClass(ClassHidden)
	state.active = false
	return true
}
