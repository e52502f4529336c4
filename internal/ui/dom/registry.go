package dom

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMissingElement is matched by every MissingElementsError.
var ErrMissingElement = errors.New("element not found")

// MissingElementsError lists ids the page failed to provide.
type MissingElementsError struct {
	IDs []string
}

func (e *MissingElementsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingElement, strings.Join(e.IDs, ", "))
}

func (e *MissingElementsError) Unwrap() error {
	return ErrMissingElement
}

// Registry holds element handles resolved once at startup.
type Registry struct {
	elements map[string]Element
}

// Resolve looks up every id in doc. The returned registry always holds the
// elements that were found; the error names the ones that were not.
func Resolve(doc Document, ids ...string) (*Registry, error) {
	reg := &Registry{elements: make(map[string]Element, len(ids))}
	var missing []string
	for _, id := range ids {
		if _, seen := reg.elements[id]; seen {
			continue
		}
		el := doc.ByID(id)
		if el == nil {
			missing = append(missing, id)
			continue
		}
		reg.elements[id] = el
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return reg, &MissingElementsError{IDs: missing}
	}
	return reg, nil
}

// Element returns the handle for id, or nil when it was not resolved.
func (r *Registry) Element(id string) Element {
	if r == nil {
		return nil
	}
	return r.elements[id]
}

// Has reports whether every id was resolved.
func (r *Registry) Has(ids ...string) bool {
	for _, id := range ids {
		if r.Element(id) == nil {
			return false
		}
	}
	return true
}

// Missing returns the subset of ids that were not resolved.
func (r *Registry) Missing(ids ...string) []string {
	var out []string
	for _, id := range ids {
		if r.Element(id) == nil {
			out = append(out, id)
		}
	}
	return out
}
