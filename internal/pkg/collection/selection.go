package collection

import "sort"

// Selection tracks which entity ids are checked for bulk actions. It is not
// safe for concurrent use on its own; the controller guards it with its
// store mutex.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// SelectAll sets the selection to all given ids, or clears it
func (s *Selection) SelectAll(ids []string, checked bool) {
	s.ids = make(map[string]struct{}, len(ids))
	if !checked {
		return
	}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// Toggle flips one id in or out of the selection
func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// Has reports whether id is selected
func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Remove drops ids from the selection
func (s *Selection) Remove(ids ...string) {
	for _, id := range ids {
		delete(s.ids, id)
	}
}

// Intersect keeps only ids present in current. Called whenever the loaded
// list is replaced, so the selection can never reference an id that is no
// longer on screen.
func (s *Selection) Intersect(current []string) {
	keep := make(map[string]struct{}, len(current))
	for _, id := range current {
		if _, ok := s.ids[id]; ok {
			keep[id] = struct{}{}
		}
	}
	s.ids = keep
}

// IDs returns the selected ids in sorted order
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of selected ids
func (s *Selection) Len() int {
	return len(s.ids)
}

// Clear empties the selection
func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}
