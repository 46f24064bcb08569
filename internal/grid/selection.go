package grid

import "sort"

// Selection tracks the set of selected row ids. Select-all and deselect-all
// only touch the ids on the currently visible page; ids filtered out of view
// stay selected until explicitly cleared.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle flips the selection state of one id.
func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// Select adds an id to the selection.
func (s *Selection) Select(id string) {
	s.ids[id] = struct{}{}
}

// Deselect removes an id from the selection.
func (s *Selection) Deselect(id string) {
	delete(s.ids, id)
}

// SelectPage adds every id on the visible page.
func (s *Selection) SelectPage(pageIDs []string) {
	for _, id := range pageIDs {
		s.ids[id] = struct{}{}
	}
}

// DeselectPage removes every id on the visible page, leaving off-page
// selections intact.
func (s *Selection) DeselectPage(pageIDs []string) {
	for _, id := range pageIDs {
		delete(s.ids, id)
	}
}

// Replace makes id the only selected row. Used after copying a record.
func (s *Selection) Replace(id string) {
	s.ids = map[string]struct{}{id: {}}
}

// Clear empties the selection. Called after destructive bulk actions.
func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

// Has reports whether id is selected.
func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Count returns the selection cardinality.
func (s *Selection) Count() int {
	return len(s.ids)
}

// IDs returns the selected ids in sorted order.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
