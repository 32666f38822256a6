package store

// SelectNote makes the note the sole selection.
func (s *Store) SelectNote(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.noteByID(id) == nil {
		return
	}
	s.selection = map[string]struct{}{id: {}}
}

// ToggleSelect flips the note's membership in the selection.
func (s *Store) ToggleSelect(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.noteByID(id) == nil {
		return
	}
	if _, ok := s.selection[id]; ok {
		delete(s.selection, id)
	} else {
		s.selection[id] = struct{}{}
	}
}

// SelectMany replaces the selection with the given ids. Unknown ids are
// dropped.
func (s *Store) SelectMany(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if s.noteByID(id) != nil {
			s.selection[id] = struct{}{}
		}
	}
}

// ClearSelection empties the selection.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = make(map[string]struct{})
}

// IsSelected reports membership.
func (s *Store) IsSelected(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.selection[id]
	return ok
}

// SelectionCount returns the number of selected notes.
func (s *Store) SelectionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.selection)
}

// SelectedIDs returns the selected ids in no particular order.
func (s *Store) SelectedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedIDsLocked()
}

func (s *Store) selectedIDsLocked() []string {
	out := make([]string, 0, len(s.selection))
	for id := range s.selection {
		out = append(out, id)
	}
	return out
}
