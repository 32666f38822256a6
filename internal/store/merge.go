package store

import (
	"sonotes/internal/models"
)

// MergeImport appends already-rewritten boards and notes from an import
// payload. Incoming z values are replaced with fresh ones so imported
// notes stack on top of existing content, and the bounds tracker grows
// to cover them. No existing data is touched.
func (s *Store) MergeImport(boards []models.Board, notes []models.Note) {
	if len(boards) == 0 && len(notes) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Boards = append(s.data.Boards, boards...)
	for i := range notes {
		notes[i].Z = s.nextZ()
		s.data.Notes = append(s.data.Notes, notes[i])
		s.growCanvasFor(&s.data.Notes[len(s.data.Notes)-1])
	}
	s.persistStructural()
}
