package store

import (
	"sort"

	"sonotes/internal/models"
)

// TrashNotes returns all soft-deleted notes, most recently deleted
// first.
func (s *Store) TrashNotes() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Note
	for i := range s.data.Notes {
		if s.data.Notes[i].InTrash() {
			out = append(out, s.data.Notes[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].DeletedAt > *out[j].DeletedAt
	})
	return out
}

// DeleteNote soft-deletes a note into the trash and removes it from the
// selection. Flushes immediately.
func (s *Store) DeleteNote(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.deleteLocked(id) {
		return
	}
	s.persistStructural()
}

// DeleteSelectedNotes soft-deletes the whole selection, then clears it.
func (s *Store) DeleteSelectedNotes() {
	s.mu.Lock()
	defer s.mu.Unlock()
	deleted := false
	for _, id := range s.selectedIDsLocked() {
		if s.deleteLocked(id) {
			deleted = true
		}
	}
	s.selection = make(map[string]struct{})
	if deleted {
		s.persistStructural()
	}
}

func (s *Store) deleteLocked(id string) bool {
	n := s.noteByID(id)
	if n == nil || n.InTrash() {
		return false
	}
	now := models.NowMillis()
	n.DeletedAt = &now
	delete(s.selection, id)
	return true
}

// RestoreNote pulls a note out of the trash. If its board no longer
// exists it lands on the current board, and it is brought to front so
// the restore is visible.
func (s *Store) RestoreNote(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.restoreLocked(id) {
		return
	}
	s.persistStructural()
}

// RestoreAllTrash restores every trashed note.
func (s *Store) RestoreAllTrash() {
	s.mu.Lock()
	defer s.mu.Unlock()
	restored := false
	for i := range s.data.Notes {
		if s.data.Notes[i].InTrash() && s.restoreLocked(s.data.Notes[i].ID) {
			restored = true
		}
	}
	if restored {
		s.persistStructural()
	}
}

func (s *Store) restoreLocked(id string) bool {
	n := s.noteByID(id)
	if n == nil || !n.InTrash() {
		return false
	}
	n.DeletedAt = nil
	if s.boardByID(n.BoardID) == nil {
		n.BoardID = s.data.CurrentBoardID
	}
	n.Z = s.nextZ()
	return true
}

// DeleteNotePermanently hard-removes a trashed note. Irreversible; a
// note still active is left alone.
func (s *Store) DeleteNotePermanently(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Notes {
		if s.data.Notes[i].ID == id && s.data.Notes[i].InTrash() {
			s.data.Notes = append(s.data.Notes[:i], s.data.Notes[i+1:]...)
			delete(s.selection, id)
			s.persistStructural()
			return
		}
	}
}

// EmptyTrash hard-removes every trashed note.
func (s *Store) EmptyTrash() {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.data.Notes[:0]
	removed := false
	for i := range s.data.Notes {
		if s.data.Notes[i].InTrash() {
			delete(s.selection, s.data.Notes[i].ID)
			removed = true
			continue
		}
		kept = append(kept, s.data.Notes[i])
	}
	s.data.Notes = kept
	if removed {
		s.persistStructural()
	}
}
