package store

import (
	"math/rand"

	"github.com/google/uuid"

	"sonotes/internal/models"
)

// AddNote creates a note at world coordinates on the current board with
// a random palette color and the next z. Creation flushes immediately.
func (s *Store) AddNote(x, y float64) models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := models.NowMillis()
	note := models.Note{
		ID:        uuid.NewString(),
		X:         x,
		Y:         y,
		Z:         s.nextZ(),
		Color:     models.NoteColors[rand.Intn(len(models.NoteColors))],
		BoardID:   s.data.CurrentBoardID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.data.Notes = append(s.data.Notes, note)
	s.growCanvasFor(&note)
	s.persistStructural()
	return note
}

// UpdateNote replaces a note's content and bumps its update time.
func (s *Store) UpdateNote(id, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.noteByID(id)
	if n == nil {
		return
	}
	n.Content = content
	n.UpdatedAt = models.NowMillis()
	s.persistEdit()
}

// UpdateTitle replaces a note's title and bumps its update time.
func (s *Store) UpdateTitle(id, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.noteByID(id)
	if n == nil {
		return
	}
	n.Title = title
	n.UpdatedAt = models.NowMillis()
	s.persistEdit()
}

// MoveNote sets a note's absolute world position.
func (s *Store) MoveNote(id string, x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.noteByID(id)
	if n == nil {
		return
	}
	n.X = x
	n.Y = y
	s.growCanvasFor(n)
	s.persistLayout()
}

// MoveSelectedNotes applies a delta to every selected note except
// excludeID (the note the primary drag handler already moved).
// Positions are clamped to the origin wall.
func (s *Store) MoveSelectedNotes(dx, dy float64, excludeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	moved := false
	for id := range s.selection {
		if id == excludeID {
			continue
		}
		n := s.noteByID(id)
		if n == nil {
			continue
		}
		n.X += dx
		n.Y += dy
		if n.X < 0 {
			n.X = 0
		}
		if n.Y < 0 {
			n.Y = 0
		}
		s.growCanvasFor(n)
		moved = true
	}
	if moved {
		s.persistLayout()
	}
}

// BringToFront assigns the note a z strictly above every other note.
func (s *Store) BringToFront(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.noteByID(id)
	if n == nil {
		return
	}
	n.Z = s.nextZ()
	s.persistLayout()
}

// ChangeColor sets a note's palette color. Flushes immediately.
func (s *Store) ChangeColor(id, color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.noteByID(id)
	if n == nil {
		return
	}
	n.Color = color
	s.persistStructural()
}

// ChangeSelectedNotesColor sets the color of every selected note.
func (s *Store) ChangeSelectedNotesColor(color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	for id := range s.selection {
		if n := s.noteByID(id); n != nil {
			n.Color = color
			changed = true
		}
	}
	if changed {
		s.persistStructural()
	}
}

// ToggleCollapse flips the collapsed flag.
func (s *Store) ToggleCollapse(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.noteByID(id)
	if n == nil {
		return
	}
	n.Collapsed = !n.Collapsed
	s.persistLayout()
}

// DuplicateNote clones a note at a +20,+20 offset with fresh identity,
// timestamps, and z.
func (s *Store) DuplicateNote(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.duplicateLocked(id) != "" {
		s.persistStructural()
	}
}

// DuplicateSelectedNotes clones every selected note; the clones become
// the new selection.
func (s *Store) DuplicateSelectedNotes() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var clones []string
	for id := range s.selection {
		if newID := s.duplicateLocked(id); newID != "" {
			clones = append(clones, newID)
		}
	}
	if len(clones) == 0 {
		return
	}
	s.selection = make(map[string]struct{})
	for _, id := range clones {
		s.selection[id] = struct{}{}
	}
	s.persistStructural()
}

// duplicateLocked clones one note and returns the new id, or "" if the
// source does not exist. Caller holds the lock and persists.
func (s *Store) duplicateLocked(id string) string {
	src := s.noteByID(id)
	if src == nil {
		return ""
	}
	now := models.NowMillis()
	clone := *src
	clone.ID = uuid.NewString()
	clone.X += 20
	clone.Y += 20
	clone.Z = s.nextZ()
	clone.CreatedAt = now
	clone.UpdatedAt = now
	s.data.Notes = append(s.data.Notes, clone)
	return clone.ID
}

// MoveNoteToBoard reassigns a note to another board with a small random
// jitter to avoid exact stacking, and drops it from the selection since
// it left the visible set.
func (s *Store) MoveNoteToBoard(id, targetBoardID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.boardByID(targetBoardID) == nil {
		return
	}
	n := s.noteByID(id)
	if n == nil {
		return
	}
	n.BoardID = targetBoardID
	n.X += rand.Float64() * 20
	n.Y += rand.Float64() * 20
	n.UpdatedAt = models.NowMillis()
	delete(s.selection, id)
	s.persistStructural()
}

// CopyNoteToBoard clones a note onto another board. The original stays
// where it is, selection untouched.
func (s *Store) CopyNoteToBoard(id, targetBoardID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.boardByID(targetBoardID) == nil {
		return
	}
	src := s.noteByID(id)
	if src == nil {
		return
	}
	now := models.NowMillis()
	clone := *src
	clone.ID = uuid.NewString()
	clone.BoardID = targetBoardID
	clone.X += rand.Float64() * 20
	clone.Y += rand.Float64() * 20
	clone.Z = s.nextZ()
	clone.CreatedAt = now
	clone.UpdatedAt = now
	s.data.Notes = append(s.data.Notes, clone)
	s.persistStructural()
}

// MoveSelectedToBoard moves every selected note to the target board and
// clears the selection.
func (s *Store) MoveSelectedToBoard(targetBoardID string) {
	s.mu.Lock()
	ids := s.selectedIDsLocked()
	s.mu.Unlock()
	for _, id := range ids {
		s.MoveNoteToBoard(id, targetBoardID)
	}
	s.ClearSelection()
}

// CopySelectedToBoard copies every selected note to the target board.
// The originals remain selected.
func (s *Store) CopySelectedToBoard(targetBoardID string) {
	s.mu.Lock()
	ids := s.selectedIDsLocked()
	s.mu.Unlock()
	for _, id := range ids {
		s.CopyNoteToBoard(id, targetBoardID)
	}
}
