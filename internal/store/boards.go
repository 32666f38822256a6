package store

import (
	"github.com/google/uuid"

	"sonotes/internal/models"
)

// Boards returns the boards in display order.
func (s *Store) Boards() []models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Board, len(s.data.Boards))
	copy(out, s.data.Boards)
	return out
}

// CurrentBoardID returns the active board's id.
func (s *Store) CurrentBoardID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.CurrentBoardID
}

// CurrentBoard returns a copy of the active board.
func (s *Store) CurrentBoard() models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b := s.boardByID(s.data.CurrentBoardID); b != nil {
		return *b
	}
	return s.data.Boards[0]
}

// CreateBoard adds a board, switches to it, and clears the selection.
func (s *Store) CreateBoard(name, icon string) models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	board := models.Board{
		ID:        uuid.NewString(),
		Name:      name,
		Icon:      icon,
		CreatedAt: models.NowMillis(),
	}
	s.data.Boards = append(s.data.Boards, board)
	s.switchBoardLocked(board.ID)
	s.persistStructural()
	return board
}

// DeleteBoard removes a board and every one of its notes. Deleting the
// last board is a no-op; if the active board goes away, a survivor
// becomes active.
func (s *Store) DeleteBoard(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.data.Boards) <= 1 {
		return
	}
	idx := -1
	for i := range s.data.Boards {
		if s.data.Boards[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	s.data.Boards = append(s.data.Boards[:idx], s.data.Boards[idx+1:]...)

	kept := s.data.Notes[:0]
	for i := range s.data.Notes {
		if s.data.Notes[i].BoardID == id {
			delete(s.selection, s.data.Notes[i].ID)
			continue
		}
		kept = append(kept, s.data.Notes[i])
	}
	s.data.Notes = kept

	if s.data.CurrentBoardID == id {
		s.switchBoardLocked(s.data.Boards[0].ID)
	}
	s.persistStructural()
}

// UpdateBoard renames and/or re-icons a board. Empty values leave the
// field unchanged.
func (s *Store) UpdateBoard(id, name, icon string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.boardByID(id)
	if b == nil {
		return
	}
	if name != "" {
		b.Name = name
	}
	if icon != "" {
		b.Icon = icon
	}
	s.persistStructural()
}

// ReorderBoard swaps a board with its neighbor in display order.
// direction is -1 (toward the front) or +1. No-op at the boundary.
func (s *Store) ReorderBoard(id string, direction int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i := range s.data.Boards {
		if s.data.Boards[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	target := idx + direction
	if target < 0 || target >= len(s.data.Boards) {
		return
	}
	s.data.Boards[idx], s.data.Boards[target] = s.data.Boards[target], s.data.Boards[idx]
	s.persistStructural()
}

// SwitchBoard activates another board: the outgoing board remembers the
// current pan position, selection and any sticky drag are cleared, and
// the incoming board's remembered viewport (or the origin) is restored.
func (s *Store) SwitchBoard(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.boardByID(id) == nil || id == s.data.CurrentBoardID {
		return
	}
	s.switchBoardLocked(id)
	s.persistStructural()
}

func (s *Store) switchBoardLocked(id string) {
	if out := s.boardByID(s.data.CurrentBoardID); out != nil {
		out.Viewport = &models.ViewportPos{X: s.viewport.X, Y: s.viewport.Y}
	}
	s.data.CurrentBoardID = id
	s.selection = make(map[string]struct{})
	s.stickyID = ""

	if in := s.boardByID(id); in != nil && in.Viewport != nil {
		s.viewport.X = in.Viewport.X
		s.viewport.Y = in.Viewport.Y
	} else {
		s.viewport.X = 0
		s.viewport.Y = 0
	}
	s.growCanvasLocked()
}
