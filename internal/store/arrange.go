package store

import (
	"math"
	"sort"

	"sonotes/internal/models"
)

// Grid layout constants for ArrangeNotes, in world units.
const (
	arrangeColumnWidth = 320
	arrangeGap         = 20
	arrangePadding     = 50
	arrangeRowBand     = 50
	collapsedEstimate  = 40
)

// ArrangeNotes re-lays the targeted notes as a deterministic grid: the
// current selection if non-empty, otherwise every non-deleted note on
// the active board. Notes are read in visual rows (Y rounded to 50-unit
// bands, X breaking ties) and laid out left to right, wrapping at the
// viewport's right edge; each row is as tall as its tallest note.
// startX/startY of -1 default to the viewport top-left plus padding.
func (s *Store) ArrangeNotes(startX, startY float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var targets []*models.Note
	if len(s.selection) > 0 {
		for i := range s.data.Notes {
			if _, ok := s.selection[s.data.Notes[i].ID]; ok {
				targets = append(targets, &s.data.Notes[i])
			}
		}
	} else {
		for i := range s.data.Notes {
			n := &s.data.Notes[i]
			if n.BoardID == s.data.CurrentBoardID && !n.InTrash() {
				targets = append(targets, n)
			}
		}
	}
	if len(targets) == 0 {
		return
	}

	sort.SliceStable(targets, func(i, j int) bool {
		ri := math.Round(targets[i].Y / arrangeRowBand)
		rj := math.Round(targets[j].Y / arrangeRowBand)
		if ri != rj {
			return ri < rj
		}
		return targets[i].X < targets[j].X
	})

	if startX < 0 {
		startX = s.viewport.X + arrangePadding
	}
	if startY < 0 {
		startY = s.viewport.Y + arrangePadding
	}
	// Keep the first column and row on screen.
	rightEdge := s.viewport.X + s.viewport.W
	if startX+arrangeColumnWidth > rightEdge {
		startX = rightEdge - arrangeColumnWidth
	}
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}

	x := startX
	y := startY
	rowHeight := 0.0
	for _, n := range targets {
		if x > startX && x+arrangeColumnWidth > rightEdge {
			x = startX
			y += rowHeight + arrangeGap
			rowHeight = 0
		}
		n.X = x
		n.Y = y
		est := n.EffectiveHeight()
		if n.Collapsed {
			est = collapsedEstimate
		}
		if est > rowHeight {
			rowHeight = est
		}
		s.growCanvasFor(n)
		x += arrangeColumnWidth + arrangeGap
	}
	s.persistLayout()
}
