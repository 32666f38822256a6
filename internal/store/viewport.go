package store

import "sonotes/internal/models"

// Viewport returns the current visible window.
func (s *Store) Viewport() Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewport
}

// CanvasBounds returns the furthest extent the world has ever reached.
// It only grows; the minimap uses it to size its projected world.
func (s *Store) CanvasBounds() (w, h float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canvasW, s.canvasH
}

// PanViewport pans by a delta, clamped to the origin wall.
func (s *Store) PanViewport(dx, dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setViewportLocked(s.viewport.X+dx, s.viewport.Y+dy)
}

// SetViewportPosition pans to an absolute position, clamped to the
// origin wall.
func (s *Store) SetViewportPosition(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setViewportLocked(x, y)
}

// SetViewportSize mirrors the host window size into the viewport.
func (s *Store) SetViewportSize(w, h float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport.W = w
	s.viewport.H = h
	s.growCanvasLocked()
}

// ResetViewport jumps back to the origin.
func (s *Store) ResetViewport() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setViewportLocked(0, 0)
}

// CenterViewportOn pans so the given world point sits at the viewport
// center. Used by minimap jumps.
func (s *Store) CenterViewportOn(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setViewportLocked(x-s.viewport.W/2, y-s.viewport.H/2)
}

func (s *Store) setViewportLocked(x, y float64) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	s.viewport.X = x
	s.viewport.Y = y
	s.growCanvasLocked()
}

// growCanvasLocked grows the bounds tracker to cover the viewport.
func (s *Store) growCanvasLocked() {
	if ext := s.viewport.X + s.viewport.W; ext > s.canvasW {
		s.canvasW = ext
	}
	if ext := s.viewport.Y + s.viewport.H; ext > s.canvasH {
		s.canvasH = ext
	}
}

// growCanvasFor grows the bounds tracker to cover a note's extent.
func (s *Store) growCanvasFor(n *models.Note) {
	if ext := n.X + n.EffectiveWidth(); ext > s.canvasW {
		s.canvasW = ext
	}
	if ext := n.Y + n.EffectiveHeight(); ext > s.canvasH {
		s.canvasH = ext
	}
}

// PanMode reports whether pan mode is active.
func (s *Store) PanMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panMode
}

// SetPanMode toggles pan mode. Entering pan mode suppresses edge push.
func (s *Store) SetPanMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panMode = on
	if on {
		s.edgePush = EdgePush{}
	}
}

// Dragging reports whether a drag gesture is in progress.
func (s *Store) Dragging() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dragging
}

// SetDragging flags an active drag gesture.
func (s *Store) SetDragging(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dragging = on
	if !on {
		s.edgePush = EdgePush{}
	}
}

// EdgePushState returns the directional autoscroll flags.
func (s *Store) EdgePushState() EdgePush {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edgePush
}

// SetEdgePush replaces the directional autoscroll flags. Ignored while
// pan mode is active.
func (s *Store) SetEdgePush(e EdgePush) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.panMode {
		return
	}
	s.edgePush = e
}

// StickyID returns the note currently in click-to-place mode, or "".
func (s *Store) StickyID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stickyID
}

// SetStickyID enters or leaves click-to-place mode.
func (s *Store) SetStickyID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stickyID = id
}
