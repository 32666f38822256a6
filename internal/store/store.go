package store

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"sonotes/internal/models"
)

// Persister receives snapshots from the store and decides when each
// storage tier actually gets written. Every method is fire-and-forget:
// failures never reach the store and never roll back a mutation.
type Persister interface {
	// CacheWrite writes the cache tier, throttled.
	CacheWrite(models.StorageData)
	// ScheduleFlush (re)arms the debounced disk flush.
	ScheduleFlush(models.StorageData)
	// FlushNow writes both tiers immediately.
	FlushNow(models.StorageData)
}

// Viewport is the visible window into the world-space canvas.
type Viewport struct {
	X, Y, W, H float64
}

// EdgePush holds the four directional autoscroll flags set while a drag
// dwells near a viewport edge.
type EdgePush struct {
	Top, Bottom, Left, Right bool
}

// Any reports whether any direction is active.
func (e EdgePush) Any() bool {
	return e.Top || e.Bottom || e.Left || e.Right
}

// Store is the single source of truth for notes, boards, viewport,
// selection, and interaction state. It is the sole mutator of
// application state: every mutating operation is atomic in memory and
// triggers the appropriate persistence schedule. Operations referencing
// a missing id are silent no-ops.
type Store struct {
	mu      sync.Mutex
	data    models.StorageData
	persist Persister
	log     *zap.Logger

	selection map[string]struct{}
	viewport  Viewport
	canvasW   float64
	canvasH   float64

	panMode  bool
	dragging bool
	edgePush EdgePush
	stickyID string
}

// New creates a store over a rehydrated snapshot.
func New(data models.StorageData, persist Persister, log *zap.Logger) *Store {
	return &Store{
		data:      data,
		persist:   persist,
		log:       log,
		selection: make(map[string]struct{}),
	}
}

// Snapshot returns a deep copy of the persisted state.
func (s *Store) Snapshot() models.StorageData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// persistEdit is the write class for high-frequency content edits:
// throttled cache write plus the shared debounced disk flush.
func (s *Store) persistEdit() {
	snap := s.data.Clone()
	s.persist.CacheWrite(snap)
	s.persist.ScheduleFlush(snap)
}

// persistLayout is the write class for layout-only changes (moves,
// z-order, collapse): debounced disk flush only.
func (s *Store) persistLayout() {
	s.persist.ScheduleFlush(s.data.Clone())
}

// persistStructural is the write class for creation, deletion, color
// and board mutations: immediate, unconditional flush of both tiers.
func (s *Store) persistStructural() {
	s.persist.FlushNow(s.data.Clone())
}

// noteByID returns a pointer into the notes slice, or nil.
func (s *Store) noteByID(id string) *models.Note {
	for i := range s.data.Notes {
		if s.data.Notes[i].ID == id {
			return &s.data.Notes[i]
		}
	}
	return nil
}

// boardByID returns a pointer into the boards slice, or nil.
func (s *Store) boardByID(id string) *models.Board {
	for i := range s.data.Boards {
		if s.data.Boards[i].ID == id {
			return &s.data.Boards[i]
		}
	}
	return nil
}

// nextZ increments and returns the running z counter. The returned
// value is strictly greater than every z handed out before.
func (s *Store) nextZ() int {
	s.data.Config.MaxZ++
	return s.data.Config.MaxZ
}

// ActiveNotes returns the non-deleted notes of the current board in
// paint order (ascending z).
func (s *Store) ActiveNotes() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Note
	for i := range s.data.Notes {
		n := s.data.Notes[i]
		if n.BoardID == s.data.CurrentBoardID && !n.InTrash() {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}

// Note returns a copy of the note with the given id.
func (s *Store) Note(id string) (models.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := s.noteByID(id); n != nil {
		return *n, true
	}
	return models.Note{}, false
}

// Config returns the persisted app config.
func (s *Store) Config() models.AppConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Config
}

// SetThemeMode persists the theme choice.
func (s *Store) SetThemeMode(mode models.ThemeMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Config.ThemeMode = mode
	s.persistStructural()
}
