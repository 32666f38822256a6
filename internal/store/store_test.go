package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sonotes/internal/models"
)

// fakePersister records which write class every mutation triggered.
type fakePersister struct {
	cacheWrites int
	scheduled   int
	flushes     int
	last        models.StorageData
}

func (f *fakePersister) CacheWrite(d models.StorageData) {
	f.cacheWrites++
	f.last = d
}

func (f *fakePersister) ScheduleFlush(d models.StorageData) {
	f.scheduled++
	f.last = d
}

func (f *fakePersister) FlushNow(d models.StorageData) {
	f.flushes++
	f.last = d
}

func newTestStore() (*Store, *fakePersister) {
	fp := &fakePersister{}
	st := New(models.EmptyStorage(), fp, zap.NewNop())
	st.SetViewportSize(800, 600)
	return st, fp
}

func TestAddNoteAssignsMonotonicZ(t *testing.T) {
	st, _ := newTestStore()

	a := st.AddNote(10, 10)
	b := st.AddNote(20, 20)
	c := st.AddNote(30, 30)

	assert.Less(t, a.Z, b.Z)
	assert.Less(t, b.Z, c.Z)

	st.BringToFront(a.ID)
	front, _ := st.Note(a.ID)
	assert.Greater(t, front.Z, c.Z)
}

func TestWriteClasses(t *testing.T) {
	st, fp := newTestStore()

	note := st.AddNote(10, 10)
	assert.Equal(t, 1, fp.flushes, "creation flushes immediately")

	st.UpdateNote(note.ID, "hello")
	assert.Equal(t, 1, fp.cacheWrites, "content edits hit the cache tier")
	assert.Equal(t, 1, fp.scheduled, "content edits arm the debounce")

	st.MoveNote(note.ID, 50, 50)
	assert.Equal(t, 1, fp.cacheWrites, "moves skip the cache tier")
	assert.Equal(t, 2, fp.scheduled)
	assert.Equal(t, 1, fp.flushes)

	st.ChangeColor(note.ID, models.NoteColors[2])
	assert.Equal(t, 2, fp.flushes, "color changes flush immediately")
}

func TestMutationsOnMissingIDAreNoOps(t *testing.T) {
	st, fp := newTestStore()
	before := *fp

	st.UpdateNote("nope", "x")
	st.MoveNote("nope", 1, 2)
	st.DeleteNote("nope")
	st.ToggleCollapse("nope")
	st.BringToFront("nope")

	assert.Equal(t, before, *fp, "missing ids must not persist anything")
}

func TestMoveSelectedNotesClampsAtOrigin(t *testing.T) {
	st, _ := newTestStore()

	a := st.AddNote(5, 5)
	b := st.AddNote(300, 300)
	st.SelectMany([]string{a.ID, b.ID})

	st.MoveSelectedNotes(-100, -100, "")

	movedA, _ := st.Note(a.ID)
	movedB, _ := st.Note(b.ID)
	assert.Equal(t, 0.0, movedA.X, "clamped member stops at the wall")
	assert.Equal(t, 0.0, movedA.Y)
	assert.Equal(t, 200.0, movedB.X, "unclamped member keeps the full delta")
	assert.Equal(t, 200.0, movedB.Y)
}

func TestSoftDeleteAndRestore(t *testing.T) {
	st, _ := newTestStore()

	a := st.AddNote(10, 10)
	b := st.AddNote(20, 20)

	st.DeleteNote(a.ID)

	assert.Len(t, st.ActiveNotes(), 1)
	trashed := st.TrashNotes()
	require.Len(t, trashed, 1)
	assert.Equal(t, a.ID, trashed[0].ID)
	require.NotNil(t, trashed[0].DeletedAt)

	st.RestoreNote(a.ID)

	assert.Len(t, st.ActiveNotes(), 2)
	assert.Empty(t, st.TrashNotes())
	restored, _ := st.Note(a.ID)
	assert.Nil(t, restored.DeletedAt)
	current, _ := st.Note(b.ID)
	assert.Greater(t, restored.Z, current.Z, "restored note lands on top")
}

func TestRestoreReassignsMissingBoard(t *testing.T) {
	st, _ := newTestStore()

	note := st.AddNote(10, 10)
	st.DeleteNote(note.ID)
	// Simulate a trashed note whose board disappeared (imported data).
	st.mu.Lock()
	st.noteByID(note.ID).BoardID = "ghost"
	st.mu.Unlock()

	st.RestoreNote(note.ID)

	restored, _ := st.Note(note.ID)
	assert.Equal(t, st.CurrentBoardID(), restored.BoardID)
}

func TestDeleteNotePermanentlyRequiresTrash(t *testing.T) {
	st, _ := newTestStore()

	note := st.AddNote(10, 10)
	st.DeleteNotePermanently(note.ID)
	_, ok := st.Note(note.ID)
	assert.True(t, ok, "live notes cannot be purged directly")

	st.DeleteNote(note.ID)
	st.DeleteNotePermanently(note.ID)
	_, ok = st.Note(note.ID)
	assert.False(t, ok)
}

func TestSelectionDropsDeletedNotes(t *testing.T) {
	st, _ := newTestStore()

	a := st.AddNote(10, 10)
	b := st.AddNote(20, 20)
	st.SelectMany([]string{a.ID, b.ID})
	assert.Equal(t, 2, st.SelectionCount())

	st.DeleteNote(a.ID)

	assert.Equal(t, 1, st.SelectionCount())
	assert.False(t, st.IsSelected(a.ID))
	assert.True(t, st.IsSelected(b.ID))
}

func TestDuplicateSelectedNotes(t *testing.T) {
	st, _ := newTestStore()

	a := st.AddNote(100, 100)
	st.SelectNote(a.ID)
	st.DuplicateSelectedNotes()

	notes := st.ActiveNotes()
	require.Len(t, notes, 2)

	clone := notes[1] // highest z
	assert.NotEqual(t, a.ID, clone.ID)
	assert.Equal(t, 120.0, clone.X)
	assert.Equal(t, 120.0, clone.Y)
	assert.True(t, st.IsSelected(clone.ID), "clones become the selection")
	assert.False(t, st.IsSelected(a.ID))
}

func TestBoardFloor(t *testing.T) {
	st, _ := newTestStore()

	require.Len(t, st.Boards(), 1)
	st.DeleteBoard(st.CurrentBoardID())
	assert.Len(t, st.Boards(), 1, "the last board cannot be deleted")
}

func TestDeleteBoardCascades(t *testing.T) {
	st, _ := newTestStore()
	home := st.CurrentBoardID()

	board := st.CreateBoard("Work", "💼")
	assert.Equal(t, board.ID, st.CurrentBoardID(), "creating switches")

	onWork := st.AddNote(10, 10)
	st.SwitchBoard(home)
	onHome := st.AddNote(20, 20)

	st.DeleteBoard(board.ID)

	_, ok := st.Note(onWork.ID)
	assert.False(t, ok, "cascade removes the board's notes")
	_, ok = st.Note(onHome.ID)
	assert.True(t, ok)
	assert.Equal(t, home, st.CurrentBoardID())
}

func TestDeleteActiveBoardFallsBack(t *testing.T) {
	st, _ := newTestStore()
	home := st.CurrentBoardID()

	board := st.CreateBoard("Work", "💼")
	st.DeleteBoard(board.ID)

	assert.Equal(t, home, st.CurrentBoardID())
}

func TestSwitchBoardRemembersViewport(t *testing.T) {
	st, _ := newTestStore()
	home := st.CurrentBoardID()

	st.SetViewportPosition(400, 300)
	board := st.CreateBoard("Work", "💼")

	vp := st.Viewport()
	assert.Equal(t, 0.0, vp.X, "fresh board starts at the origin")
	assert.Equal(t, 0.0, vp.Y)

	st.PanViewport(150, 75)
	st.SwitchBoard(home)

	vp = st.Viewport()
	assert.Equal(t, 400.0, vp.X, "outgoing pan position is remembered")
	assert.Equal(t, 300.0, vp.Y)

	st.SwitchBoard(board.ID)
	vp = st.Viewport()
	assert.Equal(t, 150.0, vp.X)
	assert.Equal(t, 75.0, vp.Y)
}

func TestSwitchBoardClearsSelection(t *testing.T) {
	st, _ := newTestStore()
	home := st.CurrentBoardID()

	note := st.AddNote(10, 10)
	st.SelectNote(note.ID)
	st.SetStickyID(note.ID)

	board := st.CreateBoard("Work", "💼")
	_ = board

	assert.Zero(t, st.SelectionCount())
	assert.Empty(t, st.StickyID())
	st.SwitchBoard(home)
	assert.Zero(t, st.SelectionCount())
}

func TestReorderBoard(t *testing.T) {
	st, _ := newTestStore()
	b2 := st.CreateBoard("Two", "2")
	b3 := st.CreateBoard("Three", "3")

	st.ReorderBoard(b3.ID, -1)
	boards := st.Boards()
	require.Len(t, boards, 3)
	assert.Equal(t, b3.ID, boards[1].ID)
	assert.Equal(t, b2.ID, boards[2].ID)

	// Boundary is a no-op.
	st.ReorderBoard(boards[0].ID, -1)
	assert.Equal(t, boards[0].ID, st.Boards()[0].ID)
}

func TestArrangeNotesGrid(t *testing.T) {
	st, _ := newTestStore()

	// Scattered notes; viewport is 800 wide, so two 320-unit columns
	// fit and the third wraps.
	a := st.AddNote(500, 30)
	b := st.AddNote(90, 10)
	c := st.AddNote(200, 400)

	st.ArrangeNotes(-1, -1)

	// Row bands: a and b round to the same band, ordered by X.
	nb, _ := st.Note(b.ID)
	na, _ := st.Note(a.ID)
	nc, _ := st.Note(c.ID)

	assert.Equal(t, 50.0, nb.X)
	assert.Equal(t, 50.0, nb.Y)
	assert.Equal(t, 390.0, na.X)
	assert.Equal(t, 50.0, na.Y)
	assert.Equal(t, 50.0, nc.X, "third note wraps to a new row")
	assert.Equal(t, 170.0, nc.Y)
}

func TestArrangeSelectionOnly(t *testing.T) {
	st, _ := newTestStore()

	a := st.AddNote(500, 500)
	b := st.AddNote(600, 600)
	st.SelectNote(a.ID)

	st.ArrangeNotes(0, 0)

	na, _ := st.Note(a.ID)
	nb, _ := st.Note(b.ID)
	assert.Equal(t, 0.0, na.X)
	assert.Equal(t, 0.0, na.Y)
	assert.Equal(t, 600.0, nb.X, "unselected notes stay put")
}

func TestViewportOriginWall(t *testing.T) {
	st, _ := newTestStore()

	st.PanViewport(-500, -500)
	vp := st.Viewport()
	assert.Equal(t, 0.0, vp.X)
	assert.Equal(t, 0.0, vp.Y)
}

func TestMoveNoteToBoardDeselects(t *testing.T) {
	st, _ := newTestStore()
	home := st.CurrentBoardID()
	board := st.CreateBoard("Work", "💼")
	st.SwitchBoard(home)

	note := st.AddNote(100, 100)
	st.SelectNote(note.ID)
	st.MoveNoteToBoard(note.ID, board.ID)

	moved, _ := st.Note(note.ID)
	assert.Equal(t, board.ID, moved.BoardID)
	assert.False(t, st.IsSelected(note.ID))
	assert.GreaterOrEqual(t, moved.X, 100.0, "jitter never moves backwards")
	assert.Less(t, moved.X, 120.0)
}

func TestMergeImportStacksOnTop(t *testing.T) {
	st, _ := newTestStore()
	existing := st.AddNote(10, 10)

	boards := []models.Board{{ID: "imp-board", Name: "Imported", Icon: "📦"}}
	notes := []models.Note{{ID: "imp-note", BoardID: "imp-board", X: 1, Y: 1, Z: 1}}
	st.MergeImport(boards, notes)

	assert.Len(t, st.Boards(), 2)
	imported, ok := st.Note("imp-note")
	require.True(t, ok)
	orig, _ := st.Note(existing.ID)
	assert.Greater(t, imported.Z, orig.Z)
}
