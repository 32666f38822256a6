package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sonotes/internal/geometry"
	"sonotes/internal/models"
	"sonotes/internal/store"
	"sonotes/internal/ui/keys"
	"sonotes/internal/ui/styles"
)

// World units per terminal cell. Terminal cells are roughly twice as
// tall as they are wide, so a cell covers 10x20 world units and note
// cards keep believable proportions.
const (
	CellW = 10.0
	CellH = 20.0
)

const (
	edgeThresholdCells = 3
	edgeDwell          = time.Second
	edgePanStep        = 30.0
	edgeTickEvery      = 80 * time.Millisecond

	doubleClickWindow = 300 * time.Millisecond
	cageMargin        = 40.0
)

// gesture is the pointer state machine. At most one gesture is active.
type gesture int

const (
	gestureIdle gesture = iota
	gestureDragNote
	gestureDragGroup
	gestureMarquee
	gesturePan
)

// OpenBoards asks the app to show the board dock.
type OpenBoards struct{}

// OpenTrash asks the app to show the trash.
type OpenTrash struct{}

// edgeTickMsg carries the generation of the tick loop that queued it.
// Ticks from an older loop are dropped so two loops never run at once.
type edgeTickMsg int

// CanvasView renders the world-space canvas and owns every pointer
// gesture: note drag, group drag, marquee selection, panning, sticky
// placement, and edge-push autoscroll.
type CanvasView struct {
	store  *store.Store
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	gesture    gesture
	dragID     string
	grabDX     float64
	grabDY     float64
	lastCellX  int
	lastCellY  int
	pressCellX int
	pressCellY int

	lastClick     time.Time
	lastClickX    int
	lastClickY    int
	lastPanKeyHit time.Time

	edgeCandidate store.EdgePush
	edgeSince     time.Time
	ticking       bool
	tickGen       int

	editing      bool
	editID       string
	editTitle    textinput.Model
	editContent  textarea.Model
	editFocusIdx int
}

// NewCanvasView creates the canvas over a store.
func NewCanvasView(st *store.Store) *CanvasView {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 120

	content := textarea.New()
	content.Placeholder = "Write something..."
	content.CharLimit = 5000
	content.SetWidth(50)
	content.SetHeight(8)
	content.ShowLineNumbers = false

	return &CanvasView{
		store:       st,
		styles:      styles.NewStyles(),
		keys:        keys.DefaultKeyMap(),
		editTitle:   title,
		editContent: content,
	}
}

// Init initializes the view
func (v *CanvasView) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (v *CanvasView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.store.SetViewportSize(float64(msg.Width)*CellW, float64(v.canvasRows())*CellH)
		inputWidth := clamp(msg.Width-10, 20, 60)
		v.editContent.SetWidth(inputWidth)
		return v, nil

	case tea.BlurMsg:
		// The pointer can be released outside the window; never leave a
		// gesture stuck.
		v.cancelGesture()
		return v, nil

	case edgeTickMsg:
		return v, v.handleEdgeTick(msg)

	case tea.MouseMsg:
		if v.editing {
			return v, nil
		}
		return v, v.handleMouse(msg)

	case tea.KeyMsg:
		if v.editing {
			return v.updateEditing(msg)
		}
		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *CanvasView) canvasRows() int {
	if v.height > 1 {
		return v.height - 1
	}
	return 1
}

func (v *CanvasView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.PanMode):
		now := time.Now()
		if now.Sub(v.lastPanKeyHit) < doubleClickWindow {
			// Double press resets the viewport and leaves pan mode.
			v.store.ResetViewport()
			v.store.SetPanMode(false)
			v.lastPanKeyHit = time.Time{}
			return v, nil
		}
		v.lastPanKeyHit = now
		v.store.SetPanMode(!v.store.PanMode())
		return v, nil

	case key.Matches(msg, v.keys.Up):
		v.store.PanViewport(0, -CellH)
		return v, nil
	case key.Matches(msg, v.keys.Down):
		v.store.PanViewport(0, CellH)
		return v, nil
	case key.Matches(msg, v.keys.Left):
		v.store.PanViewport(-CellW, 0)
		return v, nil
	case key.Matches(msg, v.keys.Right):
		v.store.PanViewport(CellW, 0)
		return v, nil

	case key.Matches(msg, v.keys.New):
		vp := v.store.Viewport()
		note := v.store.AddNote(vp.X+vp.W/2-models.DefaultNoteWidth/2, vp.Y+vp.H/2-models.DefaultNoteHeight/2)
		v.store.SelectNote(note.ID)
		return v, nil

	case key.Matches(msg, v.keys.Edit):
		if id := v.primarySelected(); id != "" {
			v.startEdit(id)
			return v, textarea.Blink
		}
		return v, nil

	case key.Matches(msg, v.keys.Delete):
		v.store.DeleteSelectedNotes()
		return v, nil

	case key.Matches(msg, v.keys.Color):
		v.cycleSelectedColor()
		return v, nil

	case key.Matches(msg, v.keys.Collapse):
		if id := v.primarySelected(); id != "" {
			v.store.ToggleCollapse(id)
		}
		return v, nil

	case key.Matches(msg, v.keys.Duplicate):
		v.store.DuplicateSelectedNotes()
		return v, nil

	case key.Matches(msg, v.keys.Arrange):
		v.store.ArrangeNotes(-1, -1)
		return v, nil

	case msg.String() == "T":
		// Toggle and persist the color scheme.
		mode := models.ThemeDark
		if styles.Current.Name == "Dark" {
			mode = models.ThemeLight
		}
		v.store.SetThemeMode(mode)
		styles.Apply(mode)
		v.styles = styles.NewStyles()
		return v, nil

	case key.Matches(msg, v.keys.Boards):
		return v, func() tea.Msg { return OpenBoards{} }

	case key.Matches(msg, v.keys.Trash):
		return v, func() tea.Msg { return OpenTrash{} }

	case key.Matches(msg, v.keys.Back):
		if v.store.StickyID() != "" {
			v.store.SetStickyID("")
			return v, nil
		}
		v.store.ClearSelection()
		return v, nil
	}

	return v, nil
}

func (v *CanvasView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.editing = false
		v.editID = ""
		return v, nil

	case key.Matches(msg, v.keys.Tab):
		v.editFocusIdx = (v.editFocusIdx + 1) % 2
		v.updateEditFocus()
		return v, nil
	}

	// Feed the focused field and push the edit through the store on
	// every keystroke; the scheduler's throttle keeps the cache tier
	// from being hammered.
	var cmd tea.Cmd
	if v.editFocusIdx == 0 {
		v.editTitle, cmd = v.editTitle.Update(msg)
		v.store.UpdateTitle(v.editID, v.editTitle.Value())
	} else {
		v.editContent, cmd = v.editContent.Update(msg)
		v.store.UpdateNote(v.editID, v.editContent.Value())
	}
	return v, cmd
}

func (v *CanvasView) startEdit(id string) {
	note, ok := v.store.Note(id)
	if !ok {
		return
	}
	v.editing = true
	v.editID = id
	v.editFocusIdx = 1
	v.editTitle.SetValue(note.Title)
	v.editContent.SetValue(note.Content)
	v.updateEditFocus()
}

func (v *CanvasView) updateEditFocus() {
	v.editTitle.Blur()
	v.editContent.Blur()
	if v.editFocusIdx == 0 {
		v.editTitle.Focus()
	} else {
		v.editContent.Focus()
	}
}

// primarySelected returns the top-most selected note id, or "".
func (v *CanvasView) primarySelected() string {
	notes := v.store.ActiveNotes()
	for i := len(notes) - 1; i >= 0; i-- {
		if v.store.IsSelected(notes[i].ID) {
			return notes[i].ID
		}
	}
	return ""
}

func (v *CanvasView) cycleSelectedColor() {
	id := v.primarySelected()
	if id == "" {
		return
	}
	note, ok := v.store.Note(id)
	if !ok {
		return
	}
	next := 0
	for i, c := range models.NoteColors {
		if c == note.Color {
			next = (i + 1) % len(models.NoteColors)
			break
		}
	}
	if v.store.SelectionCount() > 1 {
		v.store.ChangeSelectedNotesColor(models.NoteColors[next])
	} else {
		v.store.ChangeColor(id, models.NoteColors[next])
	}
}

// --- Mouse handling ---

func (v *CanvasView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return v.handleLeftPress(msg)
		case tea.MouseButtonRight:
			v.handleRightPress(msg)
		case tea.MouseButtonWheelUp:
			v.store.PanViewport(0, -3*CellH)
		case tea.MouseButtonWheelDown:
			v.store.PanViewport(0, 3*CellH)
		case tea.MouseButtonWheelLeft:
			v.store.PanViewport(-3*CellW, 0)
		case tea.MouseButtonWheelRight:
			v.store.PanViewport(3*CellW, 0)
		}
	case tea.MouseActionMotion:
		return v.handleMotion(msg)
	case tea.MouseActionRelease:
		v.handleRelease(msg)
	}
	return nil
}

func (v *CanvasView) handleLeftPress(msg tea.MouseMsg) tea.Cmd {
	if msg.Y >= v.canvasRows() {
		return nil
	}
	v.lastCellX, v.lastCellY = msg.X, msg.Y
	v.pressCellX, v.pressCellY = msg.X, msg.Y

	// A click on the minimap jumps the viewport there.
	if wx, wy, ok := v.miniMapHit(msg.X, msg.Y); ok {
		v.store.CenterViewportOn(wx, wy)
		return nil
	}

	// A sticky note follows the pointer unheld; any click commits it.
	if sticky := v.store.StickyID(); sticky != "" {
		v.commitDrop(sticky)
		v.store.SetStickyID("")
		return nil
	}

	isDouble := time.Since(v.lastClick) < doubleClickWindow &&
		msg.X == v.lastClickX && msg.Y == v.lastClickY
	v.lastClick = time.Now()
	v.lastClickX, v.lastClickY = msg.X, msg.Y

	wx, wy := v.cellToWorld(msg.X, msg.Y)
	hit := v.hitTest(wx, wy)

	if hit == nil {
		if isDouble {
			// Double click on empty canvas creates a note there.
			note := v.store.AddNote(wx, wy)
			v.store.SelectNote(note.ID)
			return nil
		}
		if v.store.PanMode() {
			v.gesture = gesturePan
			return nil
		}
		v.store.ClearSelection()
		v.gesture = gestureMarquee
		return nil
	}

	if isDouble && v.onHandleRow(hit, msg.Y) {
		v.store.ToggleCollapse(hit.ID)
		return nil
	}

	v.store.BringToFront(hit.ID)
	if msg.Shift {
		v.store.ToggleSelect(hit.ID)
	} else if !v.store.IsSelected(hit.ID) {
		v.store.SelectNote(hit.ID)
	}

	v.dragID = hit.ID
	v.grabDX = wx - hit.X
	v.grabDY = wy - hit.Y
	if v.store.SelectionCount() > 1 && v.store.IsSelected(hit.ID) {
		v.gesture = gestureDragGroup
	} else {
		v.gesture = gestureDragNote
	}
	v.store.SetDragging(true)
	return v.ensureEdgeTick()
}

func (v *CanvasView) handleRightPress(msg tea.MouseMsg) {
	if sticky := v.store.StickyID(); sticky != "" {
		v.commitDrop(sticky)
		v.store.SetStickyID("")
		return
	}
	wx, wy := v.cellToWorld(msg.X, msg.Y)
	if hit := v.hitTest(wx, wy); hit != nil {
		// Secondary click picks the note up in click-to-place mode.
		v.store.BringToFront(hit.ID)
		v.store.SelectNote(hit.ID)
		v.store.SetStickyID(hit.ID)
		v.grabDX = wx - hit.X
		v.grabDY = wy - hit.Y
	}
}

func (v *CanvasView) handleMotion(msg tea.MouseMsg) tea.Cmd {
	dxCells := msg.X - v.lastCellX
	dyCells := msg.Y - v.lastCellY
	v.lastCellX, v.lastCellY = msg.X, msg.Y

	if sticky := v.store.StickyID(); sticky != "" {
		wx, wy := v.cellToWorld(msg.X, msg.Y)
		x, y := geometry.ClampOrigin(wx-v.grabDX, wy-v.grabDY)
		v.store.MoveNote(sticky, x, y)
		return nil
	}

	switch v.gesture {
	case gestureDragNote, gestureDragGroup:
		wx, wy := v.cellToWorld(msg.X, msg.Y)
		note, ok := v.store.Note(v.dragID)
		if !ok {
			v.cancelGesture()
			return nil
		}
		x, y := geometry.ClampOrigin(wx-v.grabDX, wy-v.grabDY)
		v.store.MoveNote(v.dragID, x, y)
		if v.gesture == gestureDragGroup {
			v.store.MoveSelectedNotes(x-note.X, y-note.Y, v.dragID)
		}
		v.trackEdges(msg.X, msg.Y)
		return v.ensureEdgeTick()

	case gesturePan:
		// Grab-and-drag: content follows the pointer, viewport moves the
		// other way.
		v.store.PanViewport(-float64(dxCells)*CellW, -float64(dyCells)*CellH)

	case gestureMarquee:
		// Tracked corner lives in lastCellX/lastCellY; nothing to do
		// beyond redraw.
	}
	return nil
}

func (v *CanvasView) handleRelease(msg tea.MouseMsg) {
	switch v.gesture {
	case gestureDragNote:
		v.commitDrop(v.dragID)
	case gestureDragGroup:
		v.commitDrop(v.dragID)
		for _, id := range v.store.SelectedIDs() {
			if id != v.dragID {
				v.commitDrop(id)
			}
		}
	case gestureMarquee:
		v.commitMarquee(msg.X, msg.Y)
	}
	v.cancelGesture()
}

// commitDrop applies the drop-time boundary clamps to a note: the hard
// origin wall always, and the soft viewport cage unless pan mode lets
// notes be parked off-screen deliberately.
func (v *CanvasView) commitDrop(id string) {
	note, ok := v.store.Note(id)
	if !ok {
		return
	}
	x, y := note.X, note.Y
	if !v.store.PanMode() {
		vp := v.store.Viewport()
		view := geometry.Rect{X: vp.X, Y: vp.Y, W: vp.W, H: vp.H}
		x, y = geometry.ClampToCage(x, y, view, cageMargin)
	} else {
		x, y = geometry.ClampOrigin(x, y)
	}
	if x != note.X || y != note.Y {
		v.store.MoveNote(id, x, y)
	}
}

func (v *CanvasView) commitMarquee(cellX, cellY int) {
	x1, y1 := v.cellToWorld(v.pressCellX, v.pressCellY)
	x2, y2 := v.cellToWorld(cellX, cellY)
	marquee := geometry.Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}.Normalized()

	var ids []string
	for _, n := range v.store.ActiveNotes() {
		rect := geometry.Rect{X: n.X, Y: n.Y, W: n.EffectiveWidth(), H: n.EffectiveHeight()}
		if marquee.Intersects(rect) {
			ids = append(ids, n.ID)
		}
	}
	if len(ids) > 0 {
		v.store.SelectMany(ids)
	}
}

func (v *CanvasView) cancelGesture() {
	v.gesture = gestureIdle
	v.dragID = ""
	v.edgeCandidate = store.EdgePush{}
	// A tick still queued from this gesture carries the old generation
	// and is dropped; a future drag starts a fresh loop.
	v.ticking = false
	v.store.SetDragging(false)
	v.store.SetEdgePush(store.EdgePush{})
}

// --- Edge push ---

// trackEdges recomputes the edge-proximity candidate during a drag.
// Flags only activate after the dwell delay, handled by the tick loop.
func (v *CanvasView) trackEdges(cellX, cellY int) {
	if v.store.PanMode() {
		return
	}
	vp := v.store.Viewport()
	candidate := store.EdgePush{
		Left:   cellX < edgeThresholdCells && vp.X > 0,
		Top:    cellY < edgeThresholdCells && vp.Y > 0,
		Right:  cellX > v.width-1-edgeThresholdCells,
		Bottom: cellY > v.canvasRows()-1-edgeThresholdCells,
	}
	if candidate != v.edgeCandidate {
		v.edgeCandidate = candidate
		v.edgeSince = time.Now()
		v.store.SetEdgePush(store.EdgePush{})
	}
}

func (v *CanvasView) ensureEdgeTick() tea.Cmd {
	if v.ticking {
		return nil
	}
	v.ticking = true
	v.tickGen++
	return v.edgeTickCmd()
}

func (v *CanvasView) edgeTickCmd() tea.Cmd {
	gen := v.tickGen
	return tea.Tick(edgeTickEvery, func(time.Time) tea.Msg { return edgeTickMsg(gen) })
}

func (v *CanvasView) handleEdgeTick(msg edgeTickMsg) tea.Cmd {
	if int(msg) != v.tickGen {
		return nil
	}
	if v.gesture != gestureDragNote && v.gesture != gestureDragGroup {
		v.ticking = false
		return nil
	}
	if v.edgeCandidate.Any() && time.Since(v.edgeSince) >= edgeDwell {
		v.store.SetEdgePush(v.edgeCandidate)
		var dx, dy float64
		if v.edgeCandidate.Left {
			dx = -edgePanStep
		}
		if v.edgeCandidate.Right {
			dx = edgePanStep
		}
		if v.edgeCandidate.Top {
			dy = -edgePanStep
		}
		if v.edgeCandidate.Bottom {
			dy = edgePanStep
		}

		before := v.store.Viewport()
		v.store.PanViewport(dx, dy)
		after := v.store.Viewport()
		// Use the applied delta: the origin wall may have absorbed part
		// of the pan.
		adx, ady := after.X-before.X, after.Y-before.Y
		if adx != 0 || ady != 0 {
			if note, ok := v.store.Note(v.dragID); ok {
				x, y := geometry.ClampOrigin(note.X+adx, note.Y+ady)
				v.store.MoveNote(v.dragID, x, y)
			}
			if v.gesture == gestureDragGroup {
				v.store.MoveSelectedNotes(adx, ady, v.dragID)
			}
		}
	}
	return v.edgeTickCmd()
}

// --- Coordinate helpers ---

func (v *CanvasView) cellToWorld(cx, cy int) (float64, float64) {
	vp := v.store.Viewport()
	return vp.X + float64(cx)*CellW, vp.Y + float64(cy)*CellH
}

// hitTest returns the top-most active note containing the world point.
func (v *CanvasView) hitTest(wx, wy float64) *models.Note {
	notes := v.store.ActiveNotes()
	for i := len(notes) - 1; i >= 0; i-- {
		n := notes[i]
		h := n.EffectiveHeight()
		if n.Collapsed {
			h = 2 * CellH
		}
		if wx >= n.X && wx < n.X+n.EffectiveWidth() && wy >= n.Y && wy < n.Y+h {
			return &notes[i]
		}
	}
	return nil
}

// onHandleRow reports whether the cell row is the note's top (drag
// handle) row.
func (v *CanvasView) onHandleRow(n *models.Note, cellY int) bool {
	vp := v.store.Viewport()
	topRow := int((n.Y - vp.Y) / CellH)
	return cellY == topRow
}

// --- Rendering ---

// View renders the view
func (v *CanvasView) View() string {
	if v.width == 0 || v.height == 0 {
		return ""
	}
	if v.editing {
		return v.renderEditForm()
	}

	buf := newBuffer(v.width, v.canvasRows(), ' ', &v.styles.Canvas)
	v.paintGrid(buf)
	notes := v.store.ActiveNotes()
	if len(notes) == 0 {
		hint := "double-click or press n to add a note"
		buf.text((v.width-len(hint))/2, v.canvasRows()/2, hint, &v.styles.TitleMuted)
	}
	for _, n := range notes {
		v.paintNote(buf, n)
	}
	if v.gesture == gestureMarquee {
		v.paintMarquee(buf)
	}
	if v.miniMapVisible() {
		v.paintMiniMap(buf)
	}

	return buf.render() + "\n" + v.renderStatusBar()
}

func (v *CanvasView) paintGrid(buf *buffer) {
	vp := v.store.Viewport()
	offX := int(vp.X/CellW) % 4
	offY := int(vp.Y/CellH) % 2
	for y := 0; y < buf.h; y++ {
		for x := 0; x < buf.w; x++ {
			if (x+offX)%4 == 0 && (y+offY)%2 == 0 {
				buf.set(x, y, '·', &v.styles.CanvasGrid)
			}
		}
	}
}

func (v *CanvasView) paintNote(buf *buffer, n models.Note) {
	vp := v.store.Viewport()
	col := int((n.X - vp.X) / CellW)
	row := int((n.Y - vp.Y) / CellH)
	w := int(n.EffectiveWidth() / CellW)
	h := int(n.EffectiveHeight() / CellH)
	if n.Collapsed {
		h = 2
	}
	if col+w < 0 || row+h < 0 || col >= buf.w || row >= buf.h {
		return
	}

	card := v.styles.NoteCard(n.Color)
	dim := v.styles.NoteCardDim(n.Color)
	buf.fill(col, row, w, h, ' ', &card)

	// Handle row: title, or a grip glyph when untitled.
	label := n.Title
	if label == "" {
		label = "≡"
	}
	if len([]rune(label)) > w-2 {
		label = string([]rune(label)[:w-2])
	}
	buf.text(col+1, row, label, &dim)

	if !n.Collapsed {
		lines := wrapContent(n.Content, w-2, h-1)
		for i, line := range lines {
			buf.text(col+1, row+1+i, line, &card)
		}
	}

	if v.store.IsSelected(n.ID) {
		sel := lipgloss.NewStyle().
			Background(lipgloss.Color(n.Color)).
			Foreground(styles.Current.BorderFocus).
			Bold(true)
		for y := row; y < row+h; y++ {
			buf.set(col, y, '▎', &sel)
		}
	}
	if v.store.StickyID() == n.ID {
		buf.text(col+w-2, row, "✚", &dim)
	}
}

func (v *CanvasView) paintMarquee(buf *buffer) {
	x1, y1 := v.pressCellX, v.pressCellY
	x2, y2 := v.lastCellX, v.lastCellY
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	for x := x1; x <= x2; x++ {
		buf.set(x, y1, '┄', &v.styles.Marquee)
		buf.set(x, y2, '┄', &v.styles.Marquee)
	}
	for y := y1; y <= y2; y++ {
		buf.set(x1, y, '┆', &v.styles.Marquee)
		buf.set(x2, y, '┆', &v.styles.Marquee)
	}
}

func (v *CanvasView) renderStatusBar() string {
	s := v.styles
	board := v.store.CurrentBoard()
	vp := v.store.Viewport()

	left := fmt.Sprintf("%s %s", board.Icon, board.Name)
	if count := v.store.SelectionCount(); count > 0 {
		left += s.TitleMuted.Render(fmt.Sprintf("  %d selected", count))
	}
	if v.store.PanMode() {
		left += "  " + s.StatusKey.Render("PAN")
	}
	if v.store.StickyID() != "" {
		left += "  " + s.StatusKey.Render("PLACE")
	}

	coords := s.TitleMuted.Render(fmt.Sprintf("%.0f, %.0f", vp.X, vp.Y))
	hints := s.TitleMuted.Render("n new • e edit • b boards • t trash • a arrange • space pan • q quit")

	gap := v.width - lipgloss.Width(left) - lipgloss.Width(coords) - lipgloss.Width(hints) - 4
	if gap < 1 {
		return s.StatusBar.Render(left + "  " + coords)
	}
	return s.StatusBar.Render(left + strings.Repeat(" ", gap) + hints + "  " + coords)
}

func (v *CanvasView) renderEditForm() string {
	s := v.styles

	titleStyle := s.Input
	contentStyle := s.Input
	if v.editFocusIdx == 0 {
		titleStyle = s.InputFocused
	} else {
		contentStyle = s.InputFocused
	}

	inputWidth := clamp(v.width-10, 20, 60)

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Edit Note"),
		"",
		"Title:",
		titleStyle.Width(inputWidth).Render(v.editTitle.View()),
		"",
		"Content:",
		contentStyle.Render(v.editContent.View()),
		"",
		s.TitleMuted.Render("Tab: switch field • Esc: done"),
	)

	return lipgloss.Place(v.width, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
}

// wrapContent breaks content into at most maxLines lines of width runes.
func wrapContent(content string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return nil
	}
	var lines []string
	for _, raw := range strings.Split(content, "\n") {
		runes := []rune(raw)
		for {
			if len(lines) >= maxLines {
				return lines
			}
			if len(runes) <= width {
				lines = append(lines, string(runes))
				break
			}
			lines = append(lines, string(runes[:width]))
			runes = runes[width:]
		}
	}
	return lines
}

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
