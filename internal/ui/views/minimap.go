package views

import (
	"sonotes/internal/geometry"
)

// The minimap is laid out on a 240x160 virtual pixel surface, then
// projected onto terminal cells with the same 10x20 cell metric as the
// canvas itself.
const (
	miniMapPxW = 240.0
	miniMapPxH = 160.0
	miniMapPad = 1000.0

	// Floor of the projected world box, so a near-empty board still
	// shows a sensibly small viewport rectangle.
	miniMapWorldMinW = 4000.0
	miniMapWorldMinH = 3000.0

	miniMapCols = int(miniMapPxW / CellW)
	miniMapRows = int(miniMapPxH / CellH)
)

// miniMapLayout is the widget's placement for the current frame: the
// frame's top-left cell, inner content size, and the world-to-map
// scale.
type miniMapLayout struct {
	left, top  int
	cols, rows int
	scale      float64
}

func (v *CanvasView) miniMapVisible() bool {
	return v.store.PanMode() || v.store.EdgePushState().Any()
}

func (v *CanvasView) miniMapLayout() (miniMapLayout, bool) {
	l := miniMapLayout{
		cols: miniMapCols,
		rows: miniMapRows,
		left: v.width - miniMapCols - 3,
		top:  v.canvasRows() - miniMapRows - 3,
	}
	if l.left < 0 || l.top < 0 {
		return l, false
	}

	worldW, worldH := v.store.CanvasBounds()
	vp := v.store.Viewport()
	worldW = max(max(worldW, vp.X+vp.W)+miniMapPad, miniMapWorldMinW)
	worldH = max(max(worldH, vp.Y+vp.H)+miniMapPad, miniMapWorldMinH)
	l.scale = geometry.MiniMapScale(worldW, worldH, miniMapPxW, miniMapPxH)
	return l, l.scale > 0
}

func (l miniMapLayout) toCell(wx, wy float64) (int, int) {
	return int(wx * l.scale / CellW), int(wy * l.scale / CellH)
}

// miniMapHit maps a terminal cell inside the visible minimap back to
// world coordinates. ok is false when the minimap is hidden or the cell
// falls outside it.
func (v *CanvasView) miniMapHit(cellX, cellY int) (wx, wy float64, ok bool) {
	if !v.miniMapVisible() {
		return 0, 0, false
	}
	l, ok := v.miniMapLayout()
	if !ok {
		return 0, 0, false
	}
	mx := cellX - l.left - 1
	my := cellY - l.top - 1
	if mx < 0 || my < 0 || mx >= l.cols || my >= l.rows {
		return 0, 0, false
	}
	return float64(mx) * CellW / l.scale, float64(my) * CellH / l.scale, true
}

// paintMiniMap overlays the world overview in the bottom-right corner.
// Shown only while panning or edge-pushing, when the user has lost
// sight of where the viewport sits in the world.
func (v *CanvasView) paintMiniMap(buf *buffer) {
	l, ok := v.miniMapLayout()
	if !ok {
		return
	}

	// Frame and backdrop.
	frame := &v.styles.MiniMap
	buf.fill(l.left, l.top, l.cols+2, l.rows+2, ' ', frame)
	for x := l.left; x < l.left+l.cols+2; x++ {
		buf.set(x, l.top, '─', frame)
		buf.set(x, l.top+l.rows+1, '─', frame)
	}
	for y := l.top; y < l.top+l.rows+2; y++ {
		buf.set(l.left, y, '│', frame)
		buf.set(l.left+l.cols+1, y, '│', frame)
	}
	buf.set(l.left, l.top, '╭', frame)
	buf.set(l.left+l.cols+1, l.top, '╮', frame)
	buf.set(l.left, l.top+l.rows+1, '╰', frame)
	buf.set(l.left+l.cols+1, l.top+l.rows+1, '╯', frame)

	inLeft, inTop := l.left+1, l.top+1

	for _, n := range v.store.ActiveNotes() {
		cx, cy := l.toCell(n.X+n.EffectiveWidth()/2, n.Y+n.EffectiveHeight()/2)
		if cx >= 0 && cx < l.cols && cy >= 0 && cy < l.rows {
			buf.set(inLeft+cx, inTop+cy, '▪', &v.styles.MiniMapNote)
		}
	}

	// Viewport rectangle on top of the notes.
	vp := v.store.Viewport()
	x1, y1 := l.toCell(vp.X, vp.Y)
	x2, y2 := l.toCell(vp.X+vp.W, vp.Y+vp.H)
	x1 = clamp(x1, 0, l.cols-1)
	y1 = clamp(y1, 0, l.rows-1)
	x2 = clamp(x2, 0, l.cols-1)
	y2 = clamp(y2, 0, l.rows-1)
	for x := x1; x <= x2; x++ {
		buf.set(inLeft+x, inTop+y1, '▭', &v.styles.MiniMapViewport)
		buf.set(inLeft+x, inTop+y2, '▭', &v.styles.MiniMapViewport)
	}
	for y := y1; y <= y2; y++ {
		buf.set(inLeft+x1, inTop+y, '▯', &v.styles.MiniMapViewport)
		buf.set(inLeft+x2, inTop+y, '▯', &v.styles.MiniMapViewport)
	}
}
