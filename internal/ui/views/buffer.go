package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// buffer is a simple cell grid the canvas composites into. Each cell
// carries one rune and a style; rows are rendered as runs of equal
// style to keep the escape-sequence volume down.
type buffer struct {
	w, h   int
	runes  []rune
	styles []*lipgloss.Style
}

func newBuffer(w, h int, fill rune, style *lipgloss.Style) *buffer {
	b := &buffer{
		w:      w,
		h:      h,
		runes:  make([]rune, w*h),
		styles: make([]*lipgloss.Style, w*h),
	}
	for i := range b.runes {
		b.runes[i] = fill
		b.styles[i] = style
	}
	return b
}

// set paints a single cell. Out-of-bounds writes are dropped.
func (b *buffer) set(x, y int, r rune, style *lipgloss.Style) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	i := y*b.w + x
	b.runes[i] = r
	b.styles[i] = style
}

// fill paints a rectangle of cells with one rune and style.
func (b *buffer) fill(x, y, w, h int, r rune, style *lipgloss.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.set(col, row, r, style)
		}
	}
}

// text writes a string left to right starting at x,y, clipped to the
// buffer. Wide runes are not handled specially; note content is
// truncated by column count.
func (b *buffer) text(x, y int, s string, style *lipgloss.Style) {
	for i, r := range []rune(s) {
		b.set(x+i, y, r, style)
	}
}

// render flattens the grid into a frame string.
func (b *buffer) render() string {
	var out strings.Builder
	for row := 0; row < b.h; row++ {
		if row > 0 {
			out.WriteByte('\n')
		}
		start := row * b.w
		runStart := 0
		runStyle := b.styles[start]
		for col := 1; col <= b.w; col++ {
			var style *lipgloss.Style
			if col < b.w {
				style = b.styles[start+col]
			}
			if col == b.w || style != runStyle {
				segment := string(b.runes[start+runStart : start+col])
				if runStyle != nil {
					out.WriteString(runStyle.Render(segment))
				} else {
					out.WriteString(segment)
				}
				runStart = col
				runStyle = style
			}
		}
	}
	return out.String()
}
