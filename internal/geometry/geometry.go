package geometry

// Rect is an axis-aligned rectangle. X,Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether two rectangles overlap. Touching edges
// count as intersecting (strict-inequality rejection).
func (r Rect) Intersects(o Rect) bool {
	if r.X > o.X+o.W || o.X > r.X+r.W {
		return false
	}
	if r.Y > o.Y+o.H || o.Y > r.Y+r.H {
		return false
	}
	return true
}

// Normalized returns the rect with non-negative width and height,
// flipping corners as needed. Marquee rectangles are tracked from press
// point to cursor and may be inverted.
func (r Rect) Normalized() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// ClampOrigin clamps a point to the world's hard top-left wall at (0,0).
func ClampOrigin(x, y float64) (float64, float64) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// ClampToCage clamps a card's top-left corner so at least margin units
// of it stay inside the visible viewport. The origin wall still applies
// on top of this.
func ClampToCage(x, y float64, view Rect, margin float64) (float64, float64) {
	maxX := view.X + view.W - margin
	maxY := view.Y + view.H - margin
	if x > maxX {
		x = maxX
	}
	if y > maxY {
		y = maxY
	}
	minX := view.X - margin
	minY := view.Y - margin
	if x < minX {
		x = minX
	}
	if y < minY {
		y = minY
	}
	return ClampOrigin(x, y)
}

// MiniMapScale derives the uniform scale factor that fits a padded
// world box inside a fixed-size minimap widget.
func MiniMapScale(worldW, worldH, mapW, mapH float64) float64 {
	if worldW <= 0 || worldH <= 0 {
		return 0
	}
	sx := mapW / worldW
	sy := mapH / worldH
	if sx < sy {
		return sx
	}
	return sy
}
