package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 100, H: 100}

	assert.True(t, a.Intersects(Rect{X: 50, Y: 50, W: 100, H: 100}))
	assert.True(t, a.Intersects(Rect{X: -50, Y: -50, W: 200, H: 200}), "containment counts")
	assert.False(t, a.Intersects(Rect{X: 200, Y: 0, W: 50, H: 50}))
	assert.False(t, a.Intersects(Rect{X: 0, Y: 300, W: 50, H: 50}))

	// Rectangles sharing only an edge still intersect.
	assert.True(t, a.Intersects(Rect{X: 100, Y: 0, W: 50, H: 50}))
	assert.True(t, a.Intersects(Rect{X: 0, Y: 100, W: 50, H: 50}))
}

func TestNormalized(t *testing.T) {
	r := Rect{X: 100, Y: 80, W: -60, H: -30}.Normalized()
	assert.Equal(t, Rect{X: 40, Y: 50, W: 60, H: 30}, r)

	same := Rect{X: 10, Y: 10, W: 5, H: 5}
	assert.Equal(t, same, same.Normalized())
}

func TestClampOrigin(t *testing.T) {
	x, y := ClampOrigin(-25, -3)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)

	x, y = ClampOrigin(120, 0)
	assert.Equal(t, 120.0, x)
	assert.Equal(t, 0.0, y)
}

func TestClampToCage(t *testing.T) {
	view := Rect{X: 100, Y: 100, W: 800, H: 600}

	// Inside stays put.
	x, y := ClampToCage(300, 300, view, 40)
	assert.Equal(t, 300.0, x)
	assert.Equal(t, 300.0, y)

	// Dropped past the right edge gets pulled back so a margin remains
	// visible.
	x, _ = ClampToCage(2000, 300, view, 40)
	assert.Equal(t, view.X+view.W-40, x)

	// Dropped before the left edge gets pulled forward.
	x, _ = ClampToCage(-500, 300, view, 40)
	assert.Equal(t, view.X-40, x)

	_, y = ClampToCage(300, 5000, view, 40)
	assert.Equal(t, view.Y+view.H-40, y)

	// The origin wall wins over the cage.
	x, y = ClampToCage(-500, -500, Rect{X: -200, Y: -200, W: 100, H: 100}, 40)
	assert.GreaterOrEqual(t, x, 0.0)
	assert.GreaterOrEqual(t, y, 0.0)
}

func TestMiniMapScale(t *testing.T) {
	// Wide world: width dominates.
	s := MiniMapScale(4800, 1600, 240, 160)
	assert.InDelta(t, 0.05, s, 1e-9)

	// Tall world: height dominates.
	s = MiniMapScale(1000, 3200, 240, 160)
	assert.InDelta(t, 0.05, s, 1e-9)
}
