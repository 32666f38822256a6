package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sonotes/internal/models"
	"sonotes/internal/store"
)

type nopPersister struct{}

func (nopPersister) CacheWrite(models.StorageData)    {}
func (nopPersister) ScheduleFlush(models.StorageData) {}
func (nopPersister) FlushNow(models.StorageData)      {}

func newTestCanvas(t *testing.T) *CanvasView {
	t.Helper()
	st := store.New(models.EmptyStorage(), nopPersister{}, zap.NewNop())
	st.SetViewportSize(800, 600)
	return NewCanvasView(st)
}

func TestEdgeTickSingleLoopAcrossGestures(t *testing.T) {
	v := newTestCanvas(t)

	v.gesture = gestureDragNote
	cmd := v.ensureEdgeTick()
	require.NotNil(t, cmd)
	staleGen := v.tickGen

	// The gesture ends while one tick is still queued.
	v.cancelGesture()
	assert.False(t, v.ticking)

	// A new drag starts its own loop before the stale tick arrives.
	v.gesture = gestureDragNote
	cmd = v.ensureEdgeTick()
	require.NotNil(t, cmd)

	// The stale tick must die without re-arming a second loop.
	assert.Nil(t, v.handleEdgeTick(edgeTickMsg(staleGen)))

	// The current loop keeps ticking.
	assert.NotNil(t, v.handleEdgeTick(edgeTickMsg(v.tickGen)))
}

func TestEdgeTickStopsWhenGestureEnds(t *testing.T) {
	v := newTestCanvas(t)

	v.gesture = gestureDragNote
	require.NotNil(t, v.ensureEdgeTick())
	assert.Nil(t, v.ensureEdgeTick(), "one loop at a time")

	v.gesture = gestureIdle
	assert.Nil(t, v.handleEdgeTick(edgeTickMsg(v.tickGen)))
	assert.False(t, v.ticking)
}
