package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sonotes/internal/host"
	"sonotes/internal/models"
)

func TestRehydrateFreshStart(t *testing.T) {
	cache, disk := newTestTiers(t)
	sched := NewScheduler(cache, disk, zap.NewNop())

	data := Rehydrate(cache, disk, sched, zap.NewNop())

	require.Len(t, data.Boards, 1)
	assert.Equal(t, models.DefaultBoardID, data.CurrentBoardID)
	assert.Empty(t, data.Notes)
	assert.Equal(t, 1, data.Config.Version)
}

func TestRehydratePrefersFresherDisk(t *testing.T) {
	cache, disk := newTestTiers(t)
	sched := NewScheduler(cache, disk, zap.NewNop())

	require.NoError(t, cache.Save(snapshotWith("stale cache", 1000)))
	require.NoError(t, disk.Save(snapshotWith("fresh disk", 2000)))

	data := Rehydrate(cache, disk, sched, zap.NewNop())

	require.Len(t, data.Notes, 1)
	assert.Equal(t, "fresh disk", data.Notes[0].Content)

	// The losing tier is overwritten so the next crash recovers the
	// same state.
	cached, ok, err := cache.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "fresh disk", cached.Notes[0].Content)
}

func TestRehydratePrefersFresherCache(t *testing.T) {
	cache, disk := newTestTiers(t)
	sched := NewScheduler(cache, disk, zap.NewNop())
	sched.SetIntervals(0, 20*time.Millisecond)

	require.NoError(t, disk.Save(snapshotWith("stale disk", 1000)))
	require.NoError(t, cache.Save(snapshotWith("fresh cache", 2000)))

	data := Rehydrate(cache, disk, sched, zap.NewNop())

	require.Len(t, data.Notes, 1)
	assert.Equal(t, "fresh cache", data.Notes[0].Content)

	// The disk tier catches up through a scheduled flush.
	require.Eventually(t, func() bool {
		d, ok := disk.Load()
		return ok && d.Notes[0].Content == "fresh cache"
	}, time.Second, 5*time.Millisecond)
}

func TestRehydrateDiskOnlyWhenCacheEmpty(t *testing.T) {
	cache, disk := newTestTiers(t)
	sched := NewScheduler(cache, disk, zap.NewNop())

	require.NoError(t, disk.Save(snapshotWith("disk only", 1000)))

	data := Rehydrate(cache, disk, sched, zap.NewNop())

	require.Len(t, data.Notes, 1)
	assert.Equal(t, "disk only", data.Notes[0].Content)

	cached, ok, err := cache.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "disk only", cached.Notes[0].Content)
}

func TestDiskLoadRejectsMalformedSnapshot(t *testing.T) {
	dir := t.TempDir()
	h, err := host.New(dir)
	require.NoError(t, err)
	disk := NewDisk(h)

	require.NoError(t, h.SaveContent(DataFileName, "{not json"))
	_, ok := disk.Load()
	assert.False(t, ok)

	// Well-formed JSON without a notes array is also rejected.
	require.NoError(t, h.SaveContent(DataFileName, `{"notes": "oops"}`))
	_, ok = disk.Load()
	assert.False(t, ok)
}

func TestMigrateNormalizesZOrder(t *testing.T) {
	data := models.EmptyStorage()
	data.Notes = []models.Note{
		{ID: "a", Z: 40, BoardID: models.DefaultBoardID, Color: "#FFFFFF", UpdatedAt: 1},
		{ID: "b", Z: 7, BoardID: models.DefaultBoardID, Color: "#FFFFFF", UpdatedAt: 1},
		{ID: "c", Z: 19, BoardID: models.DefaultBoardID, Color: "#FFFFFF", UpdatedAt: 1},
	}

	Migrate(&data)

	// Relative order kept, values compacted to 1..n.
	require.Len(t, data.Notes, 3)
	assert.Equal(t, "b", data.Notes[0].ID)
	assert.Equal(t, 1, data.Notes[0].Z)
	assert.Equal(t, "c", data.Notes[1].ID)
	assert.Equal(t, 2, data.Notes[1].Z)
	assert.Equal(t, "a", data.Notes[2].ID)
	assert.Equal(t, 3, data.Notes[2].Z)
	assert.GreaterOrEqual(t, data.Config.MaxZ, 3)
}

func TestMigrateRescuesLostNotes(t *testing.T) {
	data := models.EmptyStorage()
	data.Notes = []models.Note{
		{ID: "a", X: -500, Y: 10, Z: 1, BoardID: models.DefaultBoardID, Color: "#FFFFFF", UpdatedAt: 1},
		{ID: "b", X: 10, Y: -9999, Z: 2, BoardID: models.DefaultBoardID, Color: "#FFFFFF", UpdatedAt: 1},
	}

	Migrate(&data)

	// Rescued notes cascade near the corner instead of stacking.
	assert.Equal(t, 20.0, data.Notes[0].X)
	assert.Equal(t, 20.0, data.Notes[0].Y)
	assert.Equal(t, 30.0, data.Notes[1].X)
	assert.Equal(t, 30.0, data.Notes[1].Y)
}

func TestMigrateDefaultsMissingFields(t *testing.T) {
	data := models.StorageData{
		Notes: []models.Note{
			{ID: "a", Z: 1, BoardID: "gone", CreatedAt: 123},
		},
		CurrentBoardID: "also-gone",
	}

	Migrate(&data)

	require.Len(t, data.Boards, 1, "a board floor is enforced")
	assert.Equal(t, data.Boards[0].ID, data.CurrentBoardID)

	n := data.Notes[0]
	assert.Equal(t, data.CurrentBoardID, n.BoardID, "orphaned notes land on the current board")
	assert.Equal(t, models.NoteColors[0], n.Color)
	assert.Equal(t, int64(123), n.UpdatedAt, "updatedAt falls back to createdAt")
	assert.Equal(t, models.ThemeSystem, data.Config.ThemeMode)
	assert.Equal(t, 1, data.Config.Version)
}
