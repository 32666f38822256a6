package storage

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sonotes/internal/host"
	"sonotes/internal/models"
)

func newTestTiers(t *testing.T) (*Cache, *Disk) {
	t.Helper()
	dir := t.TempDir()
	h, err := host.New(dir)
	require.NoError(t, err)
	cache, err := OpenCache(filepath.Join(dir, CacheFileName))
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache, NewDisk(h)
}

func snapshotWith(content string, updated int64) models.StorageData {
	data := models.EmptyStorage()
	data.Notes = []models.Note{{
		ID:        "n1",
		Content:   content,
		BoardID:   models.DefaultBoardID,
		Color:     models.NoteColors[0],
		Z:         1,
		UpdatedAt: updated,
	}}
	return data
}

func TestCacheWriteThrottleDropsBursts(t *testing.T) {
	cache, disk := newTestTiers(t)
	sched := NewScheduler(cache, disk, zap.NewNop())
	sched.SetIntervals(60*time.Millisecond, time.Hour)

	sched.CacheWrite(snapshotWith("first", 1))
	sched.CacheWrite(snapshotWith("dropped", 2))

	require.Eventually(t, func() bool {
		data, ok, _ := cache.Load()
		return ok && len(data.Notes) == 1 && data.Notes[0].Content == "first"
	}, time.Second, 5*time.Millisecond, "burst write inside the window is dropped")

	time.Sleep(70 * time.Millisecond)
	sched.CacheWrite(snapshotWith("second", 3))

	require.Eventually(t, func() bool {
		data, ok, _ := cache.Load()
		return ok && data.Notes[0].Content == "second"
	}, time.Second, 5*time.Millisecond)
}

func TestScheduleFlushDebounces(t *testing.T) {
	cache, disk := newTestTiers(t)
	sched := NewScheduler(cache, disk, zap.NewNop())
	sched.SetIntervals(0, 50*time.Millisecond)

	sched.ScheduleFlush(snapshotWith("stale", 1))
	time.Sleep(20 * time.Millisecond)
	// Rescheduling inside the window replaces the pending snapshot and
	// restarts the timer.
	sched.ScheduleFlush(snapshotWith("fresh", 2))

	time.Sleep(30 * time.Millisecond)
	_, ok := disk.Load()
	assert.False(t, ok, "nothing flushed before a quiet debounce interval")

	require.Eventually(t, func() bool {
		data, ok := disk.Load()
		return ok && data.Notes[0].Content == "fresh"
	}, time.Second, 5*time.Millisecond)
}

func TestFlushNowCancelsPending(t *testing.T) {
	cache, disk := newTestTiers(t)
	sched := NewScheduler(cache, disk, zap.NewNop())
	sched.SetIntervals(0, 50*time.Millisecond)

	sched.ScheduleFlush(snapshotWith("pending", 1))
	sched.FlushNow(snapshotWith("urgent", 2))

	require.Eventually(t, func() bool {
		data, ok := disk.Load()
		return ok && data.Notes[0].Content == "urgent"
	}, time.Second, 5*time.Millisecond)

	// The cancelled debounce must not fire afterwards and regress the
	// file.
	time.Sleep(80 * time.Millisecond)
	data, ok := disk.Load()
	require.True(t, ok)
	assert.Equal(t, "urgent", data.Notes[0].Content)

	// FlushNow writes the cache tier too.
	cached, ok, err := cache.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "urgent", cached.Notes[0].Content)
}

func TestFlushNowSurvivesClose(t *testing.T) {
	cache, disk := newTestTiers(t)
	sched := NewScheduler(cache, disk, zap.NewNop())

	// An immediate write right before shutdown, the shape of a CLI
	// import followed by exit.
	sched.FlushNow(snapshotWith("imported data", 1))
	sched.Close()

	data, ok := disk.Load()
	require.True(t, ok, "immediate write must land before Close returns")
	assert.Equal(t, "imported data", data.Notes[0].Content)

	cached, ok, err := cache.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "imported data", cached.Notes[0].Content)
}

func TestCacheWritesNeverRegress(t *testing.T) {
	cache, disk := newTestTiers(t)
	sched := NewScheduler(cache, disk, zap.NewNop())
	sched.SetIntervals(0, time.Hour)

	for i := 1; i <= 20; i++ {
		sched.CacheWrite(snapshotWith(fmt.Sprintf("rev %d", i), int64(i)))
	}
	sched.Close()

	data, ok, err := cache.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "rev 20", data.Notes[0].Content, "newest snapshot wins")
}

func TestCloseFlushesPendingSynchronously(t *testing.T) {
	cache, disk := newTestTiers(t)
	sched := NewScheduler(cache, disk, zap.NewNop())
	sched.SetIntervals(0, time.Hour)

	sched.ScheduleFlush(snapshotWith("last words", 1))
	sched.Close()

	data, ok := disk.Load()
	require.True(t, ok)
	assert.Equal(t, "last words", data.Notes[0].Content)
}

func TestNilCacheIsInert(t *testing.T) {
	dir := t.TempDir()
	h, err := host.New(dir)
	require.NoError(t, err)
	disk := NewDisk(h)

	var cache *Cache
	sched := NewScheduler(cache, disk, zap.NewNop())
	sched.FlushNow(snapshotWith("still works", 1))

	require.Eventually(t, func() bool {
		data, ok := disk.Load()
		return ok && data.Notes[0].Content == "still works"
	}, time.Second, 5*time.Millisecond)

	_, ok, err := cache.Load()
	assert.NoError(t, err)
	assert.False(t, ok)
}
