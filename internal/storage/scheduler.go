package storage

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"sonotes/internal/models"
)

// Write scheduling intervals. Interactive edits throttle the cache tier
// and debounce the disk tier; structural changes bypass both.
const (
	CacheThrottle = 100 * time.Millisecond
	FlushDebounce = 2 * time.Second
)

// Scheduler decides when each tier actually gets written. It is the
// process-wide owner of the single debounce timer: every scheduled
// flush cancels and restarts it, so at most one flush is ever pending.
// Failures never reach the mutators; they are logged and the in-memory
// state stays the source of truth.
type Scheduler struct {
	cache *Cache
	disk  *Disk
	log   *zap.Logger

	throttle time.Duration
	debounce time.Duration

	mu        sync.Mutex
	lastCache time.Time
	timer     *time.Timer
	pending   *models.StorageData
	cacheNext *models.StorageData
	cacheBusy bool
	closed    bool
	wg        sync.WaitGroup
}

// NewScheduler wires the two tiers with the default intervals.
func NewScheduler(cache *Cache, disk *Disk, log *zap.Logger) *Scheduler {
	return &Scheduler{
		cache:    cache,
		disk:     disk,
		log:      log,
		throttle: CacheThrottle,
		debounce: FlushDebounce,
	}
}

// CacheWrite writes the snapshot to the cache tier, at most once per
// throttle interval. Calls inside the interval are dropped; the next
// flush carries the data anyway.
func (s *Scheduler) CacheWrite(data models.StorageData) {
	s.mu.Lock()
	now := time.Now()
	if now.Sub(s.lastCache) < s.throttle {
		s.mu.Unlock()
		return
	}
	s.lastCache = now
	s.mu.Unlock()

	s.saveCache(data)
}

// saveCache hands the snapshot to the single cache writer goroutine.
// Writes are serialized and coalesced, newest snapshot wins, so the
// cache tier can never regress to older data.
func (s *Scheduler) saveCache(data models.StorageData) {
	s.mu.Lock()
	s.cacheNext = &data
	if s.cacheBusy {
		s.mu.Unlock()
		return
	}
	s.cacheBusy = true
	s.wg.Add(1)
	s.mu.Unlock()
	go s.drainCache()
}

func (s *Scheduler) drainCache() {
	defer s.wg.Done()
	for {
		s.mu.Lock()
		next := s.cacheNext
		s.cacheNext = nil
		if next == nil {
			s.cacheBusy = false
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()
		if err := s.cache.Save(*next); err != nil {
			s.log.Warn("cache write failed", zap.Error(err))
		}
	}
}

// ScheduleFlush (re)arms the debounced disk flush with the latest
// snapshot. The flush fires only after a full debounce interval passes
// with no further scheduling.
func (s *Scheduler) ScheduleFlush(data models.StorageData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = &data
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.fireFlush)
}

// FlushNow writes the snapshot to both tiers immediately, bypassing the
// debounce. Used for structural changes where lazy durability is not
// acceptable. The write itself is still asynchronous; Close joins it.
func (s *Scheduler) FlushNow(data models.StorageData) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = nil
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		s.flush(data)
	}()
}

func (s *Scheduler) fireFlush() {
	s.mu.Lock()
	if s.closed {
		// Close takes over the pending snapshot.
		s.mu.Unlock()
		return
	}
	data := s.pending
	s.pending = nil
	s.timer = nil
	if data != nil {
		s.wg.Add(1)
	}
	s.mu.Unlock()
	if data != nil {
		defer s.wg.Done()
		s.flush(*data)
	}
}

// flush writes both tiers. The cache write goes through the serialized
// writer; the disk write happens here. A failed disk write is
// superseded by the next scheduled flush; there is no retry.
func (s *Scheduler) flush(data models.StorageData) {
	s.saveCache(data)
	if err := s.disk.Save(data); err != nil {
		s.log.Error("disk save failed", zap.Error(err))
	}
}

// Close cancels the debounce timer, flushes any pending snapshot, and
// waits for every in-flight write, so nothing handed to the scheduler
// is lost on shutdown.
func (s *Scheduler) Close() {
	s.mu.Lock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	data := s.pending
	s.pending = nil
	s.mu.Unlock()
	if data != nil {
		s.flush(*data)
	}
	s.wg.Wait()
}

// SetIntervals overrides the throttle and debounce windows. Tests use
// this to shrink the timing.
func (s *Scheduler) SetIntervals(throttle, debounce time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.throttle = throttle
	s.debounce = debounce
}
