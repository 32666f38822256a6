package storage

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"sonotes/internal/models"
)

// Rehydrate loads both tiers in parallel, arbitrates between them by
// the freshest note timestamp, syncs the losing tier, and runs the
// migration pass. It always returns a usable snapshot.
//
// Arbitration rules:
//  1. disk non-empty and strictly fresher than cache -> disk, cache is
//     overwritten with disk's content
//  2. cache non-empty -> cache, a disk flush is scheduled
//  3. disk non-empty (cache was empty) -> disk, cache synced
//  4. neither -> empty default state
func Rehydrate(cache *Cache, disk *Disk, sched *Scheduler, log *zap.Logger) models.StorageData {
	var (
		wg        sync.WaitGroup
		cacheData models.StorageData
		cacheOK   bool
		diskData  models.StorageData
		diskOK    bool
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		cacheData, cacheOK, err = cache.Load()
		if err != nil {
			log.Warn("cache load failed, treating as empty", zap.Error(err))
			cacheOK = false
		}
	}()
	go func() {
		defer wg.Done()
		diskData, diskOK = disk.Load()
	}()
	wg.Wait()

	cacheLatest := int64(0)
	if cacheOK {
		cacheLatest = cacheData.LatestUpdate()
	}
	diskLatest := int64(0)
	if diskOK {
		diskLatest = diskData.LatestUpdate()
	}

	var data models.StorageData
	switch {
	case diskOK && len(diskData.Notes) > 0 && diskLatest > cacheLatest:
		log.Info("rehydrated from disk", zap.Int64("latest", diskLatest))
		data = diskData
		if err := cache.Save(data); err != nil {
			log.Warn("cache sync after disk restore failed", zap.Error(err))
		}
	case cacheOK && (len(cacheData.Notes) > 0 || len(cacheData.Boards) > 0):
		log.Info("rehydrated from cache", zap.Int64("latest", cacheLatest))
		data = cacheData
		sched.ScheduleFlush(data)
	case diskOK:
		log.Info("rehydrated from disk, cache empty")
		data = diskData
		if err := cache.Save(data); err != nil {
			log.Warn("cache sync after disk restore failed", zap.Error(err))
		}
	default:
		log.Info("no persisted data, starting fresh")
		data = models.EmptyStorage()
	}

	Migrate(&data)
	return data
}

// Migrate runs the sanity/repair pass over a freshly loaded snapshot:
// z-order normalization, rescue of notes lost past the origin wall,
// defaulting of missing fields, maxZ recomputation, and the board
// invariants (at least one board, currentBoardId valid).
func Migrate(data *models.StorageData) {
	if len(data.Boards) == 0 {
		data.Boards = []models.Board{models.DefaultBoard()}
	}
	if !boardExists(data.Boards, data.CurrentBoardID) {
		data.CurrentBoardID = data.Boards[0].ID
	}

	sort.SliceStable(data.Notes, func(i, j int) bool {
		return data.Notes[i].Z < data.Notes[j].Z
	})
	maxZ := 0
	for i := range data.Notes {
		n := &data.Notes[i]
		n.Z = i + 1

		// Rescue notes lost past the origin wall, cascading them near
		// the corner so they don't stack exactly.
		if n.X < 0 || n.Y < 0 {
			n.X = 20 + float64(i)*10
			n.Y = 20 + float64(i)*10
		}

		if n.BoardID == "" || !boardExists(data.Boards, n.BoardID) {
			n.BoardID = data.CurrentBoardID
		}
		if n.Color == "" {
			n.Color = models.NoteColors[0]
		}
		if n.UpdatedAt == 0 {
			if n.CreatedAt != 0 {
				n.UpdatedAt = n.CreatedAt
			} else {
				n.UpdatedAt = models.NowMillis()
			}
		}
		if n.Z > maxZ {
			maxZ = n.Z
		}
	}

	if data.Config.Version == 0 {
		data.Config.Version = 1
	}
	if data.Config.ThemeMode == "" {
		data.Config.ThemeMode = models.ThemeSystem
	}
	if maxZ < len(data.Notes) {
		maxZ = len(data.Notes)
	}
	if data.Config.MaxZ < maxZ {
		data.Config.MaxZ = maxZ
	}
}

func boardExists(boards []models.Board, id string) bool {
	for i := range boards {
		if boards[i].ID == id {
			return true
		}
	}
	return false
}
