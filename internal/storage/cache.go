package storage

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"sonotes/internal/models"
)

// CacheFileName is the write-ahead store under the data directory.
const CacheFileName = "cache.db"

const (
	cacheBucket = "wal"
	cacheKey    = "sonotes_wal"
)

// Cache is the fast write-ahead tier: an embedded key-value store
// holding the entire serialized snapshot under a single key. Writes are
// cheap and frequent; the disk tier catches up lazily.
//
// A nil *Cache is valid and behaves as an always-empty, write-discarding
// tier, so the app keeps running when the cache file cannot be opened.
type Cache struct {
	db *bbolt.DB
}

// OpenCache opens (or creates) the cache store at path.
func OpenCache(path string) (*Cache, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(cacheBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying store.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}

// Save overwrites the snapshot.
func (c *Cache) Save(data models.StorageData) error {
	if c == nil {
		return nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(cacheBucket)).Put([]byte(cacheKey), raw)
	})
}

// Load reads the snapshot. ok is false when no snapshot has ever been
// written or the stored bytes do not parse.
func (c *Cache) Load() (data models.StorageData, ok bool, err error) {
	if c == nil {
		return models.StorageData{}, false, nil
	}
	var raw []byte
	err = c.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(cacheBucket)).Get([]byte(cacheKey)); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil || raw == nil {
		return models.StorageData{}, false, err
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return models.StorageData{}, false, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return data, true, nil
}

// Clear removes the snapshot.
func (c *Cache) Clear() error {
	if c == nil {
		return nil
	}
	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(cacheBucket)).Delete([]byte(cacheKey))
	})
}
