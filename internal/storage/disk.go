package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	"sonotes/internal/host"
	"sonotes/internal/models"
)

// DataFileName is the durable snapshot file under the data directory.
const DataFileName = "data.json"

// Disk is the slow durable tier: one JSON file written whole through
// the host's atomic save primitive.
type Disk struct {
	host *host.Host
}

// NewDisk creates the disk tier on top of a host.
func NewDisk(h *host.Host) *Disk {
	return &Disk{host: h}
}

// Save serializes and writes the snapshot.
func (d *Disk) Save(data models.StorageData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return d.host.SaveContent(DataFileName, string(raw))
}

// Load reads and parses the snapshot. ok is false when the file is
// absent, unreadable, or malformed — the caller treats all three as "no
// disk data".
func (d *Disk) Load() (data models.StorageData, ok bool) {
	content, err := d.host.LoadContent(DataFileName)
	if err != nil {
		return models.StorageData{}, false
	}
	if !validSnapshot([]byte(content)) {
		return models.StorageData{}, false
	}
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return models.StorageData{}, false
	}
	return data, true
}

// validSnapshot checks the minimum shape contract: well-formed JSON
// whose "notes" member is an array.
func validSnapshot(raw []byte) bool {
	var probe struct {
		Notes json.RawMessage `json:"notes"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	trimmed := bytes.TrimSpace(probe.Notes)
	return len(trimmed) > 0 && trimmed[0] == '['
}
