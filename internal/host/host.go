package host

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Host provides the whole-file read/write primitives the persistence
// layer is built on. All app-managed files live under a single data
// directory.
type Host struct {
	dataDir string
}

// New creates a Host rooted at dir, creating it if needed. An empty dir
// selects the default data directory.
func New(dir string) (*Host, error) {
	if dir == "" {
		var err error
		dir, err = DefaultDataDir()
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Host{dataDir: dir}, nil
}

// DefaultDataDir returns the XDG data directory for the app, falling
// back to ~/.local/share.
func DefaultDataDir() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "sonotes"), nil
}

// Dir returns the data directory path.
func (h *Host) Dir() string {
	return h.dataDir
}

// SaveContent writes a whole file under the data directory. The write
// is atomic: content goes to a temp file first, then replaces the
// target by rename. Rename is retried briefly because another process
// (backup tools, indexers) can hold the target open.
func (h *Host) SaveContent(filename, content string) error {
	target := filepath.Join(h.dataDir, filename)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		// Temp write failed, fall back to a direct write.
		if err2 := os.WriteFile(target, []byte(content), 0644); err2 != nil {
			return fmt.Errorf("write %s: tmp failed (%v), direct failed: %w", filename, err, err2)
		}
		return nil
	}

	const maxRetries = 5
	var renameErr error
	for i := 0; i < maxRetries; i++ {
		if renameErr = os.Rename(tmp, target); renameErr == nil {
			return nil
		}
		time.Sleep(50 * time.Millisecond)
	}
	os.Remove(tmp)
	return fmt.Errorf("rename %s: %w", filename, renameErr)
}

// LoadContent reads a whole file under the data directory.
func (h *Host) LoadContent(filename string) (string, error) {
	data, err := os.ReadFile(filepath.Join(h.dataDir, filename))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SaveFile writes content to an arbitrary path chosen by the user
// (export). Reports success rather than returning an error: the caller
// only needs a user-facing failed/succeeded signal.
func SaveFile(content, path string) bool {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return false
	}
	return true
}

// OpenFile reads a user-chosen file (import). Returns "" and false when
// it cannot be read.
func OpenFile(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}
