package models

import "time"

// NoteColors is the fixed palette notes can take. Solid pastels, opaque
// for readability.
var NoteColors = []string{
	"#FFFFFF", // white (default)
	"#FFF4CE", // soft yellow
	"#E4F7D2", // soft green
	"#D6EBFD", // soft blue
	"#F2E6FF", // soft purple
	"#FFDCE0", // soft red
}

// DefaultBoardID is the id of the reserved board that always exists.
const DefaultBoardID = "default"

// Default note card size in world units, used when Width/Height are zero.
const (
	DefaultNoteWidth  = 260
	DefaultNoteHeight = 100
)

// Note is a movable, editable card living on exactly one board.
// Timestamps are unix milliseconds to stay wire-compatible with
// previously written data files.
type Note struct {
	ID        string  `json:"id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         int     `json:"z"`
	Width     float64 `json:"width,omitempty"`
	Height    float64 `json:"height,omitempty"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Color     string  `json:"color"`
	BoardID   string  `json:"boardId"`
	Collapsed bool    `json:"collapsed"`
	DeletedAt *int64  `json:"deletedAt,omitempty"`
	CreatedAt int64   `json:"createdAt"`
	UpdatedAt int64   `json:"updatedAt"`
}

// EffectiveWidth returns the note's width, falling back to the default.
func (n *Note) EffectiveWidth() float64 {
	if n.Width > 0 {
		return n.Width
	}
	return DefaultNoteWidth
}

// EffectiveHeight returns the note's height, falling back to the default.
func (n *Note) EffectiveHeight() float64 {
	if n.Height > 0 {
		return n.Height
	}
	return DefaultNoteHeight
}

// InTrash reports whether the note is soft-deleted.
func (n *Note) InTrash() bool {
	return n.DeletedAt != nil
}

// ViewportPos is a remembered pan position.
type ViewportPos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Board is a named, iconed workspace partition.
type Board struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Icon      string       `json:"icon"`
	CreatedAt int64        `json:"createdAt"`
	Viewport  *ViewportPos `json:"viewport,omitempty"`
}

// ThemeMode selects the UI color scheme.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// AppConfig holds persisted app-wide settings.
type AppConfig struct {
	Version   int       `json:"version"`
	MaxZ      int       `json:"maxZ"`
	ThemeMode ThemeMode `json:"themeMode"`
}

// DefaultConfig returns the config of a fresh install.
func DefaultConfig() AppConfig {
	return AppConfig{Version: 1, MaxZ: 1, ThemeMode: ThemeSystem}
}

// StorageData is the full persisted snapshot, the unit written to both
// the cache and disk tiers.
type StorageData struct {
	Notes          []Note    `json:"notes"`
	Boards         []Board   `json:"boards"`
	CurrentBoardID string    `json:"currentBoardId"`
	Config         AppConfig `json:"config"`
}

// DefaultBoard returns the reserved board that can never be deleted.
func DefaultBoard() Board {
	return Board{
		ID:        DefaultBoardID,
		Name:      "Home",
		Icon:      "🏠",
		CreatedAt: NowMillis(),
	}
}

// EmptyStorage returns the state of a first launch: one default board,
// no notes.
func EmptyStorage() StorageData {
	return StorageData{
		Notes:          []Note{},
		Boards:         []Board{DefaultBoard()},
		CurrentBoardID: DefaultBoardID,
		Config:         DefaultConfig(),
	}
}

// LatestUpdate returns the greatest note UpdatedAt in the snapshot, or 0
// if there are no notes. Used by startup arbitration to pick the fresher
// of the two storage tiers.
func (d *StorageData) LatestUpdate() int64 {
	var latest int64
	for i := range d.Notes {
		if d.Notes[i].UpdatedAt > latest {
			latest = d.Notes[i].UpdatedAt
		}
	}
	return latest
}

// Clone returns a deep copy of the snapshot, safe to hand to an
// asynchronous writer while the original keeps mutating.
func (d *StorageData) Clone() StorageData {
	out := StorageData{
		Notes:          make([]Note, len(d.Notes)),
		Boards:         make([]Board, len(d.Boards)),
		CurrentBoardID: d.CurrentBoardID,
		Config:         d.Config,
	}
	copy(out.Notes, d.Notes)
	for i := range out.Notes {
		if del := out.Notes[i].DeletedAt; del != nil {
			v := *del
			out.Notes[i].DeletedAt = &v
		}
	}
	copy(out.Boards, d.Boards)
	for i := range out.Boards {
		if vp := out.Boards[i].Viewport; vp != nil {
			v := *vp
			out.Boards[i].Viewport = &v
		}
	}
	return out
}

// NowMillis returns the current time as unix milliseconds.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
