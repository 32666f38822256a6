package transfer

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"sonotes/internal/models"
)

// Export envelope constants. SourceMarker identifies files written by
// this app; imports with a different marker are rejected outright.
const (
	FormatVersion = 1
	SourceMarker  = "so-notes"

	TypeFullBackup  = "FULL_BACKUP"
	TypeSingleBoard = "SINGLE_BOARD"
)

// Payload carries the boards and notes of an export.
type Payload struct {
	Boards []models.Board    `json:"boards"`
	Notes  []models.Note     `json:"notes"`
	Config *models.AppConfig `json:"config,omitempty"`
}

// Envelope is the versioned export file shape.
type Envelope struct {
	Version   int    `json:"version"`
	Type      string `json:"type"`
	Source    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
	Payload   Payload `json:"payload"`
}

// ExportBoard serializes a single board and its live (non-trashed)
// notes.
func ExportBoard(board models.Board, allNotes []models.Note) (string, error) {
	var boardNotes []models.Note
	for i := range allNotes {
		n := allNotes[i]
		if n.BoardID == board.ID && !n.InTrash() {
			boardNotes = append(boardNotes, n)
		}
	}
	env := Envelope{
		Version:   FormatVersion,
		Type:      TypeSingleBoard,
		Source:    SourceMarker,
		Timestamp: models.NowMillis(),
		Payload:   Payload{Boards: []models.Board{board}, Notes: boardNotes},
	}
	return marshal(env)
}

// ExportAll serializes the full corpus including config.
func ExportAll(data models.StorageData) (string, error) {
	cfg := data.Config
	env := Envelope{
		Version:   FormatVersion,
		Type:      TypeFullBackup,
		Source:    SourceMarker,
		Timestamp: models.NowMillis(),
		Payload:   Payload{Boards: data.Boards, Notes: data.Notes, Config: &cfg},
	}
	return marshal(env)
}

func marshal(env Envelope) (string, error) {
	raw, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal export: %w", err)
	}
	return string(raw), nil
}

// Import parses an export file and returns boards and notes safe to
// merge into existing data: every id is regenerated, note board links
// are remapped through the old-to-new board id map, notes pointing at a
// board the file does not carry are dropped, and all timestamps reset
// to now. Single-board imports get a name suffix marking them as
// imported. Returns nil, nil, false when the content is not a valid
// export.
func Import(jsonContent string) (boards []models.Board, notes []models.Note, ok bool) {
	var env Envelope
	if err := json.Unmarshal([]byte(jsonContent), &env); err != nil {
		return nil, nil, false
	}
	if env.Source != SourceMarker || env.Payload.Boards == nil {
		return nil, nil, false
	}

	now := models.NowMillis()
	idMap := make(map[string]string, len(env.Payload.Boards))

	for _, old := range env.Payload.Boards {
		b := old
		b.ID = uuid.NewString()
		b.CreatedAt = now
		if env.Type != TypeFullBackup {
			b.Name = old.Name + " (Imported)"
		}
		idMap[old.ID] = b.ID
		boards = append(boards, b)
	}

	for _, old := range env.Payload.Notes {
		newBoardID, mapped := idMap[old.BoardID]
		if !mapped {
			continue
		}
		n := old
		n.ID = uuid.NewString()
		n.BoardID = newBoardID
		n.CreatedAt = now
		n.UpdatedAt = now
		notes = append(notes, n)
	}

	return boards, notes, true
}
