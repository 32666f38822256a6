package transfer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sonotes/internal/models"
)

func sampleData() models.StorageData {
	data := models.EmptyStorage()
	data.Boards = append(data.Boards, models.Board{ID: "work", Name: "Work", Icon: "💼"})
	data.Notes = []models.Note{
		{ID: "n1", BoardID: models.DefaultBoardID, Content: "home note", Z: 1, Color: "#FFFFFF"},
		{ID: "n2", BoardID: "work", Content: "work note", Z: 2, Color: "#FFFFFF"},
		{ID: "n3", BoardID: "work", Content: "trashed", Z: 3, Color: "#FFFFFF"},
	}
	deleted := models.NowMillis()
	data.Notes[2].DeletedAt = &deleted
	return data
}

func TestExportBoardSkipsTrash(t *testing.T) {
	data := sampleData()

	content, err := ExportBoard(data.Boards[1], data.Notes)
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(content), &env))
	assert.Equal(t, TypeSingleBoard, env.Type)
	assert.Equal(t, SourceMarker, env.Source)
	require.Len(t, env.Payload.Boards, 1)
	require.Len(t, env.Payload.Notes, 1, "trashed and foreign notes excluded")
	assert.Equal(t, "work note", env.Payload.Notes[0].Content)
	assert.Nil(t, env.Payload.Config)
}

func TestExportAllCarriesConfig(t *testing.T) {
	data := sampleData()
	data.Config.MaxZ = 42

	content, err := ExportAll(data)
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(content), &env))
	assert.Equal(t, TypeFullBackup, env.Type)
	assert.Len(t, env.Payload.Notes, 3, "full backup includes the trash")
	require.NotNil(t, env.Payload.Config)
	assert.Equal(t, 42, env.Payload.Config.MaxZ)
}

func TestImportRegeneratesIdentity(t *testing.T) {
	data := sampleData()
	content, err := ExportBoard(data.Boards[1], data.Notes)
	require.NoError(t, err)

	boards, notes, ok := Import(content)
	require.True(t, ok)
	require.Len(t, boards, 1)
	require.Len(t, notes, 1)

	assert.NotEqual(t, "work", boards[0].ID)
	assert.Equal(t, "Work (Imported)", boards[0].Name)
	assert.NotEqual(t, "n2", notes[0].ID)
	assert.Equal(t, boards[0].ID, notes[0].BoardID, "note links remap to the new board id")

	// Importing the same file twice never collides.
	boards2, notes2, ok := Import(content)
	require.True(t, ok)
	assert.NotEqual(t, boards[0].ID, boards2[0].ID)
	assert.NotEqual(t, notes[0].ID, notes2[0].ID)
}

func TestImportFullBackupKeepsNames(t *testing.T) {
	content, err := ExportAll(sampleData())
	require.NoError(t, err)

	boards, notes, ok := Import(content)
	require.True(t, ok)
	require.Len(t, boards, 2)
	assert.Equal(t, "Home", boards[0].Name, "full backups keep board names")
	assert.Len(t, notes, 3)
}

func TestImportDropsOrphanNotes(t *testing.T) {
	env := Envelope{
		Version: FormatVersion,
		Type:    TypeSingleBoard,
		Source:  SourceMarker,
		Payload: Payload{
			Boards: []models.Board{{ID: "b1", Name: "Carried"}},
			Notes: []models.Note{
				{ID: "ok", BoardID: "b1"},
				{ID: "orphan", BoardID: "not-in-file"},
			},
		},
	}
	raw, err := json.Marshal(env)
	require.NoError(t, err)

	boards, notes, ok := Import(string(raw))
	require.True(t, ok)
	require.Len(t, notes, 1)
	assert.Equal(t, "Carried (Imported)", boards[0].Name)
}

func TestImportRejectsForeignFiles(t *testing.T) {
	_, _, ok := Import("not json at all")
	assert.False(t, ok)

	_, _, ok = Import(`{"version":1,"source":"other-app","payload":{"boards":[]}}`)
	assert.False(t, ok)

	// Valid JSON, right marker, but no boards member.
	_, _, ok = Import(`{"version":1,"source":"so-notes","payload":{"notes":[]}}`)
	assert.False(t, ok)
}
