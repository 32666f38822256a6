package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIsDeep(t *testing.T) {
	deleted := int64(1234)
	data := StorageData{
		Notes: []Note{
			{ID: "a", DeletedAt: &deleted},
		},
		Boards: []Board{
			{ID: "b", Viewport: &ViewportPos{X: 10, Y: 20}},
		},
		CurrentBoardID: "b",
	}

	clone := data.Clone()
	*clone.Notes[0].DeletedAt = 9999
	clone.Boards[0].Viewport.X = -1
	clone.Notes[0].Title = "changed"

	assert.Equal(t, int64(1234), *data.Notes[0].DeletedAt)
	assert.Equal(t, 10.0, data.Boards[0].Viewport.X)
	assert.Empty(t, data.Notes[0].Title)
}

func TestLatestUpdate(t *testing.T) {
	data := StorageData{}
	assert.Zero(t, data.LatestUpdate())

	data.Notes = []Note{
		{UpdatedAt: 100},
		{UpdatedAt: 5000},
		{UpdatedAt: 300},
	}
	assert.Equal(t, int64(5000), data.LatestUpdate())
}

func TestNoteJSONShape(t *testing.T) {
	n := Note{ID: "x", X: 1.5, BoardID: "default", CreatedAt: 1, UpdatedAt: 2}
	raw, err := json.Marshal(&n)
	require.NoError(t, err)

	// Keys stay camelCase for compatibility with existing data files.
	assert.Contains(t, string(raw), `"boardId"`)
	assert.Contains(t, string(raw), `"createdAt"`)
	assert.NotContains(t, string(raw), `"deletedAt"`, "omitted while live")
	assert.NotContains(t, string(raw), `"width"`, "omitted at default size")
}

func TestEffectiveSizeFallbacks(t *testing.T) {
	n := Note{}
	assert.Equal(t, float64(DefaultNoteWidth), n.EffectiveWidth())
	assert.Equal(t, float64(DefaultNoteHeight), n.EffectiveHeight())

	n.Width, n.Height = 300, 180
	assert.Equal(t, 300.0, n.EffectiveWidth())
	assert.Equal(t, 180.0, n.EffectiveHeight())
}
