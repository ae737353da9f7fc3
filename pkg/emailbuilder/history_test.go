package emailbuilder

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// templateWithMarker builds a one-component template whose text content
// identifies the snapshot.
func templateWithMarker(marker string) *Template {
	t := NewTemplate()
	c := makeComponent("c1", ComponentText)
	c.Properties["content"] = marker
	t.Components = []*Node{{Component: c}}
	return t
}

func markerOf(t *Template) string {
	if t == nil {
		return ""
	}
	flat := t.Flatten()
	if len(flat) == 0 {
		return ""
	}
	return flat[0].StringProperty("content", "")
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory()

	require.NoError(t, h.Commit(templateWithMarker("S0")))
	require.NoError(t, h.Commit(templateWithMarker("S1")))
	require.NoError(t, h.Commit(templateWithMarker("S2")))

	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	assert.Equal(t, "S1", markerOf(h.Undo()))
	assert.Equal(t, "S0", markerOf(h.Undo()))
	assert.Nil(t, h.Undo(), "undo at the oldest entry is a no-op")
	assert.False(t, h.CanUndo())

	assert.Equal(t, "S1", markerOf(h.Redo()))
	assert.Equal(t, "S2", markerOf(h.Redo()))
	assert.Nil(t, h.Redo(), "redo at the newest entry is a no-op")
}

func TestHistoryRedoTruncation(t *testing.T) {
	h := NewHistory()

	require.NoError(t, h.Commit(templateWithMarker("S0")))
	require.NoError(t, h.Commit(templateWithMarker("S1")))
	require.NoError(t, h.Commit(templateWithMarker("S2")))

	require.Equal(t, "S1", markerOf(h.Undo()))

	// Committing from the middle discards the branch beyond the index.
	require.NoError(t, h.Commit(templateWithMarker("S3")))

	assert.Equal(t, 3, h.Len())
	assert.False(t, h.CanRedo())
	assert.Equal(t, "S1", markerOf(h.Undo()))
	assert.Equal(t, "S3", markerOf(h.Redo()))
}

func TestHistoryCapEvictsOldest(t *testing.T) {
	h := NewHistory()

	for i := 0; i < 60; i++ {
		require.NoError(t, h.Commit(templateWithMarker(fmt.Sprintf("S%d", i))))
	}

	assert.Equal(t, 50, h.Len())

	// Walk all the way back: the floor is S10, the first ten were evicted.
	var last *Template
	for {
		prev := h.Undo()
		if prev == nil {
			break
		}
		last = prev
	}
	assert.Equal(t, "S10", markerOf(last))
}

func TestHistorySnapshotsAreIndependent(t *testing.T) {
	h := NewHistory()

	live := templateWithMarker("original")
	require.NoError(t, h.Commit(live))
	require.NoError(t, h.Commit(templateWithMarker("next")))

	// Mutating the live template must not rewrite the stored snapshot.
	live.Flatten()[0].Properties["content"] = "mutated"
	assert.Equal(t, "original", markerOf(h.Undo()))
}
