package undo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEdit is a minimal item action: an insertion of text at a rune offset.
// Two insertions merge when the second starts where the first ends.
type testEdit struct {
	at   int
	text string
}

func (e testEdit) Description() string { return fmt.Sprintf("insert %q at %d", e.text, e.at) }

func (e testEdit) Merge(next ItemAction) (ItemAction, bool) {
	o, ok := next.(testEdit)
	if !ok || o.at != e.at+len(e.text) {
		return nil, false
	}
	return testEdit{at: e.at, text: e.text + o.text}, true
}

// marker is an action that is not an ItemAction.
type marker struct {
	name string
}

func (m marker) Description() string { return m.name }

func appendAll(t *testing.T, m *Manager, actions ...Action) {
	t.Helper()
	for _, a := range actions {
		require.NoError(t, m.Append(a))
	}
}

func TestFreshManagerStatus(t *testing.T) {
	m := NewManager(0)

	status := m.Status()
	assert.False(t, status.CanUndo)
	assert.False(t, status.CanRedo)

	_, ok := m.Undo()
	assert.False(t, ok)
	_, ok = m.Redo()
	assert.False(t, ok)
}

func TestUndoRedoRoundTrip(t *testing.T) {
	m := NewManager(0)
	actions := []Action{
		marker{"a"}, marker{"b"}, marker{"c"}, marker{"d"}, marker{"e"},
	}
	appendAll(t, m, actions...)

	// Undo everything, newest first.
	for i := len(actions) - 1; i >= 0; i-- {
		a, ok := m.Undo()
		require.True(t, ok, "undo %d", i)
		assert.Equal(t, actions[i], a)
	}
	assert.False(t, m.CanUndo())
	_, ok := m.Undo()
	assert.False(t, ok)

	// Redo everything, oldest first.
	for i := 0; i < len(actions); i++ {
		a, ok := m.Redo()
		require.True(t, ok, "redo %d", i)
		assert.Equal(t, actions[i], a)
	}
	assert.False(t, m.CanRedo())
	assert.True(t, m.CanUndo())
	_, ok = m.Redo()
	assert.False(t, ok)
}

func TestAppendPrunesRedoBranch(t *testing.T) {
	m := NewManager(0)
	appendAll(t, m, marker{"a"}, marker{"b"}, marker{"c"}, marker{"d"})

	// Undo twice, then append: c and d are gone for good.
	m.Undo()
	m.Undo()
	require.NoError(t, m.Append(marker{"x"}))

	assert.False(t, m.CanRedo())
	_, ok := m.Redo()
	assert.False(t, ok)
	assert.Equal(t, 3, m.Len())

	a, ok := m.Undo()
	require.True(t, ok)
	assert.Equal(t, marker{"x"}, a)
	a, ok = m.Undo()
	require.True(t, ok)
	assert.Equal(t, marker{"b"}, a)
}

func TestMaxActionsEviction(t *testing.T) {
	const max = 3
	m := NewManager(max)
	appendAll(t, m, marker{"a"}, marker{"b"}, marker{"c"}, marker{"d"})

	assert.Equal(t, max, m.Len())

	// Undo depth is capped at max; the oldest action was evicted.
	want := []string{"d", "c", "b"}
	for _, name := range want {
		a, ok := m.Undo()
		require.True(t, ok)
		assert.Equal(t, name, a.Description())
	}
	_, ok := m.Undo()
	assert.False(t, ok, "a should have been evicted")
}

// The worked eviction scenario: maxActions=3, append A..D, undo once,
// append E. History must be [B, C, E] with no redo available.
func TestEvictThenBranchScenario(t *testing.T) {
	m := NewManager(3)
	appendAll(t, m, marker{"A"}, marker{"B"}, marker{"C"}, marker{"D"})

	a, ok := m.Undo()
	require.True(t, ok)
	assert.Equal(t, "D", a.Description())

	require.NoError(t, m.Append(marker{"E"}))
	assert.Equal(t, 3, m.Len())
	assert.False(t, m.CanRedo())

	want := []string{"E", "C", "B"}
	for _, name := range want {
		a, ok := m.Undo()
		require.True(t, ok)
		assert.Equal(t, name, a.Description())
	}
	assert.False(t, m.CanUndo())
}

func TestUnboundedHistory(t *testing.T) {
	m := NewManager(0)
	for i := 0; i < DefaultMaxActions*2; i++ {
		require.NoError(t, m.Append(marker{fmt.Sprintf("%d", i)}))
	}
	assert.Equal(t, DefaultMaxActions*2, m.Len())
}

func TestBatchMergesAdjacentItems(t *testing.T) {
	m := NewManager(0)
	require.NoError(t, m.StartBatch())
	require.NoError(t, m.Append(testEdit{at: 0, text: "a"}))
	require.NoError(t, m.Append(testEdit{at: 1, text: "b"}))
	require.NoError(t, m.EndBatch())

	require.Equal(t, 1, m.Len())
	a, ok := m.Undo()
	require.True(t, ok)
	batch, ok := a.(Batch)
	require.True(t, ok, "expected a Batch, got %T", a)
	require.Equal(t, 1, batch.Len())
	assert.Equal(t, testEdit{at: 0, text: "ab"}, batch.Items[0])
}

func TestBatchKeepsNonAdjacentItemsSeparate(t *testing.T) {
	m := NewManager(0)
	require.NoError(t, m.StartBatch())
	require.NoError(t, m.Append(testEdit{at: 0, text: "a"}))
	require.NoError(t, m.Append(testEdit{at: 10, text: "b"}))
	require.NoError(t, m.EndBatch())

	a, ok := m.Undo()
	require.True(t, ok)
	batch, ok := a.(Batch)
	require.True(t, ok)
	require.Equal(t, 2, batch.Len())
	assert.Equal(t, testEdit{at: 0, text: "a"}, batch.Items[0])
	assert.Equal(t, testEdit{at: 10, text: "b"}, batch.Items[1])
}

// Merging only ever considers the most recently buffered item. An action
// adjacent to an older buffer entry but not the last one stays separate.
func TestBatchMergeOnlyAgainstLastItem(t *testing.T) {
	m := NewManager(0)
	require.NoError(t, m.StartBatch())
	require.NoError(t, m.Append(testEdit{at: 0, text: "a"}))
	require.NoError(t, m.Append(testEdit{at: 10, text: "x"}))
	require.NoError(t, m.Append(testEdit{at: 1, text: "b"})) // adjacent to the first, not the last
	require.NoError(t, m.EndBatch())

	a, _ := m.Undo()
	batch := a.(Batch)
	require.Equal(t, 3, batch.Len())
}

func TestBatchRejectsNonItemAction(t *testing.T) {
	m := NewManager(0)
	require.NoError(t, m.StartBatch())

	err := m.Append(marker{"not an item"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBatchItemOnly)

	// The violation leaves the batch usable.
	require.NoError(t, m.Append(testEdit{at: 0, text: "a"}))
	require.NoError(t, m.EndBatch())
	assert.Equal(t, 1, m.Len())
}

func TestNestedBatchIsAnError(t *testing.T) {
	m := NewManager(0)
	require.NoError(t, m.StartBatch())
	assert.ErrorIs(t, m.StartBatch(), ErrBatchActive)
	require.NoError(t, m.EndBatch())
}

func TestEndBatchWithoutStartIsAnError(t *testing.T) {
	m := NewManager(0)
	assert.ErrorIs(t, m.EndBatch(), ErrNoBatch)
}

func TestEmptyBatchRecordsNothing(t *testing.T) {
	m := NewManager(0)
	require.NoError(t, m.StartBatch())
	require.NoError(t, m.EndBatch())

	assert.Equal(t, 0, m.Len())
	status := m.Status()
	assert.False(t, status.CanUndo)
	assert.False(t, status.CanRedo)
}

func TestBatchDoesNotTouchHistoryUntilEnd(t *testing.T) {
	m := NewManager(0)
	appendAll(t, m, marker{"before"})

	require.NoError(t, m.StartBatch())
	require.NoError(t, m.Append(testEdit{at: 0, text: "a"}))
	assert.Equal(t, 1, m.Len())
	assert.True(t, m.InBatch())

	require.NoError(t, m.EndBatch())
	assert.Equal(t, 2, m.Len())
	assert.False(t, m.InBatch())
}

func TestStatusTracksEveryMutation(t *testing.T) {
	m := NewManager(0)

	require.NoError(t, m.Append(marker{"a"}))
	assert.Equal(t, Status{CanUndo: true, CanRedo: false}, m.Status())

	m.Undo()
	assert.Equal(t, Status{CanUndo: false, CanRedo: true}, m.Status())

	m.Redo()
	assert.Equal(t, Status{CanUndo: true, CanRedo: false}, m.Status())

	require.NoError(t, m.Append(marker{"b"}))
	m.Undo()
	assert.Equal(t, Status{CanUndo: true, CanRedo: true}, m.Status())
}

func TestClear(t *testing.T) {
	m := NewManager(0)
	appendAll(t, m, marker{"a"}, marker{"b"})
	require.NoError(t, m.StartBatch())
	require.NoError(t, m.Append(testEdit{at: 0, text: "x"}))

	m.Clear()

	assert.Equal(t, 0, m.Len())
	assert.False(t, m.InBatch())
	assert.Equal(t, Status{}, m.Status())
	// An open batch does not survive Clear.
	assert.ErrorIs(t, m.EndBatch(), ErrNoBatch)
}

func TestBatchDescription(t *testing.T) {
	single := Batch{Items: []ItemAction{testEdit{at: 0, text: "a"}}}
	assert.Equal(t, `insert "a" at 0`, single.Description())

	multi := Batch{Items: []ItemAction{testEdit{at: 0, text: "a"}, testEdit{at: 9, text: "b"}}}
	assert.Equal(t, "2 edits", multi.Description())
}
