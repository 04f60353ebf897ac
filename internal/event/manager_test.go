package event

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nmelo/vellum/internal/undo"
)

func TestDispatchReachesSubscribers(t *testing.T) {
	m := NewManager()

	var got []Event
	m.Subscribe(TypeHistoryChanged, func(e Event) bool {
		got = append(got, e)
		return false
	})
	m.Subscribe(TypeHistoryChanged, func(e Event) bool {
		got = append(got, e)
		return false
	})

	data := HistoryChangedData{NoteID: "n1", Status: undo.Status{CanUndo: true}}
	m.Dispatch(TypeHistoryChanged, data)

	assert.Len(t, got, 2)
	assert.Equal(t, data, got[0].Data)
}

func TestDispatchIgnoresOtherTypes(t *testing.T) {
	m := NewManager()

	called := false
	m.Subscribe(TypeNoteModified, func(e Event) bool {
		called = true
		return false
	})

	m.Dispatch(TypeLabelsChanged, LabelsChangedData{NoteID: "n1"})
	assert.False(t, called)
}

func TestSubscribeDuringDispatch(t *testing.T) {
	m := NewManager()

	var lateCalls int
	m.Subscribe(TypeBatchStarted, func(e Event) bool {
		m.Subscribe(TypeBatchStarted, func(e Event) bool {
			lateCalls++
			return false
		})
		return false
	})

	m.Dispatch(TypeBatchStarted, BatchData{NoteID: "n1"})
	assert.Equal(t, 0, lateCalls, "handler added during dispatch fires next time")

	m.Dispatch(TypeBatchStarted, BatchData{NoteID: "n1"})
	assert.Equal(t, 1, lateCalls)
}
