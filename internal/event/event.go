// internal/event/event.go
package event

import "github.com/nmelo/vellum/internal/undo"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Editing events
	TypeNoteModified    // fired after any applied, undone or redone edit
	TypeHistoryChanged  // fired when the undo/redo availability may have changed
	TypeBatchStarted    // fired when a coalescing run begins
	TypeBatchEnded      // fired when a coalescing run is committed

	// Metadata events
	TypeLabelsChanged   // fired after a label is added or removed
	TypeReminderChanged // fired after the reminder is set or cleared

	// Session lifecycle
	TypeSessionReset // fired when a session's history is cleared
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// NoteModifiedData describes an applied, undone or redone edit.
type NoteModifiedData struct {
	NoteID      string
	Description string
	Undone      bool // true when the edit was reversed rather than applied
}

// HistoryChangedData carries the fresh undo/redo snapshot so subscribers
// can enable or disable controls without calling back into the session.
type HistoryChangedData struct {
	NoteID string
	Status undo.Status
}

// LabelsChangedData carries the note's label set after the change.
type LabelsChangedData struct {
	NoteID string
	Labels []string
}

// ReminderChangedData reports whether a reminder is now present.
type ReminderChangedData struct {
	NoteID string
	Set    bool
}

// BatchData identifies the note a batch belongs to.
type BatchData struct {
	NoteID string
}

// SessionResetData identifies the session whose history was discarded.
type SessionResetData struct {
	NoteID string
}
