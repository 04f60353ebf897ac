// Package session implements the editing session that owns a note, its
// undo/redo history and its clipboard. All mutations flow through the
// session so that every edit is applied, recorded and announced in one
// place. A session is single-writer: callers must not mutate it from
// multiple goroutines concurrently.
package session

import (
	"fmt"

	"github.com/nmelo/vellum/internal/action"
	"github.com/nmelo/vellum/internal/clipboard"
	"github.com/nmelo/vellum/internal/config"
	"github.com/nmelo/vellum/internal/event"
	"github.com/nmelo/vellum/internal/logger"
	"github.com/nmelo/vellum/internal/note"
	"github.com/nmelo/vellum/internal/undo"
)

// Session drives all edits against one note.
type Session struct {
	note      *note.Note
	history   *undo.Manager
	events    *event.Manager
	clip      *clipboard.Register
	trimPaste bool
}

// New creates a session for n. A nil events manager gets a private bus.
func New(n *note.Note, cfg config.EditorConfig, events *event.Manager) *Session {
	if events == nil {
		events = event.NewManager()
	}
	return &Session{
		note:      n,
		history:   undo.NewManager(cfg.MaxUndoDepth),
		events:    events,
		clip:      clipboard.New(cfg.SystemClipboard),
		trimPaste: cfg.TrimPastedWhitespace,
	}
}

// Note returns the note being edited.
func (s *Session) Note() *note.Note { return s.note }

// Events returns the session's event bus.
func (s *Session) Events() *event.Manager { return s.events }

// Status snapshots undo/redo availability.
func (s *Session) Status() undo.Status { return s.history.Status() }

// record applies an edit and appends it to the history, announcing both the
// note change and the new history status.
func (s *Session) record(e action.Edit) error {
	if err := e.Apply(s.note); err != nil {
		return err
	}
	if err := s.history.Append(e); err != nil {
		// The edit already landed on the note; take it back out before
		// reporting the contract violation.
		if revErr := e.Revert(s.note); revErr != nil {
			logger.Errorf("Rollback after append failure also failed: %v", revErr)
		}
		return err
	}

	s.note.Touch()
	s.events.Dispatch(event.TypeNoteModified, event.NoteModifiedData{
		NoteID:      s.note.ID,
		Description: e.Description(),
	})
	s.notifyHistory()
	return nil
}

// Undo reverses the most recent edit. Returns false with a nil error when
// there is nothing to undo.
func (s *Session) Undo() (bool, error) {
	a, ok := s.history.Undo()
	if !ok {
		logger.DebugTagf("session", "Nothing to undo for note %s", s.note.ID)
		return false, nil
	}

	if err := s.replay(a, true); err != nil {
		// Put the cursor back so history and note state stay aligned.
		s.history.Redo()
		return false, fmt.Errorf("undo failed: %w", err)
	}

	s.note.Touch()
	s.events.Dispatch(event.TypeNoteModified, event.NoteModifiedData{
		NoteID:      s.note.ID,
		Description: a.Description(),
		Undone:      true,
	})
	s.notifyHistory()
	return true, nil
}

// Redo reapplies the most recently undone edit. Returns false with a nil
// error when there is nothing to redo.
func (s *Session) Redo() (bool, error) {
	a, ok := s.history.Redo()
	if !ok {
		logger.DebugTagf("session", "Nothing to redo for note %s", s.note.ID)
		return false, nil
	}

	if err := s.replay(a, false); err != nil {
		s.history.Undo()
		return false, fmt.Errorf("redo failed: %w", err)
	}

	s.note.Touch()
	s.events.Dispatch(event.TypeNoteModified, event.NoteModifiedData{
		NoteID:      s.note.ID,
		Description: a.Description(),
	})
	s.notifyHistory()
	return true, nil
}

// replay runs an action from the ledger against the note. Batches are
// reversed back-to-front and reapplied front-to-back.
func (s *Session) replay(a undo.Action, reverse bool) error {
	switch v := a.(type) {
	case undo.Batch:
		if reverse {
			for i := len(v.Items) - 1; i >= 0; i-- {
				if err := s.replayItem(v.Items[i], reverse); err != nil {
					return err
				}
			}
			return nil
		}
		for _, item := range v.Items {
			if err := s.replayItem(item, reverse); err != nil {
				return err
			}
		}
		return nil
	case action.Edit:
		if reverse {
			return v.Revert(s.note)
		}
		return v.Apply(s.note)
	}
	return fmt.Errorf("unknown action type %T", a)
}

func (s *Session) replayItem(item undo.ItemAction, reverse bool) error {
	e, ok := item.(action.Edit)
	if !ok {
		return fmt.Errorf("foreign action %T in batch", item)
	}
	if reverse {
		return e.Revert(s.note)
	}
	return e.Apply(s.note)
}

// BeginTyping starts coalescing fine-grained edits into one undo unit,
// typically around a run of keystrokes.
func (s *Session) BeginTyping() error {
	if err := s.history.StartBatch(); err != nil {
		return err
	}
	s.events.Dispatch(event.TypeBatchStarted, event.BatchData{NoteID: s.note.ID})
	return nil
}

// EndTyping commits the current coalescing run.
func (s *Session) EndTyping() error {
	if err := s.history.EndBatch(); err != nil {
		return err
	}
	s.events.Dispatch(event.TypeBatchEnded, event.BatchData{NoteID: s.note.ID})
	s.notifyHistory()
	return nil
}

// Reset discards the session's history, e.g. after the host reloads the
// note from elsewhere.
func (s *Session) Reset() {
	s.history.Clear()
	s.events.Dispatch(event.TypeSessionReset, event.SessionResetData{NoteID: s.note.ID})
	s.notifyHistory()
}

func (s *Session) notifyHistory() {
	s.events.Dispatch(event.TypeHistoryChanged, event.HistoryChangedData{
		NoteID: s.note.ID,
		Status: s.history.Status(),
	})
}
