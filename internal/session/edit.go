package session

import (
	"fmt"
	"strings"

	"github.com/nmelo/vellum/internal/action"
	"github.com/nmelo/vellum/internal/event"
	"github.com/nmelo/vellum/internal/note"
)

// fieldText reads the text of an addressable field.
func (s *Session) fieldText(field note.Field, item int) (string, error) {
	switch field {
	case note.FieldTitle:
		return s.note.Title, nil
	case note.FieldBody:
		return s.note.Body, nil
	case note.FieldItem:
		it, err := s.note.Item(item)
		if err != nil {
			return "", err
		}
		return it.Text, nil
	}
	return "", fmt.Errorf("unknown field %d", field)
}

// InsertText inserts text at rune offset at within the given field. The
// item index is only meaningful for note.FieldItem.
func (s *Session) InsertText(field note.Field, item, at int, text string) error {
	if text == "" {
		return nil
	}
	return s.record(action.TextEdit{
		Field: field,
		Item:  item,
		Kind:  action.Insert,
		At:    at,
		Text:  text,
	})
}

// DeleteText removes count runes at rune offset at within the given field.
func (s *Session) DeleteText(field note.Field, item, at, count int) error {
	if count == 0 {
		return nil
	}
	current, err := s.fieldText(field, item)
	if err != nil {
		return err
	}
	removed, err := note.SliceText(current, at, at+count)
	if err != nil {
		return err
	}
	return s.record(action.TextEdit{
		Field: field,
		Item:  item,
		Kind:  action.Delete,
		At:    at,
		Text:  removed,
	})
}

// InsertItem adds a checklist item at index. index == item count appends.
func (s *Session) InsertItem(index int, text string) error {
	return s.record(action.ItemInsert{
		Index: index,
		Item:  note.ChecklistItem{Text: text},
	})
}

// AppendItem adds a checklist item at the end.
func (s *Session) AppendItem(text string) error {
	return s.InsertItem(len(s.note.Items), text)
}

// RemoveItem deletes the checklist item at index.
func (s *Session) RemoveItem(index int) error {
	item, err := s.note.Item(index)
	if err != nil {
		return err
	}
	return s.record(action.ItemRemove{Index: index, Item: item})
}

// ToggleItem flips the checked state of the checklist item at index.
func (s *Session) ToggleItem(index int) error {
	return s.record(action.ItemToggle{Index: index})
}

// MoveItem relocates a checklist item.
func (s *Session) MoveItem(from, to int) error {
	if from == to {
		return nil
	}
	return s.record(action.ItemMove{From: from, To: to})
}

// AddLabel attaches a label. Adding a label the note already carries is a
// no-op and records nothing.
func (s *Session) AddLabel(label string) error {
	if s.note.HasLabel(label) {
		return nil
	}
	if err := s.record(action.LabelAdd{Label: label}); err != nil {
		return err
	}
	s.events.Dispatch(event.TypeLabelsChanged, event.LabelsChangedData{
		NoteID: s.note.ID,
		Labels: s.note.Labels,
	})
	return nil
}

// RemoveLabel detaches a label. Removing an absent label is a no-op.
func (s *Session) RemoveLabel(label string) error {
	if !s.note.HasLabel(label) {
		return nil
	}
	if err := s.record(action.LabelRemove{Label: label}); err != nil {
		return err
	}
	s.events.Dispatch(event.TypeLabelsChanged, event.LabelsChangedData{
		NoteID: s.note.ID,
		Labels: s.note.Labels,
	})
	return nil
}

// SetReminder schedules or replaces the note's reminder.
func (s *Session) SetReminder(r note.Reminder) error {
	newRem := &r
	if s.note.Reminder.Equal(newRem) {
		return nil
	}
	if err := s.record(action.SetReminder{Old: s.note.Reminder, New: newRem}); err != nil {
		return err
	}
	s.events.Dispatch(event.TypeReminderChanged, event.ReminderChangedData{
		NoteID: s.note.ID,
		Set:    true,
	})
	return nil
}

// ClearReminder removes the note's reminder if one is set.
func (s *Session) ClearReminder() error {
	if s.note.Reminder == nil {
		return nil
	}
	if err := s.record(action.SetReminder{Old: s.note.Reminder, New: nil}); err != nil {
		return err
	}
	s.events.Dispatch(event.TypeReminderChanged, event.ReminderChangedData{
		NoteID: s.note.ID,
		Set:    false,
	})
	return nil
}

// SetColor changes the note's display color.
func (s *Session) SetColor(color string) error {
	if s.note.Color == color {
		return nil
	}
	return s.record(action.SetColor{Old: s.note.Color, New: color})
}

// SetPinned changes the note's pin state.
func (s *Session) SetPinned(pinned bool) error {
	if s.note.Pinned == pinned {
		return nil
	}
	return s.record(action.SetPinned{Old: s.note.Pinned, New: pinned})
}

// Copy places the rune span [start,end) of a field in the clipboard.
func (s *Session) Copy(field note.Field, item, start, end int) error {
	text, err := s.fieldText(field, item)
	if err != nil {
		return err
	}
	span, err := note.SliceText(text, start, end)
	if err != nil {
		return err
	}
	return s.clip.Write(span)
}

// Cut copies the span and then deletes it as an undoable edit.
func (s *Session) Cut(field note.Field, item, start, end int) error {
	if err := s.Copy(field, item, start, end); err != nil {
		return err
	}
	return s.DeleteText(field, item, start, end-start)
}

// Paste inserts the clipboard contents at rune offset at.
func (s *Session) Paste(field note.Field, item, at int) error {
	text, err := s.clip.Read()
	if err != nil {
		return err
	}
	if s.trimPaste {
		text = strings.TrimSpace(text)
	}
	return s.InsertText(field, item, at, text)
}
