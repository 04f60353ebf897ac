package action

import (
	"fmt"

	"github.com/nmelo/vellum/internal/note"
	"github.com/nmelo/vellum/internal/undo"
)

// LabelAdd attaches a label to the note.
type LabelAdd struct {
	Label string
}

func (a LabelAdd) Apply(n *note.Note) error {
	if n.HasLabel(a.Label) {
		return fmt.Errorf("label %q already present", a.Label)
	}
	n.AddLabel(a.Label)
	return nil
}

func (a LabelAdd) Revert(n *note.Note) error {
	n.RemoveLabel(a.Label)
	return nil
}

func (a LabelAdd) Merge(next undo.ItemAction) (undo.ItemAction, bool) {
	return nil, false
}

func (a LabelAdd) Description() string {
	return fmt.Sprintf("add label %q", a.Label)
}

// LabelRemove detaches a label from the note.
type LabelRemove struct {
	Label string
}

func (a LabelRemove) Apply(n *note.Note) error {
	if !n.HasLabel(a.Label) {
		return fmt.Errorf("label %q not present", a.Label)
	}
	n.RemoveLabel(a.Label)
	return nil
}

func (a LabelRemove) Revert(n *note.Note) error {
	n.AddLabel(a.Label)
	return nil
}

func (a LabelRemove) Merge(next undo.ItemAction) (undo.ItemAction, bool) {
	return nil, false
}

func (a LabelRemove) Description() string {
	return fmt.Sprintf("remove label %q", a.Label)
}

// SetReminder replaces the note's reminder. Old and New may each be nil
// (no reminder).
type SetReminder struct {
	Old *note.Reminder
	New *note.Reminder
}

func (a SetReminder) Apply(n *note.Note) error {
	n.Reminder = a.New
	return nil
}

func (a SetReminder) Revert(n *note.Note) error {
	n.Reminder = a.Old
	return nil
}

// Merge collapses consecutive reminder changes into one, keeping the
// original Old and the latest New.
func (a SetReminder) Merge(next undo.ItemAction) (undo.ItemAction, bool) {
	o, ok := next.(SetReminder)
	if !ok {
		return nil, false
	}
	return SetReminder{Old: a.Old, New: o.New}, true
}

func (a SetReminder) Description() string {
	if a.New == nil {
		return "clear reminder"
	}
	return "set reminder"
}

// SetColor replaces the note's display color.
type SetColor struct {
	Old string
	New string
}

func (a SetColor) Apply(n *note.Note) error {
	n.Color = a.New
	return nil
}

func (a SetColor) Revert(n *note.Note) error {
	n.Color = a.Old
	return nil
}

// Merge collapses consecutive color changes the same way SetReminder does.
func (a SetColor) Merge(next undo.ItemAction) (undo.ItemAction, bool) {
	o, ok := next.(SetColor)
	if !ok {
		return nil, false
	}
	return SetColor{Old: a.Old, New: o.New}, true
}

func (a SetColor) Description() string {
	return fmt.Sprintf("set color %q", a.New)
}

// SetPinned changes the note's pin state.
type SetPinned struct {
	Old bool
	New bool
}

func (a SetPinned) Apply(n *note.Note) error {
	n.Pinned = a.New
	return nil
}

func (a SetPinned) Revert(n *note.Note) error {
	n.Pinned = a.Old
	return nil
}

func (a SetPinned) Merge(next undo.ItemAction) (undo.ItemAction, bool) {
	return nil, false
}

func (a SetPinned) Description() string {
	if a.New {
		return "pin note"
	}
	return "unpin note"
}
