package action

import (
	"fmt"

	"github.com/nmelo/vellum/internal/note"
	"github.com/nmelo/vellum/internal/undo"
)

// ItemInsert adds a checklist item at Index.
type ItemInsert struct {
	Index int
	Item  note.ChecklistItem
}

func (a ItemInsert) Apply(n *note.Note) error {
	return n.InsertItem(a.Index, a.Item)
}

func (a ItemInsert) Revert(n *note.Note) error {
	_, err := n.RemoveItem(a.Index)
	return err
}

func (a ItemInsert) Merge(next undo.ItemAction) (undo.ItemAction, bool) {
	return nil, false
}

func (a ItemInsert) Description() string {
	return fmt.Sprintf("add checklist item at %d", a.Index)
}

// ItemRemove deletes the checklist item at Index. Item records what was
// removed so Revert can restore it.
type ItemRemove struct {
	Index int
	Item  note.ChecklistItem
}

func (a ItemRemove) Apply(n *note.Note) error {
	removed, err := n.RemoveItem(a.Index)
	if err != nil {
		return err
	}
	if removed != a.Item {
		return fmt.Errorf("remove mismatch at %d: expected %+v, found %+v", a.Index, a.Item, removed)
	}
	return nil
}

func (a ItemRemove) Revert(n *note.Note) error {
	return n.InsertItem(a.Index, a.Item)
}

func (a ItemRemove) Merge(next undo.ItemAction) (undo.ItemAction, bool) {
	return nil, false
}

func (a ItemRemove) Description() string {
	return fmt.Sprintf("remove checklist item at %d", a.Index)
}

// ItemToggle flips the checked state of the item at Index. Self-inverse.
type ItemToggle struct {
	Index int
}

func (a ItemToggle) Apply(n *note.Note) error {
	if _, err := n.Item(a.Index); err != nil {
		return err
	}
	n.Items[a.Index].Checked = !n.Items[a.Index].Checked
	return nil
}

func (a ItemToggle) Revert(n *note.Note) error {
	return a.Apply(n)
}

func (a ItemToggle) Merge(next undo.ItemAction) (undo.ItemAction, bool) {
	return nil, false
}

func (a ItemToggle) Description() string {
	return fmt.Sprintf("toggle checklist item at %d", a.Index)
}

// ItemMove relocates a checklist item from From to To.
type ItemMove struct {
	From int
	To   int
}

func (a ItemMove) Apply(n *note.Note) error {
	return n.MoveItem(a.From, a.To)
}

func (a ItemMove) Revert(n *note.Note) error {
	return n.MoveItem(a.To, a.From)
}

func (a ItemMove) Merge(next undo.ItemAction) (undo.ItemAction, bool) {
	return nil, false
}

func (a ItemMove) Description() string {
	return fmt.Sprintf("move checklist item %d to %d", a.From, a.To)
}
