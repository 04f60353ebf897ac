package action

import (
	"fmt"

	"github.com/nmelo/vellum/internal/note"
	"github.com/nmelo/vellum/internal/undo"
)

// EditKind indicates whether text was inserted or deleted.
type EditKind int

const (
	Insert EditKind = iota
	Delete
)

// TextEdit is a single text edit against one field of a note. At is a rune
// offset; Text is the inserted or removed text. For Delete, Text records
// what was removed so Revert can put it back.
type TextEdit struct {
	Field note.Field
	Item  int // checklist item index, meaningful only for note.FieldItem
	Kind  EditKind
	At    int
	Text  string
}

// Apply performs the edit on the note.
func (e TextEdit) Apply(n *note.Note) error {
	switch e.Kind {
	case Insert:
		return e.splice(n, func(s string) (string, error) {
			return note.InsertText(s, e.At, e.Text)
		})
	case Delete:
		return e.splice(n, func(s string) (string, error) {
			out, removed, err := note.DeleteText(s, e.At, note.RuneLen(e.Text))
			if err != nil {
				return s, err
			}
			if removed != e.Text {
				return s, fmt.Errorf("delete mismatch at %d: expected %q, found %q", e.At, e.Text, removed)
			}
			return out, nil
		})
	}
	return fmt.Errorf("unknown edit kind %d", e.Kind)
}

// Revert undoes the edit on the note.
func (e TextEdit) Revert(n *note.Note) error {
	inverse := e
	if e.Kind == Insert {
		inverse.Kind = Delete
	} else {
		inverse.Kind = Insert
	}
	return inverse.Apply(n)
}

// splice reads the target field, transforms it, and writes it back.
func (e TextEdit) splice(n *note.Note, fn func(string) (string, error)) error {
	switch e.Field {
	case note.FieldTitle:
		out, err := fn(n.Title)
		if err != nil {
			return err
		}
		n.Title = out
	case note.FieldBody:
		out, err := fn(n.Body)
		if err != nil {
			return err
		}
		n.Body = out
	case note.FieldItem:
		item, err := n.Item(e.Item)
		if err != nil {
			return err
		}
		out, err := fn(item.Text)
		if err != nil {
			return err
		}
		n.Items[e.Item].Text = out
	default:
		return fmt.Errorf("unknown field %d", e.Field)
	}
	return nil
}

// Merge coalesces two adjacent edits of the same kind on the same field:
// an insert ending where the next begins, a forward delete repeated at the
// same offset, or a backspace run deleting right-to-left.
func (e TextEdit) Merge(next undo.ItemAction) (undo.ItemAction, bool) {
	o, ok := next.(TextEdit)
	if !ok || o.Field != e.Field || o.Item != e.Item || o.Kind != e.Kind {
		return nil, false
	}

	switch e.Kind {
	case Insert:
		if o.At == e.At+note.RuneLen(e.Text) {
			merged := e
			merged.Text = e.Text + o.Text
			return merged, true
		}
	case Delete:
		if o.At == e.At {
			// Forward delete: successive removals at the same offset.
			merged := e
			merged.Text = e.Text + o.Text
			return merged, true
		}
		if o.At+note.RuneLen(o.Text) == e.At {
			// Backspace: the next removal ends where this one began.
			merged := e
			merged.At = o.At
			merged.Text = o.Text + e.Text
			return merged, true
		}
	}
	return nil, false
}

// Description returns a short summary of the edit.
func (e TextEdit) Description() string {
	count := note.GraphemeLen(e.Text)
	verb := "insert"
	if e.Kind == Delete {
		verb = "delete"
	}
	if count == 1 {
		return fmt.Sprintf("%s %q in %s", verb, e.Text, e.Field)
	}
	return fmt.Sprintf("%s %d characters in %s", verb, count, e.Field)
}
