// Package note defines the note data model that editing sessions operate on.
package note

import (
	"fmt"
	"time"
)

// Kind distinguishes the two note body modes.
type Kind int

const (
	KindText Kind = iota
	KindChecklist
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindChecklist:
		return "checklist"
	}
	return "unknown"
}

// Field identifies which text field of a note an edit targets.
type Field int

const (
	FieldTitle Field = iota
	FieldBody
	FieldItem // text of a checklist item, selected by index
)

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldBody:
		return "body"
	case FieldItem:
		return "item"
	}
	return "unknown"
}

// ChecklistItem is one entry of a checklist-mode note.
type ChecklistItem struct {
	Text    string
	Checked bool
}

// Note is a single note. Text-mode notes use Body; checklist-mode notes use
// Items. Title, labels, reminder and display metadata apply to both.
type Note struct {
	ID    string
	Title string
	Kind  Kind

	Body  string
	Items []ChecklistItem

	Labels   []string
	Reminder *Reminder
	Color    string
	Pinned   bool

	Created time.Time
	Updated time.Time
}

// New creates an empty text-mode note stamped with now.
func New(id string) *Note {
	now := time.Now()
	return &Note{
		ID:      id,
		Kind:    KindText,
		Created: now,
		Updated: now,
	}
}

// NewChecklist creates an empty checklist-mode note stamped with now.
func NewChecklist(id string) *Note {
	n := New(id)
	n.Kind = KindChecklist
	return n
}

// Touch updates the modification timestamp.
func (n *Note) Touch() {
	n.Updated = time.Now()
}

// HasLabel reports whether the note carries the given label.
func (n *Note) HasLabel(label string) bool {
	for _, l := range n.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// AddLabel appends a label; adding an existing label is a no-op.
func (n *Note) AddLabel(label string) {
	if n.HasLabel(label) {
		return
	}
	n.Labels = append(n.Labels, label)
}

// RemoveLabel removes a label if present; order of the rest is preserved.
func (n *Note) RemoveLabel(label string) {
	for i, l := range n.Labels {
		if l == label {
			n.Labels = append(n.Labels[:i], n.Labels[i+1:]...)
			return
		}
	}
}

// Item returns the checklist item at index.
func (n *Note) Item(index int) (ChecklistItem, error) {
	if index < 0 || index >= len(n.Items) {
		return ChecklistItem{}, fmt.Errorf("checklist index %d out of range [0,%d)", index, len(n.Items))
	}
	return n.Items[index], nil
}

// InsertItem inserts a checklist item at index, shifting later items down.
// index == len(Items) appends.
func (n *Note) InsertItem(index int, item ChecklistItem) error {
	if index < 0 || index > len(n.Items) {
		return fmt.Errorf("checklist insert index %d out of range [0,%d]", index, len(n.Items))
	}
	n.Items = append(n.Items, ChecklistItem{})
	copy(n.Items[index+1:], n.Items[index:])
	n.Items[index] = item
	return nil
}

// RemoveItem removes the checklist item at index.
func (n *Note) RemoveItem(index int) (ChecklistItem, error) {
	item, err := n.Item(index)
	if err != nil {
		return ChecklistItem{}, err
	}
	n.Items = append(n.Items[:index], n.Items[index+1:]...)
	return item, nil
}

// MoveItem moves the item at from to position to, shifting items in between.
func (n *Note) MoveItem(from, to int) error {
	if from < 0 || from >= len(n.Items) {
		return fmt.Errorf("checklist move source %d out of range [0,%d)", from, len(n.Items))
	}
	if to < 0 || to >= len(n.Items) {
		return fmt.Errorf("checklist move target %d out of range [0,%d)", to, len(n.Items))
	}
	if from == to {
		return nil
	}
	item := n.Items[from]
	n.Items = append(n.Items[:from], n.Items[from+1:]...)
	n.Items = append(n.Items, ChecklistItem{})
	copy(n.Items[to+1:], n.Items[to:])
	n.Items[to] = item
	return nil
}
