// Package undo provides the sequential undo/redo ledger for an editing
// session. The ledger stores opaque reversible actions and hands them back
// unchanged on undo/redo; applying or reversing their effect is the owner's
// concern. Merging during batch accumulation is the only way the ledger
// ever combines actions, and even that is delegated to the actions
// themselves.
package undo

import "fmt"

// Action is one reversible edit recorded in the history. The ledger never
// inspects an action beyond its description.
type Action interface {
	// Description returns a short human-readable summary of the edit.
	Description() string
}

// ItemAction is a fine-grained action eligible for coalescing while a batch
// is being accumulated.
type ItemAction interface {
	Action

	// Merge attempts to combine this action with the one recorded
	// immediately after it. It returns the combined action and true when
	// the two are adjacent and compatible, or false when the caller must
	// keep both separately. Only the most recently buffered action is ever
	// offered a merge, so the cost per append stays constant.
	Merge(next ItemAction) (ItemAction, bool)
}

// Batch is an ordered run of item actions recorded as a single undo unit.
// On undo the owner reverses the items back-to-front; on redo it applies
// them front-to-back.
type Batch struct {
	Items []ItemAction
}

// Description returns the single item's description, or a count.
func (b Batch) Description() string {
	if len(b.Items) == 1 {
		return b.Items[0].Description()
	}
	return fmt.Sprintf("%d edits", len(b.Items))
}

// Len returns the number of items in the batch.
func (b Batch) Len() int { return len(b.Items) }

// Status is a read-only snapshot of the undo/redo predicates, polled by
// owners to enable or disable their undo/redo controls.
type Status struct {
	CanUndo bool
	CanRedo bool
}
