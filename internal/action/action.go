// Package action defines the concrete reversible edits recorded by an
// editing session. Each action knows how to apply and revert itself against
// a note; the undo ledger stores them opaquely.
package action

import (
	"github.com/nmelo/vellum/internal/note"
	"github.com/nmelo/vellum/internal/undo"
)

// Edit is implemented by every action in this package. Apply performs the
// edit's forward effect on the note; Revert undoes it. Both directions must
// be exact inverses so that replaying the ledger in either direction is
// deterministic.
type Edit interface {
	undo.ItemAction

	Apply(n *note.Note) error
	Revert(n *note.Note) error
}

var (
	_ Edit = TextEdit{}
	_ Edit = ItemInsert{}
	_ Edit = ItemRemove{}
	_ Edit = ItemToggle{}
	_ Edit = ItemMove{}
	_ Edit = LabelAdd{}
	_ Edit = LabelRemove{}
	_ Edit = SetReminder{}
	_ Edit = SetColor{}
	_ Edit = SetPinned{}
)
