package undo

import (
	"errors"
	"fmt"
	"sync"

	"github.com/nmelo/vellum/internal/logger"
)

// PositionNone is the cursor value before the first action has been applied
// (and after undoing everything).
const PositionNone = -1

// DefaultMaxActions is the history cap used when a caller asks for the
// package default rather than an explicit bound.
const DefaultMaxActions = 100

// Contract-violation errors. Boundary conditions (nothing left to undo or
// redo) are not errors; they are reported through the ok return of
// Undo/Redo.
var (
	ErrBatchItemOnly = errors.New("undo: batch may only contain item actions")
	ErrBatchActive   = errors.New("undo: batch already active")
	ErrNoBatch       = errors.New("undo: no batch active")
)

type batchState int

const (
	stateIdle batchState = iota
	stateBatching
)

// Manager is the undo/redo ledger. The zero-ish constructor form is
// NewManager; one manager serves one editing session.
//
// Callers must serialize mutating calls: the internal mutex protects the
// ledger's own invariants, but interleaving Append with Undo/Redo from
// multiple goroutines produces an unspecified history order.
type Manager struct {
	mu         sync.Mutex
	history    []Action
	position   int
	maxActions int // 0 means unbounded
	state      batchState
	batch      []ItemAction
}

// NewManager creates a ledger holding at most maxActions entries.
// maxActions <= 0 means unbounded.
func NewManager(maxActions int) *Manager {
	if maxActions < 0 {
		maxActions = 0
	}
	return &Manager{
		history:    make([]Action, 0, maxActions),
		position:   PositionNone,
		maxActions: maxActions,
	}
}

// Append records a new action.
//
// In batch mode the action must be an ItemAction; it is merged into the last
// buffered item when the two are compatible, otherwise buffered separately.
// Nothing reaches the history until EndBatch.
//
// In normal mode any redo branch past the cursor is discarded, the oldest
// entry is evicted if the ledger is at capacity, and the action is appended
// with the cursor pointing at it.
func (m *Manager) Append(a Action) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == stateBatching {
		item, ok := a.(ItemAction)
		if !ok {
			return fmt.Errorf("%w: got %T", ErrBatchItemOnly, a)
		}
		if n := len(m.batch); n > 0 {
			if merged, ok := m.batch[n-1].Merge(item); ok {
				m.batch[n-1] = merged
				logger.DebugTagf("undo", "Merged batched action, buffer size %d", len(m.batch))
				return nil
			}
		}
		m.batch = append(m.batch, item)
		logger.DebugTagf("undo", "Buffered batched action, buffer size %d", len(m.batch))
		return nil
	}

	m.appendLocked(a)
	return nil
}

// appendLocked is the normal-mode append path. Caller holds the lock.
func (m *Manager) appendLocked(a Action) {
	// Truncate any stale redo branch before appending.
	if m.position < len(m.history)-1 {
		m.history = m.history[:m.position+1]
	}

	m.history = append(m.history, a)

	// Enforce the cap by dropping the oldest entries.
	if m.maxActions > 0 && len(m.history) > m.maxActions {
		m.history = m.history[len(m.history)-m.maxActions:]
	}

	m.position = len(m.history) - 1
	logger.DebugTagf("undo", "Recorded %q. Position: %d, Count: %d", a.Description(), m.position, len(m.history))
}

// Undo returns the most recently applied action and moves the cursor back.
// It returns false when there is nothing to undo. The action stays in the
// history; undo/redo only move the cursor.
func (m *Manager) Undo() (Action, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.position == PositionNone {
		return nil, false
	}
	a := m.history[m.position]
	m.position--
	return a, true
}

// Redo moves the cursor forward and returns the action now under it.
// It returns false when the cursor is already at the tail.
func (m *Manager) Redo() (Action, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.history) == 0 || m.position >= len(m.history)-1 {
		return nil, false
	}
	m.position++
	return m.history[m.position], true
}

// StartBatch begins accumulating item actions into one undo unit.
// Starting a batch while one is active is a contract violation.
func (m *Manager) StartBatch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == stateBatching {
		return ErrBatchActive
	}
	m.state = stateBatching
	m.batch = nil
	return nil
}

// EndBatch closes the current batch and appends it to the history as a
// single Batch action. An empty batch appends nothing. Ending without an
// active batch is a contract violation.
func (m *Manager) EndBatch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != stateBatching {
		return ErrNoBatch
	}
	m.state = stateIdle

	if len(m.batch) == 0 {
		m.batch = nil
		logger.DebugTagf("undo", "Batch ended empty, nothing recorded")
		return nil
	}

	b := Batch{Items: m.batch}
	m.batch = nil
	m.appendLocked(b)
	return nil
}

// InBatch reports whether a batch is currently being accumulated.
func (m *Manager) InBatch() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == stateBatching
}

// CanUndo returns true if there is an applied action behind the cursor.
func (m *Manager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position != PositionNone
}

// CanRedo returns true if there is an undone action ahead of the cursor.
func (m *Manager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.history) > 0 && m.position < len(m.history)-1
}

// Status snapshots both predicates in one lock acquisition.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Status{
		CanUndo: m.position != PositionNone,
		CanRedo: len(m.history) > 0 && m.position < len(m.history)-1,
	}
}

// Len returns the number of actions currently in the history.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.history)
}

// Clear resets the ledger, discarding history and any open batch.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = m.history[:0]
	m.position = PositionNone
	m.state = stateIdle
	m.batch = nil
	logger.DebugTagf("undo", "History cleared")
}
