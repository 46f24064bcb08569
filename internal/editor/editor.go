// Package editor implements the per-cell editing state machine and the
// display formatting applied to cell values.
package editor

import (
	"errors"

	"github.com/planops/ruleboard/internal/grid"
)

// CellState is the editing state of one cell.
type CellState string

const (
	StateViewing CellState = "viewing"
	StateEditing CellState = "editing"
)

var (
	// ErrLocked indicates the record is published; editing affordances are
	// suppressed entirely, not merely disabled.
	ErrLocked = errors.New("cell is locked")
	// ErrNotInlineEditable indicates the column never edits inline: rich-text
	// fields open the dialog and date fields open the picker instead.
	ErrNotInlineEditable = errors.New("field does not edit inline")
	// ErrNotEditing indicates Save or draft changes outside the Editing state.
	ErrNotEditing = errors.New("cell is not being edited")
)

// Cell tracks one cell through Viewing -> Editing -> Viewing.
type Cell struct {
	kind   grid.ColumnKind
	locked bool
	state  CellState
	value  string
	draft  string
}

// NewCell creates a cell in the Viewing state.
func NewCell(value string, kind grid.ColumnKind, locked bool) *Cell {
	return &Cell{kind: kind, locked: locked, state: StateViewing, value: value}
}

// State returns the current editing state.
func (c *Cell) State() CellState {
	return c.state
}

// Value returns the committed value.
func (c *Cell) Value() string {
	return c.value
}

// Display returns the value formatted for the Viewing state.
func (c *Cell) Display() string {
	return DisplayText(c.value, c.kind)
}

// Begin transitions to Editing, seeding the draft with the current value.
// Locked cells and identifier/computed columns refuse; rich-text and date
// columns refuse because they edit through the dialog and picker paths.
func (c *Cell) Begin() error {
	if c.locked {
		return ErrLocked
	}
	switch c.kind {
	case grid.KindIdentifier, grid.KindComputed:
		return ErrLocked
	case grid.KindRichText, grid.KindDate:
		return ErrNotInlineEditable
	}
	c.state = StateEditing
	c.draft = c.value
	return nil
}

// SetDraft updates the in-progress value.
func (c *Cell) SetDraft(v string) error {
	if c.state != StateEditing {
		return ErrNotEditing
	}
	c.draft = v
	return nil
}

// Save commits the draft and returns to Viewing. The caller is responsible
// for pushing the committed value through the update path.
func (c *Cell) Save() (string, error) {
	if c.state != StateEditing {
		return "", ErrNotEditing
	}
	c.value = c.draft
	c.state = StateViewing
	return c.value, nil
}

// Cancel discards the draft and returns to Viewing without mutation.
func (c *Cell) Cancel() {
	c.state = StateViewing
	c.draft = ""
}
