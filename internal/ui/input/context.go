package input

import (
	"divgrid/internal/ui/state"
	"divgrid/internal/widget"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State  *state.AppState
	Widget *widget.Widget
}

// HasBound reports whether a grid is on screen
func (c *ModelContext) HasBound() bool {
	return c.Widget != nil && c.Widget.Len() > 0
}

// HasCursor reports whether a cell is under the cursor
func (c *ModelContext) HasCursor() bool {
	return c.State.HasCursor()
}
