package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"divgrid/internal/ui/input/types"
	"divgrid/internal/ui/keys"
)

// GridMode moves the cursor over the grid; the cell under it is hovered
type GridMode struct {
	keys keys.KeyMap
}

// NewGridMode creates the grid mode for the given bindings
func NewGridMode(km keys.KeyMap) *GridMode {
	return &GridMode{keys: km}
}

// Name returns the mode name for display
func (m *GridMode) Name() string {
	return "grid"
}

// Enter leaves the cursor where it was
func (m *GridMode) Enter(ctx types.Context) []types.Action {
	return nil
}

// Exit keeps the hover; esc is what ends it
func (m *GridMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// HandleKey maps grid bindings to actions. Movement and reshuffle are
// swallowed while there is no grid.
func (m *GridMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, m.keys.Focus):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeInput}}, true

	case key.Matches(msg, m.keys.Up):
		return m.navigate("up", ctx)

	case key.Matches(msg, m.keys.Down):
		return m.navigate("down", ctx)

	case key.Matches(msg, m.keys.Left):
		return m.navigate("left", ctx)

	case key.Matches(msg, m.keys.Right):
		return m.navigate("right", ctx)

	case key.Matches(msg, m.keys.Unhover):
		if ctx.HasCursor() {
			return []types.Action{types.UnhoverAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case key.Matches(msg, m.keys.Reshuffle):
		if ctx.HasBound() {
			return []types.Action{types.ReshuffleAction{}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}

// navigate needs a grid to move over
func (m *GridMode) navigate(direction string, ctx types.Context) ([]types.Action, bool) {
	if !ctx.HasBound() {
		return nil, true
	}
	return []types.Action{types.NavigateAction{Direction: direction}}, true
}
