package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"divgrid/internal/ui/input/types"
	"divgrid/internal/ui/keys"
)

// TextMode edits the number field. Keys it does not consume go to the
// shared text input.
type TextMode struct {
	keys      keys.KeyMap
	textInput *textinput.Model
}

// NewTextMode creates the input mode around the shared text field
func NewTextMode(km keys.KeyMap, ti *textinput.Model) *TextMode {
	return &TextMode{keys: km, textInput: ti}
}

// Name returns the mode name for display
func (m *TextMode) Name() string {
	return "input"
}

// Enter keeps the current text: the field holds the live bound, not a
// one-shot query.
func (m *TextMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
	}
	return nil
}

// Exit blurs the field so the grid receives the keys
func (m *TextMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

// HandleKey consumes focus switches and ctrl+c only
func (m *TextMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.Submit):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGrid}}, true
	default:
		// Returning false here means the input handler will process it
		return nil, false
	}
}
