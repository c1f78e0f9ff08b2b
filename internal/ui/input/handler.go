package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"divgrid/internal/ui/input/modes"
	"divgrid/internal/ui/input/types"
	"divgrid/internal/ui/keys"
)

// Handler routes key presses to the active mode and turns them into actions
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // The number field
}

// New creates a handler that starts in input mode with the field focused
func New(km keys.KeyMap) *Handler {
	ti := textinput.New()
	ti.Prompt = "" // Label is rendered by the view
	ti.CharLimit = 32
	ti.Width = 12
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeInput,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeInput] = modes.NewTextMode(km, h.textInput)
	h.modes[types.ModeGrid] = modes.NewGridMode(km)

	return h
}

// HandleKey runs msg through the current mode. Keys the text mode leaves
// alone edit the field and yield an UpdateTextAction when the value changes.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	// Handle mode changes
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			var enterActions []types.Action
			enterActions, cmd = h.changeMode(changeMode.Mode, ctx)
			allActions = append(allActions, enterActions...)
		} else {
			allActions = append(allActions, action)
		}
	}

	// If we're in a text mode and didn't handle the key, pass it to text input
	if h.isTextMode(h.currentMode) && !consumed {
		before := h.textInput.Value()
		*h.textInput, cmd = h.textInput.Update(msg)
		if after := h.textInput.Value(); after != before {
			allActions = append(allActions, types.UpdateTextAction{Text: after})
		}
	}

	return allActions, cmd
}

// ChangeMode switches modes outside of a key press, e.g. on a mouse click
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) tea.Cmd {
	_, cmd := h.changeMode(mode, ctx)
	return cmd
}

func (h *Handler) changeMode(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	if mode == h.currentMode {
		return nil, nil
	}

	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}

	h.currentMode = mode

	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}

	var cmd tea.Cmd
	if h.isTextMode(mode) {
		cmd = textinput.Blink
	}
	return actions, cmd
}

// CurrentMode returns the active mode
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// TextInput returns the number field
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// SetText replaces the field's content without emitting an update
func (h *Handler) SetText(text string) {
	h.textInput.SetValue(text)
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeInput
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
