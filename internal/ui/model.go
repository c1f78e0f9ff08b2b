package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"divgrid/internal/config"
	"divgrid/internal/eventbus"
	"divgrid/internal/sequence"
	"divgrid/internal/ui/input"
	"divgrid/internal/ui/input/types"
	"divgrid/internal/ui/keys"
	"divgrid/internal/ui/state"
	"divgrid/internal/ui/views"
	"divgrid/internal/widget"
)

const idleStatus = "Hover a number to highlight its divisors."

// Options configures the UI model
type Options struct {
	Config *config.Config
	Source sequence.Source // nil derives one from Config.Grid.Seed
	Bus    eventbus.EventBus
	Logger *zap.Logger
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	logger *zap.Logger
	config *config.Config
	state  *state.AppState

	widget *widget.Widget

	width    int
	height   int
	input    *input.Handler
	help     help.Model
	keyMap   keys.KeyMap
	renderer *views.Renderer
	helpText *HelpRenderer

	unsubscribe []func()
}

// NewModel creates a new UI model and the widget behind it
func NewModel(opts Options) (*Model, error) {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Bus == nil {
		opts.Bus = eventbus.New(opts.Logger)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Source == nil {
		opts.Source = sequence.NewSource(opts.Config.Grid.Seed)
	}

	keyMap := keys.DefaultKeyMap()
	m := &Model{
		bus:      opts.Bus,
		logger:   opts.Logger.Named("ui"),
		config:   opts.Config,
		state:    state.NewAppState(),
		input:    input.New(keyMap),
		help:     help.New(),
		keyMap:   keyMap,
		renderer: views.NewRenderer(),
		helpText: NewHelpRenderer(keyMap),
	}
	m.subscribe()

	w, err := widget.New(widget.Options{
		Maximum: opts.Config.Maximum,
		Start:   opts.Config.Start,
		Source:  opts.Source,
		Bus:     opts.Bus,
		Logger:  opts.Logger,
	})
	if err != nil {
		m.Close()
		return nil, fmt.Errorf("failed to create widget: %w", err)
	}
	m.widget = w

	m.input.TextInput().Placeholder = fmt.Sprintf("1-%d", opts.Config.Maximum)
	m.input.SetText(w.RawInput())

	return m, nil
}

// subscribe keeps UI-only state in step with the widget
func (m *Model) subscribe() {
	m.unsubscribe = append(m.unsubscribe,
		m.bus.Subscribe(eventbus.EventSequenceRegenerated, func(e eventbus.DomainEvent) {
			event := e.(eventbus.SequenceRegeneratedEvent)
			m.state.ResetGrid()
			if event.Bound == 0 {
				m.state.StatusMessage = ""
			} else {
				m.state.StatusMessage = fmt.Sprintf("Shuffled 1..%d. %s", event.Bound, idleStatus)
			}
		}),
		m.bus.Subscribe(eventbus.EventHighlightChanged, func(e eventbus.DomainEvent) {
			event := e.(eventbus.HighlightChangedEvent)
			m.state.StatusMessage = fmt.Sprintf("%d: %d of the shown numbers divide it", event.Target, event.Count)
		}),
		m.bus.Subscribe(eventbus.EventHighlightCleared, func(e eventbus.DomainEvent) {
			// A forced clear follows a reshuffle, whose message wins
			if e.(eventbus.HighlightClearedEvent).Forced {
				return
			}
			if m.widget != nil && m.widget.Len() > 0 {
				m.state.StatusMessage = idleStatus
			}
		}),
		m.bus.Subscribe(eventbus.EventValidationFailed, func(e eventbus.DomainEvent) {
			event := e.(eventbus.ValidationFailedEvent)
			m.logger.Debug("input rejected", zap.String("raw", event.Raw), zap.Stringer("reason", event.Reason))
		}),
	)
}

// Close detaches the model from the event bus
func (m *Model) Close() {
	for _, unsubscribe := range m.unsubscribe {
		unsubscribe()
	}
	m.unsubscribe = nil
}

// Widget returns the widget the model renders
func (m *Model) Widget() *widget.Widget {
	return m.widget
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.state.ViewportRows = views.VisibleRows(msg.Height)
		m.state.ClampViewport(m.layout().Rows)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case helpPagerMsg:
		if msg.err != nil {
			m.logger.Warn("help pager failed", zap.Error(msg.err))
			m.state.StatusMessage = fmt.Sprintf("Help unavailable: %v", msg.err)
		}
		return m, nil
	}

	// Cursor blink and other textinput messages
	return m, m.input.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	actions, cmd := m.input.HandleKey(msg, m.inputContext())

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return m, tea.Batch(cmds...)
}

// processAction executes an action emitted by the input handler
func (m *Model) processAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.QuitAction:
		return tea.Quit
	case types.UpdateTextAction:
		m.widget.SetRawInput(a.Text)
	case types.NavigateAction:
		m.moveCursor(a.Delta())
	case types.UnhoverAction:
		m.endHover()
	case types.ReshuffleAction:
		m.widget.Reshuffle()
	case types.ToggleHelpAction:
		return showHelpInPager(m.helpText.RenderHelpContent(m.widget.Maximum()))
	default:
		m.logger.Debug("unhandled action", zap.String("type", action.Type()))
	}
	return nil
}

func (m *Model) inputContext() types.Context {
	return &input.ModelContext{State: m.state, Widget: m.widget}
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	l := m.layout()

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.state.ViewportOffset--
		m.state.ClampViewport(l.Rows)
		return m, nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.state.ViewportOffset++
		m.state.ClampViewport(l.Rows)
		return m, nil
	}

	index, onCell := l.CellAt(msg.X, msg.Y, m.state.ViewportOffset, m.state.ViewportRows)
	switch msg.Action {
	case tea.MouseActionMotion:
		if onCell {
			m.hoverIndex(index)
		} else {
			m.endHover()
		}
	case tea.MouseActionPress:
		if onCell && msg.Button == tea.MouseButtonLeft {
			cmd := m.input.ChangeMode(types.ModeGrid, m.inputContext())
			m.hoverIndex(index)
			return m, cmd
		}
	}
	return m, nil
}

// moveCursor steps the keyboard cursor. The first step lands on the first
// visible cell.
func (m *Model) moveCursor(dx, dy int) {
	if m.widget.Len() == 0 {
		return
	}
	l := m.layout()

	index := m.state.ViewportOffset * l.Columns
	if m.state.HasCursor() {
		index = l.Move(m.state.Cursor, dx, dy)
	}
	m.hoverIndex(index)
}

// hoverIndex moves the cursor to index and hovers its value. Staying on
// the same value does not recompute the highlight.
func (m *Model) hoverIndex(index int) {
	value, ok := m.widget.At(index)
	if !ok {
		return
	}

	m.state.Cursor = index
	m.state.EnsureRowVisible(m.layout().RowOf(index))

	if hovered, ok := m.widget.Hovered(); ok && hovered == value {
		return
	}
	m.widget.OnHover(value)
}

// endHover clears the highlight once; repeated motion outside the grid is
// a no-op.
func (m *Model) endHover() {
	m.state.Cursor = state.NoCursor
	if _, ok := m.widget.Hovered(); ok {
		m.widget.OnHoverEnd()
	}
}

func (m *Model) layout() views.Layout {
	return views.NewLayout(m.width, m.widget.Len(), m.config.Grid.Columns)
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	hovered, _ := m.widget.Hovered()
	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Maximum:       m.widget.Maximum(),
		InputView:     m.input.TextInput().View(),
		InputFocused:  m.input.CurrentMode() == types.ModeInput,
		ErrorMessage:  m.widget.ErrorMessage(),
		Sequence:      m.widget.Sequence(),
		IsHighlighted: m.widget.IsHighlighted,
		Hovered:       hovered,
		Layout:        m.layout(),
		Offset:        m.state.ViewportOffset,
		VisibleRows:   m.state.ViewportRows,
		StatusMessage: m.state.StatusMessage,
		HelpView:      m.help.View(m.keyMap),
	})
}
