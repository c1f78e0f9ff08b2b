package ui

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"divgrid/internal/config"
	"divgrid/internal/sequence"
	"divgrid/internal/ui/input/types"
	"divgrid/internal/ui/keys"
	"divgrid/internal/ui/views"
)

func newTestModel(t *testing.T, maximum, start, columns int) *Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Maximum = maximum
	cfg.Start = start
	cfg.Grid.Columns = columns

	m, err := NewModel(Options{Config: cfg, Source: sequence.NewSource(5)})
	require.NoError(t, err)
	t.Cleanup(m.Close)

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return m
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *Model, kt tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: kt})
	return cmd
}

// cellPoint returns the screen position of the cell at index
func cellPoint(m *Model, index int) (int, int) {
	l := m.layout()
	row := l.RowOf(index) - m.state.ViewportOffset
	col := index % l.Columns
	return l.OriginX() + col*(l.CellWidth+1), l.OriginY() + row
}

func hoverMouse(m *Model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
}

func divisorsIn(seq []int, target int) []int {
	var out []int
	for _, v := range seq {
		if target%v == 0 {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}

func TestNewModelRejectsBadConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Maximum = 0

	_, err := NewModel(Options{Config: cfg})
	assert.Error(t, err)
}

func TestViewBeforeSize(t *testing.T) {
	cfg := config.DefaultConfig()
	m, err := NewModel(Options{Config: cfg})
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, "Loading...", m.View())
}

func TestInitialView(t *testing.T) {
	m := newTestModel(t, 1000, 100, 0)

	out := m.View()
	assert.Contains(t, out, "divgrid")
	assert.Contains(t, out, "Numbers up to: 100")
	assert.Contains(t, out, "Shuffled 1..100")
	assert.Equal(t, 100, m.Widget().Len())
	assert.Equal(t, types.ModeInput, m.input.CurrentMode())
}

func TestTypingUpdatesWidget(t *testing.T) {
	m := newTestModel(t, 1000, 100, 0)

	press(m, tea.KeyBackspace)
	assert.Equal(t, 10, m.Widget().Bound())

	press(m, tea.KeyBackspace)
	press(m, tea.KeyBackspace)
	assert.Empty(t, m.Widget().RawInput())
	assert.Zero(t, m.Widget().Len())
	assert.Empty(t, m.Widget().ErrorMessage())

	typeText(m, "0")
	assert.Equal(t, "Please enter a valid positive integer.", m.Widget().ErrorMessage())
	assert.Contains(t, m.View(), "Please enter a valid positive integer.")

	press(m, tea.KeyBackspace)
	typeText(m, "1001")
	assert.Equal(t, "Please enter a number less than or equal to 1000.", m.Widget().ErrorMessage())

	press(m, tea.KeyBackspace)
	press(m, tea.KeyBackspace)
	press(m, tea.KeyBackspace)
	press(m, tea.KeyBackspace)
	typeText(m, "50")
	assert.Equal(t, 50, m.Widget().Bound())
	assert.Empty(t, m.Widget().ErrorMessage())
	assert.Equal(t, 50, m.Widget().Len())
}

func TestMouseHoverHighlightsDivisors(t *testing.T) {
	m := newTestModel(t, 100, 24, 6)
	seq := m.Widget().Sequence()

	for _, index := range []int{0, 7, 23} {
		x, y := cellPoint(m, index)
		hoverMouse(m, x, y)

		value := seq[index]
		hovered, ok := m.Widget().Hovered()
		require.True(t, ok)
		assert.Equal(t, value, hovered)
		assert.Equal(t, divisorsIn(seq, value), m.Widget().Highlighted())
		assert.Equal(t, index, m.state.Cursor)
	}
}

func TestMouseLeavingGridClearsHighlight(t *testing.T) {
	m := newTestModel(t, 100, 24, 6)

	x, y := cellPoint(m, 3)
	hoverMouse(m, x, y)
	require.NotEmpty(t, m.Widget().Highlighted())

	// gap between two cells
	hoverMouse(m, x+m.layout().CellWidth, y)
	assert.Empty(t, m.Widget().Highlighted())
	assert.False(t, m.state.HasCursor())

	hoverMouse(m, x, y)
	require.NotEmpty(t, m.Widget().Highlighted())
	hoverMouse(m, 0, 0)
	assert.Empty(t, m.Widget().Highlighted())
	assert.Equal(t, idleStatus, m.state.StatusMessage)
}

func TestMouseMotionDoesNotReshuffle(t *testing.T) {
	m := newTestModel(t, 100, 40, 8)
	before := m.Widget().Sequence()

	for i := 0; i < 40; i++ {
		x, y := cellPoint(m, i)
		hoverMouse(m, x, y)
	}
	hoverMouse(m, 0, 0)

	assert.Equal(t, before, m.Widget().Sequence())
}

func TestKeyboardCursor(t *testing.T) {
	m := newTestModel(t, 100, 20, 5)
	seq := m.Widget().Sequence()

	press(m, tea.KeyTab)
	require.Equal(t, types.ModeGrid, m.input.CurrentMode())

	press(m, tea.KeyRight)
	assert.Equal(t, 0, m.state.Cursor, "first move lands on the first cell")
	hovered, _ := m.Widget().Hovered()
	assert.Equal(t, seq[0], hovered)

	press(m, tea.KeyRight)
	press(m, tea.KeyDown)
	assert.Equal(t, 6, m.state.Cursor)
	hovered, _ = m.Widget().Hovered()
	assert.Equal(t, seq[6], hovered)
	assert.Equal(t, divisorsIn(seq, seq[6]), m.Widget().Highlighted())

	press(m, tea.KeyEscape)
	assert.Empty(t, m.Widget().Highlighted())
	assert.False(t, m.state.HasCursor())
}

func TestTypingWhileHoveringClearsHighlight(t *testing.T) {
	m := newTestModel(t, 100, 30, 6)

	x, y := cellPoint(m, 4)
	hoverMouse(m, x, y)
	require.NotEmpty(t, m.Widget().Highlighted())

	press(m, tea.KeyBackspace)

	assert.Equal(t, 3, m.Widget().Bound())
	assert.Empty(t, m.Widget().Highlighted())
	assert.False(t, m.state.HasCursor())
	assert.Contains(t, m.state.StatusMessage, "Shuffled 1..3")
}

func TestClickFocusesGrid(t *testing.T) {
	m := newTestModel(t, 100, 12, 4)

	x, y := cellPoint(m, 5)
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.Equal(t, types.ModeGrid, m.input.CurrentMode())
	assert.Equal(t, 5, m.state.Cursor)
}

func TestFocusSwitching(t *testing.T) {
	m := newTestModel(t, 100, 12, 0)

	press(m, tea.KeyEnter)
	assert.Equal(t, types.ModeGrid, m.input.CurrentMode())

	// typing in the grid does not reach the input
	typeText(m, "7")
	assert.Equal(t, "12", m.Widget().RawInput())

	press(m, tea.KeyTab)
	assert.Equal(t, types.ModeInput, m.input.CurrentMode())
	typeText(m, "7")
	assert.Equal(t, "127", m.Widget().RawInput())
	assert.Equal(t, "Please enter a number less than or equal to 100.", m.Widget().ErrorMessage())
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, 100, 12, 0)

	// q is text while the input has focus
	typeText(m, "q")
	assert.Equal(t, "12q", m.Widget().RawInput())

	cmd := press(m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	press(m, tea.KeyTab)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestReshuffleKey(t *testing.T) {
	m := newTestModel(t, 1000, 200, 0)
	before := m.Widget().Sequence()

	press(m, tea.KeyTab)
	press(m, tea.KeyDown)
	require.NotEmpty(t, m.Widget().Highlighted())
	typeText(m, "r")

	assert.NotEqual(t, before, m.Widget().Sequence())
	assert.Empty(t, m.Widget().Highlighted())
	assert.False(t, m.state.HasCursor())
}

func TestWheelScrolls(t *testing.T) {
	m := newTestModel(t, 1000, 1000, 10)
	rows := m.layout().Rows
	require.Greater(t, rows, m.state.ViewportRows)

	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 2, m.state.ViewportOffset)

	// hovering the first visible row now hits row 2
	x, y := cellPoint(m, 20)
	hoverMouse(m, x, y)
	assert.Equal(t, 20, m.state.Cursor)

	for i := 0; i < rows*2; i++ {
		m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	}
	assert.Equal(t, rows-m.state.ViewportRows, m.state.ViewportOffset)

	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, rows-m.state.ViewportRows-1, m.state.ViewportOffset)
}

func TestCursorScrollsIntoView(t *testing.T) {
	m := newTestModel(t, 1000, 1000, 10)
	press(m, tea.KeyTab)

	for i := 0; i < m.state.ViewportRows+3; i++ {
		press(m, tea.KeyDown)
	}

	row := m.layout().RowOf(m.state.Cursor)
	assert.GreaterOrEqual(t, row, m.state.ViewportOffset)
	assert.Less(t, row, m.state.ViewportOffset+m.state.ViewportRows)
	assert.Positive(t, m.state.ViewportOffset)
}

func TestHelpKeyOpensPager(t *testing.T) {
	m := newTestModel(t, 100, 12, 0)
	press(m, tea.KeyTab)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.NotNil(t, cmd)

	m.Update(helpPagerMsg{err: errors.New("no tty")})
	assert.Equal(t, "Help unavailable: no tty", m.state.StatusMessage)
}

func TestHelpContentListsBindings(t *testing.T) {
	content := NewHelpRenderer(keys.DefaultKeyMap()).RenderHelpContent(500)

	assert.Contains(t, content, "from 1 to 500")
	for _, want := range []string{"reshuffle", "clear highlight", "input/grid", "quit"} {
		assert.True(t, strings.Contains(content, want), "missing %q", want)
	}
}

func TestViewMarksHoveredRow(t *testing.T) {
	m := newTestModel(t, 100, 12, 4)

	x, y := cellPoint(m, 2)
	hoverMouse(m, x, y)
	hovered, _ := m.Widget().Hovered()

	lines := strings.Split(m.View(), "\n")
	require.Greater(t, len(lines), views.PaddingTop+views.HeaderLines)
	assert.Contains(t, m.state.StatusMessage, "of the shown numbers divide it")
	assert.Contains(t, lines[y], strconv.Itoa(hovered))
}
