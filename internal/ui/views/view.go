package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Maximum      int
	InputView    string
	InputFocused bool
	ErrorMessage string

	Sequence      []int
	IsHighlighted func(int) bool
	Hovered       int // 0 when nothing is hovered
	Layout        Layout
	Offset        int
	VisibleRows   int

	StatusMessage string
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the styles in use
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view. Line positions must stay in step with
// the constants in layout.go, which mouse hit-testing relies on.
func (r *Renderer) Render(state ViewState) string {
	lines := make([]string, 0, HeaderLines+state.VisibleRows+FooterLines)

	lines = append(lines, r.renderTitle(state))
	lines = append(lines, "")
	lines = append(lines, r.renderInput(state))
	lines = append(lines, r.styles.Error.Render(state.ErrorMessage))
	lines = append(lines, "")

	lines = append(lines, r.renderGrid(state)...)

	lines = append(lines, "")
	lines = append(lines, r.styles.Status.Render(state.StatusMessage))
	lines = append(lines, r.styles.Help.Render(state.HelpView))

	return r.styles.Main.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("divgrid")
	right := r.styles.Dim.Render(fmt.Sprintf("max %d", state.Maximum))

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	padding := termWidth - 2*PaddingLeft - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderInput(state ViewState) string {
	label := r.styles.Label.Render("Numbers up to: ")
	if state.InputFocused {
		label = r.styles.LabelFocused.Render("Numbers up to: ")
	}
	return label + state.InputView
}

// renderGrid always returns exactly VisibleRows lines so the footer does
// not move while scrolling.
func (r *Renderer) renderGrid(state ViewState) []string {
	rows := make([]string, 0, state.VisibleRows)
	l := state.Layout

	for i := 0; i < state.VisibleRows; i++ {
		row := state.Offset + i
		if len(state.Sequence) == 0 || row >= l.Rows {
			rows = append(rows, "")
			continue
		}

		var b strings.Builder
		start := row * l.Columns
		end := min(start+l.Columns, len(state.Sequence))
		for idx := start; idx < end; idx++ {
			if idx > start {
				b.WriteString(strings.Repeat(" ", cellGap))
			}
			b.WriteString(r.renderCell(state, state.Sequence[idx]))
		}
		rows = append(rows, b.String())
	}

	// Scroll indicators go after the last cell of the edge rows
	if len(state.Sequence) > 0 && state.VisibleRows > 1 {
		if state.Offset > 0 && rows[0] != "" {
			rows[0] = rows[0] + r.styles.Scroll.Render("  ↑ more")
		}
		last := state.VisibleRows - 1
		if state.Offset+state.VisibleRows < l.Rows {
			rows[last] = rows[last] + r.styles.Scroll.Render("  ↓ more")
		}
	}
	return rows
}

func (r *Renderer) renderCell(state ViewState, value int) string {
	text := fmt.Sprintf(" %*d ", state.Layout.CellWidth-2, value)

	switch {
	case state.Hovered != 0 && value == state.Hovered:
		return r.styles.Hovered.Render(text)
	case state.IsHighlighted != nil && state.IsHighlighted(value):
		return r.styles.Divisor.Render(text)
	default:
		return r.styles.Cell.Render(text)
	}
}
