package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"divgrid/internal/ui/keys"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys keys.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keyMap keys.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keyMap}
}

// RenderHelpContent generates the help page shown in the pager
func (r *HelpRenderer) RenderHelpContent(maximum int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("divgrid Help"))
	help.WriteString("\n\n")

	help.WriteString(descStyle.Render(fmt.Sprintf(
		"Type a whole number from 1 to %d. The grid shows 1..N in a random order.", maximum)))
	help.WriteString("\n")
	help.WriteString(descStyle.Render(
		"Hover a cell with the mouse, or move the cursor onto it, to highlight every number that divides it."))
	help.WriteString("\n")

	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Grid", []key.Binding{r.keys.Up, r.keys.Down, r.keys.Left, r.keys.Right, r.keys.Unhover, r.keys.Reshuffle}},
		{"Input", []key.Binding{r.keys.Focus, r.keys.Submit}},
		{"Other", []key.Binding{r.keys.Help, r.keys.Quit, r.keys.ForceQuit}},
	}

	for _, section := range sections {
		help.WriteString("\n")
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, b := range section.bindings {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %-8s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
	}

	return help.String()
}

// pagerCommand runs ov over a string. It satisfies tea.ExecCommand so
// Bubble Tea releases the terminal while the pager runs.
type pagerCommand struct {
	content string
}

func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return err
	}

	// Don't write the document back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov drives the tty itself through tcell
func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// showHelpInPager opens the help page in ov
func showHelpInPager(content string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}
