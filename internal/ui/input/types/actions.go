package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right"
}

func (a NavigateAction) Type() string { return "navigate" }

// Delta returns the column and row step for the direction
func (a NavigateAction) Delta() (dx, dy int) {
	switch a.Direction {
	case "up":
		return 0, -1
	case "down":
		return 0, 1
	case "left":
		return -1, 0
	case "right":
		return 1, 0
	}
	return 0, 0
}

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// Highlight actions
type UnhoverAction struct{}

func (a UnhoverAction) Type() string { return "unhover" }

type ReshuffleAction struct{}

func (a ReshuffleAction) Type() string { return "reshuffle" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
