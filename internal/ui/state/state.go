package state

// NoCursor marks that no grid cell is under the cursor
const NoCursor = -1

// AppState contains the UI-only state; the grid values themselves live in
// the widget.
type AppState struct {
	Cursor         int // index into the displayed sequence, NoCursor when idle
	ViewportOffset int // first visible grid row
	ViewportRows   int // rows that fit on screen

	StatusMessage string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Cursor:       NoCursor,
		ViewportRows: 10, // Will be updated on first WindowSizeMsg
	}
}

// ResetGrid forgets the cursor and scroll position
func (s *AppState) ResetGrid() {
	s.Cursor = NoCursor
	s.ViewportOffset = 0
}

// HasCursor reports whether a cell is under the cursor
func (s *AppState) HasCursor() bool {
	return s.Cursor != NoCursor
}

// ClampViewport keeps the offset inside [0, totalRows-ViewportRows]
func (s *AppState) ClampViewport(totalRows int) {
	maxOffset := totalRows - s.ViewportRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ViewportOffset > maxOffset {
		s.ViewportOffset = maxOffset
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}

// EnsureRowVisible scrolls just enough to bring row on screen
func (s *AppState) EnsureRowVisible(row int) {
	if row < s.ViewportOffset {
		s.ViewportOffset = row
	}
	if s.ViewportRows > 0 && row >= s.ViewportOffset+s.ViewportRows {
		s.ViewportOffset = row - s.ViewportRows + 1
	}
}
