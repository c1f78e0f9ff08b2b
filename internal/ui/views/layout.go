package views

// Screen geometry shared by the renderer and mouse hit-testing. The grid is
// drawn inside the Main style padding, below a fixed header.
const (
	PaddingTop  = 1
	PaddingLeft = 2

	// title, blank, input, error, blank
	HeaderLines = 5
	// blank, status, help, bottom padding
	FooterLines = 4

	cellGap = 1
)

// Layout places the cells of an n-value grid on screen
type Layout struct {
	Count     int // cells in the grid
	Columns   int
	CellWidth int
	Rows      int // total rows, visible or not
}

// NewLayout fits count cells into width. columns > 0 forces a column count.
func NewLayout(width, count, columns int) Layout {
	cellWidth := digits(count) + 2

	if columns <= 0 {
		usable := width - 2*PaddingLeft + cellGap
		columns = usable / (cellWidth + cellGap)
	}
	if columns < 1 {
		columns = 1
	}

	rows := 0
	if count > 0 {
		rows = (count + columns - 1) / columns
	}

	return Layout{
		Count:     count,
		Columns:   columns,
		CellWidth: cellWidth,
		Rows:      rows,
	}
}

// VisibleRows returns how many grid rows fit in a terminal of height
func VisibleRows(height int) int {
	rows := height - PaddingTop - HeaderLines - FooterLines
	if rows < 1 {
		rows = 1
	}
	return rows
}

// OriginX is the screen column of the first cell
func (l Layout) OriginX() int {
	return PaddingLeft
}

// OriginY is the screen row of the first visible grid row
func (l Layout) OriginY() int {
	return PaddingTop + HeaderLines
}

// RowOf returns the grid row holding index
func (l Layout) RowOf(index int) int {
	return index / l.Columns
}

// CellAt maps a screen position to a cell index, given the first visible
// row and the number of visible rows. Gaps between cells miss.
func (l Layout) CellAt(x, y, offset, visible int) (int, bool) {
	dx := x - l.OriginX()
	dy := y - l.OriginY()
	if dx < 0 || dy < 0 || dy >= visible {
		return 0, false
	}

	stride := l.CellWidth + cellGap
	col := dx / stride
	if col >= l.Columns || dx%stride >= l.CellWidth {
		return 0, false
	}

	index := (offset+dy)*l.Columns + col
	if index >= l.Count {
		return 0, false
	}
	return index, true
}

// Move returns the index reached from index by a step of (dx, dy) cells,
// clamped to the grid.
func (l Layout) Move(index, dx, dy int) int {
	if l.Count == 0 {
		return 0
	}
	row, col := index/l.Columns, index%l.Columns
	row += dy
	col += dx

	if col < 0 {
		col = 0
	}
	if col >= l.Columns {
		col = l.Columns - 1
	}
	if row < 0 {
		row = 0
	}
	if row >= l.Rows {
		row = l.Rows - 1
	}

	next := row*l.Columns + col
	if next >= l.Count {
		next = l.Count - 1
	}
	return next
}

func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
