package ui

// helpPagerMsg contains the result of the help pager command
type helpPagerMsg struct {
	err error
}
