// Package highlight tracks which grid values divide the hovered value.
package highlight

import "slices"

// Highlighter owns the highlighted set for one sequence. It is either idle
// (empty set, no target) or hovering exactly one target.
type Highlighter struct {
	sequence []int
	set      map[int]struct{}
	target   int
}

// New creates an idle highlighter over sequence
func New(sequence []int) *Highlighter {
	return &Highlighter{
		sequence: sequence,
		set:      make(map[int]struct{}),
	}
}

// Reset binds the highlighter to a new sequence and drops any highlight
func (h *Highlighter) Reset(sequence []int) {
	h.sequence = sequence
	h.OnHoverEnd()
}

// OnHover recomputes the set as every sequence value dividing target.
// A non-positive target leaves the highlighter idle.
func (h *Highlighter) OnHover(target int) {
	h.OnHoverEnd()
	if target < 1 {
		return
	}

	h.target = target
	for _, v := range h.sequence {
		if v > 0 && target%v == 0 {
			h.set[v] = struct{}{}
		}
	}
}

// OnHoverEnd empties the set
func (h *Highlighter) OnHoverEnd() {
	clear(h.set)
	h.target = 0
}

// Contains reports whether v is highlighted
func (h *Highlighter) Contains(v int) bool {
	_, ok := h.set[v]
	return ok
}

// Target returns the hovered value, if any
func (h *Highlighter) Target() (int, bool) {
	return h.target, h.target > 0
}

// Len returns the number of highlighted values
func (h *Highlighter) Len() int {
	return len(h.set)
}

// Values returns the highlighted values in ascending order
func (h *Highlighter) Values() []int {
	out := make([]int, 0, len(h.set))
	for v := range h.set {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
