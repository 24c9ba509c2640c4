package state

// FocusState tracks which of a fixed number of inputs has focus.
// Moving past either end wraps around.
type FocusState struct {
	index int
	count int
}

// NewFocusState creates a FocusState over count inputs, focusing the first
func NewFocusState(count int) *FocusState {
	return &FocusState{count: count}
}

// Index returns the focused input
func (s *FocusState) Index() int {
	return s.index
}

// Set focuses input i, ignoring out of range values
func (s *FocusState) Set(i int) {
	if i < 0 || i >= s.count {
		return
	}
	s.index = i
}

// Next moves focus forward
func (s *FocusState) Next() {
	if s.count == 0 {
		return
	}
	s.index = (s.index + 1) % s.count
}

// Prev moves focus backward
func (s *FocusState) Prev() {
	if s.count == 0 {
		return
	}
	s.index = (s.index - 1 + s.count) % s.count
}
