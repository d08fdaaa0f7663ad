package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode   Mode = iota // Board navigation
	LoginMode                // Login flow owns the keyboard
	UserInfoMode             // User-info modal open
	AlertMode                // Error alert blocking the board
)

// UIState manages terminal dimensions, the interaction mode and the
// horizontal column viewport.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:         NormalMode,
		viewportSize: 1, // recalculated when width is set
	}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the height left for columns once the status bar
// is drawn, with a minimum of 5.
func (s *UIState) ContentHeight() int {
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize works out how many columns fit in the terminal width.
// Each column takes 46 cells: 40 content, 2 padding, 2 border, 2 spacing.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}

	const columnWidth = 46
	const reservedWidth = 4 // margins and scroll indicators

	s.viewportSize = max(1, (s.width-reservedWidth)/columnWidth)
}

// EnsureSelectionVisible adjusts the viewport so the selected column is on screen.
func (s *UIState) EnsureSelectionVisible(selectedColumn int) {
	if selectedColumn < s.viewportOffset {
		s.viewportOffset = selectedColumn
	}
	if selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = selectedColumn - s.viewportSize + 1
	}
}

// ResetViewport scrolls back to the first column.
func (s *UIState) ResetViewport() {
	s.viewportOffset = 0
}
