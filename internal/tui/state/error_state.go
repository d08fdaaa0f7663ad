package state

// ErrorState holds the fetch failure shown by the error alert.
type ErrorState struct {
	// message is the human-readable failure text, empty when there is none
	message string

	// failed is the phase that failed and that Retry re-enters
	failed Phase

	// alertVisible is false once the alert has been dismissed
	alertVisible bool
}

// NewErrorState creates a new ErrorState with no error.
func NewErrorState() *ErrorState {
	return &ErrorState{}
}

// Set records a failure of the given phase and shows the alert.
//
// Parameters:
//   - failed: FetchingUser or FetchingColumns
//   - msg: the error message to display
func (s *ErrorState) Set(failed Phase, msg string) {
	s.failed = failed
	s.message = msg
	s.alertVisible = true
}

// Clear removes any current failure.
func (s *ErrorState) Clear() {
	s.message = ""
	s.failed = Unchecked
	s.alertVisible = false
}

// Dismiss hides the alert but keeps the failure recorded.
func (s *ErrorState) Dismiss() {
	s.alertVisible = false
}

// HasError returns true if there is currently a failure recorded.
func (s *ErrorState) HasError() bool {
	return s.message != ""
}

// AlertVisible returns true while the alert is blocking the board.
func (s *ErrorState) AlertVisible() bool {
	return s.HasError() && s.alertVisible
}

// Get returns the current error message.
func (s *ErrorState) Get() string {
	return s.message
}

// Failed returns the phase Retry should re-enter.
func (s *ErrorState) Failed() Phase {
	return s.failed
}
