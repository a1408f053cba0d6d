package views

import "jdex/internal/domain"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// SwitchToFinderMsg returns to the finder view.
type SwitchToFinderMsg struct{}

// SwitchToHelpMsg opens the help view.
type SwitchToHelpMsg struct{}

// SwitchToDescribeMsg opens the description editor for an entry.
type SwitchToDescribeMsg struct {
	Entry domain.SearchResult
}

// OpenEditorMsg asks the app to open a folder in the external editor.
type OpenEditorMsg struct {
	Path string
}

// DescribeDoneMsg reports the outcome of a description edit.
type DescribeDoneMsg struct {
	Key         string
	Description string
	Err         error
}
