package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"contentmgr/internal/application"
	"contentmgr/internal/domain"
)

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

// Messages for view switching
type SwitchToBrowserMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToSearchMsg struct{}

type SwitchToRootMsg struct{}

type SwitchToEditorMsg struct {
	Document string
	Path     domain.Path
}

type SwitchToCreateMsg struct {
	Document  string
	Placement domain.Placement
}

type SwitchToDuplicateMsg struct {
	Document string
	Source   domain.Path
}

type SwitchToDeleteMsg struct {
	Document string
	Path     domain.Path
}

// SwitchToConfirmMsg asks the user to confirm an action that discards
// unsaved edits. OnConfirm runs on the update goroutine, only after "y".
type SwitchToConfirmMsg struct {
	Title     string
	Prompt    string
	Details   []string
	OnConfirm tea.Cmd
}

// StatusMsg shows a line in the browser status area
type StatusMsg struct {
	Text string
	Err  bool
}

// EntryChangedMsg reports a lifecycle change and the entry to select after it
type EntryChangedMsg struct {
	Document string
	Path     domain.Path
	Message  string
}

// OpenEditorMsg requests opening a document file in the external editor
type OpenEditorMsg struct {
	Document string
}

// ChangeRootMsg requests opening the documents under another directory
type ChangeRootMsg struct {
	Root string
}

// ToggleThemeMsg requests switching between the light and dark themes
type ToggleThemeMsg struct{}

// DocumentsReloadedMsg is sent after every document was read from disk again
type DocumentsReloadedMsg struct {
	Message string
}

// emit wraps an already computed message as a command. Session work runs
// on the update goroutine; only its result travels through the runtime.
func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// errorStatus converts an error into a status message
func errorStatus(err error) StatusMsg {
	return StatusMsg{Text: err.Error(), Err: true}
}

// documentLabel decorates a document name with the unsaved marker
func documentLabel(session *application.Session, name string) string {
	if session.Dirty(name) {
		return name + " *"
	}
	return name
}
