package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"contentmgr/internal/adapters/tui/styles"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmationModel asks a yes/no question before running an action
type ConfirmationModel struct {
	ViewState
	Title     string
	Prompt    string
	Details   []string
	Keys      ConfirmKeyMap
	onConfirm tea.Cmd
}

// NewConfirmationModel creates a new confirmation model with default keys
func NewConfirmationModel() *ConfirmationModel {
	return &ConfirmationModel{
		Keys: DefaultConfirmKeys,
	}
}

// SetTarget configures the question and the action run on "y"
func (m *ConfirmationModel) SetTarget(msg SwitchToConfirmMsg) {
	m.Title = msg.Title
	m.Prompt = msg.Prompt
	m.Details = msg.Details
	m.onConfirm = msg.OnConfirm
	m.ClearMessage()
}

// Init initializes the confirmation view
func (m *ConfirmationModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view
func (m *ConfirmationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg, m.onConfirm)
		if handled {
			return m, cmd
		}
	}
	return m, nil
}

// HandleKeyMsg runs onConfirm on "y" and returns to the browser on "n".
// Returns (handled, cmd) where handled is true if the key was processed.
func (m *ConfirmationModel) HandleKeyMsg(msg tea.KeyMsg, onConfirm tea.Cmd) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		return true, emit(SwitchToBrowserMsg{})
	case key.Matches(msg, m.Keys.Confirm):
		if onConfirm == nil {
			return true, emit(SwitchToBrowserMsg{})
		}
		return true, emit(onConfirm())
	}
	return false, nil
}

// View renders the confirmation view
func (m *ConfirmationModel) View() string {
	v := NewViewBuilder().Title(m.Title)
	for _, d := range m.Details {
		v.Line("  " + d)
	}
	if len(m.Details) > 0 {
		v.BlankLine()
	}
	v.Message(m.Message, m.MessageErr)
	v.Raw(RenderConfirmPrompt(m.Prompt))
	return v.String()
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}
