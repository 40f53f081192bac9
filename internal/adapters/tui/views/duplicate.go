package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"contentmgr/internal/application"
	"contentmgr/internal/application/commands"
	"contentmgr/internal/domain"
)

// DuplicateModel asks for the display name of a copy
type DuplicateModel struct {
	ViewState
	session  *application.Session
	document string
	source   domain.Path
	form     *InputForm
}

// NewDuplicateModel creates a new duplicate view model
func NewDuplicateModel(session *application.Session) *DuplicateModel {
	return &DuplicateModel{
		session: session,
		form:    NewInputForm(NewInputField("new name", "Display name of the copy", 100)),
	}
}

// SetTarget selects the entry to copy
func (m *DuplicateModel) SetTarget(document string, source domain.Path) {
	m.document = document
	m.source = source
	m.ClearMessage()
	m.form = NewInputForm(NewInputField("new name", "Display name of the copy", 100))
}

// Init initializes the duplicate view
func (m *DuplicateModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the duplicate view
func (m *DuplicateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case DuplicateErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, emit(SwitchToBrowserMsg{})
		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.duplicate()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *DuplicateModel) duplicate() tea.Cmd {
	cmd := commands.NewDuplicateEntryCommand(m.session, m.document, m.source, m.form.Value(0))
	result, err := cmd.Execute(context.Background())
	if err != nil {
		return emit(DuplicateErrMsg{Err: err})
	}
	return emit(EntryChangedMsg{
		Document: result.Document,
		Path:     result.Path,
		Message:  result.Message,
	})
}

// DuplicateErrMsg indicates an error during duplication
type DuplicateErrMsg struct {
	Err error
}

// View renders the duplicate view
func (m *DuplicateModel) View() string {
	return NewViewBuilder().
		Title("Duplicate Entry").
		Subtitle(m.document + ": " + m.source.String()).
		Line(m.form.RenderFields()).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(m.form.RenderHelp("duplicate")).
		String()
}
