package views

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"contentmgr/internal/adapters/tui/styles"
	"contentmgr/internal/application"
	"contentmgr/internal/application/commands"
	"contentmgr/internal/domain"
)

// DeleteModel is the model for the delete confirmation view
type DeleteModel struct {
	ConfirmationModel
	session  *application.Session
	document string
	path     domain.Path
}

// NewDeleteModel creates a new delete view model
func NewDeleteModel(session *application.Session) *DeleteModel {
	return &DeleteModel{
		ConfirmationModel: *NewConfirmationModel(),
		session:           session,
	}
}

// SetTarget selects the entry to delete
func (m *DeleteModel) SetTarget(document string, path domain.Path) {
	m.document = document
	m.path = path
	m.ClearMessage()
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg, m.doDelete)
		if handled {
			return m, cmd
		}
	}

	return m, nil
}

func (m *DeleteModel) doDelete() tea.Msg {
	cmd := commands.NewDeleteEntryCommand(m.session, m.document, m.path, true)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		return DeleteErrMsg{Err: err}
	}
	return EntryChangedMsg{
		Document: result.Document,
		Path:     result.Path.Parent(),
		Message:  result.Message,
	}
}

// DeleteErrMsg indicates an error during deletion
type DeleteErrMsg struct {
	Err error
}

// View renders the delete confirmation view
func (m *DeleteModel) View() string {
	v := NewViewBuilder().
		Title("Delete Confirmation").
		Raw(styles.WarningMsg.Render("The entry is removed from memory; the file changes on save.")).
		Raw("\n\n").
		Line(styles.InputLabel.Render("Delete from " + m.document + ":")).
		Line("  " + m.path.String())

	if doc, err := m.session.Document(m.document); err == nil {
		if node, err := domain.Resolve(doc, m.path); err == nil && domain.Classify(node) == domain.ClassBranch {
			v.Muted(fmt.Sprintf("  All %d nested entries go with it.", node.Len()))
		}
	}

	return v.BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(RenderConfirmPrompt("Are you sure?")).
		String()
}
