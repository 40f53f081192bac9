package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"contentmgr/internal/application"
	"contentmgr/internal/application/commands"
	"contentmgr/internal/domain"
)

// CreateModel is the model for the create view. The form asks for the
// containers the document's layout needs next to the display name.
type CreateModel struct {
	ViewState
	session  *application.Session
	document string
	layout   domain.Layout
	form     *InputForm
}

// NewCreateModel creates a new create view model
func NewCreateModel(session *application.Session) *CreateModel {
	return &CreateModel{
		session: session,
		form:    NewInputForm(),
	}
}

// SetTarget prepares the form for a document, pre-filling containers
func (m *CreateModel) SetTarget(document string, p domain.Placement) {
	m.document = document
	m.ClearMessage()

	spec, err := m.session.Spec(document)
	if err != nil {
		m.SetMessage(err.Error(), true)
		m.form = NewInputForm()
		return
	}
	m.layout = spec.Layout

	fields := []InputField{NewInputField("name", "Display name", 100)}
	switch spec.Layout {
	case domain.LayoutGrouped:
		fields = append(fields, NewInputField("group", "playable or non_playable", 40).
			WithSuggestions(domain.Groups).
			WithValue(p.Group))
	case domain.LayoutNested:
		doc, _ := m.session.Document(document)
		fields = append(fields,
			NewInputField("category", "e.g. swords", 60).
				WithSuggestions(doc.Keys()).
				WithValue(p.Category),
			NewInputField("slot", "e.g. one_handed", 60).
				WithSuggestions(slotKeys(doc, p.Category)).
				WithValue(p.Slot),
		)
	}
	m.form = NewInputForm(fields...)
}

// slotKeys lists the slots already present under a category
func slotKeys(doc *domain.Node, category string) []string {
	if doc == nil || category == "" {
		return nil
	}
	cat, ok := doc.Get(category)
	if !ok || !cat.IsMap() {
		return nil
	}
	return cat.Keys()
}

// Init initializes the create view
func (m *CreateModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the create view
func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case CreateErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, emit(SwitchToBrowserMsg{})
		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.create()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *CreateModel) placement() domain.Placement {
	var p domain.Placement
	switch m.layout {
	case domain.LayoutGrouped:
		p.Group = m.form.Value(1)
	case domain.LayoutNested:
		p.Category = domain.MakeKey(m.form.Value(1))
		p.Slot = domain.MakeKey(m.form.Value(2))
	}
	return p
}

func (m *CreateModel) create() tea.Cmd {
	cmd := commands.NewCreateEntryCommand(m.session, m.document, m.form.Value(0), m.placement())
	result, err := cmd.Execute(context.Background())
	if err != nil {
		return emit(CreateErrMsg{Err: err})
	}
	return emit(EntryChangedMsg{
		Document: result.Document,
		Path:     result.Path,
		Message:  result.Message,
	})
}

// CreateErrMsg indicates an error during creation
type CreateErrMsg struct {
	Err error
}

// View renders the create view
func (m *CreateModel) View() string {
	return NewViewBuilder().
		Title(fmt.Sprintf("New entry in %s", m.document)).
		Subtitle(fmt.Sprintf("%s layout; the key is derived from the name", m.layout)).
		Line(m.form.RenderFields()).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(m.form.RenderHelp("create")).
		String()
}
