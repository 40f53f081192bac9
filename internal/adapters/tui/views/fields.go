package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"contentmgr/internal/application"
	"contentmgr/internal/application/commands"
	"contentmgr/internal/domain"
)

// FieldsModel edits the scalar and list fields of one record. Nested
// mappings are shown but cannot be edited as text.
type FieldsModel struct {
	ViewState
	session  *application.Session
	document string
	path     domain.Path
	form     *InputForm
	original map[string]string
	readOnly []domain.Field
}

// NewFieldsModel creates a new fields editor
func NewFieldsModel(session *application.Session) *FieldsModel {
	return &FieldsModel{
		session: session,
		form:    NewInputForm(),
	}
}

// SetTarget loads the record at path into the form
func (m *FieldsModel) SetTarget(document string, path domain.Path) error {
	res, err := commands.NewShowFieldsCommand(m.session, document, path).Execute(context.Background())
	if err != nil {
		return err
	}
	if !res.Value.IsMap() {
		return fmt.Errorf("%s is not a record: %w", path, domain.ErrNotMapping)
	}

	m.document = document
	m.path = path
	m.original = make(map[string]string)
	m.readOnly = nil
	m.ClearMessage()

	enums := m.session.Enums()
	var inputs []InputField
	for _, f := range res.Fields {
		if !f.Role.Editable() {
			m.readOnly = append(m.readOnly, f)
			continue
		}
		m.original[f.Key] = f.Text
		in := NewInputField(f.Key, f.Role.String(), 0).WithValue(f.Text)
		in.Key = f.Key
		in.Label = fmt.Sprintf("%s (%s)", f.Key, f.Role)
		inputs = append(inputs, decorate(in, f.Role, enums))
	}
	m.form = NewInputForm(inputs...)
	return nil
}

// decorate attaches the completions and hints a role offers
func decorate(in InputField, role domain.FieldRole, enums domain.Enums) InputField {
	switch role {
	case domain.RoleBool:
		return in.WithSuggestions([]string{"true", "false"}).WithHint("true/false, yes/no, 1/0")
	case domain.RoleNumber:
		return in.WithHint("integer or decimal; anything else is stored as text")
	case domain.RoleList:
		return in.WithHint("comma-separated values")
	case domain.RoleRarity:
		return in.WithSuggestions(enums.Rarities).WithHint(choices(enums.Rarities))
	case domain.RoleElement:
		return in.WithSuggestions(enums.Elements).WithHint(choices(enums.Elements))
	case domain.RoleElementList:
		return in.WithHint("comma-separated; " + choices(enums.Elements))
	}
	return in
}

func choices(values []string) string {
	if len(values) == 0 {
		return "free text"
	}
	return "known: " + strings.Join(values, ", ")
}

// Edits returns the fields whose text differs from the loaded record
func (m *FieldsModel) Edits() map[string]string {
	edits := make(map[string]string)
	for i, f := range m.form.Fields {
		if v := m.form.RawValue(i); v != m.original[f.Key] {
			edits[f.Key] = v
		}
	}
	return edits
}

// Init initializes the fields view
func (m *FieldsModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the fields view
func (m *FieldsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case FieldsErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, emit(SwitchToBrowserMsg{})
		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.apply()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *FieldsModel) apply() tea.Cmd {
	edits := m.Edits()
	if len(edits) == 0 {
		return emit(EntryChangedMsg{
			Document: m.document,
			Path:     m.path,
			Message:  fmt.Sprintf("No changes to %s", m.path),
		})
	}
	cmd := commands.NewApplyFieldsCommand(m.session, m.document, m.path, edits)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		return emit(FieldsErrMsg{Err: err})
	}
	return emit(EntryChangedMsg{
		Document: result.Document,
		Path:     result.Path,
		Message:  result.Message,
	})
}

// FieldsErrMsg indicates an error while applying field edits
type FieldsErrMsg struct {
	Err error
}

// View renders the fields view
func (m *FieldsModel) View() string {
	v := NewViewBuilder().
		Title(m.document + " / " + m.path.String())

	if len(m.form.Fields) == 0 {
		v.Muted("No editable fields.")
	} else {
		v.Line(m.form.RenderFields())
	}

	if len(m.readOnly) > 0 {
		v.BlankLine().Muted("Nested (read-only)")
		w := keyWidth(m.readOnly)
		for _, f := range m.readOnly {
			v.Line("  " + RenderField(f, w))
		}
	}

	return v.BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(m.form.RenderHelp("apply")).
		String()
}
