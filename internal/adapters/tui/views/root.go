package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"contentmgr/internal/adapters/tui/styles"
)

// RootModel asks for the project root directory. When no usable root is
// open yet the view is required: esc quits instead of returning to the
// browser.
type RootModel struct {
	ViewState
	current  string
	required bool
	form     *InputForm
}

// NewRootModel creates a new root directory view model
func NewRootModel() *RootModel {
	return &RootModel{form: newRootForm("")}
}

func newRootForm(current string) *InputForm {
	field := NewInputField("root directory", "~/games/my-rpg", 4096).
		WithHint("Directory holding data/classes.json and the other documents")
	return NewInputForm(field.WithValue(current))
}

// SetTarget pre-fills the form with the current root. A non-empty problem
// is shown as an error and makes the view required.
func (m *RootModel) SetTarget(current, problem string) {
	m.current = current
	m.required = problem != ""
	m.form = newRootForm(current)
	m.ClearMessage()
	if problem != "" {
		m.SetMessage(problem, true)
	}
}

// Required reports whether the view can only be left with a valid root
func (m *RootModel) Required() bool {
	return m.required
}

// Init initializes the root view
func (m *RootModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the root view
func (m *RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case RootErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			if m.required {
				return m, tea.Quit
			}
			return m, emit(SwitchToBrowserMsg{})
		case key.Matches(msg, m.form.Keys.Submit):
			return m, emit(ChangeRootMsg{Root: m.form.Value(0)})
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

// RootErrMsg reports a root directory that could not be opened
type RootErrMsg struct {
	Err error
}

// View renders the root view
func (m *RootModel) View() string {
	subtitle := "Current: " + m.current
	if m.current == "" {
		subtitle = "No project open"
	}

	help := m.form.RenderHelp("open")
	if m.required {
		help = styles.HelpKey.Render("enter") + " " + styles.HelpDesc.Render("open") +
			styles.HelpSeparator.String() +
			styles.HelpKey.Render("esc") + " " + styles.HelpDesc.Render("quit")
	}

	return NewViewBuilder().
		Title("Project Root").
		Subtitle(subtitle).
		Line(m.form.RenderFields()).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(help).
		String()
}
