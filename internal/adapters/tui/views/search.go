package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"contentmgr/internal/adapters/tui/styles"
	"contentmgr/internal/application"
	"contentmgr/internal/application/commands"
)

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "go to entry"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

const searchPageSize = 12

// SearchModel searches entry keys and names across every document
type SearchModel struct {
	ViewState
	session *application.Session
	input   textinput.Model
	results []commands.SearchHit
	pager   *Paginator
}

// NewSearchModel creates a new search view model
func NewSearchModel(session *application.Session) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search all documents..."
	input.Focus()

	return &SearchModel{
		session: session,
		input:   input,
		pager:   NewPaginator(searchPageSize),
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the query and results
func (m *SearchModel) Reset() {
	m.input.SetValue("")
	m.results = nil
	m.pager.Reset()
	m.input.Focus()
	m.ClearMessage()
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, emit(SwitchToBrowserMsg{})

		case key.Matches(msg, SearchKeys.Up):
			m.pager.CursorUp()
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			m.pager.CursorDown()
			return m, nil

		case key.Matches(msg, SearchKeys.Select):
			if hit, ok := m.Selected(); ok {
				return m, emit(SearchSelectMsg{Hit: hit})
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	prev := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prev {
		m.search(m.input.Value())
	}
	return m, cmd
}

func (m *SearchModel) search(query string) {
	hits, err := commands.NewSearchCommand(m.session, "", query).Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		hits = nil
	} else {
		m.ClearMessage()
	}
	m.results = hits
	m.pager.SetTotal(len(hits))
	m.pager.SetCursor(0)
}

// Selected returns the hit under the cursor
func (m *SearchModel) Selected() (commands.SearchHit, bool) {
	i := m.pager.Cursor()
	if i >= 0 && i < len(m.results) {
		return m.results[i], true
	}
	return commands.SearchHit{}, false
}

// SearchSelectMsg is sent when a search result is selected
type SearchSelectMsg struct {
	Hit commands.SearchHit
}

// View renders the search view
func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Search"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		if len(strings.TrimSpace(m.input.Value())) >= 2 {
			b.WriteString(styles.MutedText.Render("No results found"))
		} else {
			b.WriteString(styles.MutedText.Render("Type at least 2 characters to search"))
		}
	} else {
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d results", len(m.results))))
		b.WriteString("\n\n")

		start, end := m.pager.VisibleRange()
		for i := start; i < end; i++ {
			b.WriteString(m.renderResult(m.results[i], i == m.pager.Cursor()))
			b.WriteString("\n")
		}
		if rest := len(m.results) - end; rest > 0 {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("... and %d more", rest)))
		}
	}

	if m.Message != "" {
		b.WriteString("\n\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	b.WriteString("\n\n")
	b.WriteString(RenderHelpLine(SearchKeys.Up, SearchKeys.Down, SearchKeys.Select, SearchKeys.Cancel))

	return styles.App.Render(b.String())
}

func (m *SearchModel) renderResult(hit commands.SearchHit, selected bool) string {
	text := fmt.Sprintf("[%s] %s", hit.Document, hit.Label)
	if hit.Name != "" {
		text += " " + hit.Name
	}
	if selected {
		return styles.NodeSelected.Render(text)
	}
	return text
}
