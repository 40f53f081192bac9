package views

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"contentmgr/internal/adapters/tui/styles"
	"contentmgr/internal/application"
	"contentmgr/internal/application/commands"
	"contentmgr/internal/domain"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	NextDoc   key.Binding
	PrevDoc   key.Binding
	Filter    key.Binding
	Search    key.Binding
	New       key.Binding
	Duplicate key.Binding
	Delete    key.Binding
	Revert    key.Binding
	CopyPath  key.Binding
	Save      key.Binding
	SaveAll   key.Binding
	Reload    key.Binding
	OpenFile  key.Binding
	Root      key.Binding
	Theme     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse / parent"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "edit / toggle"),
	),
	NextDoc: key.NewBinding(
		key.WithKeys("tab", "]"),
		key.WithHelp("tab", "next document"),
	),
	PrevDoc: key.NewBinding(
		key.WithKeys("shift+tab", "["),
		key.WithHelp("shift+tab", "previous document"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Search: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("ctrl+f", "search all"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Duplicate: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "duplicate"),
	),
	Delete: key.NewBinding(
		key.WithKeys("x", "delete"),
		key.WithHelp("x", "delete"),
	),
	Revert: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "revert entry"),
	),
	CopyPath: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Save: key.NewBinding(
		key.WithKeys("s", "ctrl+s"),
		key.WithHelp("s", "save"),
	),
	SaveAll: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "save all"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	OpenFile: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open file in $EDITOR"),
	),
	Root: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "change project root"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "light/dark"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// browserRow is one visible line: an index entry or a tree row
type browserRow struct {
	Label    string
	Path     domain.Path
	Depth    int
	Tree     bool
	Leaf     bool
	Expanded bool
	Matched  bool
	item     *domain.TreeItem
}

// BrowserModel lists the entries of one document at a time. Nested
// documents are shown as a collapsible tree; the others as a flat index.
type BrowserModel struct {
	ViewState
	session   *application.Session
	names     []string
	docIndex  int
	entries   []domain.IndexEntry
	tree      *domain.TreeItem
	rows      []browserRow
	pager     *Paginator
	filter    textinput.Model
	filtering bool
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(session *application.Session) *BrowserModel {
	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter entries"

	return &BrowserModel{
		session: session,
		names:   session.Catalog().Names(),
		pager:   NewPaginator(20),
		filter:  filter,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

// Document returns the name of the document on screen
func (m *BrowserModel) Document() string {
	if m.docIndex < 0 || m.docIndex >= len(m.names) {
		return ""
	}
	return m.names[m.docIndex]
}

// SelectedPath returns the path of the row under the cursor
func (m *BrowserModel) SelectedPath() (domain.Path, bool) {
	row, ok := m.selectedRow()
	if !ok {
		return nil, false
	}
	return row.Path, true
}

func (m *BrowserModel) selectedRow() (browserRow, bool) {
	i := m.pager.Cursor()
	if i >= 0 && i < len(m.rows) {
		return m.rows[i], true
	}
	return browserRow{}, false
}

// Refresh rebuilds the rows from the session, keeping the cursor on the
// same path and the same tree rows expanded where possible.
func (m *BrowserModel) Refresh() {
	selected, _ := m.SelectedPath()
	m.load()
	m.moveTo(selected)
}

// SelectPath shows document and puts the cursor on path, expanding its
// ancestors and dropping a filter that would hide it.
func (m *BrowserModel) SelectPath(document string, path domain.Path) {
	if document != m.Document() {
		m.switchTo(document)
	}
	m.load()
	if !m.moveTo(path) && m.filter.Value() != "" {
		m.filter.SetValue("")
		m.load()
		m.moveTo(path)
	}
}

func (m *BrowserModel) switchTo(document string) {
	for i, n := range m.names {
		if n == document {
			m.docIndex = i
		}
	}
	m.tree = nil
	m.filter.SetValue("")
	m.filtering = false
	m.filter.Blur()
	m.pager.Reset()
}

func (m *BrowserModel) load() {
	expanded := m.expandedPaths()
	query := m.filter.Value()

	res, err := commands.NewListIndexCommand(m.session, m.Document(), query).Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		m.entries, m.tree = nil, nil
		m.rebuildRows()
		return
	}
	m.entries = res.Entries
	m.tree = res.Tree
	if m.tree != nil && strings.TrimSpace(query) == "" {
		for _, p := range expanded {
			if it := m.tree.Find(p); it != nil {
				it.Expand()
			}
		}
	}
	m.rebuildRows()
}

func (m *BrowserModel) expandedPaths() []domain.Path {
	if m.tree == nil {
		return nil
	}
	var paths []domain.Path
	for _, it := range m.tree.Flatten() {
		if it.Expanded {
			paths = append(paths, it.Path)
		}
	}
	return paths
}

func (m *BrowserModel) rebuildRows() {
	m.rows = m.rows[:0]
	if m.tree != nil {
		for _, it := range m.tree.Flatten() {
			m.rows = append(m.rows, browserRow{
				Label:    it.Key,
				Path:     it.Path,
				Depth:    it.Depth(),
				Tree:     true,
				Leaf:     it.Leaf,
				Expanded: it.Expanded,
				Matched:  it.Matched,
				item:     it,
			})
		}
	} else {
		for _, e := range m.entries {
			m.rows = append(m.rows, browserRow{Label: e.Label, Path: e.Path, Leaf: true})
		}
	}
	m.pager.SetTotal(len(m.rows))
	m.syncSelection()
}

// moveTo puts the cursor on path and reports whether it is visible
func (m *BrowserModel) moveTo(path domain.Path) bool {
	if len(path) == 0 {
		return false
	}
	if m.tree != nil {
		if it := m.tree.Find(path); it != nil {
			for p := it.Parent; p != nil; p = p.Parent {
				p.Expand()
			}
			m.rebuildRows()
		}
	}
	for i, r := range m.rows {
		if r.Path.Equal(path) {
			m.pager.SetCursor(i)
			m.syncSelection()
			return true
		}
	}
	return false
}

func (m *BrowserModel) syncSelection() {
	if row, ok := m.selectedRow(); ok {
		m.session.Select(m.Document(), row.Path)
	} else {
		m.session.ClearSelection()
	}
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m, m.updateFilter(msg)
		}
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *BrowserModel) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.clearFilter()
		return nil
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return nil
	case "up", "down":
		if msg.String() == "up" {
			m.pager.CursorUp()
		} else {
			m.pager.CursorDown()
		}
		m.syncSelection()
		return nil
	}

	prev := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != prev {
		m.load()
		m.pager.SetCursor(m.firstMatch())
		m.syncSelection()
	}
	return cmd
}

// clearFilter drops the query and collapses the tree down to the
// ancestors of the row under the cursor
func (m *BrowserModel) clearFilter() {
	m.filter.SetValue("")
	selected, _ := m.SelectedPath()
	m.tree = nil
	m.load()
	m.moveTo(selected)
}

// firstMatch is the first row the filter hit; flat rows all match
func (m *BrowserModel) firstMatch() int {
	for i, r := range m.rows {
		if !r.Tree || r.Matched {
			return i
		}
	}
	return 0
}

func (m *BrowserModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	doc := m.Document()
	row, hasRow := m.selectedRow()

	switch {
	case key.Matches(msg, BrowserKeys.Quit):
		if dirty := m.session.DirtyDocuments(); len(dirty) > 0 {
			return emit(SwitchToConfirmMsg{
				Title:     "Quit",
				Prompt:    "Quit without saving?",
				Details:   unsavedDetails(dirty),
				OnConfirm: tea.Quit,
			})
		}
		return tea.Quit

	case msg.String() == "esc" && m.filter.Value() != "":
		m.clearFilter()
		return nil

	case key.Matches(msg, BrowserKeys.Up):
		m.pager.CursorUp()
		m.syncSelection()

	case key.Matches(msg, BrowserKeys.Down):
		m.pager.CursorDown()
		m.syncSelection()

	case key.Matches(msg, BrowserKeys.PageUp):
		m.pager.PageUp()
		m.syncSelection()

	case key.Matches(msg, BrowserKeys.PageDown):
		m.pager.PageDown()
		m.syncSelection()

	case key.Matches(msg, BrowserKeys.NextDoc) && len(m.names) > 0:
		m.switchTo(m.names[(m.docIndex+1)%len(m.names)])
		m.load()

	case key.Matches(msg, BrowserKeys.PrevDoc) && len(m.names) > 0:
		m.switchTo(m.names[(m.docIndex-1+len(m.names))%len(m.names)])
		m.load()

	case key.Matches(msg, BrowserKeys.Left):
		if !hasRow || !row.Tree {
			return nil
		}
		if row.Expanded && !row.Leaf {
			row.item.Collapse()
			m.rebuildRows()
		} else if row.item.Parent != nil && len(row.item.Parent.Path) > 0 {
			m.moveTo(row.item.Parent.Path)
		}

	case key.Matches(msg, BrowserKeys.Right):
		if hasRow && row.Tree && !row.Leaf && !row.Expanded {
			row.item.Expand()
			m.rebuildRows()
		}

	case key.Matches(msg, BrowserKeys.Enter):
		if !hasRow {
			return nil
		}
		// records holding lists are branches without rows below them
		if row.Tree && !row.Leaf && len(row.item.Children) > 0 {
			row.item.Toggle()
			m.rebuildRows()
			return nil
		}
		return emit(SwitchToEditorMsg{Document: doc, Path: row.Path})

	case key.Matches(msg, BrowserKeys.Filter):
		m.filtering = true
		return m.filter.Focus()

	case key.Matches(msg, BrowserKeys.Search):
		return emit(SwitchToSearchMsg{})

	case key.Matches(msg, BrowserKeys.New):
		return emit(SwitchToCreateMsg{Document: doc, Placement: m.placementHint()})

	case key.Matches(msg, BrowserKeys.Duplicate):
		if !hasRow {
			return emit(errorStatus(application.ErrNoSelection))
		}
		return emit(SwitchToDuplicateMsg{Document: doc, Source: row.Path})

	case key.Matches(msg, BrowserKeys.Delete):
		if !hasRow {
			return emit(errorStatus(application.ErrNoSelection))
		}
		return emit(SwitchToDeleteMsg{Document: doc, Path: row.Path})

	case key.Matches(msg, BrowserKeys.Revert):
		if !hasRow {
			return emit(errorStatus(application.ErrNoSelection))
		}
		result, err := commands.NewRevertEntryCommand(m.session, doc, row.Path).Execute(context.Background())
		if err != nil {
			return emit(errorStatus(err))
		}
		m.Refresh()
		return emit(StatusMsg{Text: result.Message})

	case key.Matches(msg, BrowserKeys.CopyPath):
		if !hasRow {
			return emit(errorStatus(application.ErrNoSelection))
		}
		if err := clipboard.WriteAll(row.Path.String()); err != nil {
			return emit(errorStatus(fmt.Errorf("failed to copy path: %w", err)))
		}
		return emit(StatusMsg{Text: "Copied " + row.Path.String()})

	case key.Matches(msg, BrowserKeys.Save):
		result, err := commands.NewSaveDocumentCommand(m.session, doc).Execute(context.Background())
		if err != nil {
			return emit(errorStatus(err))
		}
		return emit(StatusMsg{Text: result.Message})

	case key.Matches(msg, BrowserKeys.SaveAll):
		result, err := commands.NewSaveAllCommand(m.session).Execute(context.Background())
		var failures *domain.SaveFailures
		if errors.As(err, &failures) && result != nil {
			return emit(StatusMsg{Text: result.Message, Err: true})
		}
		if err != nil {
			return emit(errorStatus(err))
		}
		return emit(StatusMsg{Text: result.Message})

	case key.Matches(msg, BrowserKeys.Reload):
		if dirty := m.session.DirtyDocuments(); len(dirty) > 0 {
			return emit(SwitchToConfirmMsg{
				Title:     "Reload",
				Prompt:    "Discard unsaved changes and reload every document?",
				Details:   unsavedDetails(dirty),
				OnConfirm: m.reload,
			})
		}
		return emit(m.reload())

	case key.Matches(msg, BrowserKeys.OpenFile):
		return emit(OpenEditorMsg{Document: doc})

	case key.Matches(msg, BrowserKeys.Root):
		if dirty := m.session.DirtyDocuments(); len(dirty) > 0 {
			return emit(SwitchToConfirmMsg{
				Title:     "Change Project Root",
				Prompt:    "Discard unsaved changes and open another directory?",
				Details:   unsavedDetails(dirty),
				OnConfirm: emit(SwitchToRootMsg{}),
			})
		}
		return emit(SwitchToRootMsg{})

	case key.Matches(msg, BrowserKeys.Theme):
		return emit(ToggleThemeMsg{})

	case key.Matches(msg, BrowserKeys.Help):
		return emit(SwitchToHelpMsg{})
	}

	return nil
}

func (m *BrowserModel) reload() tea.Msg {
	result, err := commands.NewReloadCommand(m.session).Execute(context.Background())
	if err != nil {
		return errorStatus(err)
	}
	return DocumentsReloadedMsg{Message: result.Message}
}

// placementHint pre-fills the containers of the selected row
func (m *BrowserModel) placementHint() domain.Placement {
	var p domain.Placement
	path, ok := m.SelectedPath()
	if !ok {
		return p
	}
	spec, err := m.session.Spec(m.Document())
	if err != nil {
		return p
	}
	switch spec.Layout {
	case domain.LayoutGrouped:
		p.Group = path[0]
	case domain.LayoutNested:
		p.Category = path[0]
		if len(path) > 1 {
			p.Slot = path[1]
		}
	}
	return p
}

func unsavedDetails(dirty []string) []string {
	out := make([]string, len(dirty))
	for i, d := range dirty {
		out[i] = styles.DirtyMarker + " " + d
	}
	return out
}

// SetSize updates the view dimensions and the list window
func (m *BrowserModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(max(height-12, 5))
}

// View renders the browser
func (m *BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("contentmgr"))
	b.WriteString("\n")

	labels := make([]string, len(m.names))
	for i, n := range m.names {
		labels[i] = documentLabel(m.session, n)
	}
	b.WriteString(RenderTabs(labels, m.docIndex))
	b.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	list := m.renderRows()
	preview := m.renderPreview()
	if m.Width >= 100 {
		left := lipgloss.NewStyle().Width(m.Width / 2).Render(list)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, preview))
	} else {
		b.WriteString(list)
		b.WriteString("\n\n")
		b.WriteString(preview)
	}
	b.WriteString("\n")

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		BrowserKeys.Enter, BrowserKeys.Filter, BrowserKeys.New, BrowserKeys.Duplicate,
		BrowserKeys.Delete, BrowserKeys.Save, BrowserKeys.Help, BrowserKeys.Quit,
	))

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderRows() string {
	if len(m.rows) == 0 {
		if m.filter.Value() != "" {
			return styles.MutedText.Render("No entries match the filter")
		}
		return styles.MutedText.Render("No entries")
	}

	var lines []string
	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(m.rows[i], i == m.pager.Cursor()))
	}
	if end < len(m.rows) || start > 0 {
		lines = append(lines, styles.MutedText.Render(fmt.Sprintf("  %d-%d of %d", start+1, end, len(m.rows))))
	}
	return strings.Join(lines, "\n")
}

func (m *BrowserModel) renderRow(r browserRow, selected bool) string {
	indent := strings.Repeat("  ", r.Depth)

	var prefix string
	switch {
	case !r.Tree || r.Leaf:
		prefix = styles.TreeLeaf
	case r.Expanded:
		prefix = styles.TreeExpanded
	default:
		prefix = styles.TreeCollapsed
	}

	style := styles.NodeLeaf
	if r.Tree && !r.Leaf {
		style = styles.NodeBranch
	}
	if r.Matched {
		style = styles.NodeMatched
	}
	if selected {
		style = styles.NodeSelected
	}

	return indent + styles.MutedText.Render(prefix) + style.Render(r.Label)
}

func (m *BrowserModel) renderPreview() string {
	path, ok := m.SelectedPath()
	if !ok {
		return ""
	}
	res, err := commands.NewShowFieldsCommand(m.session, m.Document(), path).Execute(context.Background())
	if err != nil {
		return RenderMessage(err.Error(), true)
	}

	var b strings.Builder
	b.WriteString(styles.Subtitle.Render(path.String()))
	b.WriteString("\n")
	if res.Class == domain.ClassBranch && m.tree != nil {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("%d children", len(res.Children))))
		return b.String()
	}
	w := keyWidth(res.Fields)
	for _, f := range res.Fields {
		b.WriteString(RenderField(f, w))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
