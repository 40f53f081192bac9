package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"contentmgr/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, emit(SwitchToBrowserMsg{})
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("contentmgr Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Game data document editor"))
	b.WriteString("\n\n")

	section(&b, "Navigation",
		BrowserKeys.Up, BrowserKeys.Down, BrowserKeys.Left, BrowserKeys.Right,
		BrowserKeys.Enter, BrowserKeys.NextDoc, BrowserKeys.PrevDoc,
		BrowserKeys.Filter, BrowserKeys.Search)
	section(&b, "Entries",
		BrowserKeys.New, BrowserKeys.Duplicate, BrowserKeys.Delete,
		BrowserKeys.Revert, BrowserKeys.CopyPath)
	section(&b, "Files",
		BrowserKeys.Save, BrowserKeys.SaveAll, BrowserKeys.Reload, BrowserKeys.OpenFile,
		BrowserKeys.Root)
	section(&b, "General",
		BrowserKeys.Theme, BrowserKeys.Help, BrowserKeys.Quit)

	b.WriteString(styles.InputLabel.Render("Layouts"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  flat     : {key: entry}"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  grouped  : {playable|non_playable: {key: entry}}"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  skills   : {skills: {key: entry}}"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  nested   : {category: {slot: {key: entry}}}"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func section(b *strings.Builder, title string, bindings ...key.Binding) {
	b.WriteString(styles.InputLabel.Render(title))
	b.WriteString("\n")
	for _, k := range bindings {
		h := k.Help()
		b.WriteString(helpLine(h.Key, h.Desc))
	}
	b.WriteString("\n")
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 16)) + styles.HelpDesc.Render(desc) + "\n"
}
