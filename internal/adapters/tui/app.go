package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"contentmgr/internal/adapters/tui/styles"
	"contentmgr/internal/adapters/tui/views"
	"contentmgr/internal/application"
	"contentmgr/internal/application/commands"
	"contentmgr/internal/config"
	"contentmgr/internal/ports"
)

// StatusTimeout is how long a status line stays on screen
const StatusTimeout = 6 * time.Second

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewFields
	ViewCreate
	ViewDuplicate
	ViewDelete
	ViewConfirm
	ViewSearch
	ViewHelp
	ViewRoot
)

// Options carries the settings the app reads and persists. Root is the
// directory the session was loaded from; RootErr, when set, says why no
// usable root is open and starts the app on the root view. OpenStore
// builds the store for a newly chosen root.
type Options struct {
	ConfigPath string
	Config     config.Config
	Logger     *zap.Logger

	Root      string
	RootErr   error
	OpenStore func(root string) ports.DocumentStore
}

// App is the main TUI application model
type App struct {
	session *application.Session
	editor  ports.EditorOpener
	opts    Options
	logger  *zap.Logger

	state     ViewState
	browser   *views.BrowserModel
	fields    *views.FieldsModel
	create    *views.CreateModel
	duplicate *views.DuplicateModel
	remove    *views.DeleteModel
	confirm   *views.ConfirmationModel
	search    *views.SearchModel
	help      *views.HelpModel
	root      *views.RootModel

	statusSeq int
}

// NewApp creates a new TUI application over a loaded session
func NewApp(session *application.Session, ed ports.EditorOpener, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	styles.SetDark(opts.Config.DarkMode)

	a := &App{
		session:   session,
		editor:    ed,
		opts:      opts,
		logger:    logger,
		state:     ViewBrowser,
		browser:   views.NewBrowserModel(session),
		fields:    views.NewFieldsModel(session),
		create:    views.NewCreateModel(session),
		duplicate: views.NewDuplicateModel(session),
		remove:    views.NewDeleteModel(session),
		confirm:   views.NewConfirmationModel(),
		search:    views.NewSearchModel(session),
		help:      views.NewHelpModel(),
		root:      views.NewRootModel(),
	}
	a.browser.Refresh()
	if opts.RootErr != nil {
		a.state = ViewRoot
		a.root.SetTarget(opts.Root, opts.RootErr.Error())
	}
	return a
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	if a.state == ViewRoot {
		return a.root.Init()
	}
	return a.browser.Init()
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Browser returns the browser view
func (a *App) Browser() *views.BrowserModel {
	return a.browser
}

type clearStatusMsg struct{ seq int }

type editorFinishedMsg struct{ err error }

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.browser.SetSize(msg.Width, msg.Height)
		a.fields.SetSize(msg.Width, msg.Height)
		a.create.SetSize(msg.Width, msg.Height)
		a.duplicate.SetSize(msg.Width, msg.Height)
		a.remove.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		a.root.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		a.browser.Refresh()
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		a.search.Reset()
		return a, a.search.Init()

	case views.SwitchToRootMsg:
		a.state = ViewRoot
		a.root.SetTarget(a.opts.Root, "")
		return a, a.root.Init()

	case views.ChangeRootMsg:
		return a, a.changeRoot(msg.Root)

	case views.SwitchToEditorMsg:
		if err := a.fields.SetTarget(msg.Document, msg.Path); err != nil {
			return a, a.status(err.Error(), true)
		}
		a.state = ViewFields
		return a, a.fields.Init()

	case views.SwitchToCreateMsg:
		a.state = ViewCreate
		a.create.SetTarget(msg.Document, msg.Placement)
		return a, a.create.Init()

	case views.SwitchToDuplicateMsg:
		a.state = ViewDuplicate
		a.duplicate.SetTarget(msg.Document, msg.Source)
		return a, a.duplicate.Init()

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		a.remove.SetTarget(msg.Document, msg.Path)
		return a, nil

	case views.SwitchToConfirmMsg:
		a.state = ViewConfirm
		a.confirm.SetTarget(msg)
		return a, nil

	// Results
	case views.EntryChangedMsg:
		a.state = ViewBrowser
		a.browser.SelectPath(msg.Document, msg.Path)
		return a, a.status(msg.Message, false)

	case views.DeleteErrMsg:
		a.state = ViewBrowser
		return a, a.status(msg.Err.Error(), true)

	case views.SearchSelectMsg:
		a.state = ViewBrowser
		a.browser.SelectPath(msg.Hit.Document, msg.Hit.Path)
		return a, nil

	case views.DocumentsReloadedMsg:
		a.state = ViewBrowser
		a.browser.Refresh()
		return a, a.status(msg.Message, false)

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Document)

	case editorFinishedMsg:
		if msg.err != nil {
			return a, a.status(fmt.Sprintf("editor: %v", msg.err), true)
		}
		result, err := commands.NewReloadCommand(a.session).Execute(context.Background())
		if err != nil {
			return a, a.status(err.Error(), true)
		}
		a.browser.Refresh()
		return a, a.status(result.Message, false)

	case views.ToggleThemeMsg:
		return a, a.toggleTheme()

	case views.StatusMsg:
		a.state = ViewBrowser
		a.browser.Refresh()
		return a, a.status(msg.Text, msg.Err)

	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.browser.ClearMessage()
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewFields:
		_, cmd = a.fields.Update(msg)
	case ViewCreate:
		_, cmd = a.create.Update(msg)
	case ViewDuplicate:
		_, cmd = a.duplicate.Update(msg)
	case ViewDelete:
		_, cmd = a.remove.Update(msg)
	case ViewConfirm:
		_, cmd = a.confirm.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	case ViewRoot:
		_, cmd = a.root.Update(msg)
	}

	return a, cmd
}

// status shows text in the browser and schedules its removal
func (a *App) status(text string, isErr bool) tea.Cmd {
	a.browser.SetMessage(text, isErr)
	if isErr {
		a.logger.Warn("tui action failed", zap.String("error", text))
	}
	a.statusSeq++
	seq := a.statusSeq
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (a *App) toggleTheme() tea.Cmd {
	styles.SetDark(!styles.IsDark())
	a.opts.Config.DarkMode = styles.IsDark()

	mode := "light"
	if styles.IsDark() {
		mode = "dark"
	}
	if a.opts.ConfigPath == "" {
		return a.status("Switched to "+mode+" theme", false)
	}
	if err := config.Save(a.opts.ConfigPath, a.opts.Config); err != nil {
		return a.status(err.Error(), true)
	}
	return a.status("Switched to "+mode+" theme", false)
}

// changeRoot opens the documents under dir and remembers it in the config.
// Failures keep the root view open with the reason.
func (a *App) changeRoot(dir string) tea.Cmd {
	fail := func(err error) tea.Cmd {
		a.logger.Warn("failed to change project root", zap.String("root", dir), zap.Error(err))
		a.root.SetMessage(err.Error(), true)
		return nil
	}
	if a.opts.OpenStore == nil {
		return fail(errors.New("changing the project root is not available"))
	}

	abs, err := config.CheckRoot(dir)
	if err != nil {
		return fail(err)
	}
	result, err := commands.NewChangeRootCommand(a.session, abs, a.opts.OpenStore(abs)).Execute(context.Background())
	if err != nil {
		return fail(err)
	}

	a.opts.Root = abs
	a.opts.RootErr = nil
	a.state = ViewBrowser
	a.browser.Refresh()

	a.opts.Config.RootDirectory = abs
	if a.opts.ConfigPath != "" {
		if err := config.Save(a.opts.ConfigPath, a.opts.Config); err != nil {
			return a.status(err.Error(), true)
		}
	}
	return a.status(result.Message, false)
}

// openEditor hands the document file to the external editor. Unsaved
// edits would be lost on the reload that follows, so they block it.
func (a *App) openEditor(document string) tea.Cmd {
	if a.editor == nil {
		return a.status("no editor configured", true)
	}
	if dirty := a.session.DirtyDocuments(); len(dirty) > 0 {
		return a.status(fmt.Sprintf("save or reload %v before editing files externally", dirty), true)
	}

	path, err := a.session.Store().FilePath(document)
	if err != nil {
		return a.status(err.Error(), true)
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return a.status(err.Error(), true)
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewFields:
		return a.fields.View()
	case ViewCreate:
		return a.create.View()
	case ViewDuplicate:
		return a.duplicate.View()
	case ViewDelete:
		return a.remove.View()
	case ViewConfirm:
		return a.confirm.View()
	case ViewSearch:
		return a.search.View()
	case ViewHelp:
		return a.help.View()
	case ViewRoot:
		return a.root.View()
	default:
		return a.browser.View()
	}
}
