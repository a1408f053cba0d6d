package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"jdex/internal/adapters/tui/views"
	"jdex/internal/application"
	"jdex/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewFinder ViewState = iota
	ViewDescribe
	ViewHelp
)

// App is the main TUI application model
type App struct {
	ws     *application.Workspace
	editor ports.EditorOpener

	state    ViewState
	finder   *views.FinderModel
	describe *views.DescribeModel
	help     *views.HelpModel
}

// NewApp creates a new TUI application. The editor may be nil, in which
// case the open action reports an error instead of launching anything.
func NewApp(ws *application.Workspace, ed ports.EditorOpener, threshold float64) *App {
	return &App{
		ws:       ws,
		editor:   ed,
		state:    ViewFinder,
		finder:   views.NewFinderModel(ws, threshold),
		describe: views.NewDescribeModel(ws),
		help:     views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.finder.Init()
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.finder.SetSize(msg.Width, msg.Height)
		a.describe.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToFinderMsg:
		a.state = ViewFinder
		return a, nil

	case views.SwitchToDescribeMsg:
		a.state = ViewDescribe
		a.describe.SetTarget(msg.Entry)
		return a, a.describe.Init()

	case views.DescribeDoneMsg:
		if msg.Err != nil {
			a.describe.SetMessage(msg.Err.Error(), true)
			return a, nil
		}
		a.state = ViewFinder
		a.finder.ApplyDescription(msg.Key, msg.Description)
		if msg.Description == "" {
			a.finder.SetMessage("Cleared description of "+msg.Key, false)
		} else {
			a.finder.SetMessage("Described "+msg.Key, false)
		}
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.finder.SetMessage(msg.err.Error(), true)
		}
		return a, nil
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewFinder:
		_, cmd = a.finder.Update(msg)
	case ViewDescribe:
		_, cmd = a.describe.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: errNoEditor}
		}
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewDescribe:
		return a.describe.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.finder.View()
	}
}

var errNoEditor = errors.New("editor support is disabled")
