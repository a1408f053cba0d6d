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

	"jdex/internal/adapters/tui/styles"
	"jdex/internal/application"
	"jdex/internal/application/commands"
	"jdex/internal/domain"
)

// FinderKeyMap defines key bindings for the finder view
type FinderKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	CopyKey  key.Binding
	CopyPath key.Binding
	Open     key.Binding
	Describe key.Binding
	Rebuild  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var FinderKeys = FinderKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "next page"),
	),
	CopyKey: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "copy key"),
	),
	CopyPath: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy path"),
	),
	Open: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "open"),
	),
	Describe: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "describe"),
	),
	Rebuild: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "rebuild"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// reserved rows: title, subtitle, input box, status and help lines
const finderChrome = 11

// FinderModel searches the whole index as the user types
type FinderModel struct {
	ViewState
	ws        *application.Workspace
	threshold float64
	input     textinput.Model
	index     domain.Index
	results   []domain.FuzzyMatch
	pager     *Paginator
	loaded    bool

	// clip is swapped out in tests
	clip func(string) error
}

// NewFinderModel creates a new finder view model
func NewFinderModel(ws *application.Workspace, threshold float64) *FinderModel {
	input := textinput.New()
	input.Placeholder = "Search keys, names and descriptions..."
	input.Prompt = "› "
	input.Focus()

	return &FinderModel{
		ws:        ws,
		threshold: threshold,
		input:     input,
		pager:     NewPaginator(10),
		clip:      clipboard.WriteAll,
	}
}

// Init loads the index and starts the cursor blinking
func (m *FinderModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.load())
}

type indexLoadedMsg struct {
	index domain.Index
	err   error
}

type rebuiltMsg struct {
	result *commands.RebuildResult
	err    error
}

func (m *FinderModel) load() tea.Cmd {
	return func() tea.Msg {
		index, err := commands.LoadIndex(m.ws)
		return indexLoadedMsg{index: index, err: err}
	}
}

func (m *FinderModel) rebuild() tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewRebuildCommand(m.ws, false)
		if err := cmd.Validate(); err != nil {
			return rebuiltMsg{err: err}
		}
		result, err := cmd.Execute(context.Background())
		return rebuiltMsg{result: result, err: err}
	}
}

// SetIndex replaces the searched index and reruns the current query
func (m *FinderModel) SetIndex(index domain.Index) {
	m.index = index
	m.loaded = true
	m.refresh()
}

// SetSize updates the view dimensions and the page size
func (m *FinderModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(height - finderChrome)
}

// Results returns the current matches
func (m *FinderModel) Results() []domain.FuzzyMatch {
	return m.results
}

// Selected returns the entry under the cursor
func (m *FinderModel) Selected() (domain.FuzzyMatch, bool) {
	i := m.pager.Cursor()
	if i < 0 || i >= len(m.results) {
		return domain.FuzzyMatch{}, false
	}
	return m.results[i], true
}

// SelectedPath resolves the folder of the entry under the cursor
func (m *FinderModel) SelectedPath() (string, bool) {
	sel, ok := m.Selected()
	if !ok {
		return "", false
	}
	return domain.ResolveEntryPath(m.ws.Root, m.index, sel.Key), true
}

// ApplyDescription updates the in-memory entry after a successful edit
func (m *FinderModel) ApplyDescription(entryKey, description string) {
	entry, ok := m.index[entryKey]
	if !ok {
		return
	}
	entry.Description = description
	m.index[entryKey] = entry
	m.refresh()
}

func (m *FinderModel) refresh() {
	m.results = commands.Find(m.index, m.input.Value(), m.threshold, "", 0)
	m.pager.SetTotal(len(m.results))
	m.pager.Reset()
}

// Update handles messages for the finder view
func (m *FinderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case indexLoadedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, application.ErrNoIndex) {
				m.SetMessage("No index yet, press ctrl+r to build one", true)
			} else {
				m.SetMessage(msg.err.Error(), true)
			}
			return m, nil
		}
		m.SetIndex(msg.index)
		return m, nil

	case rebuiltMsg:
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.SetIndex(msg.result.File.Entries)
		d := msg.result.Diff
		m.SetMessage(fmt.Sprintf("Rebuilt %d entries (+%d -%d ~%d)",
			len(msg.result.File.Entries), len(d.Added), len(d.Removed), len(d.Changed)), false)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, FinderKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, FinderKeys.Up):
			m.pager.CursorUp()
			return m, nil

		case key.Matches(msg, FinderKeys.Down):
			m.pager.CursorDown()
			return m, nil

		case key.Matches(msg, FinderKeys.PrevPage):
			m.pager.PrevPage()
			return m, nil

		case key.Matches(msg, FinderKeys.NextPage):
			m.pager.NextPage()
			return m, nil

		case key.Matches(msg, FinderKeys.CopyKey):
			if sel, ok := m.Selected(); ok {
				m.copyText(sel.Key, "Copied "+sel.Key)
			}
			return m, nil

		case key.Matches(msg, FinderKeys.CopyPath):
			if path, ok := m.SelectedPath(); ok {
				m.copyText(path, "Copied "+path)
			}
			return m, nil

		case key.Matches(msg, FinderKeys.Open):
			if path, ok := m.SelectedPath(); ok {
				return m, func() tea.Msg {
					return OpenEditorMsg{Path: path}
				}
			}
			return m, nil

		case key.Matches(msg, FinderKeys.Describe):
			if sel, ok := m.Selected(); ok {
				return m, func() tea.Msg {
					return SwitchToDescribeMsg{Entry: sel.SearchResult}
				}
			}
			return m, nil

		case key.Matches(msg, FinderKeys.Rebuild):
			m.SetMessage("Rebuilding...", false)
			return m, m.rebuild()

		case key.Matches(msg, FinderKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.ClearMessage()
		m.refresh()
	}
	return m, cmd
}

func (m *FinderModel) copyText(text, confirmation string) {
	if err := m.clip(text); err != nil {
		m.SetMessage("Clipboard unavailable: "+err.Error(), true)
		return
	}
	m.SetMessage(confirmation, false)
}

// View renders the finder view
func (m *FinderModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("jdex"))
	b.WriteString("  ")
	b.WriteString(styles.Subtitle.Render(m.ws.Root))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	switch {
	case !m.loaded:
		b.WriteString(styles.MutedText.Render("Loading index..."))
		b.WriteString("\n")
	case len(m.results) == 0:
		b.WriteString(styles.MutedText.Render("No matches"))
		b.WriteString("\n")
	default:
		start, end := m.pager.VisibleRange()
		for i := start; i < end; i++ {
			b.WriteString(RenderEntry(m.results[i].SearchResult, i == m.pager.Cursor(), m.Width-4))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.StatusBar.Render(fmt.Sprintf("%d/%d entries  page %d/%d",
		len(m.results), len(m.index), m.pager.CurrentPage(), m.pager.TotalPages())))
	b.WriteString("\n")
	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(RenderHelpLine(
		FinderKeys.CopyKey,
		FinderKeys.CopyPath,
		FinderKeys.Open,
		FinderKeys.Describe,
		FinderKeys.Help,
		FinderKeys.Quit,
	))

	return styles.App.Render(b.String())
}
