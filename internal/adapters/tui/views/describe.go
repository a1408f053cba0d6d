package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"jdex/internal/adapters/tui/styles"
	"jdex/internal/application"
	"jdex/internal/application/commands"
	"jdex/internal/domain"
)

// DescribeKeyMap defines key bindings for the description editor
type DescribeKeyMap struct {
	Save   key.Binding
	Cancel key.Binding
}

var DescribeKeys = DescribeKeyMap{
	Save: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// DescribeModel edits the description of a single entry
type DescribeModel struct {
	ViewState
	ws     *application.Workspace
	input  textinput.Model
	target domain.SearchResult
}

// NewDescribeModel creates a new description editor
func NewDescribeModel(ws *application.Workspace) *DescribeModel {
	input := textinput.New()
	input.Placeholder = "Empty clears the description"
	input.CharLimit = 500

	return &DescribeModel{
		ws:    ws,
		input: input,
	}
}

// Init initializes the view
func (m *DescribeModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetTarget selects the entry to edit and prefills its description
func (m *DescribeModel) SetTarget(entry domain.SearchResult) {
	m.target = entry
	m.input.SetValue(entry.Description)
	m.input.CursorEnd()
	m.input.Focus()
	m.ClearMessage()
}

// Target returns the entry being edited
func (m *DescribeModel) Target() domain.SearchResult {
	return m.target
}

func (m *DescribeModel) save() tea.Cmd {
	entryKey, description := m.target.Key, strings.TrimSpace(m.input.Value())
	return func() tea.Msg {
		cmd := commands.NewDescribeCommand(m.ws, entryKey, description)
		if err := cmd.Validate(); err != nil {
			return DescribeDoneMsg{Key: entryKey, Err: err}
		}
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return DescribeDoneMsg{Key: entryKey, Err: err}
		}
		return DescribeDoneMsg{Key: result.Key, Description: result.Description}
	}
}

// Update handles messages for the description editor
func (m *DescribeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DescribeKeys.Cancel):
			m.input.Blur()
			return m, func() tea.Msg {
				return SwitchToFinderMsg{}
			}

		case key.Matches(msg, DescribeKeys.Save):
			return m, m.save()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the description editor
func (m *DescribeModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Describe"))
	b.WriteString("\n\n")

	b.WriteString(styles.KeyStyle(m.target.Type).Render(m.target.Key))
	b.WriteString("  ")
	b.WriteString(m.target.Name)
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Description"))
	b.WriteString("\n")
	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderHelpLine(DescribeKeys.Save, DescribeKeys.Cancel))

	return styles.App.Render(b.String())
}
