package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"jdex/internal/adapters/tui/styles"
	"jdex/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "f1"),
		key.WithHelp("esc/q/f1", "close"),
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
			return m, func() tea.Msg {
				return SwitchToFinderMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("jdex Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Johnny.Decimal index finder"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Search"))
	b.WriteString("\n")
	b.WriteString(helpLine("type", "Fuzzy match keys, names and descriptions"))
	b.WriteString(helpLine("↑ / ↓ / ctrl+p / ctrl+n", "Move up/down"))
	b.WriteString(helpLine("pgup / pgdn", "Previous/next page"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Actions"))
	b.WriteString("\n")
	b.WriteString(helpLine("enter", "Copy key to clipboard"))
	b.WriteString(helpLine("ctrl+y", "Copy folder path to clipboard"))
	b.WriteString(helpLine("ctrl+o", "Open folder in $EDITOR"))
	b.WriteString(helpLine("ctrl+e", "Edit description"))
	b.WriteString(helpLine("ctrl+r", "Rebuild index from disk"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("f1", "Toggle help"))
	b.WriteString(helpLine("esc / ctrl+c", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Johnny.Decimal Structure"))
	b.WriteString("\n")
	b.WriteString("  " + styles.KeyStyle(domain.EntryTypeArea).Render(padRight("Area", 10)) + styles.MutedText.Render("10-19 Finance"))
	b.WriteString("\n")
	b.WriteString("  " + styles.KeyStyle(domain.EntryTypeCategory).Render(padRight("Category", 10)) + styles.MutedText.Render("11 Tax"))
	b.WriteString("\n")
	b.WriteString("  " + styles.KeyStyle(domain.EntryTypeID).Render(padRight("ID", 10)) + styles.MutedText.Render("11.01 Returns, 11.01+A3 Scans"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("f1"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 26)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
