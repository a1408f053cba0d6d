package styles

import (
	"github.com/charmbracelet/lipgloss"

	"jdex/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Entry type colors
	AreaColor     = lipgloss.Color("#60A5FA") // Blue
	CategoryColor = lipgloss.Color("#34D399") // Green
	IDColor       = lipgloss.Color("#FB923C") // Orange

	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	KeyArea = lipgloss.NewStyle().
		Foreground(AreaColor).
		Bold(true)

	KeyCategory = lipgloss.NewStyle().
			Foreground(CategoryColor).
			Bold(true)

	KeyID = lipgloss.NewStyle().
		Foreground(IDColor)

	Selected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	Description = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(Muted)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// KeyStyle returns the style used to render a key of the given entry type
func KeyStyle(t domain.EntryType) lipgloss.Style {
	switch t {
	case domain.EntryTypeArea:
		return KeyArea
	case domain.EntryTypeCategory:
		return KeyCategory
	default:
		return KeyID
	}
}
