package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"jdex/internal/adapters/tui/styles"
	"jdex/internal/domain"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// RenderEntry renders one result line: colored key, name and muted description.
// The selected line is rendered as plain text on the highlight background.
func RenderEntry(r domain.SearchResult, selected bool, width int) string {
	if selected {
		text := r.Key + "  " + r.Name
		if r.Description != "" {
			text += "  " + r.Description
		}
		return styles.Selected.Render(truncate(text, width))
	}

	line := styles.KeyStyle(r.Type).Render(r.Key) + "  " + r.Name
	if r.Description != "" {
		line += "  " + styles.Description.Render(truncate(r.Description, width-len(r.Key)-len(r.Name)-4))
	}
	return line
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
