package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderHelpContent renders the full key reference from keys
func (r *Renderer) RenderHelpContent(keys KeyMap) string {
	var help strings.Builder

	help.WriteString(r.styles.Title.Render("Bookshelf Help"))
	help.WriteString("\n")

	for i, column := range keys.FullHelp() {
		help.WriteString("\n")
		if i < len(helpSections) {
			help.WriteString(r.styles.Section.Render(helpSections[i]))
			help.WriteString("\n")
		}
		for _, b := range column {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s  %s\n",
				r.styles.Key.Render(fmt.Sprintf("%-10s", h.Key)),
				r.styles.Desc.Render(h.Desc)))
		}
	}

	help.WriteString("\n")
	help.WriteString(r.styles.Scroll.Render("  In selectors: ↑/↓ apply, enter keeps, esc restores"))

	return help.String()
}

// ScrollHelp returns the visible window of the help text
func ScrollHelp(content string, height int, scrollOffset int) string {
	lines := strings.Split(content, "\n")
	totalLines := len(lines)

	// Calculate visible window (account for popup border and padding)
	visibleHeight := height - 6
	if visibleHeight < 5 {
		visibleHeight = 5
	}
	if totalLines <= visibleHeight {
		return content
	}

	maxOffset := totalLines - visibleHeight
	if scrollOffset > maxOffset {
		scrollOffset = maxOffset
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}

	endLine := scrollOffset + visibleHeight
	visibleLines := append([]string(nil), lines[scrollOffset:endLine]...)

	moreStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if scrollOffset > 0 {
		visibleLines[0] = moreStyle.Render("↑ (more above)")
	}
	if endLine < totalLines {
		visibleLines[len(visibleLines)-1] = moreStyle.Render("↓ (more below)")
	}

	return strings.Join(visibleLines, "\n")
}
