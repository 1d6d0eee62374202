package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
	dim    lipgloss.Style
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// RenderPopupOverlay renders a popup centred on top of the main content,
// greying out the content around it
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	maxW := width - 6 // keep a small margin
	if maxW < 10 {
		maxW = 10
	}
	styledPopup := popupStyle.MaxWidth(maxW).MaxHeight(height - 2).Render(popupContent)

	popupLines := strings.Split(styledPopup, "\n")
	modalW := lipgloss.Width(styledPopup)
	modalH := len(popupLines)

	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	baseLines := strings.Split(ansi.Strip(mainContent), "\n")
	for len(baseLines) < y+modalH {
		baseLines = append(baseLines, "")
	}

	out := make([]string, len(baseLines))
	for i, line := range baseLines {
		if i < y || i >= y+modalH {
			out[i] = pr.dim.Render(line)
			continue
		}
		out[i] = pr.splice(line, popupLines[i-y], x, modalW)
	}
	return strings.Join(out, "\n")
}

// splice places popup over plain text starting at column x
func (pr *PopupRenderer) splice(plain, popup string, x, popupW int) string {
	left := ansi.Truncate(plain, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	right := ansi.TruncateLeft(plain, x+popupW, "")

	// Popup lines can be narrower than the box when borders are absent
	if w := ansi.StringWidth(popup); w < popupW {
		popup += strings.Repeat(" ", popupW-w)
	}
	return pr.dim.Render(left) + popup + pr.dim.Render(right)
}
