package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (a App) View() string {
	if a.err != nil {
		return fmt.Sprintf("Error: %v\n", a.err)
	}

	// Re-read both files every frame so the view always reflects what an
	// external editor last wrote. No in-memory cache of buffer text.
	left := a.session.Left().Read()
	right := a.session.Right().Read()
	helpBar := a.help.View(a.keys)

	return renderLayout(left, right, a.status, helpBar, a.width, a.height)
}

// renderLayout produces the whole screen: help bar on top, the two panes
// below, and a status line under the panes when one is set. Pure function of
// its inputs.
func renderLayout(left, right, status, helpBar string, width, height int) string {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	statusLine := ""
	if status != "" {
		statusLine = statusStyle.MaxWidth(width).Render(status)
	}

	paneHeight := height - lipgloss.Height(helpBar)
	if statusLine != "" {
		paneHeight -= lipgloss.Height(statusLine)
	}
	leftWidth := width / 2
	rightWidth := width - leftWidth

	leftPane := renderPane("Contents (Left)", left, leftWidth, paneHeight)
	rightPane := renderPane("Contents (Right)", right, rightWidth, paneHeight)
	panes := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)

	if statusLine != "" {
		return lipgloss.JoinVertical(lipgloss.Left, helpBar, panes, statusLine)
	}
	return lipgloss.JoinVertical(lipgloss.Left, helpBar, panes)
}

// renderPane renders one bordered, titled pane of the given outer size.
// Long lines soft-wrap at the pane's interior width; overflow past the
// bottom is truncated, never scrolled.
func renderPane(title, content string, width, height int) string {
	innerWidth := max(1, width-2)
	innerHeight := max(1, height-2)

	body := lipgloss.NewStyle().Width(innerWidth).Render(content)
	pane := paneTitleStyle.Render(title) + "\n" + body

	return paneStyle.
		Width(innerWidth).
		Height(innerHeight).
		MaxHeight(max(1, height)).
		Render(pane)
}
