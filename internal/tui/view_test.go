package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestRenderLayoutIsPure(t *testing.T) {
	first := renderLayout("left text", "right text", "", "help", 80, 24)
	second := renderLayout("left text", "right text", "", "help", 80, 24)
	require.Equal(t, first, second)
}

func TestRenderLayoutPaneTitles(t *testing.T) {
	out := renderLayout("", "", "", "help", 80, 24)
	require.Contains(t, out, "Contents (Left)")
	require.Contains(t, out, "Contents (Right)")
}

func TestRenderLayoutDefaultsSizeWhenUnknown(t *testing.T) {
	out := renderLayout("x", "y", "", "help", 0, 0)
	require.NotEmpty(t, out)
	require.Contains(t, out, "Contents (Left)")
}

func TestRenderLayoutStatusLine(t *testing.T) {
	out := renderLayout("", "", "clear failed: disk gone", "help", 80, 24)
	require.Contains(t, out, "clear failed: disk gone")
}

func TestRenderLayoutWrapsLongLines(t *testing.T) {
	long := strings.Repeat("a", 200)
	out := renderLayout(long, "", "", "help", 40, 24)

	// A 40-column screen gives each pane an interior of 18 columns, so a
	// 200-rune line must wrap rather than widen the pane.
	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, len([]rune(line)), 40, "line overflows the screen: %q", line)
	}
	require.Contains(t, out, strings.Repeat("a", 18))
}

func TestViewShowsEditedContent(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, os.WriteFile(app.session.Left().Path(), []byte("hello"), 0644))

	out := app.View()
	require.Contains(t, out, "hello")
}

func TestViewAfterClearShowsEmptyPanes(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, os.WriteFile(app.session.Left().Path(), []byte("hello"), 0644))
	require.NoError(t, os.WriteFile(app.session.Right().Path(), []byte("world"), 0644))

	model, _ := app.Update(keyPress('c'))
	out := model.(App).View()
	require.NotContains(t, out, "hello")
	require.NotContains(t, out, "world")
}

func TestViewSurvivesMissingBackingFile(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, os.Remove(app.session.Right().Path()))

	out := app.View()
	require.Contains(t, out, "Contents (Right)")
}

func TestViewShowsFatalError(t *testing.T) {
	app := newTestApp(t)
	model, _ := app.Update(execFinishedMsg{err: osPathError()})

	out := model.(App).View()
	require.Contains(t, out, "Error:")
}

func TestViewHelpBarListsBindings(t *testing.T) {
	app := newTestApp(t)
	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	out := model.(App).View()
	for _, want := range []string{"quit", "edit left", "edit right", "clear input", "diff text"} {
		require.Contains(t, out, want)
	}
}

func osPathError() error {
	return &os.PathError{Op: "fork/exec", Path: "delta", Err: os.ErrNotExist}
}
