package tui

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultEditor = "vim"
	diffTool      = "delta"
)

// execFinishedMsg reports that an external process has exited and the
// terminal is interactive again.
type execFinishedMsg struct {
	err error
}

// editorCommand builds the editor invocation for one buffer. The preferred
// editor is read from $EDITOR at the point of use, never cached.
func editorCommand(path string) *exec.Cmd {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}
	return exec.Command(editor, path)
}

// diffCommand builds the diff-viewer invocation for both buffers. Paging is
// forced so short diffs still land in the pager instead of scrolling past.
func diffCommand(left, right string) *exec.Cmd {
	return exec.Command(diffTool, left, right, "--paging", "always")
}

// execProcess hands the terminal to c, waits for it to exit, and reports
// back through an execFinishedMsg.
func execProcess(c *exec.Cmd) tea.Cmd {
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return execFinishedMsg{err: handoffError(c, err)}
	})
}

// handoffError classifies the outcome of an external process run. A non-zero
// exit status means the program ran and the terminal swap completed both
// ways, so it does not count as a failure. Anything else (binary missing,
// permissions) is unrecoverable: the terminal may be left inconsistent.
func handoffError(c *exec.Cmd, err error) error {
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &exitErr):
		return nil
	default:
		return fmt.Errorf("running %s: %w", c.Path, err)
	}
}
