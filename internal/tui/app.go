// Package tui implements the interactive two-pane view over the scratch
// buffers and the hand-off to external editor and diff processes.
package tui

import (
	"fmt"
	"os/exec"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/diffur/diffur/internal/scratch"
)

// uiMode tracks who owns the terminal. Exactly one mode holds at a time:
// dispatching an external process flips to suspended, its finished message
// flips back.
type uiMode int

const (
	modeInteractive uiMode = iota
	modeSuspended
)

// App is the main Bubble Tea model.
type App struct {
	session *scratch.Session
	keys    keyMap
	help    help.Model
	mode    uiMode
	status  string
	width   int
	height  int
	err     error
}

// NewApp creates the main application model over an existing session.
func NewApp(session *scratch.Session) App {
	h := help.New()
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.ShortDesc = helpDescStyle
	h.Styles.ShortSeparator = helpSepStyle
	return App{
		session: session,
		keys:    defaultKeyMap,
		help:    h,
		mode:    modeInteractive,
	}
}

// Err returns the fatal error that ended the loop, if any.
func (a App) Err() error { return a.err }

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case execFinishedMsg:
		a.mode = modeInteractive
		if msg.err != nil {
			a.err = msg.err
			return a, tea.Quit
		}
		return a, nil

	case tea.KeyMsg:
		if a.mode != modeInteractive {
			return a, nil
		}
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.EditLeft):
			return a.launch(editorCommand(a.session.Left().Path()))
		case key.Matches(msg, a.keys.EditRight):
			return a.launch(editorCommand(a.session.Right().Path()))
		case key.Matches(msg, a.keys.Clear):
			a.status = ""
			if err := a.session.ClearAll(); err != nil {
				a.status = fmt.Sprintf("clear failed: %v", err)
			}
			return a, nil
		case key.Matches(msg, a.keys.Diff):
			return a.launch(diffCommand(a.session.Left().Path(), a.session.Right().Path()))
		}
	}

	return a, nil
}

// launch suspends the UI and runs c over the real terminal.
func (a App) launch(c *exec.Cmd) (tea.Model, tea.Cmd) {
	a.mode = modeSuspended
	return a, execProcess(c)
}
