// Command diffur is a two-pane scratchpad for diffing text. Each pane is
// backed by a throwaway file: edit either one in $EDITOR, then view the
// difference with delta. Nothing survives the process.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diffur/diffur/internal/scratch"
	"github.com/diffur/diffur/internal/tui"
)

func main() {
	if err := run(); err != nil {
		// Bubble Tea has already restored the terminal by the time Run
		// returns, whatever ended the loop.
		fmt.Println(err)
		os.Exit(1)
	}
}

func run() error {
	session, err := scratch.NewSession()
	if err != nil {
		return fmt.Errorf("creating scratch buffers: %w", err)
	}
	defer session.Close()

	p := tea.NewProgram(tui.NewApp(session), tea.WithAltScreen(), tea.WithMouseCellMotion())
	model, err := p.Run()
	if err != nil {
		return err
	}
	if app, ok := model.(tui.App); ok {
		return app.Err()
	}
	return nil
}
