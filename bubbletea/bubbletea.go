// Package bubbletea provides a Bubble Tea terminal preview of a markdown
// document rendered through the blockmark tokenizer.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// LoadFunc returns the current markdown source of the previewed document.
// It is called on start and on every reload.
type LoadFunc func() (string, error)

// Run creates and runs the Bubble Tea program. It blocks until the program
// exits. Cancelling ctx quits the program.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// LoadedMsg carries the result of a LoadFunc call to the model.
type LoadedMsg struct {
	Source string
	Err    error
}
