package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Run takes over the terminal with the alternate screen until the user quits
// or ctx is canceled. bubbletea restores the terminal on every return path,
// including a panic inside the model.
func Run(ctx context.Context, opts Options, extra ...tea.ProgramOption) error {
	popts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, extra...)
	p := tea.NewProgram(NewModel(opts), popts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
