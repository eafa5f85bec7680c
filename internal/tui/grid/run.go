package grid

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the editor full-screen until the user saves or quits and returns
// the final model. Check Saved before using Rows.
func Run(ctx context.Context, m Model, in io.Reader, out io.Writer) (Model, error) {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return m, fmt.Errorf("grid editor failed: %w", err)
	}

	result, ok := final.(Model)
	if !ok {
		return m, fmt.Errorf("grid editor returned unexpected model %T", final)
	}
	return result, nil
}
