package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run plays the terminal full-screen until the user picks a page or quits.
// It returns the chosen destination, or "" when the user quit.
func Run(opts Options) (string, error) {
	model := NewAppModel(opts)
	defer model.zones.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("terminal UI failed: %w", err)
	}

	app, ok := final.(AppModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type %T", final)
	}
	return app.Destination(), nil
}
