// Package tui implements the interactive scenario playground: a scenario
// menu on the left and the selected scenario's detail pane on the right.
package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
}

// New creates a new TUI application
func New(backend Backend, opts Options) *App {
	return &App{model: NewModel(backend, opts)}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Quit cleanly on termination signals so in-flight requests are canceled
	// and the terminal is restored.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})

	go func() {
		select {
		case <-sigChan:
			a.program.Send(quitMsg{})
		case <-done:
		}
	}()

	_, err := a.program.Run()

	close(done)
	signal.Stop(sigChan)

	return err
}
