package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/todo"
)

// Run starts the interactive screen on store and blocks until the user
// quits. Every state change is forwarded to the program as a SnapshotMsg.
func Run(store *todo.List, opt Options) error {
	var progOpts []tea.ProgramOption
	if opt.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(New(store, opt), progOpts...)

	// Send blocks until the event loop reads the message, and listeners run
	// inside Update when the change comes from a key press.
	unsubscribe := store.Subscribe(func(s todo.Snapshot) {
		go p.Send(SnapshotMsg{Snapshot: s})
	})
	defer unsubscribe()

	_, err := p.Run()
	return err
}
