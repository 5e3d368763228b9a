package tui

import (
	"log/slog"

	"todocards/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	// Store is shared with the caller, which can read the final snapshot
	// after Run returns. Nil means a freshly seeded store.
	Store  *store.Store
	Logger *slog.Logger
	// Theme is light, dark or auto.
	Theme string
}

// Run starts the interactive UI and blocks until the user quits.
func Run(opts Options) error {
	applyColorProfile()
	applyTheme(opts.Theme)

	m := newAppModel(opts.Store, opts.Logger)
	m.log.Debug("tui.start", "tasks", m.store.Len())
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	m.log.Debug("tui.exit", "tasks", m.store.Len(), "err", err)
	return err
}
