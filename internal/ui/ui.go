package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"billfold/internal/config"
	"billfold/internal/invoice"
)

// Mode is the presentation state of the session.
type Mode int

const (
	// ModeEdit is the default interactive state: form plus live preview.
	ModeEdit Mode = iota
	// ModeView is the read-only state entered when a share link decodes
	// at startup. The form is not presented, so no mutation is reachable.
	ModeView
)

// Options configure the UI runtime.
type Options struct {
	Context   context.Context
	Store     *invoice.Store
	Config    config.Config
	Mode      Mode
	Location  string // share link the session was opened with, if any
	ThemeName string
	PrefsPath string
}

// Run starts the TUI and blocks until the context is cancelled or the
// user quits.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a document store")
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	program := tea.NewProgram(
		newModel(opts),
		tea.WithAltScreen(),
		tea.WithContext(opts.Context),
	)
	_, err := program.Run()
	return err
}
