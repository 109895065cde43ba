package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/musetui/muse/internal/artwork"
	"github.com/musetui/muse/internal/bridge"
	"github.com/musetui/muse/internal/config"
)

// Options configure the UI runtime.
type Options struct {
	Bridge   *bridge.Bridge
	Resolver *artwork.Resolver
	Config   config.Config
}

// Run starts the TUI and blocks until the user quits or ctx is
// cancelled. Failing to acquire the terminal is the one fatal error in
// the program.
func Run(ctx context.Context, opts Options) error {
	if opts.Bridge == nil {
		return fmt.Errorf("ui requires a bridge")
	}

	program := tea.NewProgram(
		newModel(opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return nil // cancelled from outside, clean exit
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
