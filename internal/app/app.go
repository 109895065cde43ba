package app

import (
	"context"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/musetui/muse/internal/artwork"
	"github.com/musetui/muse/internal/bridge"
	"github.com/musetui/muse/internal/config"
	"github.com/musetui/muse/internal/ui"
)

// Options configure the muse application.
type Options struct {
	ConfigPath string // empty uses ~/.config/muse/config.toml
	PollMS     int    // poll interval override in milliseconds; zero uses config
	Debug      bool   // route log output to a debug file
}

// Run boots the muse TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg := config.Load(opts.ConfigPath)
	if opts.PollMS > 0 {
		cfg.PollIntervalMS = opts.PollMS
	}

	// The TUI owns the terminal, so the default log destination is
	// useless at best and corrupting at worst.
	if opts.Debug {
		f, err := tea.LogToFile("muse-debug.log", "muse")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer func() { _ = f.Close() }()
	} else {
		log.SetOutput(io.Discard)
	}

	uiOpts := ui.Options{
		Bridge: bridge.New(),
		Config: cfg,
	}
	if cfg.Artwork {
		uiOpts.Resolver = artwork.NewResolver()
	}

	return ui.Run(ctx, uiOpts)
}
