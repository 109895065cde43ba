package ui

import (
	"image"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/musetui/muse/internal/artwork"
	"github.com/musetui/muse/internal/bridge"
	"github.com/musetui/muse/internal/config"
	"github.com/musetui/muse/internal/nav"
)

// panel identifies which pane has focus.
type panel int

const (
	panelNowPlaying panel = iota
	panelLibrary
)

// Model is the single mutable application state. Update is its only
// writer; every producer reaches it as a message through the program's
// queue, and each message is followed by exactly one redraw.
type Model struct {
	bridge   *bridge.Bridge
	resolver *artwork.Resolver
	cfg      config.Config
	keys     keyMap
	theme    Theme

	width  int
	height int

	player  bridge.PlayerStatus
	nav     *nav.State
	panel   panel
	loading bool

	search    textinput.Model
	searching bool

	// Artwork cache for the current track. artGen tags in-flight
	// resolutions; results from a superseded generation are discarded
	// rather than cancelled.
	art      image.Image
	artTrack string
	artGen   int

	quitting bool
}

func newModel(opts Options) Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.CharLimit = 120

	return Model{
		bridge:   opts.Bridge,
		resolver: opts.Resolver,
		cfg:      opts.Config,
		keys:     defaultKeyMap(),
		theme:    newTheme(opts.Config.Accent),
		nav:      nav.New(),
		panel:    panelLibrary,
		search:   search,
	}
}

// Init kicks off the long-lived producers: the status tick and the
// initial playlist enumeration.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.pollStatus(), m.loadPlaylists())
}
