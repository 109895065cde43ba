package ui

import (
	"context"
	"image"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/musetui/muse/internal/bridge"
	"github.com/musetui/muse/internal/nav"
)

// Messages delivered to Update. Each has exactly one producer and is
// consumed exactly once; ordering holds per producer but not across
// producers.
type (
	// tickMsg fires at the poll cadence and reschedules itself.
	tickMsg time.Time

	// statusMsg is one complete player snapshot from the poll producer.
	statusMsg bridge.PlayerStatus

	// playlistsMsg completes a playlist enumeration.
	playlistsMsg []bridge.PlaylistEntry

	// tracksMsg completes a track fetch or search, tagged with the view
	// it was requested for and the cache key it should warm.
	tracksMsg struct {
		view     nav.View
		cacheKey string
		tracks   []bridge.TrackEntry
	}

	// artworkMsg completes an artwork resolution, tagged with the
	// generation it was spawned for. img is nil when nothing resolved.
	artworkMsg struct {
		gen int
		img image.Image
	}
)

// resolveTimeout bounds one artwork resolution (two HTTP round trips).
const resolveTimeout = 30 * time.Second

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.PollInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) pollStatus() tea.Cmd {
	return func() tea.Msg {
		return statusMsg(m.bridge.PollStatus())
	}
}

func (m Model) loadPlaylists() tea.Cmd {
	return func() tea.Msg {
		return playlistsMsg(m.bridge.Playlists())
	}
}

func (m Model) loadTracks(playlist string) tea.Cmd {
	return func() tea.Msg {
		return tracksMsg{
			view:     nav.ViewTracks,
			cacheKey: playlist,
			tracks:   m.bridge.PlaylistTracks(playlist),
		}
	}
}

func (m Model) runSearch(query string) tea.Cmd {
	return func() tea.Msg {
		return tracksMsg{
			view:   nav.ViewSearchResults,
			tracks: m.bridge.Search(query),
		}
	}
}

func (m Model) resolveArtwork(track, artist string, gen int) tea.Cmd {
	resolver := m.resolver
	return func() tea.Msg {
		if resolver == nil {
			return artworkMsg{gen: gen}
		}
		ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
		defer cancel()
		return artworkMsg{gen: gen, img: resolver.Resolve(ctx, track, artist)}
	}
}

// transport wraps a fire-and-forget bridge call so it runs off the
// update loop. It produces no message; the next status poll reflects
// whatever the command changed.
func transport(call func()) tea.Cmd {
	return func() tea.Msg {
		call()
		return nil
	}
}
