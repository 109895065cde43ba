package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/musetui/muse/internal/bridge"
	"github.com/musetui/muse/internal/nav"
)

// Update is the single writer over the model. One message in, one state
// mutation, one redraw.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.tick(), m.pollStatus())

	case statusMsg:
		return m.applyStatus(bridge.PlayerStatus(msg))

	case playlistsMsg:
		m.nav.SetPlaylists(msg)
		return m, nil

	case tracksMsg:
		m.loading = false
		m.nav.ShowTracks(msg.view, msg.cacheKey, msg.tracks)
		return m, nil

	case artworkMsg:
		// Supersede, don't cancel: a stale resolution for a track the
		// user has moved past must not overwrite the current art.
		if msg.gen == m.artGen {
			m.art = msg.img
		}
		return m, nil
	}

	return m, nil
}

// applyStatus replaces the player snapshot wholesale and, on a track
// change, starts a freshly tagged artwork resolution.
func (m Model) applyStatus(status bridge.PlayerStatus) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	identity := trackIdentity(status.Track, status.Artist)
	if status.Track != "" && identity != m.artTrack {
		m.artTrack = identity
		m.art = nil
		m.artGen++
		if m.cfg.Artwork {
			cmd = m.resolveArtwork(status.Track, status.Artist, m.artGen)
		}
	}

	m.player = status
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The search overlay intercepts everything while active.
	if m.searching {
		return m.handleSearchKey(msg)
	}

	// Library keys apply only while the library pane has focus.
	if m.panel == panelLibrary {
		switch {
		case key.Matches(msg, m.keys.Down):
			m.nav.MoveDown()
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.nav.MoveUp()
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.nav.MoveTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.nav.MoveBottom()
			return m, nil
		case key.Matches(msg, m.keys.Activate):
			return m.activateSelection()
		case key.Matches(msg, m.keys.Back):
			m.nav.Back()
			return m, nil
		case key.Matches(msg, m.keys.Search):
			m.searching = true
			m.search.SetValue("")
			m.search.Focus()
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.PlayPause):
		return m, transport(m.bridge.PlayPause)

	case key.Matches(msg, m.keys.NextTrack):
		return m, transport(m.bridge.Next)

	case key.Matches(msg, m.keys.PrevTrack):
		return m, transport(m.bridge.Previous)

	case key.Matches(msg, m.keys.VolumeUp):
		target := clamp(m.player.Volume+m.cfg.VolumeStep, 0, 100)
		return m, transport(func() { m.bridge.SetVolume(target) })

	case key.Matches(msg, m.keys.VolumeDown):
		target := clamp(m.player.Volume-m.cfg.VolumeStep, 0, 100)
		return m, transport(func() { m.bridge.SetVolume(target) })

	case key.Matches(msg, m.keys.Shuffle):
		enabled := m.player.Shuffle
		return m, transport(func() { m.bridge.ToggleShuffle(enabled) })

	case key.Matches(msg, m.keys.Repeat):
		mode := m.player.Repeat
		return m, transport(func() { m.bridge.CycleRepeat(mode) })

	case key.Matches(msg, m.keys.Favorite):
		return m, transport(m.bridge.Favorite)

	case key.Matches(msg, m.keys.SeekBack):
		position := m.player.Position - float64(m.cfg.SeekStepSecs)
		duration := m.player.Duration
		return m, transport(func() { m.bridge.Seek(position, duration) })

	case key.Matches(msg, m.keys.SeekForward):
		position := m.player.Position + float64(m.cfg.SeekStepSecs)
		duration := m.player.Duration
		return m, transport(func() { m.bridge.Seek(position, duration) })

	case key.Matches(msg, m.keys.FocusNowPlaying):
		m.panel = panelNowPlaying
		return m, nil

	case key.Matches(msg, m.keys.FocusLibrary):
		m.panel = panelLibrary
		return m, nil

	case key.Matches(msg, m.keys.CycleFocus):
		if m.panel == panelNowPlaying {
			m.panel = panelLibrary
		} else {
			m.panel = panelNowPlaying
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		query := strings.TrimSpace(m.search.Value())
		if query == "" {
			// Confirming an empty query closes the overlay, nothing else.
			return m, nil
		}
		m.loading = true
		return m, m.runSearch(query)

	case key.Matches(msg, m.keys.Cancel):
		m.searching = false
		m.search.SetValue("")
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// activateSelection drills into a playlist or plays a track, depending
// on the view.
func (m Model) activateSelection() (tea.Model, tea.Cmd) {
	switch m.nav.View() {
	case nav.ViewPlaylists:
		selected := m.nav.SelectedPlaylist()
		if selected == nil {
			return m, nil
		}
		if cached, ok := m.nav.CachedTracks(selected.Name); ok {
			m.nav.ShowTracks(nav.ViewTracks, selected.Name, cached)
			return m, nil
		}
		m.loading = true
		return m, m.loadTracks(selected.Name)

	case nav.ViewTracks, nav.ViewSearchResults:
		selected := m.nav.SelectedTrack()
		if selected == nil {
			return m, nil
		}
		id := selected.ID
		return m, transport(func() { m.bridge.PlayTrack(id) })
	}
	return m, nil
}
