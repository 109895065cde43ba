package nav

import "github.com/musetui/muse/internal/bridge"

// View is the library browsing mode currently displayed.
type View int

const (
	ViewPlaylists View = iota
	ViewTracks
	ViewSearchResults
)

// NoSelection marks an empty list's cursor.
const NoSelection = -1

// State is the library-navigation state machine: which view is active,
// the lists backing it, and the selection cursor for each. State is
// plain data mutated by a single owner; it does no I/O of its own.
// Entering a playlist is a request the owner serves asynchronously and
// completes via ShowTracks.
type State struct {
	view      View
	playlists []bridge.PlaylistEntry
	tracks    []bridge.TrackEntry

	playlistCursor int
	trackCursor    int

	cache map[string][]bridge.TrackEntry
}

// New returns a State at the Playlists root with nothing loaded.
func New() *State {
	return &State{
		view:           ViewPlaylists,
		playlistCursor: NoSelection,
		trackCursor:    NoSelection,
	}
}

// View returns the active view.
func (s *State) View() View { return s.view }

// Playlists returns the playlist list.
func (s *State) Playlists() []bridge.PlaylistEntry { return s.playlists }

// Tracks returns the transient track list (playlist tracks or search
// results, depending on the view).
func (s *State) Tracks() []bridge.TrackEntry { return s.tracks }

// SetPlaylists replaces the playlist list wholesale and resets its
// cursor to the first entry, or to none when empty.
func (s *State) SetPlaylists(playlists []bridge.PlaylistEntry) {
	s.playlists = playlists
	s.playlistCursor = resetCursor(len(playlists))
}

// ShowTracks replaces the track list, resets its cursor, and enters the
// given view. A non-empty cacheKey also remembers the list so the same
// playlist can be re-entered without another fetch.
func (s *State) ShowTracks(view View, cacheKey string, tracks []bridge.TrackEntry) {
	if view == ViewPlaylists {
		return
	}
	if cacheKey != "" {
		if s.cache == nil {
			s.cache = make(map[string][]bridge.TrackEntry)
		}
		s.cache[cacheKey] = tracks
	}
	s.tracks = tracks
	s.trackCursor = resetCursor(len(tracks))
	s.view = view
}

// CachedTracks returns a previously shown playlist's tracks, if warm.
func (s *State) CachedTracks(cacheKey string) ([]bridge.TrackEntry, bool) {
	tracks, ok := s.cache[cacheKey]
	return tracks, ok
}

// Back returns from Tracks or SearchResults to the Playlists root and
// clears the transient track list. At the root it is a no-op.
func (s *State) Back() {
	if s.view == ViewPlaylists {
		return
	}
	s.view = ViewPlaylists
	s.tracks = nil
	s.trackCursor = NoSelection
}

// Cursor returns the selection index for the active view's list, or
// NoSelection when the list is empty.
func (s *State) Cursor() int {
	if s.view == ViewPlaylists {
		return s.playlistCursor
	}
	return s.trackCursor
}

// Len returns the length of the active view's list.
func (s *State) Len() int {
	if s.view == ViewPlaylists {
		return len(s.playlists)
	}
	return len(s.tracks)
}

// MoveDown advances the cursor, clamped to the end of the list.
func (s *State) MoveDown() { s.moveBy(1) }

// MoveUp retreats the cursor, clamped to the start of the list.
func (s *State) MoveUp() { s.moveBy(-1) }

// MoveTop jumps to the first entry.
func (s *State) MoveTop() {
	if s.Len() > 0 {
		s.setCursor(0)
	}
}

// MoveBottom jumps to the last entry.
func (s *State) MoveBottom() {
	if n := s.Len(); n > 0 {
		s.setCursor(n - 1)
	}
}

func (s *State) moveBy(delta int) {
	n := s.Len()
	if n == 0 {
		return
	}
	next := s.Cursor() + delta
	if next < 0 {
		next = 0
	}
	if next > n-1 {
		next = n - 1
	}
	s.setCursor(next)
}

func (s *State) setCursor(i int) {
	if s.view == ViewPlaylists {
		s.playlistCursor = i
	} else {
		s.trackCursor = i
	}
}

// SelectedPlaylist returns the playlist under the cursor, or nil when
// the view is not Playlists or the list is empty.
func (s *State) SelectedPlaylist() *bridge.PlaylistEntry {
	if s.view != ViewPlaylists {
		return nil
	}
	if s.playlistCursor < 0 || s.playlistCursor >= len(s.playlists) {
		return nil
	}
	return &s.playlists[s.playlistCursor]
}

// SelectedTrack returns the track under the cursor, or nil when the
// view is Playlists or the list is empty.
func (s *State) SelectedTrack() *bridge.TrackEntry {
	if s.view == ViewPlaylists {
		return nil
	}
	if s.trackCursor < 0 || s.trackCursor >= len(s.tracks) {
		return nil
	}
	return &s.tracks[s.trackCursor]
}

func resetCursor(n int) int {
	if n == 0 {
		return NoSelection
	}
	return 0
}
