package nav

import (
	"testing"

	"github.com/musetui/muse/internal/bridge"
)

func playlists(names ...string) []bridge.PlaylistEntry {
	out := make([]bridge.PlaylistEntry, len(names))
	for i, name := range names {
		out[i] = bridge.PlaylistEntry{ID: int64(i + 1), Name: name}
	}
	return out
}

func tracks(names ...string) []bridge.TrackEntry {
	out := make([]bridge.TrackEntry, len(names))
	for i, name := range names {
		out[i] = bridge.TrackEntry{ID: int64(i + 1), Name: name}
	}
	return out
}

func TestNew_StartsAtPlaylistsRoot(t *testing.T) {
	t.Parallel()

	s := New()
	if s.View() != ViewPlaylists {
		t.Fatalf("View() = %v, want ViewPlaylists", s.View())
	}
	if s.Cursor() != NoSelection {
		t.Fatalf("Cursor() = %d, want NoSelection", s.Cursor())
	}
	if s.SelectedPlaylist() != nil {
		t.Fatalf("SelectedPlaylist() = %v, want nil", s.SelectedPlaylist())
	}
}

func TestSetPlaylists_ResetsCursor(t *testing.T) {
	t.Parallel()

	s := New()
	s.SetPlaylists(playlists("A", "B", "C"))
	if s.Cursor() != 0 {
		t.Fatalf("Cursor() = %d, want 0 after replace", s.Cursor())
	}
	s.MoveDown()
	s.MoveDown()

	s.SetPlaylists(playlists("X"))
	if s.Cursor() != 0 {
		t.Fatalf("Cursor() = %d, want reset to 0", s.Cursor())
	}
	s.SetPlaylists(nil)
	if s.Cursor() != NoSelection {
		t.Fatalf("Cursor() = %d, want NoSelection for empty list", s.Cursor())
	}
}

func TestShowTracks_EntersViewWithCursorAtTop(t *testing.T) {
	t.Parallel()

	s := New()
	s.ShowTracks(ViewTracks, "Mix", tracks("One", "Two"))
	if s.View() != ViewTracks {
		t.Fatalf("View() = %v, want ViewTracks", s.View())
	}
	if s.Cursor() != 0 {
		t.Fatalf("Cursor() = %d, want 0", s.Cursor())
	}
	if got := s.SelectedTrack(); got == nil || got.Name != "One" {
		t.Fatalf("SelectedTrack() = %v, want One", got)
	}

	s.ShowTracks(ViewSearchResults, "", nil)
	if s.View() != ViewSearchResults {
		t.Fatalf("View() = %v, want ViewSearchResults", s.View())
	}
	if s.Cursor() != NoSelection || s.SelectedTrack() != nil {
		t.Fatalf("empty results: cursor %d / selection %v, want none", s.Cursor(), s.SelectedTrack())
	}
}

func TestShowTracks_IgnoresPlaylistsView(t *testing.T) {
	t.Parallel()

	s := New()
	s.ShowTracks(ViewPlaylists, "", tracks("One"))
	if s.View() != ViewPlaylists || len(s.Tracks()) != 0 {
		t.Fatalf("ShowTracks(ViewPlaylists) changed state: view %v tracks %v", s.View(), s.Tracks())
	}
}

func TestBack_ReturnsToRootAndClearsTracks(t *testing.T) {
	t.Parallel()

	s := New()
	s.SetPlaylists(playlists("A", "B"))
	s.MoveDown()
	s.ShowTracks(ViewTracks, "B", tracks("One", "Two"))

	s.Back()
	if s.View() != ViewPlaylists {
		t.Fatalf("View() = %v, want ViewPlaylists", s.View())
	}
	if len(s.Tracks()) != 0 {
		t.Fatalf("Tracks() = %v, want cleared", s.Tracks())
	}
	// Playlist selection survives the round trip.
	if got := s.SelectedPlaylist(); got == nil || got.Name != "B" {
		t.Fatalf("SelectedPlaylist() after Back = %v, want B", got)
	}

	s.Back() // at root: no-op
	if s.View() != ViewPlaylists {
		t.Fatalf("Back at root changed view to %v", s.View())
	}
}

func TestCachedTracks(t *testing.T) {
	t.Parallel()

	s := New()
	if _, ok := s.CachedTracks("Mix"); ok {
		t.Fatalf("cold cache reported warm")
	}
	s.ShowTracks(ViewTracks, "Mix", tracks("One"))
	cached, ok := s.CachedTracks("Mix")
	if !ok || len(cached) != 1 || cached[0].Name != "One" {
		t.Fatalf("CachedTracks = %v/%v, want warm with One", cached, ok)
	}
	// Search results are transient and must not be cached.
	s.ShowTracks(ViewSearchResults, "", tracks("Hit"))
	if _, ok := s.CachedTracks(""); ok {
		t.Fatalf("empty cache key stored")
	}
}

func TestCursorMovement_Clamps(t *testing.T) {
	t.Parallel()

	s := New()
	s.SetPlaylists(playlists("A", "B", "C"))

	s.MoveUp()
	if s.Cursor() != 0 {
		t.Fatalf("MoveUp at top = %d, want 0", s.Cursor())
	}
	for i := 0; i < 10; i++ {
		s.MoveDown()
	}
	if s.Cursor() != 2 {
		t.Fatalf("MoveDown past end = %d, want 2", s.Cursor())
	}
	s.MoveTop()
	if s.Cursor() != 0 {
		t.Fatalf("MoveTop = %d, want 0", s.Cursor())
	}
	s.MoveBottom()
	if s.Cursor() != 2 {
		t.Fatalf("MoveBottom = %d, want 2", s.Cursor())
	}
}

func TestCursorMovement_EmptyListIsNoop(t *testing.T) {
	t.Parallel()

	s := New()
	s.MoveDown()
	s.MoveUp()
	s.MoveTop()
	s.MoveBottom()
	if s.Cursor() != NoSelection {
		t.Fatalf("Cursor() = %d, want NoSelection on empty list", s.Cursor())
	}
}

func TestCursors_AreIndependentPerView(t *testing.T) {
	t.Parallel()

	s := New()
	s.SetPlaylists(playlists("A", "B", "C"))
	s.MoveDown() // playlist cursor -> 1

	s.ShowTracks(ViewTracks, "B", tracks("One", "Two", "Three"))
	s.MoveDown()
	s.MoveDown() // track cursor -> 2
	if s.Cursor() != 2 {
		t.Fatalf("track cursor = %d, want 2", s.Cursor())
	}

	s.Back()
	if s.Cursor() != 1 {
		t.Fatalf("playlist cursor = %d, want 1 preserved", s.Cursor())
	}
}
