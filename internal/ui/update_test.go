package ui

import (
	"context"
	"image"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/musetui/muse/internal/bridge"
	"github.com/musetui/muse/internal/config"
	"github.com/musetui/muse/internal/nav"
)

// stubRunner stands in for the osascript process boundary.
type stubRunner struct {
	out     []byte
	scripts []string
}

func (s *stubRunner) Run(_ context.Context, script string) ([]byte, error) {
	s.scripts = append(s.scripts, script)
	return s.out, nil
}

func testModel(runner bridge.ScriptRunner) Model {
	m := newModel(Options{
		Bridge: bridge.NewWithRunner(runner),
		Config: config.Default(),
	})
	m.width = 100
	m.height = 30
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestStatusUpdate_ReplacesSnapshotWholesale(t *testing.T) {
	t.Parallel()

	m := testModel(&stubRunner{})
	m.player = bridge.PlayerStatus{Track: "Old", Album: "Old Album", Volume: 90}

	m, _ = update(t, m, statusMsg(bridge.PlayerStatus{Track: "New", Volume: 30}))
	if m.player.Track != "New" || m.player.Album != "" || m.player.Volume != 30 {
		t.Fatalf("player = %+v, want wholesale replacement", m.player)
	}
}

func TestStatusUpdate_TrackChangeStartsTaggedResolution(t *testing.T) {
	t.Parallel()

	m := testModel(&stubRunner{})

	m, cmd := update(t, m, statusMsg(bridge.PlayerStatus{Track: "A", Artist: "X"}))
	if m.artGen != 1 {
		t.Fatalf("artGen = %d, want 1 after first track", m.artGen)
	}
	if cmd == nil {
		t.Fatalf("no resolution command spawned on track change")
	}

	// Same track again: no new generation, no new resolution.
	m, cmd = update(t, m, statusMsg(bridge.PlayerStatus{Track: "A", Artist: "X", Position: 10}))
	if m.artGen != 1 || cmd != nil {
		t.Fatalf("artGen = %d, cmd = %v; want unchanged on same identity", m.artGen, cmd)
	}

	// Different artist, same name, is a different identity.
	m, _ = update(t, m, statusMsg(bridge.PlayerStatus{Track: "A", Artist: "Y"}))
	if m.artGen != 2 {
		t.Fatalf("artGen = %d, want 2 after identity change", m.artGen)
	}

	// An empty track (stopped player) never starts a resolution.
	_, cmd = update(t, m, statusMsg(bridge.PlayerStatus{}))
	if cmd != nil {
		t.Fatalf("resolution spawned for empty track")
	}
}

func TestArtwork_StaleGenerationDiscarded(t *testing.T) {
	t.Parallel()

	m := testModel(&stubRunner{})
	m, _ = update(t, m, statusMsg(bridge.PlayerStatus{Track: "A", Artist: "X"}))
	m, _ = update(t, m, statusMsg(bridge.PlayerStatus{Track: "B", Artist: "X"}))
	if m.artGen != 2 {
		t.Fatalf("artGen = %d, want 2", m.artGen)
	}

	stale := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	m, _ = update(t, m, artworkMsg{gen: 1, img: stale})
	if m.art != nil {
		t.Fatalf("stale artwork applied: generation 1 overwrote generation 2's slot")
	}

	fresh := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	m, _ = update(t, m, artworkMsg{gen: 2, img: fresh})
	if m.art != fresh {
		t.Fatalf("current-generation artwork not applied")
	}
}

func TestPlaylistActivation_FetchesThenServesFromCache(t *testing.T) {
	t.Parallel()

	runner := &stubRunner{out: []byte(`[
		{"id": 1, "name": "One", "artist": "X", "album": "Al", "duration": 60},
		{"id": 2, "name": "Two", "artist": "X", "album": "Al", "duration": 61}
	]`)}
	m := testModel(runner)

	m, _ = update(t, m, playlistsMsg{{ID: 1, Name: "Mix"}})
	m, cmd := update(t, m, keyRune('l'))
	if !m.loading || cmd == nil {
		t.Fatalf("activation: loading=%v cmd=%v, want async fetch", m.loading, cmd)
	}

	msg := cmd()
	loaded, ok := msg.(tracksMsg)
	if !ok {
		t.Fatalf("fetch produced %T, want tracksMsg", msg)
	}
	if loaded.view != nav.ViewTracks || loaded.cacheKey != "Mix" || len(loaded.tracks) != 2 {
		t.Fatalf("tracksMsg = %+v, want 2 tracks for Mix", loaded)
	}

	m, _ = update(t, m, msg)
	if m.loading || m.nav.View() != nav.ViewTracks || m.nav.Cursor() != 0 {
		t.Fatalf("after load: loading=%v view=%v cursor=%d, want tracks at top",
			m.loading, m.nav.View(), m.nav.Cursor())
	}

	// Back out and re-enter: served from cache, no fetch command.
	m, _ = update(t, m, keyRune('h'))
	if m.nav.View() != nav.ViewPlaylists || len(m.nav.Tracks()) != 0 {
		t.Fatalf("back: view=%v tracks=%d, want playlists root cleared", m.nav.View(), len(m.nav.Tracks()))
	}
	scriptCount := len(runner.scripts)
	m, cmd = update(t, m, keyRune('l'))
	if cmd != nil || m.nav.View() != nav.ViewTracks {
		t.Fatalf("cached re-entry: cmd=%v view=%v, want warm entry", cmd, m.nav.View())
	}
	if len(runner.scripts) != scriptCount {
		t.Fatalf("cached re-entry ran %d new scripts", len(runner.scripts)-scriptCount)
	}
}

func TestTrackActivation_IssuesPlayCommand(t *testing.T) {
	t.Parallel()

	runner := &stubRunner{out: []byte(`[]`)}
	m := testModel(runner)
	m.nav.ShowTracks(nav.ViewTracks, "", []bridge.TrackEntry{{ID: 77, Name: "Song"}})

	m, cmd := update(t, m, keyRune('l'))
	if cmd == nil {
		t.Fatalf("no play command issued")
	}
	cmd()
	if m.nav.View() != nav.ViewTracks {
		t.Fatalf("view changed on track activation: %v", m.nav.View())
	}
	last := runner.scripts[len(runner.scripts)-1]
	if !strings.Contains(last, "id: 77") {
		t.Fatalf("play script = %q, want track 77", last)
	}
}

func TestSearchOverlay_Flow(t *testing.T) {
	t.Parallel()

	runner := &stubRunner{out: []byte(`[{"id": 9, "name": "Hit"}]`)}
	m := testModel(runner)

	m, _ = update(t, m, keyRune('/'))
	if !m.searching {
		t.Fatalf("search overlay not active after /")
	}

	// While active, transport keys are text, not commands.
	m, _ = update(t, m, keyRune('n'))
	if len(runner.scripts) != 0 {
		t.Fatalf("overlay leaked a key to transport handling: %v", runner.scripts)
	}
	for _, r := range "eil" {
		m, _ = update(t, m, keyRune(r))
	}
	if got := m.search.Value(); got != "neil" {
		t.Fatalf("query = %q, want neil", got)
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.searching || !m.loading || cmd == nil {
		t.Fatalf("confirm: searching=%v loading=%v cmd=%v", m.searching, m.loading, cmd)
	}

	msg := cmd()
	results, ok := msg.(tracksMsg)
	if !ok || results.view != nav.ViewSearchResults || results.cacheKey != "" {
		t.Fatalf("search produced %+v, want uncached search results", msg)
	}
	m, _ = update(t, m, msg)
	if m.nav.View() != nav.ViewSearchResults || m.nav.Cursor() != 0 {
		t.Fatalf("after search: view=%v cursor=%d", m.nav.View(), m.nav.Cursor())
	}
}

func TestSearchOverlay_CancelAndEmptyConfirm(t *testing.T) {
	t.Parallel()

	m := testModel(&stubRunner{})

	m, _ = update(t, m, keyRune('/'))
	m, _ = update(t, m, keyRune('x'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.searching || m.search.Value() != "" {
		t.Fatalf("cancel: searching=%v query=%q, want cleared overlay", m.searching, m.search.Value())
	}

	m, _ = update(t, m, keyRune('/'))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.searching || m.loading || cmd != nil {
		t.Fatalf("empty confirm: searching=%v loading=%v cmd=%v, want plain close", m.searching, m.loading, cmd)
	}
}

func TestVolumeKeys_ClampThroughBridge(t *testing.T) {
	t.Parallel()

	runner := &stubRunner{}
	m := testModel(runner)
	m.panel = panelNowPlaying
	m.player.Volume = 98

	_, cmd := update(t, m, keyRune('+'))
	if cmd == nil {
		t.Fatalf("no volume command")
	}
	cmd()
	if last := runner.scripts[len(runner.scripts)-1]; !strings.Contains(last, "soundVolume = 100") {
		t.Fatalf("volume script = %q, want clamped to 100", last)
	}

	m.player.Volume = 2
	_, cmd = update(t, m, keyRune('-'))
	cmd()
	if last := runner.scripts[len(runner.scripts)-1]; !strings.Contains(last, "soundVolume = 0") {
		t.Fatalf("volume script = %q, want clamped to 0", last)
	}
}

func TestSeekKeys_ClampToTrack(t *testing.T) {
	t.Parallel()

	runner := &stubRunner{}
	m := testModel(runner)
	m.panel = panelNowPlaying
	m.player.Position = 2
	m.player.Duration = 100

	_, cmd := update(t, m, keyRune(','))
	cmd()
	if last := runner.scripts[len(runner.scripts)-1]; !strings.Contains(last, "playerPosition = 0.000") {
		t.Fatalf("seek script = %q, want clamp at 0", last)
	}

	m.player.Position = 98
	_, cmd = update(t, m, keyRune('.'))
	cmd()
	if last := runner.scripts[len(runner.scripts)-1]; !strings.Contains(last, "playerPosition = 100.000") {
		t.Fatalf("seek script = %q, want clamp at duration", last)
	}
}

func TestTick_ReschedulesAndPolls(t *testing.T) {
	t.Parallel()

	m := testModel(&stubRunner{out: []byte(`{}`)})
	_, cmd := update(t, m, tickMsg{})
	if cmd == nil {
		t.Fatalf("tick produced no follow-up commands")
	}
}

func TestQuitKey(t *testing.T) {
	t.Parallel()

	m := testModel(&stubRunner{})
	m.panel = panelNowPlaying
	m, cmd := update(t, m, keyRune('q'))
	if !m.quitting || cmd == nil {
		t.Fatalf("quit: quitting=%v cmd=%v", m.quitting, cmd)
	}
}
