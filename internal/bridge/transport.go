package bridge

import "fmt"

// Fixed transport scripts. None of these interpolate user text.
const (
	playPauseScript = `Application('Music').playpause()`
	nextScript      = `Application('Music').nextTrack()`
	previousScript  = `Application('Music').previousTrack()`
	favoriteScript  = `
(function() {
    var app = Application('Music');
    if (app.playerState() !== 'stopped') {
        app.currentTrack.favorited = true;
    }
})()`
)

// PlayPause toggles playback.
func (b *Bridge) PlayPause() {
	b.command("play/pause", playPauseScript)
}

// Next skips to the next track.
func (b *Bridge) Next() {
	b.command("next track", nextScript)
}

// Previous goes back to the previous track.
func (b *Bridge) Previous() {
	b.command("previous track", previousScript)
}

// SetVolume sets the player volume, clamped to 0..100.
func (b *Bridge) SetVolume(volume int) {
	script := fmt.Sprintf(`Application('Music').soundVolume = %d`, clampVolume(volume))
	b.command("set volume", script)
}

// ToggleShuffle flips the shuffle setting relative to the given state.
func (b *Bridge) ToggleShuffle(enabled bool) {
	script := fmt.Sprintf(`Application('Music').shuffleEnabled = %t`, !enabled)
	b.command("toggle shuffle", script)
}

// CycleRepeat advances repeat from the given mode: off → all → one → off.
func (b *Bridge) CycleRepeat(current RepeatMode) {
	script := fmt.Sprintf(`Application('Music').songRepeat = '%s'`, current.Next())
	b.command("cycle repeat", script)
}

// Favorite marks the currently playing track as a favorite.
func (b *Bridge) Favorite() {
	b.command("favorite", favoriteScript)
}

// Seek moves the playhead to position seconds, clamped to [0, duration].
func (b *Bridge) Seek(position, duration float64) {
	if position < 0 {
		position = 0
	}
	if duration > 0 && position > duration {
		position = duration
	}
	script := fmt.Sprintf(`
(function() {
    var app = Application('Music');
    if (app.playerState() !== 'stopped') {
        app.playerPosition = %.3f;
    }
})()`, position)
	b.command("seek", script)
}
