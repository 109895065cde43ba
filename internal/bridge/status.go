package bridge

import (
	"bytes"
	"encoding/json"
	"log"
)

// statusScript grabs only the fields the status bar needs. Deliberately
// cheaper than a full application-data dump.
const statusScript = `
(function() {
    var app = Application('Music');
    var state = app.playerState();
    var result = {
        state:    state,
        position: 0,
        volume:   app.soundVolume(),
        shuffle:  app.shuffleEnabled(),
        repeat:   app.songRepeat(),
        name:     '',
        artist:   '',
        album:    '',
        duration: 0
    };
    if (state !== 'stopped') {
        result.position = app.playerPosition();
        var t = app.currentTrack;
        result.name     = t.name();
        result.artist   = t.artist();
        result.album    = t.album();
        result.duration = t.duration();
    }
    return JSON.stringify(result);
})()`

// rawStatus mirrors the JSON the poll script prints.
type rawStatus struct {
	State    string  `json:"state"`
	Position float64 `json:"position"`
	Volume   int     `json:"volume"`
	Shuffle  bool    `json:"shuffle"`
	Repeat   string  `json:"repeat"`
	Name     string  `json:"name"`
	Artist   string  `json:"artist"`
	Album    string  `json:"album"`
	Duration float64 `json:"duration"`
}

// PollStatus queries the player for its current state. It never fails:
// an unreachable player or a mangled response yields DefaultStatus, and
// a single bad field degrades to that field's default without taking the
// rest of the snapshot with it.
func (b *Bridge) PollStatus() PlayerStatus {
	out, err := b.query("status poll", statusScript, statusTimeout)
	if err != nil {
		log.Printf("bridge: status poll failed: %v", err)
		return DefaultStatus()
	}
	return decodeStatus(out)
}

func decodeStatus(data []byte) PlayerStatus {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return DefaultStatus()
	}

	// Prefill defaults, then decode best-effort: encoding/json keeps
	// going past a mistyped field, leaving its target untouched.
	raw := rawStatus{Volume: 50}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		log.Printf("bridge: status decode: %v", err)
	}

	status := PlayerStatus{
		Track:    raw.Name,
		Artist:   raw.Artist,
		Album:    raw.Album,
		Duration: raw.Duration,
		Position: raw.Position,
		Volume:   clampVolume(raw.Volume),
		Shuffle:  raw.Shuffle,
	}

	switch raw.State {
	case "playing":
		status.State = StatePlaying
	case "paused":
		status.State = StatePaused
	default:
		status.State = StateStopped
	}

	switch raw.Repeat {
	case "one":
		status.Repeat = RepeatOne
	case "all":
		status.Repeat = RepeatAll
	default:
		status.Repeat = RepeatOff
	}

	if status.Duration < 0 {
		status.Duration = 0
	}
	if status.Position < 0 {
		status.Position = 0
	}
	if status.Duration > 0 && status.Position > status.Duration {
		status.Position = status.Duration
	}

	return status
}

func clampVolume(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
