package bridge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

// Result caps. Enumerations are bounded on both sides of the process
// boundary: the script stops collecting at the cap and the decoder
// re-enforces it, so a misbehaving script cannot flood the UI.
const (
	TrackCap  = 500
	SearchCap = 200
)

const playlistsScript = `
(function() {
    var app = Application('Music');
    var pls = app.playlists();
    var result = [];
    for (var i = 0; i < pls.length; i++) {
        result.push({ id: pls[i].id(), name: pls[i].name() });
    }
    return JSON.stringify(result);
})()`

// escapeScript makes s safe to interpolate into a double-quoted script
// literal. Every parameterized script goes through here; skipping it
// turns playlist names like `My "Best" Mix` into broken invocations.
func escapeScript(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\x00", "",
	)
	return r.Replace(s)
}

type rawPlaylist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type rawTrack struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Artist   string  `json:"artist"`
	Album    string  `json:"album"`
	Duration float64 `json:"duration"`
}

// Playlists enumerates the player's playlists. Transport or decode
// failure yields an empty slice, never an error.
func (b *Bridge) Playlists() []PlaylistEntry {
	out, err := b.query("playlists", playlistsScript, libraryTimeout)
	if err != nil {
		log.Printf("bridge: %v", err)
		return nil
	}
	items := decodeItems(out)
	playlists := make([]PlaylistEntry, 0, len(items))
	for _, item := range items {
		// Playlists are opened by name, so an entry with a bad id is
		// still usable as long as the name decoded.
		var raw rawPlaylist
		if err := json.Unmarshal(item, &raw); err != nil && raw.Name == "" {
			continue
		}
		playlists = append(playlists, PlaylistEntry{ID: raw.ID, Name: raw.Name})
	}
	return playlists
}

// PlaylistTracks enumerates the tracks of the named playlist, capped at
// TrackCap entries.
func (b *Bridge) PlaylistTracks(playlist string) []TrackEntry {
	script := fmt.Sprintf(`
(function() {
    var app = Application('Music');
    var pl = app.playlists.byName("%s");
    var tracks = pl.tracks();
    var cap = Math.min(tracks.length, %d);
    var result = [];
    for (var i = 0; i < cap; i++) {
        var t = tracks[i];
        result.push({
            id:       t.id(),
            name:     t.name(),
            artist:   t.artist(),
            album:    t.album(),
            duration: t.duration()
        });
    }
    return JSON.stringify(result);
})()`, escapeScript(playlist), TrackCap)

	out, err := b.query("playlist tracks", script, libraryTimeout)
	if err != nil {
		log.Printf("bridge: %v", err)
		return nil
	}
	return decodeTracks(out, TrackCap)
}

// Search runs a whole-library search for the literal query text, capped
// at SearchCap results.
func (b *Bridge) Search(query string) []TrackEntry {
	script := fmt.Sprintf(`
(function() {
    var app = Application('Music');
    var library = app.playlists.whose({name: "Library"});
    if (library.length === 0) return JSON.stringify([]);
    var results = library[0].search({for: "%s"});
    if (!results) return JSON.stringify([]);
    var cap = Math.min(results.length, %d);
    var out = [];
    for (var i = 0; i < cap; i++) {
        var t = results[i];
        out.push({
            id:       t.id(),
            name:     t.name(),
            artist:   t.artist(),
            album:    t.album(),
            duration: t.duration()
        });
    }
    return JSON.stringify(out);
})()`, escapeScript(query), SearchCap)

	out, err := b.query("search", script, libraryTimeout)
	if err != nil {
		log.Printf("bridge: %v", err)
		return nil
	}
	return decodeTracks(out, SearchCap)
}

// PlayTrack starts playback of the track with the given persistent ID.
// The id is numeric so no escaping applies.
func (b *Bridge) PlayTrack(id int64) {
	script := fmt.Sprintf(`
(function() {
    var app = Application('Music');
    var matches = app.tracks.whose({id: %d});
    if (matches.length > 0) {
        matches[0].play();
    }
})()`, id)
	b.command("play track", script)
}

// decodeItems splits a JSON array into its raw elements. Anything that
// is not an array decodes to nothing.
func decodeItems(data []byte) []json.RawMessage {
	trimmed := bytes.TrimSpace(data)
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		log.Printf("bridge: list decode: %v", err)
		return nil
	}
	return items
}

// decodeTracks decodes a track list item by item. A malformed entry is
// dropped, as is one without a usable id: tracks play by id, and a zero
// id can never match. Neither ever fails the batch.
func decodeTracks(data []byte, limit int) []TrackEntry {
	items := decodeItems(data)
	tracks := make([]TrackEntry, 0, len(items))
	for _, item := range items {
		if len(tracks) == limit {
			break
		}
		var raw rawTrack
		if err := json.Unmarshal(item, &raw); err != nil && raw.Name == "" {
			continue
		}
		if raw.ID == 0 {
			continue
		}
		if raw.Duration < 0 {
			raw.Duration = 0
		}
		tracks = append(tracks, TrackEntry{
			ID:       raw.ID,
			Name:     raw.Name,
			Artist:   raw.Artist,
			Album:    raw.Album,
			Duration: raw.Duration,
		})
	}
	return tracks
}
