// Package bridge is the control surface for the external Music player.
//
// # Overview
//
// Muse is a remote control, not a player: every read and write goes
// through the player's automation runtime, invoked as an osascript
// subprocess whose stdout is a single JSON document. This package owns
// that process boundary end to end: script construction, parameter
// escaping, execution with deadlines, and defensive decoding.
//
// # Two tiers
//
// The bridge exposes two kinds of calls:
//
//   - Transport commands (PlayPause, Next, Previous, SetVolume,
//     ToggleShuffle, CycleRepeat, Favorite, Seek, PlayTrack): fixed or
//     numerically parameterized scripts, fire-and-forget. Failures are
//     logged and swallowed; a remote-control session must stay usable
//     while the player is flaky.
//
//   - Scripting queries (PollStatus, Playlists, PlaylistTracks,
//     Search): parameterized scripts returning JSON. All interpolated
//     text passes through a single escape function; enumeration results
//     are capped (500 playlist tracks, 200 search results) on both
//     sides of the boundary.
//
// # Failure policy
//
// No call here returns an error to the UI. PollStatus degrades to
// DefaultStatus (stopped, volume 50), list queries degrade to empty
// slices, and individually malformed list entries are dropped without
// failing the batch. Status fields degrade one by one: a mistyped field
// keeps its default while the rest of the snapshot decodes normally.
//
// # Timeouts
//
// The player imposes no bound of its own, so every invocation carries a
// context deadline: 3s for the status poll, 5s for commands, 15s for
// library enumerations.
//
// # Testing
//
// The ScriptRunner interface is the seam: production uses the osascript
// runner, tests inject fakes that return canned JSON or errors.
package bridge
