// Package app is the composition root for muse.
//
// Run loads configuration, builds the bridge to the external player
// and the artwork resolver, and hands both to the UI, which blocks
// until exit. There is deliberately nothing else here: muse owns no
// audio, no catalog, and no persistence, so the only wiring is
// config → bridge/resolver → ui.
//
// Startup never gates on the player being reachable. A remote control
// pointed at a stopped player is a valid session; the status poll
// degrades to a stopped snapshot until the player answers.
package app
