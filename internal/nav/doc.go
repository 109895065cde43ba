// Package nav is the library-navigation state machine.
//
// Three views (Playlists at the root, Tracks, SearchResults) with one
// active at a time and a clamped selection cursor per list. Replacing a
// list always resets its cursor; Back always lands on Playlists and
// clears the transient track list. The playlist cursor survives a
// drill-down round trip so backing out lands where the user left.
//
// The package is deliberately I/O-free: it holds lists it is handed and
// answers selection queries. Fetching tracks, running searches, and
// issuing play commands belong to the UI layer, which mutates a State
// from its single update loop.
package nav
