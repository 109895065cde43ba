// Package ui is the terminal front-end: a bubbletea program whose
// model aggregates the player snapshot, the navigation state, the
// search overlay, and the current cover art.
//
// # Event model
//
// The bubbletea runtime is the event aggregator: key input, the
// self-rescheduling poll tick, and one-shot background commands
// (playlist fetch, track fetch, search, artwork resolution) all arrive
// as messages on one queue. Update is the only writer over the model;
// it handles exactly one message, mutates state, and the runtime
// redraws. Delivery is FIFO per producer with no cross-producer
// ordering, so nothing here assumes status and artwork messages
// interleave predictably.
//
// # Slow work
//
// No bridge or network call runs on the update path. Transport
// commands are wrapped in commands that produce no message; the next
// status poll reflects their effect. Fetches and artwork resolutions
// each produce a single completion message; artwork completions carry
// a generation tag and are discarded when the model has moved on to
// another track.
//
// # Layout
//
// Responsive like the original front-end: below 60 columns the
// now-playing pane gives way to a full-width library; below 10 rows
// the shuffle/repeat/volume row collapses into the progress gauge.
package ui
