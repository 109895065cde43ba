// Package config loads muse's TOML configuration.
//
// The file lives at ~/.config/muse/config.toml and every field is
// optional: poll cadence, volume and seek step sizes, an artwork
// on/off switch, the search scope, and the accent color. Load never
// fails: a missing, unreadable, or malformed file yields the built-in
// defaults, and out-of-range values are clamped back to them. The
// remote must come up even when its config is broken.
package config
