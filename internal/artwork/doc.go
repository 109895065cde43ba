// Package artwork resolves cover art for tracks and renders it as
// colored terminal text.
//
// # Resolution
//
// Resolve is a two-stage chain keyed by (track, artist): a local
// write-through disk cache under the user cache directory, then the
// iTunes Search API followed by a download of the 300x300 artwork.
// Every failure, whether network, HTTP status, or decode, degrades to nil and a
// log line; the UI shows a placeholder for nil. Resolution blocks on
// network I/O for its whole lifetime, so callers run it on a background
// command and deliver the result through the event loop, tagged with
// the generation it was spawned for.
//
// # Rendering
//
// Render is the pure half of the package: it downsamples an image into
// a grid of half-block cells, two vertically stacked source pixels per
// terminal cell (upper pixel → foreground, lower → background, fixed
// U+2580 glyph). The resize filter is fixed so a given image and grid
// size always produce the same cells.
package artwork
