package artwork

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"image"
	_ "image/gif"  // decode support for downloaded art
	_ "image/jpeg" // decode support for downloaded art
	_ "image/png"  // decode support for downloaded art
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	searchEndpoint = "https://itunes.apple.com/search"
	httpTimeout    = 10 * time.Second
	userAgent      = "muse/0.1"
	maxImageBytes  = 10 * 1024 * 1024
)

// Resolver finds cover art for a track: first a local on-disk cache,
// then a remote lookup-and-download. It must only be called from a
// background command, never from the render path.
type Resolver struct {
	client   *http.Client
	cacheDir string
	base     string
}

// NewResolver returns a Resolver caching under the user cache dir.
// A missing cache dir disables the local stage but not the remote one.
func NewResolver() *Resolver {
	r := &Resolver{
		client: &http.Client{Timeout: httpTimeout},
		base:   searchEndpoint,
	}
	if dir, err := os.UserCacheDir(); err == nil {
		r.cacheDir = filepath.Join(dir, "muse", "artwork")
	}
	return r
}

// Resolve returns the cover image for the given track identity, or nil
// when neither stage yields one. It never returns an error; the caller
// substitutes a placeholder for nil.
func (r *Resolver) Resolve(ctx context.Context, track, artist string) image.Image {
	if strings.TrimSpace(track) == "" {
		return nil
	}

	key := cacheKey(track, artist)
	if img := r.fromCache(key); img != nil {
		return img
	}

	artURL := r.lookup(ctx, track, artist)
	if artURL == "" {
		return nil
	}
	data := r.download(ctx, artURL)
	if data == nil {
		return nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("artwork: decode %s: %v", artURL, err)
		return nil
	}
	r.toCache(key, data)
	return img
}

// lookup asks the iTunes Search API for the track and returns an
// artwork URL, upgraded from the 100x100 thumbnail to 300x300.
func (r *Resolver) lookup(ctx context.Context, track, artist string) string {
	query := url.Values{}
	query.Set("term", strings.TrimSpace(track+" "+artist))
	query.Set("entity", "song")
	query.Set("limit", "10")

	body := r.get(ctx, r.base+"?"+query.Encode())
	if body == nil {
		return ""
	}

	var payload struct {
		Results []struct {
			ArtworkURL string `json:"artworkUrl100"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("artwork: search decode: %v", err)
		return ""
	}
	for _, result := range payload.Results {
		if result.ArtworkURL != "" {
			return strings.Replace(result.ArtworkURL, "100x100bb", "300x300bb", 1)
		}
	}
	return ""
}

func (r *Resolver) download(ctx context.Context, artURL string) []byte {
	return r.get(ctx, artURL)
}

func (r *Resolver) get(ctx context.Context, rawURL string) []byte {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		log.Printf("artwork: build request: %v", err)
		return nil
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		log.Printf("artwork: fetch %s: %v", rawURL, err)
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		log.Printf("artwork: fetch %s: status %d", rawURL, resp.StatusCode)
		return nil
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		log.Printf("artwork: read %s: %v", rawURL, err)
		return nil
	}
	return data
}

func (r *Resolver) fromCache(key string) image.Image {
	if r.cacheDir == "" {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(r.cacheDir, key))
	if err != nil {
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return img
}

func (r *Resolver) toCache(key string, data []byte) {
	if r.cacheDir == "" {
		return
	}
	if err := os.MkdirAll(r.cacheDir, 0o755); err != nil {
		log.Printf("artwork: create cache dir: %v", err)
		return
	}
	if err := os.WriteFile(filepath.Join(r.cacheDir, key), data, 0o644); err != nil {
		log.Printf("artwork: write cache: %v", err)
	}
}

// cacheKey derives a filesystem-safe name from the track identity.
func cacheKey(track, artist string) string {
	sum := sha256.Sum256([]byte(track + "\x00" + artist))
	return hex.EncodeToString(sum[:16]) + ".img"
}
