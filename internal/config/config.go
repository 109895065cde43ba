package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds muse's user settings. Every field is optional in the
// file; anything missing, malformed, or out of range falls back to its
// default so a broken config never prevents startup.
type Config struct {
	PollIntervalMS int    `toml:"poll_interval_ms"`
	VolumeStep     int    `toml:"volume_step"`
	SeekStepSecs   int    `toml:"seek_step_secs"`
	Artwork        bool   `toml:"artwork"`
	SearchScope    string `toml:"search_scope"`
	Accent         string `toml:"accent"`
}

const (
	defaultConfigPath     = "~/.config/muse/config.toml"
	defaultPollIntervalMS = 500
	defaultVolumeStep     = 5
	defaultSeekStepSecs   = 5
	defaultAccent         = "#00b7c3"

	// ScopeLibrary searches the whole library. The only supported scope:
	// the player's search facility covers the full catalog and a
	// per-playlist scope would silently hide matches the user expects.
	ScopeLibrary = "library"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PollIntervalMS: defaultPollIntervalMS,
		VolumeStep:     defaultVolumeStep,
		SeekStepSecs:   defaultSeekStepSecs,
		Artwork:        true,
		SearchScope:    ScopeLibrary,
		Accent:         defaultAccent,
	}
}

// Load reads the config at path (default ~/.config/muse/config.toml).
// It degrades to defaults on any failure: missing file, unreadable
// file, TOML errors, nonsense values. Muse must come up regardless.
func Load(path string) Config {
	cfg := Default()

	resolved, err := resolvePath(path)
	if err != nil {
		return cfg
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return cfg
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default()
	}

	return sanitize(cfg)
}

// PollInterval returns the poll cadence as a duration.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

func sanitize(cfg Config) Config {
	def := Default()
	if cfg.PollIntervalMS < 100 {
		cfg.PollIntervalMS = def.PollIntervalMS
	}
	if cfg.VolumeStep < 1 || cfg.VolumeStep > 50 {
		cfg.VolumeStep = def.VolumeStep
	}
	if cfg.SeekStepSecs < 1 || cfg.SeekStepSecs > 60 {
		cfg.SeekStepSecs = def.SeekStepSecs
	}
	if strings.TrimSpace(cfg.SearchScope) != ScopeLibrary {
		cfg.SearchScope = ScopeLibrary
	}
	if !validAccent(cfg.Accent) {
		cfg.Accent = def.Accent
	}
	return cfg
}

func validAccent(accent string) bool {
	if len(accent) != 7 || accent[0] != '#' {
		return false
	}
	for _, r := range accent[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultConfigPath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
