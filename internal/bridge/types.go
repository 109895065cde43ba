package bridge

// PlayState describes the player's transport state.
type PlayState int

const (
	StateStopped PlayState = iota
	StatePlaying
	StatePaused
)

// String returns the lowercase wire name for the state.
func (s PlayState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "stopped"
	}
}

// RepeatMode describes the player's repeat setting.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota
	RepeatAll
	RepeatOne
)

// String returns the lowercase wire name for the mode.
func (m RepeatMode) String() string {
	switch m {
	case RepeatOne:
		return "one"
	case RepeatAll:
		return "all"
	default:
		return "off"
	}
}

// Next returns the mode that follows m in the cycle off → all → one → off.
func (m RepeatMode) Next() RepeatMode {
	switch m {
	case RepeatOff:
		return RepeatAll
	case RepeatAll:
		return RepeatOne
	default:
		return RepeatOff
	}
}

// PlayerStatus is one complete snapshot of the player. It is replaced
// wholesale on every poll, never merged.
type PlayerStatus struct {
	Track    string
	Artist   string
	Album    string
	Duration float64 // seconds
	Position float64 // seconds
	State    PlayState
	Volume   int // 0-100
	Shuffle  bool
	Repeat   RepeatMode
}

// DefaultStatus returns the snapshot used whenever the player cannot be
// reached or its response cannot be decoded.
func DefaultStatus() PlayerStatus {
	return PlayerStatus{
		State:  StateStopped,
		Volume: 50,
	}
}

// PlaylistEntry identifies one playlist in the player's library.
type PlaylistEntry struct {
	ID   int64
	Name string
}

// TrackEntry identifies one track in a playlist or result set.
type TrackEntry struct {
	ID       int64
	Name     string
	Artist   string
	Album    string
	Duration float64 // seconds
}
