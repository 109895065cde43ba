package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings. The set is the interactive
// contract of the program and stays stable across releases.
type keyMap struct {
	// Global
	Quit            key.Binding
	FocusNowPlaying key.Binding
	FocusLibrary    key.Binding
	CycleFocus      key.Binding

	// Transport
	PlayPause   key.Binding
	NextTrack   key.Binding
	PrevTrack   key.Binding
	VolumeUp    key.Binding
	VolumeDown  key.Binding
	Shuffle     key.Binding
	Repeat      key.Binding
	Favorite    key.Binding
	SeekBack    key.Binding
	SeekForward key.Binding

	// Library navigation
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Activate key.Binding
	Back     key.Binding
	Search   key.Binding

	// Search overlay
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		FocusNowPlaying: key.NewBinding(key.WithKeys("1")),
		FocusLibrary:    key.NewBinding(key.WithKeys("2")),
		CycleFocus:      key.NewBinding(key.WithKeys("tab")),

		PlayPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play"),
		),
		NextTrack: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n/p", "track"),
		),
		PrevTrack:  key.NewBinding(key.WithKeys("p")),
		VolumeUp:   key.NewBinding(key.WithKeys("+", "=")),
		VolumeDown: key.NewBinding(key.WithKeys("-")),
		Shuffle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shuf"),
		),
		Repeat: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rep"),
		),
		Favorite: key.NewBinding(key.WithKeys("f")),
		SeekBack: key.NewBinding(
			key.WithKeys(",", "<"),
			key.WithHelp(",/.", "seek"),
		),
		SeekForward: key.NewBinding(key.WithKeys(".", ">")),

		Up:     key.NewBinding(key.WithKeys("k", "up")),
		Down:   key.NewBinding(key.WithKeys("j", "down")),
		Top:    key.NewBinding(key.WithKeys("g")),
		Bottom: key.NewBinding(key.WithKeys("G")),
		Activate: key.NewBinding(
			key.WithKeys("enter", "l", "right"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("h", "esc", "left"),
			key.WithHelp("esc", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),

		Confirm: key.NewBinding(key.WithKeys("enter")),
		Cancel:  key.NewBinding(key.WithKeys("esc")),
	}
}
