package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/musetui/muse/internal/artwork"
	"github.com/musetui/muse/internal/bridge"
	"github.com/musetui/muse/internal/nav"
)

// Layout thresholds, matching the responsive behavior of the original
// layout: the now-playing pane disappears on narrow terminals and the
// status row on short ones.
const (
	minWidthForNowPlaying = 60
	minHeightForStatusRow = 10
)

// View renders the whole screen from the current model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	showNowPlaying := m.width >= minWidthForNowPlaying
	showStatusRow := m.height >= minHeightForStatusRow

	controlsHeight := 3
	if showStatusRow {
		controlsHeight = 4
	}
	mainHeight := m.height - 1 - controlsHeight
	if mainHeight < 1 {
		mainHeight = 1
	}

	header := m.renderHeader()

	var main string
	if showNowPlaying {
		leftWidth := m.width * nowPlayingPercent(m.width) / 100
		rightWidth := m.width - leftWidth
		main = lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.renderNowPlaying(leftWidth, mainHeight),
			m.renderLibrary(rightWidth, mainHeight),
		)
	} else {
		main = m.renderLibrary(m.width, mainHeight)
	}

	controls := m.renderControls(m.width, controlsHeight, showStatusRow)

	return lipgloss.JoinVertical(lipgloss.Left, header, main, controls)
}

// nowPlayingPercent narrows the left pane as the terminal shrinks.
func nowPlayingPercent(width int) int {
	switch {
	case width >= 120:
		return 35
	case width >= 80:
		return 40
	default:
		return 45
	}
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Render(" ♫ muse ")
	hints := "  q:quit  space:play  n/p:track  ,/.:seek  s:shuf  r:rep  f:fav  /:search"
	line := title
	if m.width > 50 {
		line += m.theme.Hint.Render(hints)
	}
	return lipgloss.NewStyle().Width(m.width).MaxHeight(1).Render(line)
}

func (m Model) paneBorder(active bool) lipgloss.Style {
	style := m.theme.BorderInactive
	if active {
		style = m.theme.BorderActive
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.GetForeground())
}

func (m Model) renderNowPlaying(width, height int) string {
	innerWidth, innerHeight := innerSize(width, height)
	border := m.paneBorder(m.panel == panelNowPlaying).
		Width(innerWidth).
		Height(innerHeight)

	if m.player.Track == "" {
		empty := m.theme.Muted.Render("Nothing playing")
		return border.Render(centerIn(empty, innerWidth, innerHeight))
	}

	infoHeight := 3
	artHeight := innerHeight - infoHeight
	showArt := innerHeight >= 10

	var sections []string
	if showArt {
		sections = append(sections, m.renderArtwork(innerWidth, artHeight))
	}
	sections = append(sections, m.renderTrackInfo(innerWidth))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return border.Render(content)
}

// renderArtwork draws the cover as half-block cells, kept square-ish
// (cell aspect is roughly 2:1) and centered, or a placeholder note.
func (m Model) renderArtwork(width, height int) string {
	if m.art == nil {
		placeholder := m.theme.Muted.Render("♪")
		return centerIn(placeholder, width, height)
	}

	artWidth := width
	if artWidth > height*2 {
		artWidth = height * 2
	}
	grid := artwork.Render(m.art, artWidth, height)

	var b strings.Builder
	for r, line := range grid {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range line {
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(cell.FG.R, cell.FG.G, cell.FG.B))).
				Background(lipgloss.Color(hexColor(cell.BG.R, cell.BG.G, cell.BG.B)))
			b.WriteString(style.Render(string(artwork.HalfBlock)))
		}
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func (m Model) renderTrackInfo(width int) string {
	elapsed := formatTime(m.player.Position)
	total := formatTime(m.player.Duration)

	lines := []string{
		m.theme.Track.Render(truncate(m.player.Track, width)),
		m.theme.Artist.Render(truncate(m.player.Artist, width)),
		m.theme.Muted.Render(truncate(
			fmt.Sprintf("%s  %s / %s", m.player.Album, elapsed, total), width)),
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderLibrary(width, height int) string {
	innerWidth, innerHeight := innerSize(width, height)
	border := m.paneBorder(m.panel == panelLibrary).
		Width(innerWidth).
		Height(innerHeight)

	title := m.libraryTitle()

	listHeight := innerHeight - 1
	var footer string
	if m.searching {
		listHeight--
		footer = m.theme.Overlay.Render(m.search.View())
	}

	var body string
	switch {
	case m.loading:
		body = centerIn(m.theme.Overlay.Render("Loading…"), innerWidth, listHeight)
	default:
		body = m.renderList(innerWidth, listHeight)
	}

	sections := []string{m.theme.Title.Render(truncate(title, innerWidth)), body}
	if footer != "" {
		sections = append(sections, footer)
	}
	return border.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) libraryTitle() string {
	switch m.nav.View() {
	case nav.ViewTracks:
		name := "Tracks"
		if tracks := m.nav.Tracks(); len(tracks) > 0 && tracks[0].Album != "" {
			name = tracks[0].Album
		}
		return fmt.Sprintf(" %s — %d tracks ", name, len(m.nav.Tracks()))
	case nav.ViewSearchResults:
		return fmt.Sprintf(" Search — %d results ", len(m.nav.Tracks()))
	default:
		return fmt.Sprintf(" Playlists (%d) ", len(m.nav.Playlists()))
	}
}

// renderList draws the active list windowed around the cursor.
func (m Model) renderList(width, height int) string {
	if height < 1 {
		return ""
	}

	total := m.nav.Len()
	cursor := m.nav.Cursor()
	first := listWindowStart(cursor, total, height)

	lines := make([]string, 0, height)
	for i := first; i < total && len(lines) < height; i++ {
		selected := i == cursor
		var line string
		if m.nav.View() == nav.ViewPlaylists {
			line = m.renderPlaylistRow(m.nav.Playlists()[i], width, selected)
		} else {
			line = m.renderTrackRow(m.nav.Tracks()[i], width, selected)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// listWindowStart picks the first visible row so the cursor stays on
// screen.
func listWindowStart(cursor, total, height int) int {
	if total <= height || cursor < 0 {
		return 0
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start > total-height {
		start = total - height
	}
	return start
}

func (m Model) renderPlaylistRow(entry bridge.PlaylistEntry, width int, selected bool) string {
	marker := "  "
	if selected {
		marker = " ▶"
	}
	text := truncate(marker+" "+entry.Name+" ›", width)
	if selected {
		return m.theme.Selected.Render(text)
	}
	return text
}

func (m Model) renderTrackRow(entry bridge.TrackEntry, width int, selected bool) string {
	isPlaying := m.player.Track != "" &&
		entry.Name == m.player.Track &&
		entry.Artist == m.player.Artist

	marker := "  "
	switch {
	case selected:
		marker = " ▶"
	case isPlaying:
		marker = " ♫"
	}

	duration := formatTime(entry.Duration)
	base := fmt.Sprintf("%s %s  %s", marker, entry.Name, entry.Artist)

	// Album squeezes in only when there is room for it.
	if width > len([]rune(base))+len(duration)+15 {
		base += "  " + m.theme.Muted.Render(truncate(entry.Album, 20))
	}
	text := truncate(base, width-len(duration)-2)
	line := text + "  " + duration

	switch {
	case selected:
		return m.theme.Selected.Render(truncate(line, width))
	case isPlaying:
		return m.theme.Playing.Render(truncate(line, width))
	default:
		return truncate(line, width)
	}
}

func (m Model) renderControls(width, height int, showStatusRow bool) string {
	innerWidth, innerHeight := innerSize(width, height)
	border := m.paneBorder(false).Width(innerWidth).Height(innerHeight)

	gauge := m.renderGauge(innerWidth)
	if !showStatusRow {
		return border.Render(gauge)
	}
	return border.Render(gauge + "\n" + m.renderStatusRow(innerWidth))
}

// renderGauge draws the playback progress bar with the state glyph and
// elapsed/total label inlaid on the left.
func (m Model) renderGauge(width int) string {
	if width < 1 {
		return ""
	}

	var stateGlyph string
	switch m.player.State {
	case bridge.StatePlaying:
		stateGlyph = "▶"
	case bridge.StatePaused:
		stateGlyph = "‖"
	default:
		stateGlyph = "■"
	}

	label := fmt.Sprintf(" %s  %s / %s ",
		stateGlyph, formatTime(m.player.Position), formatTime(m.player.Duration))
	ratio := progressRatio(m.player.Position, m.player.Duration)
	filled := int(ratio * float64(width))

	labelRunes := []rune(truncate(label, width))
	var b strings.Builder
	for i := 0; i < width; i++ {
		glyph := "─"
		if i < len(labelRunes) {
			glyph = string(labelRunes[i])
		} else if i < filled {
			glyph = "━"
		}
		if i < filled {
			b.WriteString(lipgloss.NewStyle().
				Foreground(m.theme.gaugeColor(i, width)).
				Render(glyph))
		} else {
			b.WriteString(m.theme.Muted.Render(glyph))
		}
	}
	return b.String()
}

func (m Model) renderStatusRow(width int) string {
	separator := m.theme.Muted.Render(" │ ")

	shuffle := m.theme.Muted.Render("shuffle")
	if m.player.Shuffle {
		shuffle = m.theme.Playing.Render("⤡ shuffle")
	}

	var repeat string
	switch m.player.Repeat {
	case bridge.RepeatOne:
		repeat = m.theme.Playing.Render("↻ one")
	case bridge.RepeatAll:
		repeat = m.theme.Playing.Render("↻ all")
	default:
		repeat = m.theme.Muted.Render("repeat")
	}

	volume := clamp(m.player.Volume, 0, 100)
	level := (volume + 5) / 10
	bar := strings.Repeat("━", level) + strings.Repeat("─", 10-level)
	volumeSpan := m.theme.Artist.Render(fmt.Sprintf("vol %s %d%%", bar, volume))

	row := " " + shuffle + separator + repeat + separator + volumeSpan
	return lipgloss.NewStyle().MaxWidth(width).Render(row)
}

// innerSize is the content area inside a bordered pane, never negative
// even when the terminal is smaller than the border itself.
func innerSize(width, height int) (int, int) {
	innerWidth := width - 2
	if innerWidth < 0 {
		innerWidth = 0
	}
	innerHeight := height - 2
	if innerHeight < 0 {
		innerHeight = 0
	}
	return innerWidth, innerHeight
}

// centerIn places content in the middle of a box of the given size.
func centerIn(content string, width, height int) string {
	if width < 1 || height < 1 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
