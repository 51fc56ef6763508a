package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-gravity/internal/core"
	"github.com/vovakirdan/tui-gravity/internal/sim"
)

// Glyphs used to draw the simulation.
const (
	glyphSun       = '@'
	glyphTiny      = '·'
	glyphBody      = 'o'
	glyphLarge     = 'O'
	glyphOrbit     = '.'
	glyphMarkLeft  = '['
	glyphMarkRight = ']'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("208")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Extra room for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		row := s.Row(y)
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end].Color == row[start].Color {
				end++
			}

			var run strings.Builder
			for _, c := range row[start:end] {
				run.WriteRune(c.Rune)
			}

			style, ok := colorStyles[row[start].Color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
			start = end
		}
	}

	return sb.String()
}

// DrawSimulation projects a render snapshot onto dst through vp.
// Orbit points are drawn first so bodies and markers stay on top.
// Anything outside the viewport is skipped.
func DrawSimulation(dst *core.Screen, vp core.Viewport, drawables []sim.Drawable, orbit []r2.Vec) {
	for _, p := range orbit {
		if cx, cy, ok := vp.ToCell(p.X, p.Y); ok {
			dst.SetColored(cx, cy, glyphOrbit, core.ColorCyan)
		}
	}

	for _, d := range drawables {
		cx, cy, ok := vp.ToCell(d.Position.X, d.Position.Y)
		if !ok {
			continue
		}
		switch {
		case d.SelectMarker:
			span := core.Max(1, vp.CellSpan(d.Radius))
			dst.SetColored(cx-span, cy, glyphMarkLeft, core.ColorBrightYellow)
			dst.SetColored(cx+span, cy, glyphMarkRight, core.ColorBrightYellow)
		case d.Sun:
			dst.SetColored(cx, cy, glyphSun, core.ColorOrange)
		default:
			r, c := bodyGlyph(vp, d.Radius)
			dst.SetColored(cx, cy, r, c)
		}
	}
}

// bodyGlyph picks a glyph by how many cells the body's radius spans.
func bodyGlyph(vp core.Viewport, radius float64) (rune, core.Color) {
	switch span := vp.CellSpan(radius); {
	case span < 1:
		return glyphTiny, core.ColorGray
	case span < 2:
		return glyphBody, core.ColorWhite
	default:
		return glyphLarge, core.ColorBrightWhite
	}
}

// renderStatus renders the one-line status bar for the given stats.
func renderStatus(scenario string, st sim.Stats, width int) string {
	text := fmt.Sprintf("%s  tick %d  bodies %d  merges %d  largest %.1f",
		scenario, st.Tick, st.Bodies, st.Merges, st.LargestMass)

	bar := statusStyle.Render(text)
	if st.Paused {
		bar = lipgloss.JoinHorizontal(lipgloss.Top, pausedStyle.Render("PAUSED"), bar)
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(bar)
}

// centerText pads text on the left so it appears centered within width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
