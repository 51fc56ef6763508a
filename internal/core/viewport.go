package core

import "math"

// Viewport maps continuous world coordinates onto a rectangle of screen cells.
// The whole world rectangle [0, WorldW) x [0, WorldH) is stretched over Area.
type Viewport struct {
	WorldW float64
	WorldH float64
	Area   Rect
}

// NewViewport creates a viewport for a world of the given size drawn into area.
func NewViewport(worldW, worldH float64, area Rect) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, Area: area}
}

// CellW returns the world width covered by one cell.
func (v Viewport) CellW() float64 {
	if v.Area.W <= 0 {
		return 0
	}
	return v.WorldW / float64(v.Area.W)
}

// CellH returns the world height covered by one cell.
func (v Viewport) CellH() float64 {
	if v.Area.H <= 0 {
		return 0
	}
	return v.WorldH / float64(v.Area.H)
}

// ToCell projects a world point to a screen cell.
// The boolean is false when the point falls outside the viewport area.
func (v Viewport) ToCell(x, y float64) (int, int, bool) {
	if v.Area.Empty() || v.WorldW <= 0 || v.WorldH <= 0 {
		return 0, 0, false
	}
	cx := v.Area.X + int(math.Floor(x/v.CellW()))
	cy := v.Area.Y + int(math.Floor(y/v.CellH()))
	return cx, cy, v.Area.Contains(cx, cy)
}

// ToWorld returns the world coordinates of the center of a screen cell.
func (v Viewport) ToWorld(cx, cy int) (float64, float64) {
	x := (float64(cx-v.Area.X) + 0.5) * v.CellW()
	y := (float64(cy-v.Area.Y) + 0.5) * v.CellH()
	return x, y
}

// CellSpan returns how many cells a world distance covers horizontally.
func (v Viewport) CellSpan(d float64) int {
	w := v.CellW()
	if w <= 0 {
		return 0
	}
	return int(math.Round(d / w))
}
