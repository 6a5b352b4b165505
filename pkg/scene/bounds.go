package scene

import "github.com/PrashantWebGL/House3DVisulaizer/pkg/survey"

const (
	// targetExtent is the fixed visualization extent legacy surveys are
	// fitted into.
	targetExtent = 50.0
	// minSourceExtent floors a degenerate (zero-span) legacy survey so
	// the derived scale stays finite.
	minSourceExtent = 1.0
	// unitScale converts current-schema real-world units into
	// visualization units. Fixed conversion, not fit-to-window.
	unitScale = 1.0 / 12.0
)

// Bounds accumulates a 2D axis-aligned bounding box over source
// coordinates.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
	set        bool
}

// Add extends the bounds to include (x, y).
func (b *Bounds) Add(x, y float64) {
	if !b.set {
		b.MinX, b.MinY, b.MaxX, b.MaxY = x, y, x, y
		b.set = true
		return
	}
	if x < b.MinX {
		b.MinX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// Center returns the midpoint of the bounds.
func (b *Bounds) Center() (x, y float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// Extent returns the larger of the two axis spans.
func (b *Bounds) Extent() float64 {
	dx := b.MaxX - b.MinX
	dy := b.MaxY - b.MinY
	if dx > dy {
		return dx
	}
	return dy
}

// Space is a normalized visualization space: the center subtracted from
// every source coordinate and the uniform scale applied afterwards.
// Order matters: center first, then scale, never the reverse.
type Space struct {
	CenterX, CenterY float64
	Scale            float64
}

// Transform maps a source coordinate into visualization space.
func (s Space) Transform(x, y float64) (tx, ty float64) {
	return (x - s.CenterX) * s.Scale, (y - s.CenterY) * s.Scale
}

// LegacySpace derives a fit-to-window space from every bbox corner of a
// legacy wall set. The scale maps the survey's longer axis onto the
// fixed target extent.
func LegacySpace(walls []survey.WallRecord) Space {
	var b Bounds
	for _, w := range walls {
		b.Add(w.BBox.X1, w.BBox.Y1)
		b.Add(w.BBox.X2, w.BBox.Y2)
	}
	cx, cy := b.Center()
	extent := b.Extent()
	if extent < minSourceExtent {
		extent = minSourceExtent
	}
	return Space{CenterX: cx, CenterY: cy, Scale: targetExtent / extent}
}

// ProjectSpace derives a unit-conversion space from every coordinate of
// a current-schema record set. Unlike LegacySpace the scale is a fixed
// constant; only the center comes from the aggregate bounds.
func ProjectSpace(records []survey.MaterialRecord) Space {
	var b Bounds
	for _, r := range records {
		for _, p := range r.Coordinates {
			b.Add(p[0], p[1])
		}
	}
	cx, cy := b.Center()
	return Space{CenterX: cx, CenterY: cy, Scale: unitScale}
}
