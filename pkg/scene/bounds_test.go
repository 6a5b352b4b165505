package scene

import (
	"math"
	"testing"

	"github.com/PrashantWebGL/House3DVisulaizer/pkg/survey"
)

func TestBoundsAccumulate(t *testing.T) {
	var b Bounds
	b.Add(5, -2)
	b.Add(-3, 7)
	b.Add(1, 1)

	if b.MinX != -3 || b.MinY != -2 || b.MaxX != 5 || b.MaxY != 7 {
		t.Errorf("bounds = %+v", b)
	}
	cx, cy := b.Center()
	if cx != 1 || cy != 2.5 {
		t.Errorf("center = (%v, %v), want (1, 2.5)", cx, cy)
	}
	if got := b.Extent(); got != 9 {
		t.Errorf("extent = %v, want 9 (y span)", got)
	}
}

func TestLegacySpaceFitsTargetExtent(t *testing.T) {
	walls := []survey.WallRecord{
		{BBox: survey.BBox{X1: 0, Y1: 0, X2: 100, Y2: 20}},
		{BBox: survey.BBox{X1: 100, Y1: 0, X2: 200, Y2: 20}},
	}
	sp := LegacySpace(walls)
	// Longer axis is x with span 200, so scale = 50/200.
	if sp.Scale != 0.25 {
		t.Errorf("scale = %v, want 0.25", sp.Scale)
	}
	if sp.CenterX != 100 || sp.CenterY != 10 {
		t.Errorf("center = (%v, %v), want (100, 10)", sp.CenterX, sp.CenterY)
	}
}

// All coordinates identical: the extent floor must keep the scale finite
// and nonzero.
func TestLegacySpaceZeroExtent(t *testing.T) {
	walls := []survey.WallRecord{
		{BBox: survey.BBox{X1: 5, Y1: 5, X2: 5, Y2: 5}, Center: survey.Point{X: 5, Y: 5}},
	}
	sp := LegacySpace(walls)
	if math.IsInf(sp.Scale, 0) || math.IsNaN(sp.Scale) {
		t.Fatalf("scale is not finite: %v", sp.Scale)
	}
	if sp.Scale == 0 {
		t.Fatal("scale is zero")
	}
}

func TestProjectSpaceFixedScale(t *testing.T) {
	records := []survey.MaterialRecord{
		{Coordinates: [][2]float64{{0, 0}, {1200, 600}}},
	}
	sp := ProjectSpace(records)
	// Current-schema scaling is a unit conversion, never fit-to-window.
	if sp.Scale != 1.0/12.0 {
		t.Errorf("scale = %v, want 1/12", sp.Scale)
	}
	if sp.CenterX != 600 || sp.CenterY != 300 {
		t.Errorf("center = (%v, %v), want (600, 300)", sp.CenterX, sp.CenterY)
	}
}

// Center must be subtracted before the scale is applied.
func TestTransformOrder(t *testing.T) {
	sp := Space{CenterX: 10, CenterY: 20, Scale: 2}
	x, y := sp.Transform(15, 20)
	if x != 10 || y != 0 {
		t.Errorf("Transform(15,20) = (%v, %v), want (10, 0)", x, y)
	}
}
