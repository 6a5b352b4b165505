package scene

import (
	"fmt"
	"math"

	"github.com/PrashantWebGL/House3DVisulaizer/pkg/survey"
)

const (
	// wallHeight is the fixed height of every legacy wall box.
	wallHeight = 2.5
	// minWallDim replaces a zero width or depth so degenerate bboxes
	// still render.
	minWallDim = 0.1
	// segmentEpsilon is the length below which a 2-point record is
	// treated as degenerate and skipped.
	segmentEpsilon = 1e-3

	ridgeThickness = 0.25
	ridgeHeight    = 0.3
	lineThickness  = 0.15
	lineHeight     = 0.12
)

// Plan is the ordered output of one synthesis pass: every primitive in
// record order plus summary metadata for the rendering layer. A Plan is
// built fresh per parse event and never mutated afterwards.
type Plan struct {
	Schema     survey.Schema
	ProjectID  string
	Primitives []Primitive
	Counts     map[Category]int
	Skipped    int
}

func newPlan(schema survey.Schema) *Plan {
	return &Plan{Schema: schema, Counts: make(map[Category]int)}
}

func (p *Plan) emit(prim Primitive) {
	p.Primitives = append(p.Primitives, prim)
	p.Counts[prim.Category]++
}

// Synthesize converts a parsed document into a geometry plan. Degenerate
// records (zero-length segments, short point lists) are skipped and
// counted, never reported as errors.
func Synthesize(doc *survey.Document) (*Plan, error) {
	if doc == nil {
		return nil, fmt.Errorf("synthesize: nil document")
	}
	switch doc.Schema {
	case survey.SchemaLegacyWalls:
		return synthesizeWalls(doc.Walls), nil
	case survey.SchemaCurrentRecords:
		if doc.Project == nil {
			return nil, fmt.Errorf("synthesize: current-records document without project")
		}
		return synthesizeProject(doc.Project), nil
	default:
		return nil, fmt.Errorf("synthesize: %w", survey.ErrUnrecognizedFormat)
	}
}

// synthesizeWalls emits one ground-sitting box per wall. Dimensions come
// from the absolute bbox differences; the bbox corners may arrive in any
// order.
func synthesizeWalls(walls []survey.WallRecord) *Plan {
	sp := LegacySpace(walls)
	plan := newPlan(survey.SchemaLegacyWalls)

	for _, w := range walls {
		width := math.Abs(w.BBox.X2-w.BBox.X1) * sp.Scale
		depth := math.Abs(w.BBox.Y2-w.BBox.Y1) * sp.Scale
		if width == 0 {
			width = minWallDim
		}
		if depth == 0 {
			depth = minWallDim
		}
		x, z := sp.Transform(w.Center.X, w.Center.Y)
		plan.emit(Primitive{
			Kind:     KindBox,
			Category: ParseCategory(w.Class),
			Data: Box{
				Width:    width,
				Height:   wallHeight,
				Depth:    depth,
				Position: Vec3{X: x, Y: wallHeight / 2, Z: z},
			},
		})
	}
	return plan
}

// synthesizeProject dispatches each record on its point count: three or
// more points make a flat polygon, exactly two make a thick horizontal
// segment, fewer produce nothing.
func synthesizeProject(p *survey.Project) *Plan {
	sp := ProjectSpace(p.Records)
	plan := newPlan(survey.SchemaCurrentRecords)
	plan.ProjectID = p.ProjectID

	for _, r := range p.Records {
		cat := ParseCategory(r.MaterialType)
		switch n := len(r.Coordinates); {
		case n >= 3:
			plan.emit(synthesizePolygon(&r, cat, sp))
		case n == 2:
			prim, ok := synthesizeSegment(&r, cat, sp)
			if !ok {
				plan.Skipped++
				continue
			}
			plan.emit(prim)
		default:
			plan.Skipped++
		}
	}
	return plan
}

func synthesizePolygon(r *survey.MaterialRecord, cat Category, sp Space) Primitive {
	points := make([]Vec2, 0, len(r.Coordinates)+1)
	for _, p := range r.Coordinates {
		x, y := sp.Transform(p[0], p[1])
		points = append(points, Vec2{X: x, Y: y})
	}
	// Close the path back to the first point.
	points = append(points, points[0])

	return Primitive{
		Kind:     KindPolygon,
		Category: cat,
		Data: Polygon{
			Points:    points,
			Elevation: cat.Elevation(),
			Pitch:     r.Pitch(),
		},
	}
}

// synthesizeSegment builds a horizontal thick segment between the two
// transformed points. Returns ok=false for segments shorter than the
// degeneracy epsilon.
func synthesizeSegment(r *survey.MaterialRecord, cat Category, sp Space) (Primitive, bool) {
	ax, az := sp.Transform(r.Coordinates[0][0], r.Coordinates[0][1])
	bx, bz := sp.Transform(r.Coordinates[1][0], r.Coordinates[1][1])

	dx, dz := bx-ax, bz-az
	if math.Hypot(dx, dz) < segmentEpsilon {
		return Primitive{}, false
	}

	elev := cat.Elevation()
	thickness, height := lineThickness, lineHeight
	if cat == CategoryRidge {
		thickness, height = ridgeThickness, ridgeHeight
	}

	return Primitive{
		Kind:     KindSegment,
		Category: cat,
		Data: Segment{
			From:      Vec3{X: ax, Y: elev, Z: az},
			To:        Vec3{X: bx, Y: elev, Z: bz},
			Thickness: thickness,
			Height:    height,
			Elevation: elev,
			// Negative so the box's long axis rotates onto the
			// direction between the two points.
			Yaw:      -math.Atan2(dz, dx),
			Position: Vec3{X: (ax + bx) / 2, Y: elev + height/2, Z: (az + bz) / 2},
		},
	}, true
}

// CameraBounds returns the axis-aligned bounding box over every
// primitive, with each axis span floored to minSpan so the rendering
// layer can frame even a tiny model. The bound belongs to the plan; the
// camera placement heuristic belongs to the renderer.
func (p *Plan) CameraBounds(minSpan float64) AABB {
	var box AABB
	var set bool

	for _, prim := range p.Primitives {
		switch data := prim.Data.(type) {
		case Box:
			half := Vec3{X: data.Width / 2, Y: data.Height / 2, Z: data.Depth / 2}
			box.add(Vec3{X: data.Position.X - half.X, Y: data.Position.Y - half.Y, Z: data.Position.Z - half.Z}, &set)
			box.add(Vec3{X: data.Position.X + half.X, Y: data.Position.Y + half.Y, Z: data.Position.Z + half.Z}, &set)
		case Polygon:
			for _, pt := range data.Points {
				box.add(Vec3{X: pt.X, Y: data.Elevation, Z: pt.Y}, &set)
			}
		case Segment:
			box.add(data.From, &set)
			box.add(data.To, &set)
			box.add(Vec3{X: data.Position.X, Y: data.Elevation + data.Height, Z: data.Position.Z}, &set)
		}
	}

	box.floorSpan(minSpan)
	return box
}
