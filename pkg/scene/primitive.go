package scene

// Vec3 is a point in visualization space. Y is the up axis.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec2 is a point in the ground plane of visualization space; X maps to
// scene X and Y to scene Z.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Kind enumerates the primitive variants a record can synthesize into.
type Kind int

const (
	KindBox Kind = iota
	KindPolygon
	KindSegment
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindPolygon:
		return "polygon"
	case KindSegment:
		return "segment"
	default:
		return "unknown"
	}
}

// PrimitiveData is the interface for kind-specific primitive payloads.
type PrimitiveData interface {
	primitiveData() // marker method restricting implementations to this package
}

// Box is an upright box sitting on the ground plane; Position is its
// center, so Position.Y is always Height/2.
type Box struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Depth    float64 `json:"depth"`
	Position Vec3    `json:"position"`
}

func (Box) primitiveData() {}

// Polygon is a flat footprint laid into the ground plane at a fixed
// elevation. Points are ordered and closed (last equals first). Pitch is
// carried from the source record but not applied to the footprint; the
// extrusion stays flat.
type Polygon struct {
	Points    []Vec2  `json:"points"`
	Elevation float64 `json:"elevation"`
	Pitch     float64 `json:"pitch"`
}

func (Polygon) primitiveData() {}

// Segment is a thick horizontal line between two points at the same
// elevation. Yaw is the rotation about the up axis that aligns the
// segment's long axis with its direction; Position is the midpoint with
// half the height added on Y.
type Segment struct {
	From      Vec3    `json:"from"`
	To        Vec3    `json:"to"`
	Thickness float64 `json:"thickness"`
	Height    float64 `json:"height"`
	Elevation float64 `json:"elevation"`
	Yaw       float64 `json:"yaw"`
	Position  Vec3    `json:"position"`
}

func (Segment) primitiveData() {}

// Primitive is one synthesized geometry element.
type Primitive struct {
	Kind     Kind
	Category Category
	Data     PrimitiveData
}

// AABB is a 3D axis-aligned bounding box in visualization space.
type AABB struct {
	Min Vec3 `json:"min"`
	Max Vec3 `json:"max"`
}

func (b *AABB) add(v Vec3, set *bool) {
	if !*set {
		b.Min, b.Max = v, v
		*set = true
		return
	}
	if v.X < b.Min.X {
		b.Min.X = v.X
	}
	if v.Y < b.Min.Y {
		b.Min.Y = v.Y
	}
	if v.Z < b.Min.Z {
		b.Min.Z = v.Z
	}
	if v.X > b.Max.X {
		b.Max.X = v.X
	}
	if v.Y > b.Max.Y {
		b.Max.Y = v.Y
	}
	if v.Z > b.Max.Z {
		b.Max.Z = v.Z
	}
}

// floorSpan expands any axis narrower than minSpan symmetrically about
// its center, so a tiny or single-point model still frames sensibly.
func (b *AABB) floorSpan(minSpan float64) {
	floorAxis := func(min, max *float64) {
		if span := *max - *min; span < minSpan {
			center := (*min + *max) / 2
			*min = center - minSpan/2
			*max = center + minSpan/2
		}
	}
	floorAxis(&b.Min.X, &b.Max.X)
	floorAxis(&b.Min.Y, &b.Max.Y)
	floorAxis(&b.Min.Z, &b.Max.Z)
}
