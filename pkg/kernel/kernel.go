// Package kernel defines the abstract geometry kernel interface.
// Implementations provide solid construction and meshing behind this
// interface, so the tessellator never depends on a concrete backend
// and backends can be swapped without changing the rest of the system.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface. Solids are built in
// visualization space: X right, Y up, Z depth.
type Kernel interface {
	// Box creates a box with the given dimensions, centered at the origin.
	Box(x, y, z float64) Solid

	// Extrude creates a slab from a ground-plane footprint. Points are
	// (x, z) pairs without a closing duplicate; the slab is centered
	// vertically at y=0 with the given height.
	Extrude(points [][2]float64, height float64) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	RotateY(s Solid, radians float64) Solid // rotation about the up axis

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
