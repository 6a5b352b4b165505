// Package tessellate walks a synthesized scene plan and produces
// triangle meshes using a geometry kernel. One mesh is produced per
// primitive.
package tessellate

import (
	"fmt"
	"math"

	"github.com/PrashantWebGL/House3DVisulaizer/pkg/kernel"
	"github.com/PrashantWebGL/House3DVisulaizer/pkg/scene"
)

// polygonSlabHeight is the thickness of the flat slab a polygon footprint
// extrudes into. Thin enough to read as a surface, thick enough to mesh.
const polygonSlabHeight = 0.05

// Tessellate produces one mesh per plan primitive using the provided
// geometry kernel. The tessellator is read-only and never mutates the
// plan; the returned slice is parallel to plan.Primitives.
func Tessellate(p *scene.Plan, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if p == nil {
		return nil, nil
	}

	meshes := make([]*kernel.Mesh, 0, len(p.Primitives))
	for i, prim := range p.Primitives {
		mesh, err := tessellatePrimitive(k, prim)
		if err != nil {
			return nil, fmt.Errorf("tessellate: primitive %d (%s): %w", i, prim.Kind, err)
		}
		mesh.Name = prim.Category.Label()
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// tessellatePrimitive builds a solid for one primitive and meshes it.
func tessellatePrimitive(k kernel.Kernel, prim scene.Primitive) (*kernel.Mesh, error) {
	var solid kernel.Solid

	switch data := prim.Data.(type) {
	case scene.Box:
		solid = k.Box(data.Width, data.Height, data.Depth)
		solid = k.Translate(solid, data.Position.X, data.Position.Y, data.Position.Z)

	case scene.Polygon:
		solid = k.Extrude(footprint(data.Points), polygonSlabHeight)
		solid = k.Translate(solid, 0, data.Elevation, 0)

	case scene.Segment:
		length := math.Hypot(data.To.X-data.From.X, data.To.Z-data.From.Z)
		solid = k.Box(length, data.Height, data.Thickness)
		solid = k.RotateY(solid, data.Yaw)
		solid = k.Translate(solid, data.Position.X, data.Position.Y, data.Position.Z)

	default:
		return nil, fmt.Errorf("unsupported primitive data type %T", prim.Data)
	}

	mesh, err := k.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("ToMesh failed: %w", err)
	}
	return mesh, nil
}

// footprint converts closed polygon points to the kernel's open (x, z)
// footprint form, dropping the closing duplicate.
func footprint(points []scene.Vec2) [][2]float64 {
	open := points
	if n := len(open); n > 1 && open[0] == open[n-1] {
		open = open[:n-1]
	}
	out := make([][2]float64, len(open))
	for i, p := range open {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}
