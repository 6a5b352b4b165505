// Package scene turns survey documents into normalized 3D geometry
// primitives. All synthesized geometry lives in a centered, uniformly
// scaled visualization space with Y as the up axis.
package scene

// Category is the closed set of component classes a survey record can
// carry. Unknown wire strings map to CategoryDefault, never an error.
type Category int

const (
	CategoryDefault Category = iota
	CategoryRoofPanel
	CategoryEave
	CategoryValley
	CategoryHip
	CategoryRidge
	CategoryGable
	CategoryPerimeterWall
	CategoryInteriorWall
	CategoryPartitionWall
)

// ParseCategory maps a wire key (materialType or wall class) onto the
// closed category set.
func ParseCategory(key string) Category {
	switch key {
	case "roof_panel":
		return CategoryRoofPanel
	case "eave_length":
		return CategoryEave
	case "valley_length":
		return CategoryValley
	case "hip_length":
		return CategoryHip
	case "ridge_length":
		return CategoryRidge
	case "gable_length":
		return CategoryGable
	case "perimeter_wall":
		return CategoryPerimeterWall
	case "interior_wall":
		return CategoryInteriorWall
	case "partition_wall":
		return CategoryPartitionWall
	default:
		return CategoryDefault
	}
}

func (c Category) String() string {
	switch c {
	case CategoryRoofPanel:
		return "roof_panel"
	case CategoryEave:
		return "eave_length"
	case CategoryValley:
		return "valley_length"
	case CategoryHip:
		return "hip_length"
	case CategoryRidge:
		return "ridge_length"
	case CategoryGable:
		return "gable_length"
	case CategoryPerimeterWall:
		return "perimeter_wall"
	case CategoryInteriorWall:
		return "interior_wall"
	case CategoryPartitionWall:
		return "partition_wall"
	default:
		return "default"
	}
}

// Elevation returns the fixed vertical offset for a category. The offsets
// form a total order over the roof categories so that nominally coplanar
// shapes never share a plane and z-fight.
func (c Category) Elevation() float64 {
	switch c {
	case CategoryRoofPanel:
		return 0.0
	case CategoryEave:
		return 0.05
	case CategoryValley:
		return -0.05
	case CategoryHip:
		return 0.15
	case CategoryRidge:
		return 0.3
	case CategoryGable:
		return 0.1
	default:
		return 0.0
	}
}

// Color returns the material color for a category as a hex string.
// Independent of Elevation; consumed by the rendering layer and legend.
func (c Category) Color() string {
	switch c {
	case CategoryRoofPanel:
		return "#E67E22" // orange
	case CategoryEave:
		return "#1ABC9C" // teal
	case CategoryValley:
		return "#9B59B6" // purple
	case CategoryHip:
		return "#F39C12" // amber
	case CategoryRidge:
		return "#3498DB" // blue
	case CategoryGable:
		return "#2ECC71" // green
	case CategoryPerimeterWall:
		return "#7F8C8D"
	case CategoryInteriorWall:
		return "#BDC3C7"
	case CategoryPartitionWall:
		return "#D0D3D4"
	default:
		return "#FFFFFF"
	}
}

// Label returns the legend text for a category.
func (c Category) Label() string {
	switch c {
	case CategoryRoofPanel:
		return "Roof Panel"
	case CategoryEave:
		return "Eave"
	case CategoryValley:
		return "Valley"
	case CategoryHip:
		return "Hip"
	case CategoryRidge:
		return "Ridge"
	case CategoryGable:
		return "Gable"
	case CategoryPerimeterWall:
		return "Perimeter Wall"
	case CategoryInteriorWall:
		return "Interior Wall"
	case CategoryPartitionWall:
		return "Partition Wall"
	default:
		return "Component"
	}
}
