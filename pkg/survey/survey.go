// Package survey defines the building-survey document model and the
// dual-schema detector. A survey document arrives as a single JSON file
// in one of two shapes: the legacy wall-detection export ("walls") or
// the current roof-material export ("records").
package survey

import (
	"encoding/json"
	"strconv"
)

// Schema identifies which of the two supported document shapes a JSON
// payload carries.
type Schema int

const (
	SchemaUnrecognized Schema = iota
	SchemaLegacyWalls
	SchemaCurrentRecords
)

func (s Schema) String() string {
	switch s {
	case SchemaLegacyWalls:
		return "legacy-walls"
	case SchemaCurrentRecords:
		return "current-records"
	default:
		return "unrecognized"
	}
}

// BBox is an axis-aligned bounding box in source units. The corners may
// be given in any order; consumers must use absolute differences.
type BBox struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Point is a 2D point in source units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WallRecord is one detected wall in the legacy schema. Confidence and
// area are carried through from the detector but play no part in
// geometry synthesis.
type WallRecord struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
	BBox       BBox    `json:"bbox"`
	Center     Point   `json:"center"`
	Area       float64 `json:"area"`
}

// MaterialRecord is one roof component in the current schema. Coordinates
// are an ordered list of real-world [x, y] pairs. The per-record scale
// factor is carried but not trusted; the normalizer derives its own
// scaling from aggregate bounds.
type MaterialRecord struct {
	MaterialType string         `json:"materialType"`
	Settings     map[string]any `json:"settings"`
	Coordinates  [][2]float64   `json:"coordinates_real_world"`
	ScaleFactor  float64        `json:"scale_factor_float"`
}

// defaultPitch is assumed when a record carries no usable pitch setting.
const defaultPitch = 4

// Pitch returns the record's pitch setting as a float. Numbers and
// numeric strings are accepted; anything else falls back to the default.
func (r *MaterialRecord) Pitch() float64 {
	v, ok := r.Settings["pitch"]
	if !ok {
		return defaultPitch
	}
	switch p := v.(type) {
	case float64:
		return p
	case string:
		if f, err := strconv.ParseFloat(p, 64); err == nil {
			return f
		}
	case json.Number:
		if f, err := p.Float64(); err == nil {
			return f
		}
	}
	return defaultPitch
}

// Project is the current-schema container. Record order determines
// insertion order downstream but has no geometric meaning.
type Project struct {
	ProjectID string           `json:"project_id"`
	Records   []MaterialRecord `json:"records"`
}

// Document is the tagged result of parsing a survey payload. Exactly one
// of Walls or Project is populated, matching Schema.
type Document struct {
	Schema  Schema
	Walls   []WallRecord
	Project *Project
}
