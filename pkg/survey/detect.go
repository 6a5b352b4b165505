package survey

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors surfaced to the binding layer, which maps them to
// user-visible status messages.
var (
	ErrInvalidJSON        = errors.New("invalid JSON")
	ErrUnrecognizedFormat = errors.New("unrecognized format")
)

// Detect classifies a raw JSON payload as one of the two supported
// schemas. A top-level object with a "records" array is the current
// schema; otherwise a "walls" array marks the legacy schema. Everything
// else, including valid JSON that is not an object, is unrecognized.
// Only malformed JSON is an error.
func Detect(raw []byte) (Schema, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		if json.Valid(raw) {
			return SchemaUnrecognized, nil
		}
		return SchemaUnrecognized, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if isJSONArray(probe["records"]) {
		return SchemaCurrentRecords, nil
	}
	if isJSONArray(probe["walls"]) {
		return SchemaLegacyWalls, nil
	}
	return SchemaUnrecognized, nil
}

// isJSONArray reports whether a raw JSON value is an array.
func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}

// Parse detects the schema and decodes the payload into a Document.
// An unrecognized shape returns ErrUnrecognizedFormat; the caller is
// expected to report it and synthesize no geometry.
func Parse(raw []byte) (*Document, error) {
	schema, err := Detect(raw)
	if err != nil {
		return nil, err
	}

	switch schema {
	case SchemaLegacyWalls:
		var doc struct {
			Walls []WallRecord `json:"walls"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return &Document{Schema: schema, Walls: doc.Walls}, nil

	case SchemaCurrentRecords:
		var p Project
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return &Document{Schema: schema, Project: &p}, nil

	default:
		return nil, ErrUnrecognizedFormat
	}
}
