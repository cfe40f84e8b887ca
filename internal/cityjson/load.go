package cityjson

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and parses a CityJSON file. The top-level "type" check is the
// only fatal structural check; below it the decode is best-effort per
// field, so geometry problems surface later as missing faces rather than
// load errors. The returned Document is never mutated afterwards.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: %s", ErrMalformedInput, path)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// valid JSON but not an object: no "type" field to speak of
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, path)
	}
	doc := &Document{}
	if err := json.Unmarshal(raw["type"], &doc.Type); err != nil || doc.Type != "CityJSON" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, path)
	}
	if v, ok := raw["version"]; ok {
		_ = json.Unmarshal(v, &doc.Version)
	}
	if v, ok := raw["vertices"]; ok {
		_ = json.Unmarshal(v, &doc.Vertices)
	}
	if v, ok := raw["CityObjects"]; ok {
		_ = json.Unmarshal(v, &doc.CityObjects)
	}
	return doc, nil
}
