package cityjson

import "encoding/json"

// GeometryType names a CityJSON geometry variant. Variants outside the
// supported set contribute zero surfaces rather than failing the load.
type GeometryType string

const (
	Solid            GeometryType = "Solid"
	MultiSurface     GeometryType = "MultiSurface"
	CompositeSurface GeometryType = "CompositeSurface"
)

// Supported reports whether surfaces can be extracted from the variant.
func (t GeometryType) Supported() bool {
	switch t {
	case Solid, MultiSurface, CompositeSurface:
		return true
	}
	return false
}

// UnmarshalJSON tolerates a non-string type value: the geometry decodes as
// unsupported instead of failing the whole document.
func (t *GeometryType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*t = ""
		return nil
	}
	*t = GeometryType(s)
	return nil
}

// Document is a parsed CityJSON file. Vertex position defines the vertex
// id that boundary rings reference.
type Document struct {
	Type        string                `json:"type"`
	Version     string                `json:"version"`
	Vertices    [][3]float64          `json:"vertices"`
	CityObjects map[string]CityObject `json:"CityObjects"`
}

// CityObject is one entry of the CityObjects mapping; its id is the key.
type CityObject struct {
	Type     string     `json:"type"`
	Geometry []Geometry `json:"geometry"`
}

// Geometry is one boundary-representation record. Boundaries stays raw
// because its nesting depth depends on Type; Surfaces decodes it.
type Geometry struct {
	Type       GeometryType    `json:"type"`
	Boundaries json.RawMessage `json:"boundaries"`
}

// Surface is one face boundary. CityJSON writes it either as a bare ring
// or as a ring list whose first element is the outer boundary and later
// rings are holes. Holes are not modeled here; only Outer is consumed.
type Surface struct {
	Rings [][]int
}

// UnmarshalJSON inspects the shape once: a ring list decodes as-is, a bare
// ring wraps into a single-ring surface.
func (s *Surface) UnmarshalJSON(data []byte) error {
	var rings [][]int
	if err := json.Unmarshal(data, &rings); err == nil {
		s.Rings = rings
		return nil
	}
	var ring []int
	if err := json.Unmarshal(data, &ring); err != nil {
		return err
	}
	s.Rings = [][]int{ring}
	return nil
}

// Outer returns the outer ring, or nil when the surface has no rings.
func (s Surface) Outer() []int {
	if len(s.Rings) == 0 {
		return nil
	}
	return s.Rings[0]
}

// Surfaces decodes the boundaries for the geometry's variant and returns
// its faces in declaration order. Unsupported variants and undecodable
// boundaries yield nil, so a partially malformed document still produces
// surfaces for its valid parts.
func (g Geometry) Surfaces() []Surface {
	switch g.Type {
	case Solid:
		var shells [][]Surface
		if err := json.Unmarshal(g.Boundaries, &shells); err != nil {
			return nil
		}
		var faces []Surface
		for _, shell := range shells {
			faces = append(faces, shell...)
		}
		return faces
	case MultiSurface, CompositeSurface:
		var faces []Surface
		if err := json.Unmarshal(g.Boundaries, &faces); err != nil {
			return nil
		}
		return faces
	default:
		return nil
	}
}
