package mesh

// BBox is the XY extent of the mesh points.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Mesh is an indexed polygon mesh: a point array, polygons referencing it
// by index, and two attribute columns parallel to the polygon list naming
// the city object each polygon came from. A mesh is immutable once built;
// derived meshes are separate values.
type Mesh struct {
	points   [][3]float64
	polygons [][]int
	objType  []string
	objID    []string
	bbox     BBox
}

// Points returns the point array. Callers must not modify it.
func (m *Mesh) Points() [][3]float64 { return m.points }

// PointCount returns the number of points.
func (m *Mesh) PointCount() int { return len(m.points) }

// PolygonCount returns the number of polygons.
func (m *Mesh) PolygonCount() int { return len(m.polygons) }

// Polygon returns the vertex indices of polygon i.
func (m *Mesh) Polygon(i int) []int { return m.polygons[i] }

// ObjectType returns the owning city object type of polygon i.
func (m *Mesh) ObjectType(i int) string { return m.objType[i] }

// ObjectID returns the owning city object id of polygon i.
func (m *Mesh) ObjectID(i int) string { return m.objID[i] }

// BBox returns the XY extent of the points; zero for an empty mesh.
func (m *Mesh) BBox() BBox { return m.bbox }

// Types returns the distinct object types in polygon order.
func (m *Mesh) Types() []string {
	var out []string
	seen := make(map[string]bool)
	for _, t := range m.objType {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// FilterByType returns a mesh holding only the polygons whose object type
// equals t (exact match), in their original order. The point array is
// retained as-is, not compacted to the referenced vertices. It returns nil
// both when the mesh carries no attribute columns and when no polygon
// matches: callers get a single nothing-to-show signal for either case.
func (m *Mesh) FilterByType(t string) *Mesh {
	if len(m.objType) == 0 {
		return nil
	}
	out := &Mesh{points: m.points, bbox: m.bbox}
	for i, ot := range m.objType {
		if ot != t {
			continue
		}
		out.polygons = append(out.polygons, m.polygons[i])
		out.objType = append(out.objType, ot)
		out.objID = append(out.objID, m.objID[i])
	}
	if len(out.polygons) == 0 {
		return nil
	}
	return out
}

// ColorBySurface returns a structural copy of the mesh, or nil when it
// holds no polygons. Semantic-surface colouring is not implemented yet;
// the copy keeps the attribute columns unchanged.
func (m *Mesh) ColorBySurface() *Mesh {
	if len(m.polygons) == 0 {
		return nil
	}
	out := &Mesh{
		points:   append([][3]float64(nil), m.points...),
		polygons: make([][]int, len(m.polygons)),
		objType:  append([]string(nil), m.objType...),
		objID:    append([]string(nil), m.objID...),
		bbox:     m.bbox,
	}
	for i, p := range m.polygons {
		out.polygons[i] = append([]int(nil), p...)
	}
	return out
}
