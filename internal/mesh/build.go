package mesh

import (
	"sort"

	"citymesh/internal/cityjson"
)

// Build flattens every supported geometry of the document into one indexed
// mesh. City objects are visited in sorted id order so the polygon list is
// deterministic. A document without vertices short-circuits to an empty
// mesh; faces with fewer than three indices or with indices outside the
// point array are dropped silently, matching the per-face granularity of
// the loader's best-effort policy.
func Build(doc *cityjson.Document) *Mesh {
	m := &Mesh{}
	if doc == nil || len(doc.Vertices) == 0 {
		return m
	}
	m.points = append([][3]float64(nil), doc.Vertices...)
	m.bbox = bboxOf(m.points)

	ids := make([]string, 0, len(doc.CityObjects))
	for id := range doc.CityObjects {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		obj := doc.CityObjects[id]
		typ := obj.Type
		if typ == "" {
			typ = "Unknown"
		}
		for _, g := range obj.Geometry {
			for _, s := range g.Surfaces() {
				ring := s.Outer()
				if len(ring) < 3 || !indexable(ring, len(m.points)) {
					continue
				}
				m.polygons = append(m.polygons, ring)
				m.objType = append(m.objType, typ)
				m.objID = append(m.objID, id)
			}
		}
	}
	return m
}

func indexable(ring []int, n int) bool {
	for _, v := range ring {
		if v < 0 || v >= n {
			return false
		}
	}
	return true
}

func bboxOf(pts [][3]float64) BBox {
	bb := BBox{MinX: pts[0][0], MinY: pts[0][1], MaxX: pts[0][0], MaxY: pts[0][1]}
	for _, p := range pts[1:] {
		if p[0] < bb.MinX {
			bb.MinX = p[0]
		}
		if p[1] < bb.MinY {
			bb.MinY = p[1]
		}
		if p[0] > bb.MaxX {
			bb.MaxX = p[0]
		}
		if p[1] > bb.MaxY {
			bb.MaxY = p[1]
		}
	}
	return bb
}
