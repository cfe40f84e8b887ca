package mesh

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citymesh/internal/cityjson"
)

func cubeDocument() *cityjson.Document {
	return &cityjson.Document{
		Type:    "CityJSON",
		Version: "1.1",
		Vertices: [][3]float64{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
			{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
		},
		CityObjects: map[string]cityjson.CityObject{
			"building1": {
				Type: "Building",
				Geometry: []cityjson.Geometry{{
					Type: cityjson.Solid,
					Boundaries: json.RawMessage(
						`[[[[0,1,2,3]],[[4,5,6,7]],[[0,1,5,4]],[[2,3,7,6]],[[0,3,7,4]],[[1,2,6,5]]]]`),
				}},
			},
		},
	}
}

func TestBuildCube(t *testing.T) {
	m := Build(cubeDocument())
	assert.Equal(t, 8, m.PointCount())
	require.Equal(t, 6, m.PolygonCount())
	for i := 0; i < m.PolygonCount(); i++ {
		assert.Equal(t, "Building", m.ObjectType(i))
		assert.Equal(t, "building1", m.ObjectID(i))
	}
	assert.Equal(t, []int{0, 1, 2, 3}, m.Polygon(0))
	assert.Equal(t, BBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}, m.BBox())
}

func TestBuildEmptyVertices(t *testing.T) {
	doc := cubeDocument()
	doc.Vertices = nil
	m := Build(doc)
	assert.Zero(t, m.PointCount())
	assert.Zero(t, m.PolygonCount())
}

func TestBuildNilDocument(t *testing.T) {
	m := Build(nil)
	assert.Zero(t, m.PointCount())
	assert.Zero(t, m.PolygonCount())
}

func TestBuildMultiSurface(t *testing.T) {
	doc := &cityjson.Document{
		Type:     "CityJSON",
		Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		CityObjects: map[string]cityjson.CityObject{
			"s1": {
				Type: "Building",
				Geometry: []cityjson.Geometry{{
					Type:       cityjson.MultiSurface,
					Boundaries: json.RawMessage(`[[[0,1,2,3]]]`),
				}},
			},
		},
	}
	m := Build(doc)
	assert.Equal(t, 4, m.PointCount())
	require.Equal(t, 1, m.PolygonCount())
	assert.Equal(t, "Building", m.ObjectType(0))
	assert.Equal(t, "s1", m.ObjectID(0))
}

func TestBuildDropsDegenerateFaces(t *testing.T) {
	doc := &cityjson.Document{
		Type:     "CityJSON",
		Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}},
		CityObjects: map[string]cityjson.CityObject{
			"s1": {
				Type: "Building",
				Geometry: []cityjson.Geometry{{
					Type:       cityjson.MultiSurface,
					Boundaries: json.RawMessage(`[[[0,1]],[[0,1,2]]]`),
				}},
			},
		},
	}
	m := Build(doc)
	require.Equal(t, 1, m.PolygonCount())
	assert.Equal(t, []int{0, 1, 2}, m.Polygon(0))
}

func TestBuildDropsOutOfRangeIndices(t *testing.T) {
	doc := &cityjson.Document{
		Type:     "CityJSON",
		Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}},
		CityObjects: map[string]cityjson.CityObject{
			"s1": {
				Type: "Building",
				Geometry: []cityjson.Geometry{{
					Type:       cityjson.MultiSurface,
					Boundaries: json.RawMessage(`[[[0,1,9]],[[0,1,2]]]`),
				}},
			},
		},
	}
	m := Build(doc)
	require.Equal(t, 1, m.PolygonCount())
	assert.Equal(t, []int{0, 1, 2}, m.Polygon(0))
}

func TestBuildSkipsUnsupportedGeometry(t *testing.T) {
	doc := &cityjson.Document{
		Type:     "CityJSON",
		Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}},
		CityObjects: map[string]cityjson.CityObject{
			"s1": {
				Type: "Building",
				Geometry: []cityjson.Geometry{{
					Type:       "MultiPoint",
					Boundaries: json.RawMessage(`[0,1,2]`),
				}},
			},
		},
	}
	m := Build(doc)
	assert.Equal(t, 3, m.PointCount())
	assert.Zero(t, m.PolygonCount())
}

func TestBuildDefaultsMissingObjectType(t *testing.T) {
	doc := &cityjson.Document{
		Type:     "CityJSON",
		Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}},
		CityObjects: map[string]cityjson.CityObject{
			"s1": {
				Geometry: []cityjson.Geometry{{
					Type:       cityjson.CompositeSurface,
					Boundaries: json.RawMessage(`[[0,1,2]]`),
				}},
			},
		},
	}
	m := Build(doc)
	require.Equal(t, 1, m.PolygonCount())
	assert.Equal(t, "Unknown", m.ObjectType(0))
}

func TestBuildDeterministicObjectOrder(t *testing.T) {
	doc := &cityjson.Document{
		Type:     "CityJSON",
		Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}},
		CityObjects: map[string]cityjson.CityObject{
			"b": {Type: "Building", Geometry: []cityjson.Geometry{{
				Type: cityjson.MultiSurface, Boundaries: json.RawMessage(`[[[0,1,2]]]`),
			}}},
			"a": {Type: "Bridge", Geometry: []cityjson.Geometry{{
				Type: cityjson.MultiSurface, Boundaries: json.RawMessage(`[[[2,1,0]]]`),
			}}},
		},
	}
	m := Build(doc)
	require.Equal(t, 2, m.PolygonCount())
	assert.Equal(t, "a", m.ObjectID(0))
	assert.Equal(t, "b", m.ObjectID(1))
}
