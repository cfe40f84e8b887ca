package mesh

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citymesh/internal/cityjson"
)

func mixedDocument() *cityjson.Document {
	return &cityjson.Document{
		Type:     "CityJSON",
		Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		CityObjects: map[string]cityjson.CityObject{
			"br1": {Type: "Bridge", Geometry: []cityjson.Geometry{{
				Type: cityjson.MultiSurface, Boundaries: json.RawMessage(`[[[0,1,2]]]`),
			}}},
			"bu1": {Type: "Building", Geometry: []cityjson.Geometry{{
				Type: cityjson.MultiSurface, Boundaries: json.RawMessage(`[[[0,1,2,3]],[[3,2,1,0]]]`),
			}}},
			"bu2": {Type: "Building", Geometry: []cityjson.Geometry{{
				Type: cityjson.MultiSurface, Boundaries: json.RawMessage(`[[[1,2,3]]]`),
			}}},
		},
	}
}

func TestFilterByType(t *testing.T) {
	m := Build(mixedDocument())
	require.Equal(t, 4, m.PolygonCount())

	buildings := m.FilterByType("Building")
	require.NotNil(t, buildings)
	require.Equal(t, 3, buildings.PolygonCount())
	// order preserved, ids follow the original polygon order
	assert.Equal(t, "bu1", buildings.ObjectID(0))
	assert.Equal(t, "bu1", buildings.ObjectID(1))
	assert.Equal(t, "bu2", buildings.ObjectID(2))
	for i := 0; i < buildings.PolygonCount(); i++ {
		assert.Equal(t, "Building", buildings.ObjectType(i))
	}
	// point array retained, not compacted
	assert.Equal(t, m.PointCount(), buildings.PointCount())
}

func TestFilterByTypeNoMatch(t *testing.T) {
	m := Build(mixedDocument())
	assert.Nil(t, m.FilterByType("Tunnel"))
}

func TestFilterByTypeCaseSensitive(t *testing.T) {
	m := Build(mixedDocument())
	assert.Nil(t, m.FilterByType("building"))
}

func TestFilterByTypeNoAttributes(t *testing.T) {
	m := Build(&cityjson.Document{Type: "CityJSON"})
	assert.Nil(t, m.FilterByType("Building"))
}

func TestColorBySurface(t *testing.T) {
	m := Build(mixedDocument())
	c := m.ColorBySurface()
	require.NotNil(t, c)
	require.Equal(t, m.PolygonCount(), c.PolygonCount())
	assert.Equal(t, m.PointCount(), c.PointCount())
	for i := 0; i < m.PolygonCount(); i++ {
		assert.Equal(t, m.Polygon(i), c.Polygon(i))
		assert.Equal(t, m.ObjectType(i), c.ObjectType(i))
		assert.Equal(t, m.ObjectID(i), c.ObjectID(i))
	}
	// the copy is structurally independent of the source
	c.Polygon(0)[0] = 99
	assert.NotEqual(t, m.Polygon(0)[0], 99)
}

func TestColorBySurfaceEmpty(t *testing.T) {
	m := Build(&cityjson.Document{Type: "CityJSON"})
	assert.Nil(t, m.ColorBySurface())
}

func TestTypes(t *testing.T) {
	m := Build(mixedDocument())
	assert.Equal(t, []string{"Bridge", "Building"}, m.Types())

	empty := Build(nil)
	assert.Empty(t, empty.Types())
}

func TestPointsWithoutPolygons(t *testing.T) {
	// vertices but no extractable faces: points survive, polygons stay empty
	doc := &cityjson.Document{
		Type:     "CityJSON",
		Vertices: [][3]float64{{0, 0, 0}, {5, 5, 5}},
	}
	m := Build(doc)
	assert.Equal(t, 2, m.PointCount())
	assert.Zero(t, m.PolygonCount())
	assert.Equal(t, BBox{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5}, m.BBox())
}
