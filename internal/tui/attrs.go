package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshAttrsFromCurrent rebuilds the table from the shown mesh's
// per-polygon attribute columns.
func (m *Model) refreshAttrsFromCurrent() {
	if m.shown == nil || m.shown.PolygonCount() == 0 {
		m.showAttrs = false
		m.status = "no attributes for current mesh"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 5},
		{Title: "object id", Width: 20},
		{Title: "object type", Width: 16},
		{Title: "vertices", Width: 8},
	}
	rows := make([]table.Row, 0, m.shown.PolygonCount())
	for i := 0; i < m.shown.PolygonCount(); i++ {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			m.shown.ObjectID(i),
			m.shown.ObjectType(i),
			fmt.Sprintf("%d", len(m.shown.Polygon(i))),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
