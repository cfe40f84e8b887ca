package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"citymesh/internal/cityjson"
	"citymesh/internal/mesh"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		// CityJSON files conventionally end in .city.json, but plain .json
		// is common too; the loader rejects anything else on open
		if strings.ToLower(filepath.Ext(name)) != ".json" {
			continue
		}
		desc := ".json"
		if strings.HasSuffix(strings.ToLower(name), ".city.json") {
			desc = ".city.json"
		}
		items = append(items, fileItem{title: name, desc: desc, path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no JSON files in current directory"
	}
}

// loadPath parses a CityJSON file and builds its mesh.
func (m *Model) loadPath(p string) {
	doc, err := cityjson.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.version = doc.Version
	m.objects = len(doc.CityObjects)
	m.full = mesh.Build(doc)
	m.shown = m.full
	m.filter = ""
	// reset viewport for the new extent
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.status = "loaded: " + filepath.Base(p) +
		fmt.Sprintf("  counts: pts=%d poly=%d objs=%d", m.full.PointCount(), m.full.PolygonCount(), m.objects)
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}

// applyFilter swaps the shown mesh for a per-type view, or back to the
// full mesh when t is empty. A nil filter result leaves the view as is.
func (m *Model) applyFilter(t string) {
	if m.full == nil {
		m.status = "no document loaded"
		return
	}
	if t == "" {
		m.shown = m.full
		m.filter = ""
		m.status = fmt.Sprintf("showing all types  poly=%d", m.full.PolygonCount())
	} else {
		sub := m.full.FilterByType(t)
		if sub == nil {
			m.status = "no objects of type " + t
			return
		}
		m.shown = sub
		m.filter = t
		m.status = fmt.Sprintf("filter: %s  poly=%d", t, sub.PolygonCount())
	}
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}

// cycleFilter steps through the distinct object types of the full mesh,
// ending back at the unfiltered view.
func (m *Model) cycleFilter() {
	if m.full == nil {
		m.status = "no document loaded"
		return
	}
	types := m.full.Types()
	if len(types) == 0 {
		m.status = "mesh has no polygons"
		return
	}
	next := ""
	if m.filter == "" {
		next = types[0]
	} else {
		for i, t := range types {
			if t == m.filter && i+1 < len(types) {
				next = types[i+1]
				break
			}
		}
	}
	m.applyFilter(next)
}
