package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.filterMode {
			switch msg.String() {
			case "esc":
				m.filterMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				t := strings.TrimSpace(m.ta.Value())
				m.filterMode = false
				m.ta.Blur()
				m.applyFilter(t)
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "f":
			m.filterMode = true
			m.ta.SetValue("")
			m.status = "filter by object type"
			m.ta.Focus()
		case "l":
			m.cycleFilter()
		case "c":
			if m.shown == nil {
				m.status = "no document loaded"
				break
			}
			if colored := m.shown.ColorBySurface(); colored != nil {
				m.shown = colored
				m.status = "surface colouring: pass-through copy"
			} else {
				m.status = "mesh has no polygons to colour"
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrsFromCurrent()
			}
		case "i":
			if m.full == nil {
				m.inspectPopup = "no document loaded"
				m.status = m.inspectPopup
				break
			}
			name := filepath.Base(m.selPath)
			bb := m.shown.BBox()
			meta := []string{
				fmt.Sprintf("name: %s", name),
				fmt.Sprintf("path: %s", m.selPath),
				fmt.Sprintf("version: %s", orDash(m.version)),
				fmt.Sprintf("objects: %d", m.objects),
				fmt.Sprintf("counts: pts=%d poly=%d", m.shown.PointCount(), m.shown.PolygonCount()),
				fmt.Sprintf("bbox: [%.3f, %.3f, %.3f, %.3f]", bb.MinX, bb.MinY, bb.MaxX, bb.MaxY),
				fmt.Sprintf("types: %s", strings.Join(m.full.Types(), ", ")),
				fmt.Sprintf("filter: %s", orDash(m.filter)),
			}
			if x, y, ok := m.nearestVertex(); ok {
				meta = append(meta, fmt.Sprintf("nearest: x=%.3f y=%.3f", x, y))
			}
			m.inspectPopup = strings.Join(meta, "\n")
			m.status = "inspect popup"
		case "esc":
			m.inspectPopup = ""
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		// track hover over map area
		// compute map origin and size (must match View layout)
		sidebarWidth := 0
		if m.showSidebar {
			sidebarWidth = 28
		}
		headerHeight := 1
		footerHeight := 2
		contentHeight := m.height - headerHeight - footerHeight
		if contentHeight < 4 {
			contentHeight = 4
		}
		contentWidth := max(10, m.width)

		// Update list size with accurate content height when sidebar visible
		if m.showSidebar {
			m.l.SetSize(28-2, contentHeight-2)
		}

		mapWidth := contentWidth - sidebarWidth - 1
		if mapWidth < 10 {
			mapWidth = 10
		}
		mapHeight := contentHeight
		mapOriginX := sidebarWidth
		if m.showSidebar {
			mapOriginX++
		}
		mapOriginY := headerHeight
		// mouse cell within map?
		cx, cy := msg.X, msg.Y
		if cx >= mapOriginX && cx < mapOriginX+mapWidth && cy >= mapOriginY && cy < mapOriginY+mapHeight {
			m.hovering = true
			m.hoverCellX = cx - mapOriginX
			m.hoverCellY = cy - mapOriginY
			// compute model coordinates for the footer readout
			if x, y, ok := m.cellToXY(m.hoverCellX, m.hoverCellY, mapWidth, mapHeight); ok {
				m.hoverHasGeo = true
				m.hoverX = x
				m.hoverY = y
			} else {
				m.hoverHasGeo = false
			}
			// snap to the nearest mesh vertex in micro coords
			hxMic := m.hoverCellX * 2
			hyMic := m.hoverCellY * 4
			best := 1<<31 - 1
			bx, by := hxMic, hyMic
			if m.shown != nil {
				for _, p := range m.shown.Points() {
					mx, my, ok := m.screenXYMicro(p[0], p[1], mapWidth, mapHeight)
					if !ok {
						continue
					}
					dx := mx - hxMic
					dy := my - hyMic
					d := dx*dx + dy*dy
					if d < best {
						best = d
						bx, by = mx, my
					}
				}
			}
			m.hoverMicX, m.hoverMicY = bx, by
		} else {
			m.hovering = false
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
