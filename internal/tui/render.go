package tui

import "strings"

// cellToXY converts a map cell coordinate back to model XY using the mesh
// bbox, zoom, and pan.
func (m Model) cellToXY(cx, cy, w, h int) (float64, float64, bool) {
	if m.shown == nil {
		return 0, 0, false
	}
	bb := m.shown.BBox()
	if !(bb.MaxX > bb.MinX && bb.MaxY > bb.MinY) {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	x := bb.MinX + nx*(bb.MaxX-bb.MinX)
	y := bb.MinY + ny*(bb.MaxY-bb.MinY)
	return x, y, true
}

// renderCanvas draws the shown mesh's polygon footprints (XY projection of
// each outer ring) onto a braille canvas, falling back to bare points when
// the mesh has no polygons.
func (m Model) renderCanvas(w, h int) string {
	// Plain background
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		lines[y] = strings.Repeat(" ", w)
	}
	if m.shown == nil {
		return strings.Join(lines, "\n")
	}
	// High-resolution braille buffer for crisp fills and edges
	br := newBrailleBuf(w, h)
	pts := m.shown.Points()

	for i := 0; i < m.shown.PolygonCount(); i++ {
		ring := m.shown.Polygon(i)
		mic := make([][2]int, 0, len(ring))
		for _, vi := range ring {
			p := pts[vi]
			mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
			if !ok {
				continue
			}
			mic = append(mic, [2]int{mx, my})
		}
		if len(mic) < 3 {
			continue
		}
		br.fillRingMicro(mic)
		for j := 0; j < len(mic); j++ {
			a := mic[j]
			b := mic[(j+1)%len(mic)]
			br.drawLineMicro(a[0], a[1], b[0], b[1])
		}
	}

	// Bare points only when nothing fills the canvas
	if m.shown.PolygonCount() == 0 {
		for _, p := range pts {
			mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
			if !ok {
				continue
			}
			br.setPixel(mx, my)
		}
	}

	// Composite braille overlay onto base lines
	braLines := br.toLines()
	for y := 0; y < h && y < len(braLines); y++ {
		if len(braLines[y]) == 0 {
			continue
		}
		base := []rune(lines[y])
		over := []rune(braLines[y])
		for x := 0; x < len(base) && x < len(over); x++ {
			if over[x] != ' ' {
				base[x] = over[x]
			}
		}
		lines[y] = string(base)
	}

	// Hover highlight at the snapped vertex cell
	if m.hovering {
		cx := m.hoverMicX / 2
		cy := m.hoverMicY / 4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				circle := hoverStyle.Render("◯")
				lines[cy] = string(r[:cx]) + circle + string(r[cx+1:])
			}
		}
	}
	return strings.Join(lines, "\n")
}

// screenXYMicro maps model XY into a 2x4 microgrid per cell for braille
// rendering.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	if m.shown == nil {
		return 0, 0, false
	}
	bb := m.shown.BBox()
	if !(bb.MaxX > bb.MinX && bb.MaxY > bb.MinY) {
		return 0, 0, false
	}
	nx := (x - bb.MinX) / (bb.MaxX - bb.MinX)
	ny := (y - bb.MinY) / (bb.MaxY - bb.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// screenXY maps model XY to screen cell coordinates considering zoom and pan.
func (m Model) screenXY(x, y float64, w, h int) (int, int, bool) {
	mx, my, ok := m.screenXYMicro(x, y, w, h)
	if !ok {
		return 0, 0, false
	}
	return mx / 2, my / 4, true
}

// nearestVertex finds the mesh point closest to the viewport center.
func (m Model) nearestVertex() (x, y float64, ok bool) {
	if m.shown == nil || m.shown.PointCount() == 0 {
		return 0, 0, false
	}
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	cx, cy := w/2, h/2
	bestD := 1<<31 - 1
	var best [3]float64
	for _, p := range m.shown.Points() {
		sx, sy, ok2 := m.screenXY(p[0], p[1], w, h)
		if !ok2 {
			continue
		}
		dx := sx - cx
		dy := sy - cy
		d := dx*dx + dy*dy
		if d < bestD {
			bestD = d
			best = p
		}
	}
	if bestD == 1<<31-1 {
		return 0, 0, false
	}
	return best[0], best[1], true
}
