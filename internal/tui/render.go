package tui

import (
	"math"
	"strings"

	"segplot/internal/plot"
)

const (
	endpointGlyph     = '•'
	intersectionGlyph = '●'
	gridGlyph         = '·'
	hoverGlyph        = '◯'

	gridStepX = 8
	gridStepY = 4
)

// cellToXY converts a plot cell coordinate back to data coordinates using bbox, zoom, and pan.
func (m Model) cellToXY(cx, cy, w, h int) (float64, float64, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	x := m.bbox.MinX + nx*(m.bbox.MaxX-m.bbox.MinX)
	y := m.bbox.MinY + ny*(m.bbox.MaxY-m.bbox.MinY)
	return x, y, true
}

// rasterise draws the visible marks in layer order into a w x h cell buffer.
func (m Model) rasterise(w, h int) *brailleBuf {
	br := newBrailleBuf(w, h)

	if m.style.Grid {
		for cy := 0; cy < h; cy += gridStepY {
			for cx := 0; cx < w; cx += gridStepX {
				br.setGlyph(cx*2, cy*4, gridGlyph, layerGrid, m.style.GridColor, "")
			}
		}
	}

	for _, mk := range m.marks {
		if !m.visible(mk) {
			continue
		}
		mx, my, ok := m.screenXYMicro(mk.From.X, mk.From.Y, w, h)
		if !ok {
			continue
		}
		switch mk.Kind {
		case plot.KindLine:
			tx, ty, ok := m.screenXYMicro(mk.To.X, mk.To.Y, w, h)
			if !ok {
				continue
			}
			br.drawLineMicro(mx, my, tx, ty, mk.Layer, mk.Fill)
		case plot.KindMarker:
			g := endpointGlyph
			if mk.Role == plot.RoleIntersection {
				g = intersectionGlyph
			}
			br.setGlyph(mx, my, g, mk.Layer, mk.Fill, mk.Edge)
		}
	}
	return br
}

func (m Model) renderPlot(w, h int) string {
	br := m.rasterise(w, h)
	if m.hovering {
		m.drawHoverRing(br)
	}
	return strings.Join(br.toLines(), "\n")
}

// drawHoverRing rings the nearest vertex above every mark except an
// intersection, which stays visible.
func (m Model) drawHoverRing(br *brailleBuf) {
	if m.hoverMicX < 0 || m.hoverMicY < 0 {
		return
	}
	c := br.at(m.hoverMicX/2, m.hoverMicY/4)
	if c == nil || c.layer >= plot.LayerIntersection {
		return
	}
	br.setGlyph(m.hoverMicX, m.hoverMicY, hoverGlyph, layerHover, hoverColor, "")
}

// screenXYMicro maps data coordinates into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	nx := (x - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (y - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	fx := zx * float64(wMic-1)
	fy := (1.0 - zy) * float64(hMic-1)
	if math.IsNaN(fx) || math.IsNaN(fy) || math.Abs(fx) > 1e9 || math.Abs(fy) > 1e9 {
		return 0, 0, false
	}
	sx := int(math.Round(fx)) + m.offsetX*2
	sy := int(math.Round(fy)) + m.offsetY*4
	return sx, sy, true
}

// screenXY maps data coordinates to current screen integer coordinates considering zoom and pan.
func (m Model) screenXY(x, y float64, w, h int) (int, int, bool) {
	mx, my, ok := m.screenXYMicro(x, y, w, h)
	if !ok {
		return 0, 0, false
	}
	return floorDiv(mx, 2), floorDiv(my, 4), true
}

// inspectNearest finds the intersection closest to the viewport center.
func (m Model) inspectNearest() (idx int, ok bool) {
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	cx, cy := w/2, h/2
	bestD := math.MaxInt
	best := -1
	for _, mk := range m.marks {
		if mk.Role != plot.RoleIntersection {
			continue
		}
		sx, sy, ok2 := m.screenXY(mk.From.X, mk.From.Y, w, h)
		if !ok2 {
			continue
		}
		dx := sx - cx
		dy := sy - cy
		d := dx*dx + dy*dy
		if d < bestD {
			bestD = d
			best = mk.Index
		}
	}
	return best, best >= 0
}

// nearestVertexMicro returns the micro coords of the drawn vertex closest
// to the given micro position.
func (m Model) nearestVertexMicro(hx, hy, w, h int) (int, int) {
	best := math.MaxInt
	bx, by := hx, hy
	consider := func(x, y float64) {
		mx, my, ok := m.screenXYMicro(x, y, w, h)
		if !ok {
			return
		}
		dx := mx - hx
		dy := my - hy
		if d := dx*dx + dy*dy; d < best {
			best = d
			bx, by = mx, my
		}
	}
	for _, mk := range m.marks {
		if !m.visible(mk) {
			continue
		}
		consider(mk.From.X, mk.From.Y)
		if mk.Kind == plot.KindLine {
			consider(mk.To.X, mk.To.Y)
		}
	}
	return bx, by
}
