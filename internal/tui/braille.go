package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"segplot/internal/plot"
)

// layerNone marks a cell nothing has been drawn into.
const layerNone plot.Layer = -1

// layerGrid sits below every mark.
const layerGrid plot.Layer = 0

// layerHover is the hover ring, above every mark.
const layerHover = plot.LayerIntersection + 1

// cell is one terminal cell: a braille micro-pixel mask, or a marker glyph,
// plus the color of the topmost layer drawn into it.
type cell struct {
	mask  uint8
	glyph rune
	fg    string
	bg    string
	layer plot.Layer
}

type brailleBuf struct {
	w, h int // in cells
	m    [][]cell
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]cell, h)
	for i := range m {
		m[i] = make([]cell, w)
		for j := range m[i] {
			m[i][j].layer = layerNone
		}
	}
	return &brailleBuf{w: w, h: h, m: m}
}

func (b *brailleBuf) at(cx, cy int) *cell {
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w {
		return nil
	}
	return &b.m[cy][cx]
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell). A pixel never
// replaces a marker glyph from a higher layer.
func (b *brailleBuf) setPixel(mx, my int, layer plot.Layer, fg string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	c := b.at(cx, cy)
	if c == nil {
		return
	}
	if c.glyph != 0 && c.layer > layer {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	if layer >= c.layer {
		c.glyph = 0
		c.fg, c.bg = fg, ""
		c.layer = layer
	}
	c.mask |= bit
}

// setGlyph places a marker glyph in the cell holding micro coords (mx, my).
// Lower layers already in the cell are covered; higher ones win.
func (b *brailleBuf) setGlyph(mx, my int, g rune, layer plot.Layer, fg, bg string) {
	if mx < 0 || my < 0 {
		return
	}
	c := b.at(mx/2, my/4)
	if c == nil || layer < c.layer {
		return
	}
	c.glyph, c.fg, c.bg, c.layer = g, fg, bg, layer
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, layer plot.Layer, fg string) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, layer, fg)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (c cell) rune() rune {
	switch {
	case c.glyph != 0:
		return c.glyph
	case c.mask != 0:
		return rune(0x2800 + int(c.mask))
	}
	return ' '
}

// runes returns the bare characters, without colors.
func (b *brailleBuf) runes() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			row[x] = b.m[y][x].rune()
		}
		out[y] = string(row)
	}
	return out
}

// toLines renders each row, coloring runs of cells that share a style.
func (b *brailleBuf) toLines() []string {
	styles := map[[2]string]lipgloss.Style{}
	styleFor := func(fg, bg string) lipgloss.Style {
		k := [2]string{fg, bg}
		if s, ok := styles[k]; ok {
			return s
		}
		s := lipgloss.NewStyle()
		if fg != "" {
			s = s.Foreground(lipgloss.Color(fg))
		}
		if bg != "" {
			s = s.Background(lipgloss.Color(bg))
		}
		styles[k] = s
		return s
	}

	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		var run []rune
		var runFg, runBg string
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runFg == "" && runBg == "" {
				sb.WriteString(string(run))
			} else {
				sb.WriteString(styleFor(runFg, runBg).Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			c := b.m[y][x]
			fg, bg := c.fg, c.bg
			if c.layer == layerNone {
				fg, bg = "", ""
			}
			if fg != runFg || bg != runBg {
				flush()
				runFg, runBg = fg, bg
			}
			run = append(run, c.rune())
		}
		flush()
		out[y] = sb.String()
	}
	return out
}
