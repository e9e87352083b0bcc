package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"segplot/internal/plot"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncArea()
	case tea.KeyMsg:
		if m.showTable {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "a", "esc":
				m.showTable = false
				m.status = "plot view"
				return m, nil
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.inspectPopup != "" {
				m.inspectPopup = ""
				m.syncArea()
				return m, nil
			}
			return m, tea.Quit
		case "1":
			m.showIntersections = !m.showIntersections
			m.status = fmt.Sprintf("intersections: %v", m.showIntersections)
		case "2":
			m.showSegments = !m.showSegments
			m.status = fmt.Sprintf("segments: %v", m.showSegments)
		case "3":
			m.showEndpoints = !m.showEndpoints
			m.status = fmt.Sprintf("endpoints: %v", m.showEndpoints)
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
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = statusLine(m.fig)
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showTable = true
			m.refreshTable()
			m.status = fmt.Sprintf("table: %d segments, %d intersections", m.fig.Segments, m.fig.Intersections)
		case "i":
			if idx, ok := m.inspectNearest(); ok {
				m.inspectPopup = m.describeIntersection(idx)
				m.status = "inspect popup"
			} else {
				m.inspectPopup = "no intersection to inspect"
				m.status = m.inspectPopup
			}
			m.syncArea()
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
		area := m.layout()
		cx, cy := msg.X, msg.Y
		if cx >= area.x && cx < area.x+area.w && cy >= area.y && cy < area.y+area.h {
			m.hovering = true
			m.hoverCellX = cx - area.x
			m.hoverCellY = cy - area.y
			if x, y, ok := m.cellToXY(m.hoverCellX, m.hoverCellY, area.w, area.h); ok {
				m.hoverHasXY = true
				m.hoverX = x
				m.hoverY = y
			} else {
				m.hoverHasXY = false
			}
			m.hoverMicX, m.hoverMicY = m.nearestVertexMicro(m.hoverCellX*2, m.hoverCellY*4, area.w, area.h)
		} else {
			m.hovering = false
			m.hoverHasXY = false
		}
	}
	return m, nil
}

// syncArea records the canvas size used by inspect.
func (m *Model) syncArea() {
	a := m.layout()
	m.mapW, m.mapH = a.w, a.h
}

func statusLine(fig plot.Figure) string {
	return fmt.Sprintf("segments=%d intersections=%d strategy=%s", fig.Segments, fig.Intersections, fig.Strategy)
}

// describeIntersection builds the popup text for intersection idx.
func (m Model) describeIntersection(idx int) string {
	var p plot.Mark
	for _, mk := range m.marks {
		if mk.Role == plot.RoleIntersection && mk.Index == idx {
			p = mk
			break
		}
	}
	meta := []string{
		fmt.Sprintf("intersection #%d", idx+1),
		fmt.Sprintf("x: %s", fmtCoord(p.From.X)),
		fmt.Sprintf("y: %s", fmtCoord(p.From.Y)),
		fmt.Sprintf("bounds: [%s, %s, %s, %s]", fmtCoord(m.bbox.MinX), fmtCoord(m.bbox.MinY), fmtCoord(m.bbox.MaxX), fmtCoord(m.bbox.MaxY)),
		fmt.Sprintf("counts: segments=%d intersections=%d", m.fig.Segments, m.fig.Intersections),
	}
	return strings.Join(meta, "\n")
}
