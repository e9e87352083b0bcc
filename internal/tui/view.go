package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight = 1
	footerHeight = 2
)

// plotArea is where the plot canvas sits on screen, inside its frame.
type plotArea struct {
	x, y int // origin of the canvas (first cell inside the frame)
	w, h int
}

// popupBox renders the inspect popup, or "" when there is none.
func (m Model) popupBox() string {
	if m.inspectPopup == "" || m.showTable {
		return ""
	}
	maxPopupW := min(48, max(10, m.width)/2)
	if maxPopupW < 20 {
		maxPopupW = 20
	}
	return boxStyle.MaxWidth(maxPopupW).Render(m.inspectPopup)
}

// layout computes the canvas placement for the current window size. View
// and mouse handling share it so hover coordinates line up with the drawing.
func (m Model) layout() plotArea {
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)
	popupH := 0
	if p := m.popupBox(); p != "" {
		popupH = lipgloss.Height(p)
	}
	return plotArea{
		x: 1,
		y: headerHeight + popupH + 1,
		w: max(8, contentWidth-2),
		h: max(4, contentHeight-popupH-2),
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentWidth := max(10, m.width)
	area := m.layout()

	// Header
	header := titleStyle.Render(" segplot ─ " + m.title + " ")
	header = lipgloss.NewStyle().Width(contentWidth).MaxWidth(contentWidth).Render(header)

	var body string
	if m.showTable {
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(contentWidth, max(32, colW))
		t := m.tbl
		t.SetWidth(maxW - 4)
		t.SetHeight(min(area.h, 20))
		tableBox := boxStyle.Width(maxW).Render(t.View())
		body = lipgloss.Place(contentWidth, area.h+2, lipgloss.Center, lipgloss.Center, tableBox)
	} else {
		canvas := lipgloss.NewStyle().Width(area.w).Height(area.h).Render(m.renderPlot(area.w, area.h))
		body = frameStyle(m.style.FrameColor).Render(canvas)
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hoverHasXY {
		coords = dimStyle.Render(fmt.Sprintf("  x=%s y=%s  ", fmtCoord(m.hoverX), fmtCoord(m.hoverY)))
	}
	left := lipgloss.JoinVertical(lipgloss.Left, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Top, coords)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Top, left, right))

	parts := []string{header}
	if p := m.popupBox(); p != "" {
		parts = append(parts, p)
	}
	parts = append(parts, body, footer)
	ui := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"0 reset",
		"1/2/3 layers",
		"i inspect",
		"a table",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
