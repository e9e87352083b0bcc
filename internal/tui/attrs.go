package tui

import (
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"segplot/internal/plot"
)

// tableColumns is the listing layout: segments fill all four coordinates,
// intersections only the first pair.
var tableColumns = []table.Column{
	{Title: "#", Width: 5},
	{Title: "kind", Width: 13},
	{Title: "x1", Width: 11},
	{Title: "y1", Width: 11},
	{Title: "x2", Width: 11},
	{Title: "y2", Width: 11},
}

// refreshTable rebuilds the listing rows from the figure's marks.
func (m *Model) refreshTable() {
	rows := buildRows(m.marks)
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tableColumns)
	m.tbl.SetRows(rows)
}

// buildRows lists segments in dataset order, then intersections.
func buildRows(marks []plot.Mark) []table.Row {
	var segs, pts []table.Row
	for _, mk := range marks {
		switch mk.Role {
		case plot.RoleSegment:
			segs = append(segs, table.Row{
				strconv.Itoa(mk.Index + 1), "segment",
				fmtCoord(mk.From.X), fmtCoord(mk.From.Y), fmtCoord(mk.To.X), fmtCoord(mk.To.Y),
			})
		case plot.RoleIntersection:
			pts = append(pts, table.Row{
				strconv.Itoa(mk.Index + 1), "intersection",
				fmtCoord(mk.From.X), fmtCoord(mk.From.Y), "", "",
			})
		}
	}
	return append(segs, pts...)
}
