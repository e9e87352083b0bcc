package tui

import (
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"segplot/internal/geom"
	"segplot/internal/plot"
)

type Model struct {
	width  int
	height int

	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string
	title  string

	// Data
	fig   plot.Figure
	marks []plot.Mark // draw order, lowest layer first
	style plot.Style
	bbox  geom.BBox

	// last rendered plot size (for inspect and hover)
	mapW int
	mapH int

	// layer visibility
	showIntersections bool
	showSegments      bool
	showEndpoints     bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverMicX  int
	hoverMicY  int
	hoverHasXY bool
	hoverX     float64
	hoverY     float64

	// segment/point listing
	showTable bool
	tbl       table.Model
}

// New returns a viewer model for fig.
func New(fig plot.Figure, st plot.Style, title string) Model {
	m := Model{
		helpVisible:       true,
		zoom:              1.0,
		title:             title,
		fig:               fig,
		marks:             fig.DrawOrder(),
		style:             st,
		bbox:              fig.Bounds,
		showIntersections: true,
		showSegments:      true,
		showEndpoints:     true,
	}
	m.status = statusLine(fig)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// visible reports whether the layer toggles allow drawing mk.
func (m Model) visible(mk plot.Mark) bool {
	switch mk.Role {
	case plot.RoleIntersection:
		return m.showIntersections
	case plot.RoleEndpoint:
		return m.showEndpoints
	default:
		return m.showSegments
	}
}
