// Package plot turns a dataset into an ordered list of draw instructions.
//
// The plan is independent of any display: the terminal viewer consumes it,
// and tests inspect it directly. Two strategies exist, picked from the
// segment count alone:
//
//   - Dense (more than DenseThreshold segments): each segment is a plain
//     line in Style.DenseColor.
//   - Sparse: each segment is a line plus two endpoint markers, all in the
//     next color of Style.Palette.
//
// Intersection points are always markers on the top layer, filled with
// Style.PointFill and outlined with Style.PointEdge.
package plot

import (
	"sort"

	"segplot/internal/geom"
)

// DenseThreshold is the largest segment count still drawn with endpoint
// markers.
const DenseThreshold = 50

// boundsPadding is the margin added around the data extent.
const boundsPadding = 0.05

// Strategy selects how segments are drawn.
type Strategy int

const (
	// Sparse draws lines plus endpoint markers in rotating colors.
	Sparse Strategy = iota
	// Dense draws single-color lines only.
	Dense
)

func (s Strategy) String() string {
	switch s {
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	}
	return "unknown"
}

// Layer is the z-order of a mark. Higher layers are drawn later and are
// never covered by lower ones.
type Layer int

const (
	LayerSegment      Layer = 1
	LayerEndpoint     Layer = 2
	LayerIntersection Layer = 3
)

// Kind distinguishes lines from point markers.
type Kind int

const (
	KindLine Kind = iota
	KindMarker
)

// Role records what a mark depicts.
type Role int

const (
	RoleSegment Role = iota
	RoleEndpoint
	RoleIntersection
)

// Mark is a single draw instruction. Lines use From and To; markers use From.
type Mark struct {
	Kind  Kind
	Role  Role
	Layer Layer
	From  geom.Point
	To    geom.Point
	Fill  string // hex color
	Edge  string // hex color, empty for none
	Index int    // 0-based segment or point index in the dataset
}

// Figure is the complete draw plan for one dataset.
type Figure struct {
	Strategy Strategy
	Marks    []Mark
	Bounds   geom.BBox
	// HasBounds is false when the dataset is empty.
	HasBounds bool

	Segments      int
	Intersections int
}

// ChooseStrategy picks the strategy for n segments.
func ChooseStrategy(n int) Strategy {
	if n > DenseThreshold {
		return Dense
	}
	return Sparse
}

// Build produces the draw plan for ds. Marks are emitted segment by segment
// in dataset order, then intersections in dataset order.
func Build(ds geom.Dataset, st Style) Figure {
	fig := Figure{
		Strategy:      ChooseStrategy(len(ds.Segments)),
		Segments:      len(ds.Segments),
		Intersections: len(ds.Points),
	}
	if bb, ok := ds.BBox(); ok {
		fig.Bounds = bb.Pad(boundsPadding)
		fig.HasBounds = true
	}

	n := len(ds.Segments) + len(ds.Points)
	if fig.Strategy == Sparse {
		n += 2 * len(ds.Segments)
	}
	fig.Marks = make([]Mark, 0, n)

	for i, s := range ds.Segments {
		if fig.Strategy == Dense {
			fig.Marks = append(fig.Marks, Mark{
				Kind: KindLine, Role: RoleSegment, Layer: LayerSegment,
				From: s.A, To: s.B, Fill: st.DenseColor, Index: i,
			})
			continue
		}
		c := st.PaletteColor(i)
		fig.Marks = append(fig.Marks,
			Mark{Kind: KindMarker, Role: RoleEndpoint, Layer: LayerEndpoint, From: s.A, Fill: c, Index: i},
			Mark{Kind: KindMarker, Role: RoleEndpoint, Layer: LayerEndpoint, From: s.B, Fill: c, Index: i},
			Mark{Kind: KindLine, Role: RoleSegment, Layer: LayerSegment, From: s.A, To: s.B, Fill: c, Index: i},
		)
	}
	for i, p := range ds.Points {
		fig.Marks = append(fig.Marks, Mark{
			Kind: KindMarker, Role: RoleIntersection, Layer: LayerIntersection,
			From: p, Fill: st.PointFill, Edge: st.PointEdge, Index: i,
		})
	}
	return fig
}

// DrawOrder returns the marks sorted by ascending layer. Marks on the same
// layer keep their plan order.
func (f Figure) DrawOrder() []Mark {
	out := make([]Mark, len(f.Marks))
	copy(out, f.Marks)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Layer < out[j].Layer })
	return out
}

// Count returns how many marks have the given role.
func (f Figure) Count(r Role) int {
	n := 0
	for _, m := range f.Marks {
		if m.Role == r {
			n++
		}
	}
	return n
}
