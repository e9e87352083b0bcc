package geom

import (
	gogeom "github.com/twpayne/go-geom"
)

// Assemble pairs the two parsed sequences. Points are not checked against
// the segments.
func Assemble(segments []Segment, points []Point) Dataset {
	return Dataset{Segments: segments, Points: points}
}

// BBox returns the extent of every segment endpoint and every point.
// ok is false for an empty dataset.
func (d Dataset) BBox() (bbox BBox, ok bool) {
	b := gogeom.NewBounds(gogeom.XY)
	for _, s := range d.Segments {
		b.Extend(gogeom.NewLineStringFlat(gogeom.XY, []float64{s.A.X, s.A.Y, s.B.X, s.B.Y}))
	}
	for _, p := range d.Points {
		b.Extend(gogeom.NewPointFlat(gogeom.XY, []float64{p.X, p.Y}))
	}
	if b.IsEmpty() {
		return BBox{}, false
	}
	return BBox{MinX: b.Min(0), MinY: b.Min(1), MaxX: b.Max(0), MaxY: b.Max(1)}, true
}

// Pad grows the box by frac of its extent on each side. A zero-width or
// zero-height axis is widened by one unit each way so projections stay
// defined.
func (b BBox) Pad(frac float64) BBox {
	dx := (b.MaxX - b.MinX) * frac
	dy := (b.MaxY - b.MinY) * frac
	if b.MaxX <= b.MinX {
		dx = 1
	}
	if b.MaxY <= b.MinY {
		dy = 1
	}
	return BBox{MinX: b.MinX - dx, MinY: b.MinY - dy, MaxX: b.MaxX + dx, MaxY: b.MaxY + dy}
}
