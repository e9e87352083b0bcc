package geom

// BBox is an axis-aligned bounding box in data coordinates.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Point is a 2D coordinate pair.
type Point struct {
	X float64
	Y float64
}

// Segment is a straight line between two endpoints, kept in file order.
type Segment struct {
	A Point
	B Point
}

// Intersection is one solver result line: the point plus the 1-based
// indices of the segments the solver reported for it (may be empty).
type Intersection struct {
	Point    Point
	Segments []int
}

// Dataset pairs the parsed segments with the reported intersection points.
// Built once by Assemble and read-only afterwards.
type Dataset struct {
	Segments []Segment
	Points   []Point
}
