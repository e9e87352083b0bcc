package plot

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	apperrors "segplot/internal/errors"
)

// Style is the rendering configuration. It is built once at startup and
// passed to Build and the viewer; nothing mutates it afterwards.
type Style struct {
	Palette    []string `toml:"palette"`
	DenseColor string   `toml:"dense_color"`
	PointFill  string   `toml:"point_fill"`
	PointEdge  string   `toml:"point_edge"`
	Grid       bool     `toml:"grid"`
	GridColor  string   `toml:"grid_color"`
	FrameColor string   `toml:"frame_color"`
}

// DefaultStyle is the stock look: a six-step magma
// palette for sparse inputs, blue lines for dense ones, orange
// intersections outlined in black on a dark grid.
func DefaultStyle() Style {
	return Style{
		Palette:    []string{"#221150", "#5F187F", "#982D80", "#D3436E", "#F8765C", "#FEBA80"},
		DenseColor: "#0000FF",
		PointFill:  "#FFA500",
		PointEdge:  "#000000",
		Grid:       true,
		GridColor:  "#3A3F4B",
		FrameColor: "#000000",
	}
}

// PaletteColor returns the palette entry for segment i, wrapping around.
func (s Style) PaletteColor(i int) string {
	if len(s.Palette) == 0 {
		return s.DenseColor
	}
	return s.Palette[i%len(s.Palette)]
}

func validHex(s string) bool {
	_, err := colorful.Hex(s)
	return err == nil
}

// Validate checks that every color is a hex color and the palette is not
// empty.
func (s Style) Validate() error {
	if len(s.Palette) == 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "style.palette must not be empty")
	}
	for i, c := range s.Palette {
		if !validHex(c) {
			return apperrors.New(apperrors.ErrCodeInvalidConfig, "style.palette[%d]: invalid color %q", i, c)
		}
	}
	named := []struct {
		key, val string
	}{
		{"dense_color", s.DenseColor},
		{"point_fill", s.PointFill},
		{"point_edge", s.PointEdge},
		{"grid_color", s.GridColor},
		{"frame_color", s.FrameColor},
	}
	for _, n := range named {
		if !validHex(n.val) {
			return apperrors.New(apperrors.ErrCodeInvalidConfig, "style.%s: invalid color %q", n.key, n.val)
		}
	}
	return nil
}

func (s Style) String() string {
	return fmt.Sprintf("palette=%d dense=%s point=%s/%s grid=%v", len(s.Palette), s.DenseColor, s.PointFill, s.PointEdge, s.Grid)
}
