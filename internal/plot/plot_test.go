package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "segplot/internal/errors"
	"segplot/internal/geom"
)

func segments(n int) []geom.Segment {
	out := make([]geom.Segment, n)
	for i := range out {
		out[i] = geom.Segment{A: geom.Point{X: float64(i), Y: 0}, B: geom.Point{X: float64(i), Y: 1}}
	}
	return out
}

func TestChooseStrategy(t *testing.T) {
	tests := []struct {
		n    int
		want Strategy
	}{
		{0, Sparse},
		{2, Sparse},
		{50, Sparse},
		{51, Dense},
		{1000, Dense},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ChooseStrategy(tt.n), "n=%d", tt.n)
	}
}

func TestBuildBoundary(t *testing.T) {
	st := DefaultStyle()
	pts := []geom.Point{{X: 0.5, Y: 0.5}}

	at := Build(geom.Assemble(segments(50), pts), st)
	assert.Equal(t, Sparse, at.Strategy)
	assert.Equal(t, 50, at.Count(RoleSegment))
	assert.Equal(t, 100, at.Count(RoleEndpoint))
	assert.Equal(t, 1, at.Count(RoleIntersection))

	over := Build(geom.Assemble(segments(51), pts), st)
	assert.Equal(t, Dense, over.Strategy)
	assert.Equal(t, 51, over.Count(RoleSegment))
	assert.Equal(t, 0, over.Count(RoleEndpoint))
	assert.Equal(t, 1, over.Count(RoleIntersection))
}

func TestBuildLayering(t *testing.T) {
	pts := []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 2}}
	for _, n := range []int{3, 50, 51, 120} {
		fig := Build(geom.Assemble(segments(n), pts), DefaultStyle())

		minPoint := Layer(1 << 30)
		maxOther := Layer(-1)
		for _, m := range fig.Marks {
			if m.Role == RoleIntersection {
				minPoint = min(minPoint, m.Layer)
			} else {
				maxOther = max(maxOther, m.Layer)
			}
		}
		assert.Greater(t, minPoint, maxOther, "n=%d strategy=%s", n, fig.Strategy)
	}
}

func TestBuildLayerValues(t *testing.T) {
	fig := Build(geom.Assemble(segments(2), []geom.Point{{X: 0, Y: 0.5}}), DefaultStyle())
	for _, m := range fig.Marks {
		switch m.Role {
		case RoleSegment:
			assert.Equal(t, LayerSegment, m.Layer)
			assert.Equal(t, KindLine, m.Kind)
		case RoleEndpoint:
			assert.Equal(t, LayerEndpoint, m.Layer)
			assert.Equal(t, KindMarker, m.Kind)
		case RoleIntersection:
			assert.Equal(t, LayerIntersection, m.Layer)
			assert.Equal(t, KindMarker, m.Kind)
		}
	}
	assert.Greater(t, LayerIntersection, LayerEndpoint)
	assert.Greater(t, LayerEndpoint, LayerSegment)
}

func TestBuildSparseColors(t *testing.T) {
	st := DefaultStyle()
	st.Palette = []string{"#111111", "#222222"}
	fig := Build(geom.Assemble(segments(3), nil), st)

	want := []string{"#111111", "#222222", "#111111"}
	for _, m := range fig.Marks {
		assert.Equal(t, want[m.Index], m.Fill, "role=%d index=%d", m.Role, m.Index)
	}
}

func TestBuildDenseColors(t *testing.T) {
	st := DefaultStyle()
	fig := Build(geom.Assemble(segments(60), []geom.Point{{X: 3, Y: 0.5}}), st)
	for _, m := range fig.Marks {
		if m.Role == RoleSegment {
			assert.Equal(t, st.DenseColor, m.Fill)
			assert.Empty(t, m.Edge)
		}
	}
}

func TestBuildIntersectionStyle(t *testing.T) {
	st := DefaultStyle()
	fig := Build(geom.Assemble(nil, []geom.Point{{X: 1, Y: 2}}), st)
	require.Len(t, fig.Marks, 1)
	m := fig.Marks[0]
	assert.Equal(t, st.PointFill, m.Fill)
	assert.Equal(t, st.PointEdge, m.Edge)
	assert.Equal(t, geom.Point{X: 1, Y: 2}, m.From)
}

func TestBuildEndToEndExample(t *testing.T) {
	ds := geom.Assemble(
		[]geom.Segment{
			{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 1, Y: 1}},
			{A: geom.Point{X: 0, Y: 1}, B: geom.Point{X: 1, Y: 0}},
		},
		[]geom.Point{{X: 0.5, Y: 0.5}},
	)
	fig := Build(ds, DefaultStyle())

	assert.Equal(t, Sparse, fig.Strategy)
	assert.Equal(t, 2, fig.Segments)
	assert.Equal(t, 1, fig.Intersections)
	require.True(t, fig.HasBounds)
	assert.Less(t, fig.Bounds.MinX, 0.0)
	assert.Greater(t, fig.Bounds.MaxY, 1.0)
}

func TestDrawOrder(t *testing.T) {
	fig := Build(geom.Assemble(segments(4), []geom.Point{{X: 1, Y: 0.5}}), DefaultStyle())
	order := fig.DrawOrder()
	require.Len(t, order, len(fig.Marks))
	for i := 1; i < len(order); i++ {
		assert.LessOrEqual(t, order[i-1].Layer, order[i].Layer)
	}
	assert.Equal(t, RoleIntersection, order[len(order)-1].Role)

	// segments keep dataset order within their layer
	var idx []int
	for _, m := range order {
		if m.Role == RoleSegment {
			idx = append(idx, m.Index)
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3}, idx)
}

func TestBuildEmpty(t *testing.T) {
	fig := Build(geom.Dataset{}, DefaultStyle())
	assert.False(t, fig.HasBounds)
	assert.Empty(t, fig.Marks)
	assert.Equal(t, Sparse, fig.Strategy)
}

func TestStyleValidate(t *testing.T) {
	require.NoError(t, DefaultStyle().Validate())

	tests := []struct {
		name   string
		mutate func(*Style)
	}{
		{"empty palette", func(s *Style) { s.Palette = nil }},
		{"bad palette entry", func(s *Style) { s.Palette = []string{"magma"} }},
		{"bad point fill", func(s *Style) { s.PointFill = "orange" }},
		{"bad frame", func(s *Style) { s.FrameColor = "black" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := DefaultStyle()
			tt.mutate(&st)
			err := st.Validate()
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidConfig))
		})
	}
}

func TestPaletteColorWraps(t *testing.T) {
	st := DefaultStyle()
	assert.Equal(t, st.Palette[0], st.PaletteColor(len(st.Palette)))
	st.Palette = nil
	assert.Equal(t, st.DenseColor, st.PaletteColor(3))
}
