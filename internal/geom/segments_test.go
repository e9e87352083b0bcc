package geom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "segplot/internal/errors"
)

func TestParseSegments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Segment
	}{
		{
			name:  "crossing diagonals",
			input: "2\n0 0 1 1\n0 1 1 0\n",
			want: []Segment{
				{A: Point{0, 0}, B: Point{1, 1}},
				{A: Point{0, 1}, B: Point{1, 0}},
			},
		},
		{
			name:  "leading blank lines and padded count",
			input: "\n\n  1  \n-1.5\t2.25   3e2 -4\n",
			want:  []Segment{{A: Point{-1.5, 2.25}, B: Point{300, -4}}},
		},
		{
			name:  "lines beyond count ignored",
			input: "1\n1 2 3 4\nnot a segment\n",
			want:  []Segment{{A: Point{1, 2}, B: Point{3, 4}}},
		},
		{
			name:  "extra tokens ignored",
			input: "1\n1 2 3 4 5 6\n",
			want:  []Segment{{A: Point{1, 2}, B: Point{3, 4}}},
		},
		{
			name:  "zero segments",
			input: "0\n",
			want:  []Segment{},
		},
		{
			name:  "no trailing newline",
			input: "1\n0 0 2 2",
			want:  []Segment{{A: Point{0, 0}, B: Point{2, 2}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSegments(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSegmentsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"non-numeric count", "abc\n0 0 1 1\n"},
		{"fractional count", "1.5\n0 0 1 1\n"},
		{"negative count", "-1\n"},
		{"empty input", ""},
		{"only blank lines", "\n \n"},
		{"declared 3 found 2", "3\n0 0 1 1\n0 1 1 0\n"},
		{"too few tokens", "1\n0 0 1\n"},
		{"blank data line", "2\n0 0 1 1\n\n0 1 1 0\n"},
		{"non-numeric coordinate", "1\n0 zero 1 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSegments(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, apperrors.IsFormat(err), "want INVALID_FORMAT, got %v", err)
		})
	}
}

func TestParseSegmentsPreservesOrder(t *testing.T) {
	var b strings.Builder
	b.WriteString("100\n")
	for i := 0; i < 100; i++ {
		b.WriteString(strings.Repeat(" ", i%3))
		b.WriteString(itoa(i) + " 0 " + itoa(i) + " 1\n")
	}
	segs, err := ParseSegments(strings.NewReader(b.String()))
	require.NoError(t, err)
	require.Len(t, segs, 100)
	for i, s := range segs {
		assert.Equal(t, float64(i), s.A.X)
		assert.Equal(t, float64(i), s.B.X)
	}
}

func TestParseSegmentsIdempotent(t *testing.T) {
	in := "3\n0 0 1 1\n0 1 1 0\n5 5 -5 -5\n"
	a, err := ParseSegments(strings.NewReader(in))
	require.NoError(t, err)
	b, err := ParseSegments(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseSegmentsErrorNamesLine(t *testing.T) {
	_, err := ParseSegments(strings.NewReader("2\n0 0 1 1\n0 1 x 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func itoa(i int) string {
	const digits = "0123456789"
	if i < 10 {
		return digits[i : i+1]
	}
	return itoa(i/10) + digits[i%10:i%10+1]
}
