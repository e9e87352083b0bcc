package geom

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	apperrors "segplot/internal/errors"
)

// lineReader walks a text input line by line, tracking 1-based line numbers
// for error messages.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &lineReader{sc: sc}
}

// next returns the next line. ok is false at end of input.
func (lr *lineReader) next() (string, bool, error) {
	if !lr.sc.Scan() {
		return "", false, lr.sc.Err()
	}
	lr.line++
	return lr.sc.Text(), true, nil
}

// count reads the first non-empty line as a non-negative integer.
func (lr *lineReader) count(what string) (int, error) {
	for {
		s, ok, err := lr.next()
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, apperrors.New(apperrors.ErrCodeInvalidFormat, "%s: missing count line", what)
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "%s: line %d: invalid count %q", what, lr.line, s)
		}
		if n < 0 {
			return 0, apperrors.New(apperrors.ErrCodeInvalidFormat, "%s: line %d: negative count %d", what, lr.line, n)
		}
		return n, nil
	}
}

// ParseSegments reads a segment description: a count n followed by n lines
// of "x1 y1 x2 y2". Extra tokens on a data line and lines after the n-th
// are ignored.
func ParseSegments(r io.Reader) ([]Segment, error) {
	lr := newLineReader(r)
	n, err := lr.count("segments")
	if err != nil {
		return nil, err
	}
	segs := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		s, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.New(apperrors.ErrCodeInvalidFormat,
				"segments: declared %d segments, found %d", n, i)
		}
		fields := strings.Fields(s)
		if len(fields) < 4 {
			return nil, apperrors.New(apperrors.ErrCodeInvalidFormat,
				"segments: line %d: want 4 coordinates, got %d", lr.line, len(fields))
		}
		var c [4]float64
		for k := range c {
			v, err := strconv.ParseFloat(fields[k], 64)
			if err != nil {
				return nil, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err,
					"segments: line %d: coordinate %d", lr.line, k+1)
			}
			c[k] = v
		}
		segs = append(segs, Segment{A: Point{X: c[0], Y: c[1]}, B: Point{X: c[2], Y: c[3]}})
	}
	return segs, nil
}

// LoadSegments locates name through loc and parses it. It returns the
// segments and the path the file was actually read from.
func LoadSegments(loc *Locator, name string) ([]Segment, string, error) {
	f, path, err := loc.Open(name)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	segs, err := ParseSegments(f)
	if err != nil {
		return nil, path, err
	}
	return segs, path, nil
}
