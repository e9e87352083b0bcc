package geom

import (
	"io"
	"os"
	"strconv"
	"strings"

	apperrors "segplot/internal/errors"
)

// ParseResult reads solver output and returns the reported points in file
// order. See ParseResultDetailed for the line grammar.
func ParseResult(r io.Reader) ([]Point, error) {
	xs, err := ParseResultDetailed(r)
	if err != nil {
		return nil, err
	}
	pts := make([]Point, len(xs))
	for i, x := range xs {
		pts[i] = x.Point
	}
	return pts, nil
}

// ParseResultDetailed reads a count m followed by m lines of the form
//
//	(x, y)
//
// where x and y are fixed-point numbers such as "-0.500" or ".25", with
// exactly one space after the comma. Surrounding whitespace is
// ignored. After the closing parenthesis the solver may list the indices
// of the intersecting segments ("(0.500, 0.500)  1, 2"); that tail must be
// separated by whitespace and is returned in Intersection.Segments.
func ParseResultDetailed(r io.Reader) ([]Intersection, error) {
	lr := newLineReader(r)
	m, err := lr.count("result")
	if err != nil {
		return nil, err
	}
	out := make([]Intersection, 0, m)
	for i := 0; i < m; i++ {
		s, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.New(apperrors.ErrCodeInvalidFormat,
				"result: declared %d points, found %d", m, i)
		}
		x, err := parseIntersection(s)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "result: line %d", lr.line)
		}
		out = append(out, x)
	}
	return out, nil
}

// LoadResult opens the solver's output file and parses it.
func LoadResult(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeNotFound, err, "result file %q", path)
	}
	defer f.Close()
	return ParseResult(f)
}

// pointScanner is a cursor over one result line.
type pointScanner struct {
	s   string
	pos int
}

func (p *pointScanner) expect(c byte) error {
	if p.pos >= len(p.s) || p.s[p.pos] != c {
		return p.unexpected(string(c))
	}
	p.pos++
	return nil
}

func (p *pointScanner) unexpected(want string) error {
	if p.pos >= len(p.s) {
		return apperrors.New(apperrors.ErrCodeInvalidFormat, "want %q at column %d, got end of line", want, p.pos+1)
	}
	return apperrors.New(apperrors.ErrCodeInvalidFormat, "want %q at column %d, got %q", want, p.pos+1, p.s[p.pos])
}

// float consumes a fixed-point number: optional sign, optional integer
// digits, then a '.' followed by at least one fraction digit. Integers,
// trailing dots and exponents are rejected.
func (p *pointScanner) float() (float64, error) {
	start := p.pos
	if p.pos < len(p.s) && (p.s[p.pos] == '+' || p.s[p.pos] == '-') {
		p.pos++
	}
	p.digits()
	if p.pos >= len(p.s) || p.s[p.pos] != '.' {
		return 0, p.unexpected("number with fraction")
	}
	p.pos++
	if p.digits() == 0 {
		return 0, p.unexpected("fraction digit")
	}
	return strconv.ParseFloat(p.s[start:p.pos], 64)
}

func (p *pointScanner) digits() int {
	n := 0
	for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
		n++
	}
	return n
}

func parseIntersection(line string) (Intersection, error) {
	p := &pointScanner{s: strings.TrimSpace(line)}
	if err := p.expect('('); err != nil {
		return Intersection{}, err
	}
	x, err := p.float()
	if err != nil {
		return Intersection{}, err
	}
	if err := p.expect(','); err != nil {
		return Intersection{}, err
	}
	if err := p.expect(' '); err != nil {
		return Intersection{}, err
	}
	y, err := p.float()
	if err != nil {
		return Intersection{}, err
	}
	if err := p.expect(')'); err != nil {
		return Intersection{}, err
	}
	res := Intersection{Point: Point{X: x, Y: y}}
	rest := p.s[p.pos:]
	if rest == "" {
		return res, nil
	}
	if rest[0] != ' ' && rest[0] != '\t' {
		return Intersection{}, p.unexpected("end of line")
	}
	idx, err := parseIndices(rest)
	if err != nil {
		return Intersection{}, err
	}
	res.Segments = idx
	return res, nil
}

// parseIndices parses the solver's "1, 2, 5" segment index tail.
func parseIndices(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, apperrors.New(apperrors.ErrCodeInvalidFormat, "invalid segment index %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}
