package tui

import "fmt"

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// floorDiv divides rounding toward negative infinity, so off-screen micro
// coordinates map to off-screen cells.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func fmtCoord(v float64) string {
	return fmt.Sprintf("%.6g", v)
}
