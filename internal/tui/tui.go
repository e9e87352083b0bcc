// Package tui is the terminal viewer for segplot figures.
//
// The figure is drawn on a braille micro-pixel canvas: segments as lines,
// endpoints and intersections as glyph markers. Each terminal cell keeps
// the color and glyph of the highest layer drawn into it, so intersection
// markers stay visible over any number of segments. The program runs in
// the alternate screen and Show returns only once the user quits.
package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"segplot/internal/plot"
)

// Viewer runs the interactive figure display.
type Viewer struct {
	Style plot.Style

	// Input and Output override the terminal; nil uses stdin/stdout.
	Input  io.Reader
	Output io.Writer
}

// NewViewer returns a Viewer drawing with st.
func NewViewer(st plot.Style) *Viewer {
	return &Viewer{Style: st}
}

// Show displays fig and blocks until the viewer is dismissed.
func (v *Viewer) Show(ctx context.Context, fig plot.Figure, title string) error {
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseAllMotion()}
	if v.Input != nil {
		opts = append(opts, tea.WithInput(v.Input))
	}
	if v.Output != nil {
		opts = append(opts, tea.WithOutput(v.Output))
	}
	_, err := tea.NewProgram(New(fig, v.Style, title), opts...).Run()
	return err
}
