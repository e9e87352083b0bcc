// Package pipeline runs segplot end to end:
//
//  1. Solve: run the external solver on the input file
//  2. Load: locate and parse the segments, parse the solver output
//  3. Plan: assemble the dataset and build the draw plan
//  4. View: show the figure and wait until the viewer is closed
//
// Stages run strictly in order. Any error aborts the run before anything is
// drawn.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"segplot/internal/geom"
	"segplot/internal/plot"
)

// Solver produces the result file for an input path.
type Solver interface {
	Run(ctx context.Context, input string) error
}

// Viewer displays a figure and blocks until it is dismissed.
type Viewer interface {
	Show(ctx context.Context, fig plot.Figure, title string) error
}

// Runner holds the collaborators for one run.
type Runner struct {
	Solver     Solver
	Viewer     Viewer
	Locator    *geom.Locator
	ResultPath string
	Style      plot.Style
	Logger     *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(s Solver, v Viewer, loc *geom.Locator, resultPath string, st plot.Style, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if loc == nil {
		loc = geom.NewLocator()
	}
	return &Runner{
		Solver:     s,
		Viewer:     v,
		Locator:    loc,
		ResultPath: resultPath,
		Style:      st,
		Logger:     logger,
	}
}

// Load runs the solver on input and returns the assembled dataset.
func (r *Runner) Load(ctx context.Context, input string) (geom.Dataset, error) {
	start := time.Now()
	if err := r.Solver.Run(ctx, input); err != nil {
		return geom.Dataset{}, fmt.Errorf("solve: %w", err)
	}
	r.Logger.Info("solver finished", "input", input, "output", r.ResultPath, "duration", time.Since(start).Round(time.Millisecond))

	segs, path, err := geom.LoadSegments(r.Locator, input)
	if err != nil {
		return geom.Dataset{}, fmt.Errorf("load segments: %w", err)
	}
	r.Logger.Debug("parsed segments", "path", path, "count", len(segs))

	pts, err := geom.LoadResult(r.ResultPath)
	if err != nil {
		return geom.Dataset{}, fmt.Errorf("load result: %w", err)
	}
	r.Logger.Debug("parsed intersections", "path", r.ResultPath, "count", len(pts))

	return geom.Assemble(segs, pts), nil
}

// Run executes the full pipeline and returns once the viewer is closed.
func (r *Runner) Run(ctx context.Context, input string) error {
	ds, err := r.Load(ctx, input)
	if err != nil {
		return err
	}

	fig := plot.Build(ds, r.Style)
	r.Logger.Info("plotting graph...",
		"segments", fig.Segments,
		"intersections", fig.Intersections,
		"strategy", fig.Strategy)

	title := fmt.Sprintf("%s  n=%d  k=%d", input, fig.Segments, fig.Intersections)
	if err := r.Viewer.Show(ctx, fig, title); err != nil {
		return fmt.Errorf("view: %w", err)
	}
	return nil
}
