// Package solver runs the external sweep-line intersection program.
//
// The program is invoked as
//
//	<path> -nc -o <output> -i <input>
//
// and writes its intersections to <output>, overwriting any previous run.
package solver

import (
	"context"
	"io"
	"os/exec"

	apperrors "segplot/internal/errors"
)

// Solver invokes the intersection program at Path, directing its results to
// Output. Stdout and Stderr receive the program's console output; nil
// discards it.
type Solver struct {
	Path   string
	Output string
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Solver for the given executable and output file.
func New(path, output string) *Solver {
	return &Solver{Path: path, Output: output}
}

// Args returns the argument list after the executable name. The input path
// is always last.
func (s *Solver) Args(input string) []string {
	return []string{"-nc", "-o", s.Output, "-i", input}
}

// Command builds the command line without starting it.
func (s *Solver) Command(ctx context.Context, input string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, s.Path, s.Args(input)...)
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	return cmd
}

// Run executes the solver on input and waits for it to exit.
func (s *Solver) Run(ctx context.Context, input string) error {
	if err := s.Command(ctx, input).Run(); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeExternalProcess, err, "solver %s", s.Path)
	}
	return nil
}
