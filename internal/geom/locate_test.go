package geom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "segplot/internal/errors"
)

const diagonals = "2\n0 0 1 1\n0 1 1 0\n"

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLocatorCandidates(t *testing.T) {
	loc := NewLocator("../data")

	assert.Equal(t, []string{"in.txt", filepath.Join("../data", "in.txt")}, loc.Candidates("in.txt"))
	assert.Equal(t, []string{"/abs/in.txt", filepath.Join("../data", "in.txt")}, loc.Candidates("/abs/in.txt"))
	assert.Equal(t, []string{"x"}, NewLocator().Candidates("x"))
	assert.Equal(t, []string{"x"}, NewLocator("").Candidates("x"))
}

func TestLoadSegmentsDirect(t *testing.T) {
	dir := t.TempDir()
	direct := filepath.Join(dir, "in.txt")
	writeFile(t, direct, diagonals)

	segs, path, err := LoadSegments(NewLocator(filepath.Join(dir, "data")), direct)
	require.NoError(t, err)
	assert.Equal(t, direct, path)
	assert.Len(t, segs, 2)
}

func TestLoadSegmentsFallbackMatchesDirect(t *testing.T) {
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	writeFile(t, filepath.Join(dataDir, "in.txt"), diagonals)

	chdir(t, dir)

	viaFallback, path, err := LoadSegments(NewLocator(dataDir), "in.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "in.txt"), path)

	direct, _, err := LoadSegments(NewLocator(), filepath.Join(dataDir, "in.txt"))
	require.NoError(t, err)
	assert.Equal(t, direct, viaFallback)
}

func TestLoadSegmentsDirectWinsOverFallback(t *testing.T) {
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	writeFile(t, filepath.Join(dir, "in.txt"), "1\n9 9 8 8\n")
	writeFile(t, filepath.Join(dataDir, "in.txt"), diagonals)

	chdir(t, dir)

	segs, path, err := LoadSegments(NewLocator(dataDir), "in.txt")
	require.NoError(t, err)
	assert.Equal(t, "in.txt", path)
	assert.Equal(t, []Segment{{A: Point{9, 9}, B: Point{8, 8}}}, segs)
}

func TestLoadSegmentsNotFound(t *testing.T) {
	dir := t.TempDir()

	_, _, err := LoadSegments(NewLocator(filepath.Join(dir, "data")), filepath.Join(dir, "absent.txt"))
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "absent.txt")
}

func TestLocatorSkipsEmptyFallback(t *testing.T) {
	chdir(t, t.TempDir())

	_, _, err := NewLocator("").Open("absent.txt")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	// once in the name, once in the tried list, once in the cause
	assert.Equal(t, 3, strings.Count(err.Error(), "absent.txt"), err.Error())
}

func TestLoadSegmentsFormatErrorAfterLocate(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.txt")
	writeFile(t, p, "3\n0 0 1 1\n0 1 1 0\n")

	_, path, err := LoadSegments(NewLocator(), p)
	require.Error(t, err)
	assert.True(t, apperrors.IsFormat(err))
	assert.Equal(t, p, path)
}
