// Package config loads segplot's settings.
//
// Settings have built-in defaults matching the layout the solver expects
// (binary in ../bin, output in ../build, inputs in ../data). An optional
// segplot.toml in the working directory overrides any subset of them.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	apperrors "segplot/internal/errors"
	"segplot/internal/plot"
)

// FileName is the optional config file looked up in the working directory.
const FileName = "segplot.toml"

const (
	DefaultSolverPath = "../bin/app"
	DefaultOutputPath = "../build/run_output.txt"
	DefaultDataDir    = "../data"
)

// Solver describes how to reach the external intersection solver.
type Solver struct {
	Path   string `toml:"path"`
	Output string `toml:"output"`
}

// Config is the full runtime configuration.
type Config struct {
	DataDir  string     `toml:"data_dir"`
	LogLevel string     `toml:"log_level"`
	Solver   Solver     `toml:"solver"`
	Style    plot.Style `toml:"style"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:  DefaultDataDir,
		LogLevel: "info",
		Solver: Solver{
			Path:   DefaultSolverPath,
			Output: DefaultOutputPath,
		},
		Style: plot.DefaultStyle(),
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if err := Decode(string(data), &cfg); err != nil {
		return Config{}, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return cfg, nil
}

// Decode parses TOML text into cfg, leaving unset keys untouched, and
// validates the result.
func Decode(text string, cfg *Config) error {
	md, err := toml.Decode(text, cfg)
	if err != nil {
		return err
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

// Validate checks paths, level and style.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "data_dir must not be empty")
	}
	if strings.TrimSpace(c.Solver.Path) == "" {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "solver.path must not be empty")
	}
	if strings.TrimSpace(c.Solver.Output) == "" {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "solver.output must not be empty")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return c.Style.Validate()
}

// Level returns the configured log level.
func (c Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "log_level")
	}
	return lvl, nil
}
