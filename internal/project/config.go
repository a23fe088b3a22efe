// Package project locates and loads the tscheck.toml project
// configuration.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"tscheck/internal/types"
)

// Config is the parsed tscheck.toml.
type Config struct {
	Check CheckConfig `toml:"check"`
}

// CheckConfig holds the [check] section.
type CheckConfig struct {
	// UnionAnyPolicy is "absorb" (default) or "keep": whether any
	// swallows the other members of a union.
	UnionAnyPolicy string `toml:"union_any_policy"`
	// MaxDiagnostics caps the diagnostics kept per run. Zero keeps the
	// built-in default.
	MaxDiagnostics int `toml:"max_diagnostics"`
	// Jobs bounds checker parallelism; zero means GOMAXPROCS.
	Jobs int `toml:"jobs"`
}

// ErrBadUnionPolicy indicates an unrecognized union_any_policy value.
var ErrBadUnionPolicy = errors.New("union_any_policy must be \"absorb\" or \"keep\"")

// Default returns the configuration used when no tscheck.toml exists.
func Default() Config {
	return Config{
		Check: CheckConfig{
			UnionAnyPolicy: "absorb",
		},
	}
}

// UnionPolicy translates the configured policy string.
func (c CheckConfig) UnionPolicy() (types.UnionPolicy, error) {
	switch c.UnionAnyPolicy {
	case "", "absorb":
		return types.UnionAbsorbAny, nil
	case "keep":
		return types.UnionKeepAny, nil
	default:
		return types.UnionAbsorbAny, fmt.Errorf("%w, got %q", ErrBadUnionPolicy, c.UnionAnyPolicy)
	}
}

// Load parses the config file at path.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if _, err := cfg.Check.UnionPolicy(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// FindConfig walks up from startDir to locate tscheck.toml.
func FindConfig(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "tscheck.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadFromDir finds and loads the nearest config above startDir,
// falling back to defaults when none exists.
func LoadFromDir(startDir string) (Config, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
