package configstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultEnvVar names the environment variable that overrides the
	// working directory explicitly.
	DefaultEnvVar = "PRISMQ_WORKING_DIR"

	// DefaultMarker is the substring a parent directory's name must
	// contain (case-insensitive) to be picked as the shared working
	// directory.
	DefaultMarker = "prismq"
)

type resolver struct {
	envVar   string
	marker   string
	startDir string
}

// ResolveOption customizes Resolve.
type ResolveOption func(*resolver)

// WithEnvVar overrides the environment variable consulted first.
func WithEnvVar(name string) ResolveOption {
	return func(r *resolver) { r.envVar = name }
}

// WithMarker overrides the marker substring matched against directory
// names during the upward walk.
func WithMarker(marker string) ResolveOption {
	return func(r *resolver) { r.marker = marker }
}

// WithStartDir overrides the directory the upward walk starts from.
// Defaults to the current directory.
func WithStartDir(dir string) ResolveOption {
	return func(r *resolver) { r.startDir = dir }
}

// Resolve locates the working directory shared by the PrismQ tools.
// Resolution order:
//
//  1. the environment override variable, if set;
//  2. an upward walk from the start directory to the filesystem root,
//     stopping at the first directory whose name contains the marker
//     substring (case-insensitive);
//  3. the start directory itself, without error.
func Resolve(opts ...ResolveOption) (string, error) {
	r := resolver{envVar: DefaultEnvVar, marker: DefaultMarker}
	for _, opt := range opts {
		opt(&r)
	}

	if dir := os.Getenv(r.envVar); dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", r.envVar, err)
		}
		return abs, nil
	}

	start := r.startDir
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determine current directory: %w", err)
		}
		start = wd
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}

	marker := strings.ToLower(r.marker)
	for dir := abs; ; {
		if strings.Contains(strings.ToLower(filepath.Base(dir)), marker) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return abs, nil
}
