// Package configstore persists flat KEY=VALUE configuration for the
// PrismQ tools in a .env file shared across siblings operating in the
// same working directory. The file is fully rewritten on every change
// with keys sorted and a fixed header; malformed lines are skipped on
// load, never fatal.
//
// The store is setup tooling for single-developer flows: it takes no
// file locks and is not safe for concurrent writers (the last rewrite
// wins).
package configstore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nomoos/prismq-idea/logger"
)

// DefaultFileName is the configuration file name used unless overridden
// with WithFileName.
const DefaultFileName = ".env"

// fileHeader is regenerated at the top of the file on every write.
// Comments from an existing file are not round-tripped.
const fileHeader = "# PrismQ module configuration\n" +
	"# Shared by the PrismQ tools operating in this working directory.\n" +
	"# Auto-generated - the file is fully rewritten on every change.\n"

// Store manages the key-value pairs held in one configuration file.
type Store struct {
	dir      string
	path     string
	fileName string
	values   map[string]string
	log      logger.Logger

	input       io.Reader
	output      io.Writer
	interactive *bool
}

// Option customizes a Store under construction.
type Option func(*Store)

// WithLogger sets the logger. Defaults to the no-op logger.
func WithLogger(log logger.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithFileName overrides the configuration file name. Default: ".env".
func WithFileName(name string) Option {
	return func(s *Store) { s.fileName = name }
}

// New creates a Store rooted at dir. The directory is resolved to an
// absolute path but not created until the first write. Call Load to
// read an existing file; New itself performs no I/O.
func New(dir string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("working directory is required")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	s := &Store{
		dir:      abs,
		fileName: DefaultFileName,
		values:   make(map[string]string),
		log:      logger.NewNop(),
		input:    os.Stdin,
		output:   os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.path = filepath.Join(s.dir, s.fileName)
	return s, nil
}

// Path returns the absolute path of the configuration file.
func (s *Store) Path() string { return s.path }

// Dir returns the absolute path of the working directory.
func (s *Store) Dir() string { return s.dir }

// Load replaces the in-memory pairs with the file contents. A missing
// file is not an error and leaves the store empty. Lines that are blank,
// start with '#', or do not form KEY=VALUE after trimming are skipped;
// duplicate keys keep the last value.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.values = make(map[string]string)
			return nil
		}
		return fmt.Errorf("read %s: %w", s.path, err)
	}

	values := make(map[string]string)
	for n, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			s.log.Debug("skipping malformed configuration line",
				logger.String("file", s.path),
				logger.Int("line", n+1),
			)
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			s.log.Debug("skipping configuration line with empty key",
				logger.String("file", s.path),
				logger.Int("line", n+1),
			)
			continue
		}
		values[key] = strings.TrimSpace(value)
	}
	s.values = values
	return nil
}

// Get returns the value for key and whether it is present.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// GetDefault returns the value for key, or fallback if absent.
func (s *Store) GetDefault(key, fallback string) string {
	if v, ok := s.values[key]; ok {
		return v
	}
	return fallback
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Keys returns the present keys in sorted order.
func (s *Store) Keys() []string {
	return slices.Sorted(maps.Keys(s.values))
}

// Set stores one pair and rewrites the file.
func (s *Store) Set(key, value string) error {
	s.values[key] = value
	return s.save()
}

// Update stores all pairs from values and rewrites the file once.
func (s *Store) Update(values map[string]string) error {
	maps.Copy(s.values, values)
	return s.save()
}

// EnsureExists creates the configuration file (header plus any pairs
// already in memory) if it does not exist. Idempotent.
func (s *Store) EnsureExists() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", s.path, err)
	}
	return s.save()
}

// save rewrites the whole file: fixed header, then KEY=VALUE lines in
// sorted key order. The content goes to a temp file first and is
// renamed into place so a failed write leaves the previous contents
// intact.
func (s *Store) save() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create working directory %s: %w", s.dir, err)
	}

	var b strings.Builder
	b.WriteString(fileHeader)
	b.WriteString("\n")
	for _, key := range s.Keys() {
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(s.values[key])
		b.WriteByte('\n')
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", tmp, err)
	}

	s.log.Debug("configuration saved",
		logger.String("file", s.path),
		logger.Int("keys", len(s.values)),
	)
	return nil
}
