// Package seedfile loads idea records from a YAML file for bulk import.
package seedfile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nomoos/prismq-idea/idea"
)

// ErrNoIdeas indicates the file parsed cleanly but holds no entries
// under the top-level "ideas" key.
var ErrNoIdeas = errors.New("no ideas found in seed file")

// seedFile is the top-level YAML document shape.
type seedFile struct {
	Ideas []map[string]any `yaml:"ideas"`
}

// Load reads a YAML seed file and converts every entry under "ideas"
// into a validated record. Entries are numbered from 1 in error
// messages; one invalid entry fails the whole load.
func Load(path string) ([]*idea.Inspiration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if len(file.Ideas) == 0 {
		return nil, ErrNoIdeas
	}

	records := make([]*idea.Inspiration, 0, len(file.Ideas))
	for i, raw := range file.Ideas {
		rec, err := idea.FromMap(raw)
		if err != nil {
			return nil, fmt.Errorf("idea %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
