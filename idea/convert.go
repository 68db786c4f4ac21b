package idea

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// ToMap renders the record as a plain map keyed by wire names, the shape
// stored in the ideas table and exchanged with sibling tools. The source
// type is rendered as its lowercase tag, collections are copied rather
// than aliased, and unset optional fields are present with nil values.
func (i *Inspiration) ToMap() map[string]any {
	return map[string]any{
		"title":              i.Title,
		"description":        i.Description,
		"content":            i.Content,
		"keywords":           cloneStrings(i.Keywords),
		"source_type":        i.SourceType.String(),
		"metadata":           cloneStringMap(i.Metadata),
		"source_id":          deref(i.SourceID),
		"source_url":         deref(i.SourceURL),
		"source_created_by":  deref(i.SourceCreatedBy),
		"source_created_at":  deref(i.SourceCreatedAt),
		"score":              deref(i.Score),
		"category":           deref(i.Category),
		"relevance_scores":   cloneIntMap(i.RelevanceScores),
		"performance_scores": cloneIntMap(i.PerformanceScores),
	}
}

// FromMap is the inverse of ToMap. Missing optional keys default as in
// construction. A missing or blank title, an unrecognized source_type
// tag, or a non-string metadata value fails with a ValidationError.
// Integer map values arriving as JSON numbers decode back to ints.
func FromMap(raw map[string]any) (*Inspiration, error) {
	if raw == nil {
		return nil, requiredErr("title")
	}
	if err := checkMetadataValues(raw["metadata"]); err != nil {
		return nil, err
	}

	var rec Inspiration
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &rec})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if decodeErr := decoder.Decode(raw); decodeErr != nil {
		return nil, fmt.Errorf("failed to decode record: %w", decodeErr)
	}

	// Absent source_type defaults to unknown; a present-but-invalid tag
	// is caught by Validate below.
	if _, ok := raw["source_type"]; !ok {
		rec.SourceType = SourceUnknown
	}

	rec.normalize()
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// checkMetadataValues rejects non-string metadata values up front so the
// caller sees a ValidationError rather than a generic decode failure.
func checkMetadataValues(v any) error {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	for k, mv := range m {
		if _, ok := mv.(string); !ok {
			return &ValidationError{Field: "metadata", Message: fmt.Sprintf("value for key %q must be a string", k)}
		}
	}
	return nil
}

// normalize replaces nil collections with empty ones so round-trips and
// DB writes are stable.
func (i *Inspiration) normalize() {
	if i.Keywords == nil {
		i.Keywords = StringList{}
	}
	if i.Metadata == nil {
		i.Metadata = StringMap{}
	}
	if i.RelevanceScores == nil {
		i.RelevanceScores = IntMap{}
	}
	if i.PerformanceScores == nil {
		i.PerformanceScores = IntMap{}
	}
}

func cloneStrings(in []string) []string {
	out := make([]string, 0, len(in))
	return append(out, in...)
}

func cloneStringMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneIntMap(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
