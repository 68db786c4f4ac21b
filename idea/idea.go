// Package idea defines the IdeaInspiration content record shared by the
// PrismQ tools: construction, validation, and map serialization for rows
// in a SQLite-compatible ideas table. The record carries no identity;
// ids and timestamps belong to the storage layer.
package idea

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// SourceType identifies the kind of content an idea was derived from.
type SourceType string

const (
	// SourceText marks ideas derived from written content.
	SourceText SourceType = "text"
	// SourceVideo marks ideas derived from video subtitles.
	SourceVideo SourceType = "video"
	// SourceAudio marks ideas derived from audio transcriptions.
	SourceAudio SourceType = "audio"
	// SourceUnknown marks ideas whose origin was not determined.
	SourceUnknown SourceType = "unknown"
)

// ParseSourceType converts a wire tag to a SourceType. Unrecognized tags
// fail with a ValidationError; they are never coerced to SourceUnknown.
func ParseSourceType(tag string) (SourceType, error) {
	st := SourceType(tag)
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

// Validate checks that the source type is one of the recognized tags.
func (s SourceType) Validate() error {
	switch s {
	case SourceText, SourceVideo, SourceAudio, SourceUnknown:
		return nil
	default:
		return &ValidationError{Field: "source_type", Message: "must be one of: text, video, audio, unknown"}
	}
}

func (s SourceType) String() string {
	return string(s)
}

// Inspiration represents one piece of ingested content prior to storage.
//
// Metadata values are strings only; the two score maps hold plain
// unbounded integers (RelevanceScores is conventionally 0-100 per
// secondary category, PerformanceScores a percent-of-baseline per
// context and may exceed 100). Range enforcement is left to callers.
type Inspiration struct {
	Title             string     `json:"title" db:"title" mapstructure:"title"`
	Description       string     `json:"description" db:"description" mapstructure:"description"`
	Content           string     `json:"content" db:"content" mapstructure:"content"`
	Keywords          StringList `json:"keywords" db:"keywords" mapstructure:"keywords"`
	SourceType        SourceType `json:"source_type" db:"source_type" mapstructure:"source_type"`
	Metadata          StringMap  `json:"metadata" db:"metadata" mapstructure:"metadata"`
	SourceID          *string    `json:"source_id" db:"source_id" mapstructure:"source_id"`
	SourceURL         *string    `json:"source_url" db:"source_url" mapstructure:"source_url"`
	SourceCreatedBy   *string    `json:"source_created_by" db:"source_created_by" mapstructure:"source_created_by"`
	SourceCreatedAt   *string    `json:"source_created_at" db:"source_created_at" mapstructure:"source_created_at"`
	Score             *int       `json:"score" db:"score" mapstructure:"score"`
	Category          *string    `json:"category" db:"category" mapstructure:"category"`
	RelevanceScores   IntMap     `json:"relevance_scores" db:"relevance_scores" mapstructure:"relevance_scores"`
	PerformanceScores IntMap     `json:"performance_scores" db:"performance_scores" mapstructure:"performance_scores"`
}

// Option customizes a record under construction. Collection inputs are
// copied, never aliased.
type Option func(*Inspiration)

// WithDescription sets the short description.
func WithDescription(description string) Option {
	return func(i *Inspiration) { i.Description = description }
}

// WithContent sets the body text (subtitles or transcription for
// video/audio sources).
func WithContent(content string) Option {
	return func(i *Inspiration) { i.Content = content }
}

// WithSourceType sets the source type tag.
func WithSourceType(st SourceType) Option {
	return func(i *Inspiration) { i.SourceType = st }
}

// WithKeywords sets the ordered keyword list.
func WithKeywords(keywords ...string) Option {
	return func(i *Inspiration) { i.Keywords = cloneStrings(keywords) }
}

// WithMetadata sets the string-valued metadata map.
func WithMetadata(metadata map[string]string) Option {
	return func(i *Inspiration) { i.Metadata = cloneStringMap(metadata) }
}

// WithSourceID sets the upstream identifier (video ID, post ID, ...).
func WithSourceID(id string) Option {
	return func(i *Inspiration) { i.SourceID = &id }
}

// WithSourceURL sets the upstream URL.
func WithSourceURL(url string) Option {
	return func(i *Inspiration) { i.SourceURL = &url }
}

// WithSourceCreatedBy sets the upstream author or channel name.
func WithSourceCreatedBy(creator string) Option {
	return func(i *Inspiration) { i.SourceCreatedBy = &creator }
}

// WithSourceCreatedAt sets the upstream creation timestamp. ISO-8601 is
// the convention; the format is not enforced.
func WithSourceCreatedAt(timestamp string) Option {
	return func(i *Inspiration) { i.SourceCreatedAt = &timestamp }
}

// WithScore sets the overall quality score.
func WithScore(score int) Option {
	return func(i *Inspiration) { i.Score = &score }
}

// WithCategory sets the primary category.
func WithCategory(category string) Option {
	return func(i *Inspiration) { i.Category = &category }
}

// WithRelevanceScores sets the per-subcategory relevance map.
func WithRelevanceScores(scores map[string]int) Option {
	return func(i *Inspiration) { i.RelevanceScores = cloneIntMap(scores) }
}

// WithPerformanceScores sets the per-context performance map.
func WithPerformanceScores(scores map[string]int) Option {
	return func(i *Inspiration) { i.PerformanceScores = cloneIntMap(scores) }
}

// New constructs a record with SourceUnknown origin. The factory helpers
// FromText, FromVideo and FromAudio cover the recognized source kinds.
func New(title string, opts ...Option) (*Inspiration, error) {
	rec := &Inspiration{
		Title:             title,
		SourceType:        SourceUnknown,
		Keywords:          StringList{},
		Metadata:          StringMap{},
		RelevanceScores:   IntMap{},
		PerformanceScores: IntMap{},
	}
	for _, opt := range opts {
		opt(rec)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// FromText builds a text-sourced record; content carries the body text.
func FromText(title, content string, opts ...Option) (*Inspiration, error) {
	return fromSource(title, SourceText, content, opts)
}

// FromVideo builds a video-sourced record; content carries the subtitle text.
func FromVideo(title, subtitles string, opts ...Option) (*Inspiration, error) {
	return fromSource(title, SourceVideo, subtitles, opts)
}

// FromAudio builds an audio-sourced record; content carries the transcription.
func FromAudio(title, transcription string, opts ...Option) (*Inspiration, error) {
	return fromSource(title, SourceAudio, transcription, opts)
}

func fromSource(title string, st SourceType, content string, opts []Option) (*Inspiration, error) {
	rec, err := New(title, opts...)
	if err != nil {
		return nil, err
	}
	rec.SourceType = st
	rec.Content = content
	return rec, nil
}

// Validate checks the record's invariants: a non-blank title and a
// recognized source type.
func (i *Inspiration) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return requiredErr("title")
	}
	return i.SourceType.Validate()
}

// Equal reports field-by-field value equality. Nil and empty collections
// compare equal; optional fields compare by pointee.
func (i *Inspiration) Equal(other *Inspiration) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.Title == other.Title &&
		i.Description == other.Description &&
		i.Content == other.Content &&
		i.SourceType == other.SourceType &&
		slices.Equal(i.Keywords, other.Keywords) &&
		maps.Equal(i.Metadata, other.Metadata) &&
		ptrEqual(i.SourceID, other.SourceID) &&
		ptrEqual(i.SourceURL, other.SourceURL) &&
		ptrEqual(i.SourceCreatedBy, other.SourceCreatedBy) &&
		ptrEqual(i.SourceCreatedAt, other.SourceCreatedAt) &&
		ptrEqual(i.Score, other.Score) &&
		ptrEqual(i.Category, other.Category) &&
		maps.Equal(i.RelevanceScores, other.RelevanceScores) &&
		maps.Equal(i.PerformanceScores, other.PerformanceScores)
}

// String returns a short human-readable summary.
func (i *Inspiration) String() string {
	title := i.Title
	if r := []rune(title); len(r) > 50 {
		title = string(r[:47]) + "..."
	}
	return fmt.Sprintf("Inspiration(title=%q, source_type=%s, keywords=%d)", title, i.SourceType, len(i.Keywords))
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
