package seedfile_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomoos/prismq-idea/idea"
	"github.com/nomoos/prismq-idea/internal/seedfile"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ideas.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullEntries(t *testing.T) {
	t.Parallel()

	path := writeSeed(t, `
ideas:
  - title: How rockets land
    source_type: video
    content: full subtitle text
    description: Propulsive landing explained
    keywords: [rockets, landing]
    metadata:
      channel: SpaceStuff
    source_id: yt:abc123
    source_url: https://example.com/watch?v=abc123
    score: 87
    category: science
    relevance_scores:
      aerospace: 95
    performance_scores:
      US: 250
  - title: Morning radio recap
    source_type: audio
    content: transcription text
`)

	records, err := seedfile.Load(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "How rockets land", first.Title)
	assert.Equal(t, idea.SourceVideo, first.SourceType)
	assert.Equal(t, idea.StringList{"rockets", "landing"}, first.Keywords)
	assert.Equal(t, idea.StringMap{"channel": "SpaceStuff"}, first.Metadata)
	assert.Equal(t, 250, first.PerformanceScores["US"])
	require.NotNil(t, first.Score)
	assert.Equal(t, 87, *first.Score)
	require.NotNil(t, first.SourceID)
	assert.Equal(t, "yt:abc123", *first.SourceID)

	assert.Equal(t, idea.SourceAudio, records[1].SourceType)
	assert.Equal(t, "transcription text", records[1].Content)
	assert.Nil(t, records[1].Score)
}

func TestLoad_MinimalEntry(t *testing.T) {
	t.Parallel()

	path := writeSeed(t, "ideas:\n  - title: Bare minimum\n")

	records, err := seedfile.Load(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, idea.SourceUnknown, records[0].SourceType)
	assert.NotNil(t, records[0].Keywords)
}

func TestLoad_InvalidEntryFailsWholeLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		wantEntry string
		wantField string
	}{
		{
			name:      "missing title",
			content:   "ideas:\n  - title: Good entry\n  - description: no title here\n",
			wantEntry: "idea 2",
			wantField: "title",
		},
		{
			name:      "unrecognized source type",
			content:   "ideas:\n  - title: T\n    source_type: reel\n",
			wantEntry: "idea 1",
			wantField: "source_type",
		},
		{
			name:      "non-string metadata value",
			content:   "ideas:\n  - title: T\n    metadata:\n      views: 1204553\n",
			wantEntry: "idea 1",
			wantField: "metadata",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			records, err := seedfile.Load(writeSeed(t, tc.content))
			assert.Nil(t, records)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantEntry)

			var verr *idea.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.wantField, verr.Field)
		})
	}
}

func TestLoad_NoIdeas(t *testing.T) {
	t.Parallel()

	for name, content := range map[string]string{
		"empty list":  "ideas: []\n",
		"missing key": "something_else: 1\n",
		"empty file":  "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := seedfile.Load(writeSeed(t, content))
			assert.ErrorIs(t, err, seedfile.ErrNoIdeas)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := seedfile.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := seedfile.Load(writeSeed(t, "ideas: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse seed file")
}
