package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nomoos/prismq-idea/idea"
	"github.com/nomoos/prismq-idea/logger"
)

// addOptions carries the add command's flag values.
type addOptions struct {
	typeTag         string
	title           string
	content         string
	description     string
	keywords        []string
	metaPairs       []string
	sourceID        string
	sourceURL       string
	sourceCreatedBy string
	sourceCreatedAt string
	score           int
	scoreSet        bool
	category        string
}

// newAddCommand inserts a single idea built from flags.
func newAddCommand() *cobra.Command {
	var opts addOptions

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add one idea to the store",
		Long: `Build an idea record from flags and insert it into the ideas database.
The source type selects the factory: text and audio/video sources carry
their body text, subtitles or transcription in --content.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.scoreSet = cmd.Flags().Changed("score")

			rec, err := buildRecord(opts)
			if err != nil {
				return err
			}

			deps, err := newCommandDeps()
			if err != nil {
				return err
			}
			defer deps.log.Sync()

			store, closeDB, err := deps.openIdeas(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			id, err := store.Insert(cmd.Context(), rec)
			if err != nil {
				return err
			}

			deps.log.Info("idea added",
				logger.Int64("id", id),
				logger.String("source_type", rec.SourceType.String()))
			fmt.Fprintf(cmd.OutOrStdout(), "Stored idea %d: %s\n", id, rec.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.typeTag, "type", string(idea.SourceUnknown), "source type: text, video, audio or unknown")
	cmd.Flags().StringVar(&opts.title, "title", "", "idea title (required)")
	cmd.Flags().StringVar(&opts.content, "content", "", "body text, subtitles or transcription")
	cmd.Flags().StringVar(&opts.description, "description", "", "short description")
	cmd.Flags().StringSliceVar(&opts.keywords, "keywords", nil, "comma-separated keywords")
	cmd.Flags().StringArrayVar(&opts.metaPairs, "meta", nil, "metadata entry as key=value (repeatable)")
	cmd.Flags().StringVar(&opts.sourceID, "source-id", "", "upstream identifier")
	cmd.Flags().StringVar(&opts.sourceURL, "source-url", "", "upstream URL")
	cmd.Flags().StringVar(&opts.sourceCreatedBy, "source-created-by", "", "upstream author or channel")
	cmd.Flags().StringVar(&opts.sourceCreatedAt, "source-created-at", "", "upstream creation timestamp")
	cmd.Flags().IntVar(&opts.score, "score", 0, "overall quality score")
	cmd.Flags().StringVar(&opts.category, "category", "", "primary category")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

// buildRecord converts flag values into a validated record.
func buildRecord(o addOptions) (*idea.Inspiration, error) {
	var recOpts []idea.Option
	if o.description != "" {
		recOpts = append(recOpts, idea.WithDescription(o.description))
	}
	if len(o.keywords) > 0 {
		recOpts = append(recOpts, idea.WithKeywords(o.keywords...))
	}
	if len(o.metaPairs) > 0 {
		meta, err := parseMetaPairs(o.metaPairs)
		if err != nil {
			return nil, err
		}
		recOpts = append(recOpts, idea.WithMetadata(meta))
	}
	if o.sourceID != "" {
		recOpts = append(recOpts, idea.WithSourceID(o.sourceID))
	}
	if o.sourceURL != "" {
		recOpts = append(recOpts, idea.WithSourceURL(o.sourceURL))
	}
	if o.sourceCreatedBy != "" {
		recOpts = append(recOpts, idea.WithSourceCreatedBy(o.sourceCreatedBy))
	}
	if o.sourceCreatedAt != "" {
		recOpts = append(recOpts, idea.WithSourceCreatedAt(o.sourceCreatedAt))
	}
	if o.scoreSet {
		recOpts = append(recOpts, idea.WithScore(o.score))
	}
	if o.category != "" {
		recOpts = append(recOpts, idea.WithCategory(o.category))
	}

	switch o.typeTag {
	case string(idea.SourceText):
		return idea.FromText(o.title, o.content, recOpts...)
	case string(idea.SourceVideo):
		return idea.FromVideo(o.title, o.content, recOpts...)
	case string(idea.SourceAudio):
		return idea.FromAudio(o.title, o.content, recOpts...)
	case string(idea.SourceUnknown):
		return idea.New(o.title, append(recOpts, idea.WithContent(o.content))...)
	default:
		_, err := idea.ParseSourceType(o.typeTag)
		return nil, err
	}
}

// parseMetaPairs splits repeated key=value flags into a metadata map.
func parseMetaPairs(pairs []string) (map[string]string, error) {
	meta := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("metadata must be key=value, got %q", pair)
		}
		meta[key] = strings.TrimSpace(value)
	}
	return meta, nil
}
