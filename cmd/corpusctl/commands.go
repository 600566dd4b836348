package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/akolanti/ProposalFeedback/internal/adapter"
	"github.com/akolanti/ProposalFeedback/internal/api"
	"github.com/akolanti/ProposalFeedback/internal/config"
	"github.com/akolanti/ProposalFeedback/internal/domain/commonModels"
	"github.com/akolanti/ProposalFeedback/internal/rag"
	"github.com/akolanti/ProposalFeedback/internal/rag/ingest"
	"github.com/akolanti/ProposalFeedback/internal/rag/llm/backend"
	"github.com/akolanti/ProposalFeedback/internal/rag/prompt"
	"github.com/akolanti/ProposalFeedback/internal/rag/retrieval"
	"github.com/akolanti/ProposalFeedback/internal/rag/rubric"
	"github.com/akolanti/ProposalFeedback/pkg/logger_i"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	corpusDir  string
	topK       int
	verbose    bool
	request    api.FeedbackRequest
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "corpusctl",
		Short:         "Inspect the reference corpus and try the feedback pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger_i.InitText(cmd.ErrOrStderr(), level)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "config.yaml", "optional YAML settings file")
	root.PersistentFlags().StringVar(&opts.corpusDir, "dir", "", "corpus directory, overrides settings")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newDocsCmd(opts), newSearchCmd(opts), newCheckCmd(opts), newFeedbackCmd(opts))
	return root
}

func newDocsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "List loaded documents with their paragraph counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, corpus, err := opts.load(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, doc := range corpus.Documents() {
				fmt.Fprintf(out, "%s\t%s\t%d\n", doc.ID, doc.ContentType, len(doc.Paragraphs))
			}
			fmt.Fprintf(out, "%d documents, %d paragraphs\n", corpus.Len(), corpus.ParagraphCount())
			return nil
		},
	}
}

func newSearchCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Score corpus paragraphs against a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, corpus, err := opts.load(cmd)
			if err != nil {
				return err
			}
			snippets := retrieval.Retrieve(corpus, strings.Join(args, " "), opts.topK)
			out := cmd.OutOrStdout()
			if len(snippets) == 0 {
				fmt.Fprintln(out, "no matching paragraphs")
				return nil
			}
			for _, s := range snippets {
				fmt.Fprintf(out, "%d\t%s\t%s\n", s.Score, s.DocumentID, oneLine(s.Text))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.topK, "top", "k", config.DefaultTopK, "maximum number of snippets")
	return cmd
}

func newCheckCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the rubric on a proposal without calling the model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := rubric.Validate(adapter.ToSubmission(opts.request))
			out := cmd.OutOrStdout()
			if result.Empty() {
				fmt.Fprintln(out, "all fields pass")
				return nil
			}
			for _, label := range result.Labels() {
				fmt.Fprintf(out, "missing: %s\n", label)
			}
			return nil
		},
	}
	submissionFlags(cmd, opts)
	return cmd
}

func newFeedbackCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Run the whole feedback pipeline and print the JSON response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, corpus, err := opts.load(cmd)
			if err != nil {
				return err
			}
			composer, err := prompt.NewComposer()
			if err != nil {
				return err
			}
			service := rag.NewService(rag.StaticCorpus(corpus), composer, backend.New(cmd.Context(), settings.Completion), rag.Options{
				Keywords: settings.Retrieval.Keywords,
				TopK:     settings.Retrieval.TopK,
			})

			record := service.Assemble(cmd.Context(), adapter.ToSubmission(opts.request))
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			encoder.SetEscapeHTML(false)
			return encoder.Encode(adapter.ToFeedbackResponse(record))
		},
	}
	submissionFlags(cmd, opts)
	cmd.Flags().StringVar(&opts.request.Mode, "mode", "", "feedback mode: default or cause")
	return cmd
}

func submissionFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVar(&opts.request.Problem, "problem", "", "문제상황")
	cmd.Flags().StringVar(&opts.request.Proposal, "proposal", "", "제안하는 내용")
	cmd.Flags().StringVar(&opts.request.Reason, "reason", "", "제안하는 이유")
}

func (o *options) load(cmd *cobra.Command) (config.Settings, commonModels.Corpus, error) {
	settings, err := config.Load(o.configPath)
	if err != nil {
		return settings, commonModels.Corpus{}, fmt.Errorf("load settings: %w", err)
	}
	if o.corpusDir != "" {
		settings.CorpusDir = o.corpusDir
	}

	corpus, outcome := ingest.LoadCorpus(cmd.Context(), settings.CorpusDir)
	switch outcome {
	case ingest.Loaded:
	case ingest.Cancelled:
		return settings, corpus, fmt.Errorf("corpus load cancelled")
	default:
		fmt.Fprintf(cmd.ErrOrStderr(), "corpus %s: %s, continuing with an empty corpus\n", settings.CorpusDir, outcome)
	}
	return settings, corpus, nil
}

func oneLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
