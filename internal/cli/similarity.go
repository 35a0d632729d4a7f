package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/aisp/internal/convert"
)

// NewSimilarityCommand creates the similarity command: round-trip scoring.
func NewSimilarityCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "similarity <a> <b>",
		Short: "Score semantic similarity of two texts",
		Long: `Score the semantic similarity of two texts in [0,1].

The score is a weighted token overlap: logic-bearing words count double,
stop words half. Use it to validate round-trip conversions:

  aisp similarity "for all x in S" "$(aisp prose "$(aisp convert 'for all x in S')")"`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimilarity(cmd, rootOpts, args)
		},
	}

	return cmd
}

func runSimilarity(cmd *cobra.Command, opts *RootOptions, args []string) error {
	f := formatter(cmd, opts)

	score := convert.Similarity(args[0], args[1])

	if opts.Format == "json" {
		return f.Success(map[string]float64{"similarity": score})
	}

	fmt.Fprintf(f.Writer, "%.3f\n", score)
	return nil
}
