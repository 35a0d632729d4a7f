package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/aisp/internal/document"
	"github.com/roach88/aisp/internal/store"
)

// DocOptions holds flags for the doc command.
type DocOptions struct {
	*RootOptions
	Tier      string
	Ambiguity float64
	Threshold float64
}

// NewDocCommand creates the doc command: tiered document conversion.
func NewDocCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DocOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "doc <prose>",
		Short: "Convert prose to a tiered AISP document",
		Long: `Convert prose to a complete AISP document.

The tier is detected from the prose unless forced with --tier. Standard
adds a header and meta block; Full adds type, rule, and function blocks
plus an evidence record. Full degrades to Standard when the prose has no
detectable structure. Pass "-" to read from stdin.

Example:
  aisp doc "Define a type User with id and name"
  aisp doc --tier full "Define a type User with id. Every id must be greater than zero."`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoc(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Tier, "tier", "", "output tier (minimal|standard|full); default auto-detect")
	cmd.Flags().Float64Var(&opts.Ambiguity, "ambiguity", document.DefaultAmbiguityThreshold, "ambiguity ceiling asserted in the meta block")
	cmd.Flags().Float64Var(&opts.Threshold, "threshold", document.DefaultConfidenceThreshold, "confidence threshold for the evidence verdict")

	return cmd
}

func runDoc(cmd *cobra.Command, opts *DocOptions, args []string) error {
	f := formatter(cmd, opts.RootOptions)

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	table, err := buildTable(opts.RootOptions, f)
	if err != nil {
		return err
	}

	var docOpts document.Options
	// Only a flag the caller actually set overrides the assembler default,
	// so an explicit --ambiguity 0 is honored.
	if cmd.Flags().Changed("ambiguity") {
		docOpts.AmbiguityThreshold = &opts.Ambiguity
	}
	if cmd.Flags().Changed("threshold") {
		docOpts.ConfidenceThreshold = &opts.Threshold
	}
	if opts.Tier != "" {
		tier, err := document.ParseTier(opts.Tier)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --tier", err)
		}
		docOpts.Tier = &tier
	}

	doc := document.NewAssembler(table, nil).Assemble(input, docOpts)

	if err := appendHistory(cmd.Context(), opts.RootOptions, store.Record{
		Direction:     store.DirectionToAISP,
		Tier:          string(doc.Tier),
		Input:         input,
		Output:        doc.Output,
		Confidence:    doc.Confidence,
		TokenRatio:    doc.TokenRatio,
		UnmappedCount: len(doc.Unmapped),
		Condition:     string(doc.Condition),
	}); err != nil {
		return err
	}

	if opts.Format == "json" {
		return f.Success(doc)
	}

	fmt.Fprintln(f.Writer, doc.Output)
	f.VerboseLog("tier: %s  confidence: %.2f  token ratio: %d%%", doc.Tier, doc.Confidence, doc.TokenRatio)
	if doc.Condition != "" {
		fmt.Fprintf(f.ErrWriter, "condition: %s\n", doc.Condition)
	}
	for _, u := range doc.Unmapped {
		fmt.Fprintf(f.ErrWriter, "unmapped: %s (position %d)\n", u.Text, u.Position)
	}
	return nil
}
