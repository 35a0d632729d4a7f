package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/aisp/internal/convert"
	"github.com/roach88/aisp/internal/store"
)

// NewConvertCommand creates the convert command: prose to minimal AISP.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <prose>",
		Short: "Convert prose to AISP notation",
		Long: `Convert plain English prose to AISP symbolic notation.

Unknown words pass through verbatim and are reported with a confidence
score. Pass "-" to read from stdin.

Example:
  aisp convert "for all x in S there exists y"
  echo "x implies y" | aisp convert -`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, rootOpts, args)
		},
	}

	return cmd
}

func runConvert(cmd *cobra.Command, opts *RootOptions, args []string) error {
	f := formatter(cmd, opts)

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	table, err := buildTable(opts, f)
	if err != nil {
		return err
	}

	res := convert.NewConverter(table).Convert(input)

	if err := appendHistory(cmd.Context(), opts, store.Record{
		Direction:     store.DirectionToAISP,
		Input:         input,
		Output:        res.AISP,
		Confidence:    res.Confidence,
		UnmappedCount: len(res.Unmapped),
	}); err != nil {
		return err
	}

	if opts.Format == "json" {
		return f.Success(res)
	}

	fmt.Fprintln(f.Writer, res.AISP)
	f.VerboseLog("confidence: %.2f (%d tokens)", res.Confidence, res.TokensTotal)
	for _, u := range res.Unmapped {
		fmt.Fprintf(f.ErrWriter, "unmapped: %s (position %d)\n", u.Text, u.Position)
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(f.ErrWriter, "warning [%s]: %q -> %s\n", w.Code, w.Text, w.Symbol)
	}
	return nil
}
