package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/aisp/internal/convert"
	"github.com/roach88/aisp/internal/store"
)

// NewProseCommand creates the prose command: AISP back to prose.
func NewProseCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prose <aisp>",
		Short: "Convert AISP notation back to prose",
		Long: `Convert AISP symbolic notation back to plain English prose.

Every symbol expands to its canonical phrase; block tags and structural
delimiters are preserved verbatim. Malformed block structure is a hard
error. Pass "-" to read from stdin.

Example:
  aisp prose "∀x∈S"
  aisp prose - < doc.aisp`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProse(cmd, rootOpts, args)
		},
	}

	return cmd
}

func runProse(cmd *cobra.Command, opts *RootOptions, args []string) error {
	f := formatter(cmd, opts)

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	table, err := buildTable(opts, f)
	if err != nil {
		return err
	}

	out, err := convert.NewConverter(table).ToProse(input)
	if err != nil {
		if convert.IsMalformedInput(err) {
			if ferr := f.Error(string(convert.CodeMalformedInput), err.Error(), nil); ferr != nil {
				return ferr
			}
			return WrapExitError(ExitFailure, "malformed AISP input", err)
		}
		return WrapExitError(ExitCommandError, "reverse conversion failed", err)
	}

	if err := appendHistory(cmd.Context(), opts, store.Record{
		Direction:  store.DirectionToProse,
		Input:      input,
		Output:     out,
		Confidence: 1.0,
	}); err != nil {
		return err
	}

	if opts.Format == "json" {
		return f.Success(map[string]string{"prose": out})
	}

	fmt.Fprintln(f.Writer, out)
	return nil
}
