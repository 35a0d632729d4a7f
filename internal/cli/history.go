package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/aisp/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
}

// NewHistoryCommand creates the history command: recent conversion records.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent conversions",
		Long: `List recent conversion records from the history database, newest
first. The database is the one named by --db, falling back to the global
--history flag.

Example:
  aisp history --db ./aisp.db
  aisp --history ./aisp.db history --limit 5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to history database (defaults to --history)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum records to list")

	return cmd
}

func runHistory(cmd *cobra.Command, opts *HistoryOptions) error {
	f := formatter(cmd, opts.RootOptions)

	path := opts.Database
	if path == "" {
		path = opts.History
	}
	if path == "" {
		return NewExitError(ExitCommandError, "no history database: pass --db or the global --history flag")
	}

	st, err := store.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open history database", err)
	}
	defer st.Close()

	recs, err := st.Recent(cmd.Context(), opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read history", err)
	}

	if opts.Format == "json" {
		return f.Success(recs)
	}

	if len(recs) == 0 {
		fmt.Fprintln(f.Writer, "no conversions recorded")
		return nil
	}
	for _, r := range recs {
		line := fmt.Sprintf("%s  %-8s  conf=%.2f  %s",
			r.CreatedAt.UTC().Format(time.RFC3339), r.Direction, r.Confidence, summarize(r.Input))
		if r.Tier != "" {
			line += fmt.Sprintf("  tier=%s", r.Tier)
		}
		fmt.Fprintln(f.Writer, line)
	}
	return nil
}

// summarize truncates long inputs for the one-line text listing.
func summarize(s string) string {
	const max = 48
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
