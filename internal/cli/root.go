package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/aisp/internal/rosetta"
	"github.com/roach88/aisp/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose     bool
	Format      string // "json" | "text"
	Mappings    string // optional YAML mapping pack
	MappingsDir string // optional directory of CUE mapping packs
	History     string // optional SQLite history database
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the aisp CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "aisp",
		Short: "aisp - prose / AISP notation converter",
		Long:  "Bidirectional converter between plain English prose and AISP symbolic notation.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Mappings, "mappings", "", "extra mapping pack (YAML file)")
	cmd.PersistentFlags().StringVar(&opts.MappingsDir, "mappings-dir", "", "extra mapping packs (CUE directory)")
	cmd.PersistentFlags().StringVar(&opts.History, "history", "", "record conversions to SQLite database at path")

	// Add subcommands
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewProseCommand(opts))
	cmd.AddCommand(NewDocCommand(opts))
	cmd.AddCommand(NewSimilarityCommand(opts))
	cmd.AddCommand(NewMappingsCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// formatter builds an OutputFormatter wired to the command's streams.
func formatter(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// buildTable assembles the mapping table: the built-in Rosetta Stone merged
// with any YAML and CUE packs from the global flags.
func buildTable(opts *RootOptions, f *OutputFormatter) (*rosetta.Table, error) {
	entries := rosetta.DefaultEntries()

	if opts.Mappings != "" {
		fh, err := os.Open(opts.Mappings)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to open mapping pack", err)
		}
		extra, err := rosetta.LoadYAML(fh)
		fh.Close()
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load mapping pack", err)
		}
		f.VerboseLog("loaded %d mappings from %s", len(extra), opts.Mappings)
		entries = rosetta.Merge(entries, extra)
	}

	if opts.MappingsDir != "" {
		extra, errs := LoadCUEMappings(opts.MappingsDir, LoadModeFailFast)
		if len(errs) > 0 {
			return nil, WrapExitError(ExitCommandError, "failed to load CUE mapping packs", errs[0])
		}
		f.VerboseLog("loaded %d mappings from %s", len(extra), opts.MappingsDir)
		entries = rosetta.Merge(entries, extra)
	}

	table, err := rosetta.NewTable(entries)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid mapping table", err)
	}
	return table, nil
}

// readInput returns the first positional argument, or stdin when it is "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", WrapExitError(ExitCommandError, "failed to read stdin", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// appendHistory records one conversion when the global --history flag is set.
// History failures are command errors; the conversion output has already been
// produced by then, so the record is written before printing.
func appendHistory(ctx context.Context, opts *RootOptions, rec store.Record) error {
	if opts.History == "" {
		return nil
	}
	st, err := store.Open(opts.History)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open history database", err)
	}
	defer st.Close()

	if _, err := st.Append(ctx, rec); err != nil {
		return WrapExitError(ExitCommandError, "failed to record history", err)
	}
	return nil
}
