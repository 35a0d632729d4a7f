package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/aisp/internal/rosetta"
)

// MappingsOptions holds flags for the mappings command.
type MappingsOptions struct {
	*RootOptions
	Category string
}

// NewMappingsCommand creates the mappings command: table introspection.
func NewMappingsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MappingsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "mappings",
		Short: "List the active mapping table",
		Long: `List the active mapping table: built-in Rosetta Stone plus any
loaded packs. Canonical phrases are marked with *.

Example:
  aisp mappings
  aisp mappings --category logic
  aisp mappings --mappings extra.yaml --category math`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMappings(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", "", "restrict to one category")

	return cmd
}

// mappingsSummary is the JSON payload of the mappings command.
type mappingsSummary struct {
	Symbols  int             `json:"symbols"`
	Mappings int             `json:"mappings"`
	Entries  []rosetta.Entry `json:"entries"`
}

func runMappings(cmd *cobra.Command, opts *MappingsOptions) error {
	f := formatter(cmd, opts.RootOptions)

	table, err := buildTable(opts.RootOptions, f)
	if err != nil {
		return err
	}

	f.VerboseLog("categories: %v", table.Categories())

	var entries []rosetta.Entry
	if opts.Category != "" {
		cat := rosetta.Category(opts.Category)
		if !rosetta.ValidCategories[cat] {
			return NewExitError(ExitCommandError, fmt.Sprintf("unknown category %q", opts.Category))
		}
		entries = table.EntriesByCategory(cat)
	} else {
		entries = table.Entries()
	}

	if opts.Format == "json" {
		return f.Success(mappingsSummary{
			Symbols:  table.SymbolCount(),
			Mappings: table.MappingCount(),
			Entries:  entries,
		})
	}

	w := tabwriter.NewWriter(f.Writer, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tCATEGORY\tPHRASE")
	for _, e := range entries {
		marker := ""
		if e.Canonical {
			marker = " *"
		}
		fmt.Fprintf(w, "%s\t%s\t%s%s\n", e.Symbol, e.Category, e.Phrase, marker)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(f.Writer, "\n%d symbols, %d mappings\n", table.SymbolCount(), table.MappingCount())
	return nil
}
