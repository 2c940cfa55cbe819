package cmd

import (
	"github.com/spf13/cobra"

	"github.com/geneflow/taxmerge/pkg/logging"
	"github.com/geneflow/taxmerge/pkg/reconcile"
	"github.com/geneflow/taxmerge/pkg/tabular"
)

var combineFlags struct {
	key     string
	labelA  string
	labelB  string
	workers int
}

// combineCmd reconciles two identification tables into one consensus table.
var combineCmd = &cobra.Command{
	Use:   "combine <table-a> <table-b> <output>",
	Short: "Reconcile two identification tables into one consensus table",
	Long: `Combine joins two specimen-keyed identification tables on their shared
identifier column and reconciles each matched pair into a single consensus
taxonomic call, reporting which source it came from alongside both
sources' diagnostic columns.

The join is driven by the first table: its rows without a partner pass
through verbatim, while unmatched rows of the second table are dropped.
The output is complete over table A only.

Examples:
  taxmerge combine blast_results.csv bold_results.csv consensus.csv
  taxmerge combine a.csv b.csv out.csv --label-a MIDORI --label-b BOLD
  taxmerge combine a.csv b.csv out.csv --workers 8`,
	Args: cobra.ExactArgs(3),
	RunE: runCombine,
}

func init() {
	rootCmd.AddCommand(combineCmd)

	combineCmd.Flags().StringVar(&combineFlags.key, "key", reconcile.DefaultKeyColumn,
		"Shared specimen identifier column")
	combineCmd.Flags().StringVar(&combineFlags.labelA, "label-a", "A",
		"Name of the first source, used as source tag and diagnostic column prefix")
	combineCmd.Flags().StringVar(&combineFlags.labelB, "label-b", "B",
		"Name of the second source, used as source tag and diagnostic column prefix")
	combineCmd.Flags().IntVar(&combineFlags.workers, "workers", 1,
		"Number of goroutines reconciling rows in parallel")
}

func runCombine(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)
	pathA, pathB, outPath := args[0], args[1], args[2]

	tableA, err := tabular.ReadFile(pathA)
	if err != nil {
		return err
	}
	logger.Info().Str("file", pathA).Int("rows", tableA.Len()).Msg("Loaded table A")

	tableB, err := tabular.ReadFile(pathB)
	if err != nil {
		return err
	}
	logger.Info().Str("file", pathB).Int("rows", tableB.Len()).Msg("Loaded table B")

	driver := &reconcile.Driver{
		Key:     combineFlags.key,
		LabelA:  combineFlags.labelA,
		LabelB:  combineFlags.labelB,
		Workers: combineFlags.workers,
	}
	result, err := driver.Run(ctx, tableA, tableB)
	if err != nil {
		return err
	}

	if err := tabular.WriteFile(result.Table, outPath); err != nil {
		return err
	}
	logger.Info().Str("file", outPath).Int("rows", result.Table.Len()).Msg("Wrote consensus table")
	return nil
}
