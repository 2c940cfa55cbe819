package cmd

import (
	"github.com/spf13/cobra"

	"github.com/geneflow/taxmerge/pkg/convert"
	"github.com/geneflow/taxmerge/pkg/logging"
	"github.com/geneflow/taxmerge/pkg/tabular"
)

var convertFlags struct {
	input    string
	taxonomy string
	fasta    string
	table    string
}

// convertCmd rewrites reference FASTA headers and builds the matching
// accession taxonomy table.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a curated reference export for BLAST-style tooling",
	Long: `Convert rewrites ProcessID|BIN FASTA headers to bare, deduplicated
process IDs and joins the resulting ID-to-BIN mapping with a BIN taxonomy
TSV into an accession-keyed taxonomy table.

The cleaned FASTA is ready for external database tooling; building the
search database itself is left to that tooling.

Examples:
  taxmerge convert -i bold.fasta -t taxonomy.tsv --fasta clean.fasta --table taxonomy.csv`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertFlags.input, "input", "i", "",
		"Input FASTA file with ProcessID|BIN headers (required)")
	convertCmd.Flags().StringVarP(&convertFlags.taxonomy, "taxonomy", "t", "",
		"Input taxonomy TSV file with BIN mappings (required)")
	convertCmd.Flags().StringVar(&convertFlags.fasta, "fasta", "clean.fasta",
		"Output FASTA file with cleaned headers")
	convertCmd.Flags().StringVar(&convertFlags.table, "table", "taxonomy.csv",
		"Output accession taxonomy table")
	_ = convertCmd.MarkFlagRequired("input")
	_ = convertCmd.MarkFlagRequired("taxonomy")
}

func runConvert(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	// Load the BIN taxonomy before writing anything so a bad input
	// aborts with no partial output.
	bins, err := tabular.ReadFile(convertFlags.taxonomy)
	if err != nil {
		return err
	}
	logger.Info().Str("file", convertFlags.taxonomy).Int("rows", bins.Len()).Msg("Loaded BIN taxonomy")

	mapping, err := convert.CleanHeaders(ctx, convertFlags.input, convertFlags.fasta, convert.NewDedup())
	if err != nil {
		return err
	}

	table, missing, err := convert.BuildTaxonomyTable(ctx, mapping, bins, convertFlags.taxonomy)
	if err != nil {
		return err
	}
	if len(missing) > 0 && len(missing) <= 10 {
		logger.Warn().Strs("bins", missing).Msg("BINs without taxonomy")
	}

	if err := tabular.WriteFile(table, convertFlags.table); err != nil {
		return err
	}
	logger.Info().Str("file", convertFlags.table).Int("rows", table.Len()).Msg("Wrote accession taxonomy table")
	return nil
}
