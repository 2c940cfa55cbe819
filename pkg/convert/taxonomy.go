package convert

import (
	"context"

	"github.com/geneflow/taxmerge/pkg/logging"
	"github.com/geneflow/taxmerge/pkg/tabular"
)

// Reference taxonomy column names. The input BIN table uses lower-case
// rank names keyed by "bin"; the output is accession-keyed with
// "superkingdom" standing in for kingdom, matching what the downstream
// metabarcoding tools expect.
var (
	binColumns    = []string{"bin", "kingdom", "phylum", "class", "order", "family", "genus", "species"}
	outputColumns = []string{"Accession", "superkingdom", "phylum", "class", "order", "family", "genus", "species"}
)

// BuildTaxonomyTable joins a cleaned-header mapping with a BIN taxonomy
// table into an accession-keyed taxonomy table, one row per cleaned
// process ID whose BIN the reference table knows. BINs without taxonomy
// are collected and reported, not errors.
func BuildTaxonomyTable(ctx context.Context, mapping *Mapping, bins *tabular.Table, file string) (*tabular.Table, []string, error) {
	logger := logging.FromContext(ctx)

	if err := bins.Require(file, binColumns...); err != nil {
		return nil, nil, err
	}

	// Last row wins on duplicate BINs, mirroring a keyed overwrite load.
	byBIN := make(map[string]int, bins.Len())
	for i := 0; i < bins.Len(); i++ {
		byBIN[bins.Cell(i, "bin")] = i
	}
	logger.Info().Int("bins", len(byBIN)).Msg("Indexed BIN taxonomy")

	out := tabular.New(outputColumns...)
	var missing []string
	seenMissing := make(map[string]bool)
	for _, id := range mapping.IDs {
		bin := mapping.BIN(id)
		row, ok := byBIN[bin]
		if !ok {
			if !seenMissing[bin] {
				seenMissing[bin] = true
				missing = append(missing, bin)
			}
			continue
		}
		out.Append([]string{
			id,
			bins.Cell(row, "kingdom"),
			bins.Cell(row, "phylum"),
			bins.Cell(row, "class"),
			bins.Cell(row, "order"),
			bins.Cell(row, "family"),
			bins.Cell(row, "genus"),
			bins.Cell(row, "species"),
		})
	}

	if len(missing) > 0 {
		logger.Warn().Int("bins", len(missing)).Msg("Missing taxonomy for some BINs")
	}
	logger.Info().Int("records", out.Len()).Msg("Built accession taxonomy table")
	return out, missing, nil
}
