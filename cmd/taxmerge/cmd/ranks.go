package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/geneflow/taxmerge/internal/cmd/globals"
	"github.com/geneflow/taxmerge/internal/cmd/output"
	"github.com/geneflow/taxmerge/pkg/taxonomy"
)

// ranksCmd prints the rank hierarchy every algorithm in this tool
// depends on.
var ranksCmd = &cobra.Command{
	Use:   "ranks",
	Short: "Print the taxonomic rank hierarchy",
	RunE:  runRanks,
}

func init() {
	rootCmd.AddCommand(ranksCmd)
}

func runRanks(cmd *cobra.Command, _ []string) error {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}
	if _, err := output.ParseFormat(flags.Output); err != nil {
		return err
	}
	format := output.DetectFormat(flags.Output)

	switch format {
	case output.FormatJSON, output.FormatYAML:
		type rankInfo struct {
			Rank  string `json:"rank"`
			Depth int    `json:"depth"`
		}
		infos := make([]rankInfo, len(taxonomy.Ranks))
		for i, r := range taxonomy.Ranks {
			infos[i] = rankInfo{Rank: r.String(), Depth: i + 1}
		}
		return output.NewFormatter(format).Format(os.Stdout, infos)
	default:
		data := output.Data{Headers: output.TitleHeaders([]string{"rank", "depth"})}
		for i, r := range taxonomy.Ranks {
			data.Rows = append(data.Rows, []string{r.String(), fmt.Sprintf("%d", i+1)})
		}
		return output.NewFormatter(output.FormatTable).Format(os.Stdout, data)
	}
}
