package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"calc-suite/domain"
)

var toolDescriptions = map[domain.Tool]string{
	domain.ToolMortgage:    "Mortgage payment, PMI, property tax and amortization",
	domain.ToolAntler:      "Boone and Crockett style antler score",
	domain.ToolStockOption: "ISO/NSO exercise cost, taxes and exit profit",
	domain.ToolCRS:         "Express Entry Comprehensive Ranking System score",
	domain.ToolFSWP:        "Federal Skilled Worker 67-point eligibility grid",
	domain.ToolHELOC:       "HELOC payments and velocity banking payoff",
	domain.ToolSonnet:      "Seeded Shakespearean sonnet generator",
	domain.ToolSonnetScan:  "Syllable and rhyme scheme analysis of a poem",
	domain.ToolSupplement:  "Supplement Facts label with %DV",
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available calculators",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, t := range domain.Tools() {
			fmt.Fprintf(w, "%s\t%s\n", t, toolDescriptions[t])
		}
		return w.Flush()
	},
}
