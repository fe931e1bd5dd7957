package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/hearthlodge/internal/export"
	"github.com/arcanaland/hearthlodge/internal/threat"
)

var threatsCmd = &cobra.Command{
	Use:   "threats [minion name]",
	Short: "List the cards that remove a minion on curve",
	Long: `Threats lists every minion, spell and weapon that can remove the given
minion if played on curve: its cost is at most the minion's cost and its
attack (or spell damage) is at least the minion's health.

Results are grouped by class and sorted by cost. Spell damage is read from
the card text and only fixed single-digit amounts are recognised.

Examples:
  hearthlodge threats Knife Juggler
  hearthlodge threats --xlsx juggler.xlsx "Knife Juggler"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		c, err := openCatalog()
		if err != nil {
			return err
		}

		threats, err := threat.NewResolver(c).Resolve(name)
		if err != nil {
			return err
		}
		groups := threats.Categorize()

		renderThreats(cmd.OutOrStdout(), threats.Target, groups)

		xlsxPath, _ := cmd.Flags().GetString("xlsx")
		if xlsxPath != "" {
			if err := export.ThreatsXLSX(xlsxPath, threats.Target, groups); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nWrote %s\n", xlsxPath)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(threatsCmd)

	threatsCmd.Flags().String("xlsx", "", "Also write the threats to an Excel workbook")
}
