package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [card name]",
	Short: "Display the data record of a card",
	Long: `Show prints the raw data record of a card looked up by its exact name.
Use 'hearthlodge search' to find exact names.

Examples:
  hearthlodge show Fireball
  hearthlodge show --cards ./cards.yaml "Knife Juggler"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCatalog()
		if err != nil {
			return err
		}

		rec, err := c.LookupExact(strings.Join(args, " "))
		if err != nil {
			return err
		}

		renderRecord(cmd.OutOrStdout(), rec)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}
