package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [substring]",
	Short: "List cards whose names contain a substring",
	Long: `Search lists every card name containing the substring, ignoring case.
The substring is matched literally, so "C++" or "a.b" have no special meaning.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		c, err := openCatalog()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		matches := c.LookupPartial(query)
		if len(matches) == 0 {
			fmt.Fprintf(out, "Found no matches for %s\n", query)
			return nil
		}

		fmt.Fprintf(out, "Found %d matches for %s:\n", len(matches), query)
		for _, name := range matches {
			fmt.Fprintln(out, name)
		}
		return nil
	},
}

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "List every card name in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCatalog()
		if err != nil {
			return err
		}

		for _, name := range c.AllNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(searchCmd)
	RootCmd.AddCommand(namesCmd)
}
