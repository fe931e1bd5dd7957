package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var minionsCmd = &cobra.Command{
	Use:   "minions [stat=value...]",
	Short: "List minions with exact stats",
	Long: `Minions lists the minions whose stats equal every given value.
Supported stats are attack, health and cost.

Examples:
  hearthlodge minions attack=4
  hearthlodge minions cost=3 health=3`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria, err := parseCriteria(args)
		if err != nil {
			return err
		}

		c, err := openCatalog()
		if err != nil {
			return err
		}

		minions, err := c.FilterMinions(criteria)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(minions) == 0 {
			fmt.Fprintln(out, "No minions match.")
			return nil
		}
		for _, m := range minions {
			fmt.Fprintln(out, m.String())
		}
		return nil
	},
}

// parseCriteria turns ["attack=4", "cost=3"] into a criteria map
func parseCriteria(args []string) (map[string]int, error) {
	criteria := make(map[string]int, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, errors.Errorf("%q doesn't compute: expected stat=value", arg)
		}
		switch key {
		case "attack", "health", "cost":
		default:
			return nil, errors.Errorf("%q doesn't compute: stat must be attack, health or cost", arg)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, errors.Errorf("%q doesn't compute: %s is not an integer", arg, value)
		}
		criteria[key] = n
	}
	return criteria, nil
}

func init() {
	RootCmd.AddCommand(minionsCmd)
}
