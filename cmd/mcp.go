package cmd

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	lodgemcp "github.com/arcanaland/hearthlodge/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the card queries as MCP tools over stdio",
	Long: `Mcp starts a Model Context Protocol server on stdin/stdout exposing the
resolve_threats, lookup_card, search_cards and filter_minions tools for the
loaded card dataset. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCatalog()
		if err != nil {
			return err
		}

		return server.ServeStdio(lodgemcp.NewServer(c, Version))
	},
}

func init() {
	RootCmd.AddCommand(mcpCmd)
}
