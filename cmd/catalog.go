package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/arcanaland/hearthlodge/internal/catalog"
	"github.com/arcanaland/hearthlodge/internal/config"
)

// catalogCmd represents the catalog command group
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage card datasets in your catalog library",
	Long:  `Commands for managing card datasets in your catalog library.`,
}

// catalogListCmd represents the catalog ls command
var catalogListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available card datasets in your catalog library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetCatalogLibraryPath()

		// Check if catalog library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Catalog library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'hearthlodge catalog init' to create it.")
			return nil
		}

		defaultCatalog, err := config.GetDefaultCatalog()
		if err != nil {
			return errors.Wrap(err, "getting default catalog")
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return errors.Wrap(err, "reading catalog library")
		}

		found := 0
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			switch filepath.Ext(entry.Name()) {
			case ".json", ".yaml", ".yml":
			default:
				continue
			}

			c, err := catalog.ReadFile(filepath.Join(libraryPath, entry.Name()), logger)
			if err != nil {
				// Not a valid dataset, skip
				continue
			}
			found++

			if entry.Name() == defaultCatalog {
				fmt.Fprintf(out, "* %s (%d cards) [DEFAULT]\n", entry.Name(), c.Len())
			} else {
				fmt.Fprintf(out, "  %s (%d cards)\n", entry.Name(), c.Len())
			}
		}

		if found == 0 {
			fmt.Fprintln(out, "No card datasets found in your catalog library.")
			fmt.Fprintln(out, "You can add datasets by copying them to:", libraryPath)
		}
		return nil
	},
}

// catalogSetDefaultCmd represents the catalog set-default command
var catalogSetDefaultCmd = &cobra.Command{
	Use:   "set-default [name]",
	Short: "Set the default card dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		path, err := config.GetCatalogPath(name)
		if err != nil {
			return err
		}

		// Try to load the dataset to make sure it's valid
		if _, err := catalog.ReadFile(path, logger); err != nil {
			return errors.Wrap(err, "not a valid card dataset")
		}

		if err := config.SetDefaultCatalog(name); err != nil {
			return errors.Wrap(err, "setting default catalog")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default catalog set to: %s\n", name)
		return nil
	},
}

// catalogInitCmd represents the catalog init command
var catalogInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the catalog library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetCatalogLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return errors.Wrap(err, "creating catalog library")
		}

		fmt.Fprintln(out, "Catalog library initialized at:", libraryPath)
		fmt.Fprintln(out, "Copy cards.collectible.json from hearthstonejson.com into this directory.")

		if _, err := config.LoadConfig(); err != nil {
			return errors.Wrap(err, "initializing config")
		}

		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogSetDefaultCmd)
	catalogCmd.AddCommand(catalogInitCmd)
}
