package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arcanaland/hearthlodge/internal/catalog"
	"github.com/arcanaland/hearthlodge/internal/config"
)

// Version is set at build time
var Version = "dev"

var (
	cardsFlag    string
	logLevelFlag string

	logger = zap.NewNop()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "hearthlodge",
	Short: "Find the cards that answer a minion on curve",
	Long: `Hearthlodge loads a Hearthstone card dataset (such as hearthstonejson's
cards.collectible.json) and answers one question: which minions, spells and
weapons can remove a given minion if played on curve?`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cardsFlag, "cards", "",
		"Card dataset from your catalog library or a path (defaults to the configured catalog)")
	RootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: debug, info, warn or error (defaults to the configured level)")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func setupLogger(cmd *cobra.Command, args []string) error {
	level := logLevelFlag
	if level == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		level = cfg.LogLevel
	}

	l, err := newLogger(level)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// newLogger builds a console logger writing to stderr
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	return cfg.Build()
}

// openCatalog loads the dataset named by --cards, or the configured default
func openCatalog() (*catalog.Catalog, error) {
	name := cardsFlag
	if name == "" {
		defaultCatalog, err := config.GetDefaultCatalog()
		if err != nil {
			return nil, errors.Wrap(err, "getting default catalog")
		}
		name = defaultCatalog
	}

	path, err := config.GetCatalogPath(name)
	if err != nil {
		return nil, err
	}

	c, err := catalog.ReadFile(path, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog loaded", zap.String("path", path), zap.Int("cards", c.Len()))
	return c, nil
}
