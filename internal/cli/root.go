package cli

import (
	"fmt"
	"os"

	"github.com/snoozie-v/dinner-sub000/internal/infrastructure/config"
	"github.com/snoozie-v/dinner-sub000/internal/pkg/common"

	"github.com/spf13/cobra"
)

// cfg is loaded once before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "dinner",
	Short: "Recipe library import and maintenance tools",
	Long: `dinner imports recipes from web pages via schema.org JSON-LD markup,
normalizes them into the recipe library, and keeps the library consistent
with repair and metadata-update passes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded

		if err := common.InitLogger(cfg.LogLevel); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		common.Sync()
	},
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
