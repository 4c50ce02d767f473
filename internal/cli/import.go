package cli

import (
	"context"
	"fmt"

	"github.com/snoozie-v/dinner-sub000/internal/core/importer"
	"github.com/snoozie-v/dinner-sub000/internal/infrastructure/fetch"
	"github.com/snoozie-v/dinner-sub000/internal/infrastructure/store"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [url-file]",
	Short: "Import recipes from a newline-delimited URL list",
	Long: `Fetches each URL through the page-fetch service, extracts the
schema.org Recipe markup, and appends normalized recipes to the library.
Lines starting with # are ignored. Per-URL failures are reported at the
end without aborting the batch.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	urlFile := cfg.Import.URLFile
	if len(args) > 0 {
		urlFile = args[0]
	}

	urls, err := importer.ReadURLFile(urlFile)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		cmd.Println("No URLs to import.")
		return nil
	}

	pageCache, err := fetch.NewPageCache(&cfg.PageCache)
	if err != nil {
		return fmt.Errorf("failed to initialize page cache: %w", err)
	}
	if pageCache != nil {
		defer pageCache.Close()
	}

	service := importer.NewService(
		cfg,
		fetch.NewClient(&cfg.Fetch),
		pageCache,
		store.NewLibrary(cfg.Library.Path),
	)

	summary, err := service.Run(context.Background(), urls)
	if err != nil {
		return err
	}

	cmd.Printf("Imported %d recipes (%d skipped, %d failed).\n",
		summary.Imported, summary.Skipped, len(summary.Failures))

	if len(summary.Failures) > 0 {
		cmd.Println("\nFailures:")
		for _, f := range summary.Failures {
			cmd.Printf("  %s: %s\n", f.URL, f.Reason)
		}
	}

	return nil
}
