package cli

import (
	"github.com/snoozie-v/dinner-sub000/internal/core/recipe"
	"github.com/snoozie-v/dinner-sub000/internal/infrastructure/store"
	"github.com/snoozie-v/dinner-sub000/internal/pkg/common"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	updateDryRun  bool
	updateApply   bool
	updateVerbose bool
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Re-infer meal types and tags across the library",
	Long: `Re-runs the classifier over every recipe and merges newly inferred
meal types and tags. The update is purely additive: existing labels are
never removed. Runs in dry-run mode by default; pass --apply to write.`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&updateDryRun, "dry-run", true, "preview additions without writing")
	updateCmd.Flags().BoolVar(&updateApply, "apply", false, "write metadata updates back to the library")
	updateCmd.Flags().BoolVarP(&updateVerbose, "verbose", "v", false, "print each proposed addition")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	library := store.NewLibrary(cfg.Library.Path)

	recipes, err := library.LoadStrict()
	if err != nil {
		return err
	}

	updated, changes := recipe.UpdateLibrary(recipes)

	byKind := map[string]int{}
	for _, c := range changes {
		byKind[c.Kind]++
		if updateVerbose {
			cmd.Printf("  [%s] %s: +%s\n", c.Kind, c.RecipeName, c.Value)
		}
	}

	cmd.Printf("%d recipes scanned, %d additions proposed (%d meal types, %d tags).\n",
		len(recipes), len(changes), byKind[recipe.ChangeMealType], byKind[recipe.ChangeTag])

	// An explicit --dry-run outranks --apply.
	if !updateApply || (cmd.Flags().Changed("dry-run") && updateDryRun) {
		cmd.Println("Dry run: no changes written. Re-run with --apply to persist.")
		return nil
	}

	if err := library.Replace(updated); err != nil {
		return err
	}

	common.LogInfo("update finished",
		zap.Int("recipes", len(recipes)),
		zap.Int("changes", len(changes)),
	)
	cmd.Println("Metadata updates written.")
	return nil
}
