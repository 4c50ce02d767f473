package cli

import (
	"github.com/snoozie-v/dinner-sub000/internal/core/recipe"
	"github.com/snoozie-v/dinner-sub000/internal/infrastructure/store"
	"github.com/snoozie-v/dinner-sub000/internal/pkg/common"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	repairDryRun  bool
	repairApply   bool
	repairVerbose bool
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Fix malformed ingredient data left by earlier imports",
	Long: `Scans the library for ingredient artifacts (null quantities,
over-precise decimals, mangled names) and repairs them. Runs in dry-run
mode by default; pass --apply to write the repaired library back.
Repairing an already-clean library changes nothing.`,
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().BoolVar(&repairDryRun, "dry-run", true, "preview fixes without writing")
	repairCmd.Flags().BoolVar(&repairApply, "apply", false, "write repairs back to the library")
	repairCmd.Flags().BoolVarP(&repairVerbose, "verbose", "v", false, "print each fix with before/after values")
	rootCmd.AddCommand(repairCmd)
}

func runRepair(cmd *cobra.Command, args []string) error {
	library := store.NewLibrary(cfg.Library.Path)

	recipes, err := library.LoadStrict()
	if err != nil {
		return err
	}

	repaired, fixes := recipe.RepairLibrary(recipes)

	byKind := map[string]int{}
	for _, f := range fixes {
		byKind[f.Kind]++
		if repairVerbose {
			cmd.Printf("  [%s] %s / %q: %q -> %q\n", f.Kind, f.RecipeName, f.Ingredient, f.Before, f.After)
		}
	}

	cmd.Printf("%d recipes scanned, %d fixes proposed (%d null-quantity, %d long-decimal, %d malformed-name).\n",
		len(recipes), len(fixes),
		byKind[recipe.FixNullQuantity], byKind[recipe.FixLongDecimal], byKind[recipe.FixMalformedName])

	// An explicit --dry-run outranks --apply.
	if !repairApply || (cmd.Flags().Changed("dry-run") && repairDryRun) {
		cmd.Println("Dry run: no changes written. Re-run with --apply to persist.")
		return nil
	}

	if err := library.Replace(repaired); err != nil {
		return err
	}

	common.LogInfo("repair finished",
		zap.Int("recipes", len(recipes)),
		zap.Int("fixes", len(fixes)),
	)
	cmd.Println("Repairs written.")
	return nil
}
