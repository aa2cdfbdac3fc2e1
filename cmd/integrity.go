package cmd

import (
	"context"
	"errors"
	"fmt"

	"follow-checker/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on storage and the result cache",
	Long:  `Checks if the storage bucket has the required folder structure and if the result cache table matches the expected schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// cacheCmd represents the integrity cache command
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Check the result cache schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, cacheCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket and missing folders")
}

func runIntegrityChecks(ctx context.Context, runStructure, runCache bool) error {
	// The schema check must see the table as it is, so no migration here
	mode := cacheOff
	if runCache {
		mode = cacheInspect
	}
	deps, err := loadDeps(ctx, mode)
	if err != nil {
		return err
	}
	logg := deps.logger
	defer logg.Sync()

	svc := integrity.NewService(deps.client, deps.cfg.Storage, logg, deps.db)
	failed := false

	if runStructure {
		logg.Info("Checking folder structure...", zap.String("bucket", deps.cfg.Storage.Bucket))
		if fixFlag {
			fixed, err := svc.RepairStructure(ctx)
			if err != nil {
				return fmt.Errorf("failed to fix structure: %w", err)
			}
			if len(fixed) == 0 {
				logg.Info("Structure is intact.")
			} else {
				logg.Info("Structure fixed successfully.", zap.Strings("created", fixed))
			}
		} else {
			missing, err := svc.CheckStructure(ctx)
			switch {
			case err != nil:
				logg.Error("Structure check failed", zap.Error(err))
				failed = true
			case len(missing) == 0:
				logg.Info("Structure is intact.")
			default:
				logg.Warn("Missing folders detected", zap.Strings("missing", missing))
				logg.Info("Run 'integrity structure --fix' to create missing folders.")
				failed = true
			}
		}
	}

	if runCache {
		logg.Info("Checking result cache schema...", zap.String("driver", deps.cfg.Database.Driver))
		report, err := svc.CheckCache()
		switch {
		case err != nil:
			logg.Error("Cache schema check failed", zap.Error(err))
			failed = true
		case report.Matched:
			logg.Info("Cache schema matches expected definition.", zap.String("table", report.Table))
		default:
			logg.Warn("Cache schema mismatches found", zap.String("table", report.Table))
			if len(report.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.Strings("columns", report.MissingColumns))
			}
			if len(report.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.Strings("mismatches", report.TypeMismatches))
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
			failed = true
		}
	}

	if failed {
		return errors.New("integrity checks reported problems")
	}
	return nil
}
