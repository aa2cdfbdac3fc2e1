package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"follow-checker/core/present"
	"follow-checker/feature/relationships"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	compareFollowers   string
	compareFollowing   string
	compareBoth        bool
	compareSearch      string
	compareSort        string
	compareOutput      string
	compareFromStorage bool
	comparePublish     bool
	compareNoCache     bool
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "List accounts that do not follow you back",
	Long: `Reads the followers and following exports and prints every account you
follow that does not follow you back, in the order of the following export.
With --from-storage the two arguments are object names inside the bucket's
exports folder (storage.exports_prefix).`,
	Example: `  follow-checker compare --followers followers_1.json --following following.json
  follow-checker compare --followers followers_1.json --following following.json --from-storage --both`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		order, err := present.ParseOrder(compareSort)
		if err != nil {
			return err
		}
		q := present.Query{Search: compareSearch, Order: order}

		deps, err := loadDeps(ctx, compareCacheMode())
		if err != nil {
			return err
		}
		defer deps.logger.Sync()

		svc := relationships.NewService(deps.relationshipsOptions())

		var report *relationships.Report
		if compareFromStorage {
			report, err = svc.CompareObjects(ctx, compareFollowers, compareFollowing, compareBoth)
		} else {
			report, err = svc.Compare(ctx, relationships.CompareRequest{
				Followers: relationships.FileSource{Path: compareFollowers},
				Following: relationships.FileSource{Path: compareFollowing},
				Both:      compareBoth,
			})
		}
		if err != nil {
			return err
		}

		notFollowingBack := present.View(report.NotFollowingBack, q)
		fmt.Printf("Found %d accounts that don't follow you back\n", len(notFollowingBack))
		printAccounts(notFollowingBack)

		if compareBoth {
			notFollowedBack := present.View(report.NotFollowedBack, q)
			fmt.Printf("\nFound %d accounts you don't follow back\n", len(notFollowedBack))
			printAccounts(notFollowedBack)
		}

		if report.Summary.DuplicateFollowing > 0 {
			fmt.Printf("\nNote: the following export lists %d accounts more than once; repeats are kept.\n", report.Summary.DuplicateFollowing)
		}

		if compareOutput != "" {
			if err := writeExport(deps.logger, compareOutput, present.NotFollowingBackFile, notFollowingBack); err != nil {
				return err
			}
			if compareBoth {
				if err := writeExport(deps.logger, compareOutput, present.NotFollowedBackFile, present.View(report.NotFollowedBack, q)); err != nil {
					return err
				}
			}
		}

		if comparePublish {
			dirs := []relationships.Direction{relationships.DirectionNotFollowingBack}
			if compareBoth {
				dirs = append(dirs, relationships.DirectionNotFollowedBack)
			}
			for _, dir := range dirs {
				object, err := svc.Publish(ctx, dir, q)
				if err != nil {
					return fmt.Errorf("failed to publish %s: %w", dir, err)
				}
				fmt.Printf("Published %s\n", object)
			}
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVar(&compareFollowers, "followers", "", "Followers export (followers_1.json)")
	compareCmd.Flags().StringVar(&compareFollowing, "following", "", "Following export (following.json)")
	compareCmd.Flags().BoolVar(&compareBoth, "both", false, "Also list followers you do not follow back")
	compareCmd.Flags().StringVar(&compareSearch, "search", "", "Only show accounts containing this text (case-insensitive)")
	compareCmd.Flags().StringVar(&compareSort, "sort", "none", "Sort accounts: asc, desc or none (export order)")
	compareCmd.Flags().StringVarP(&compareOutput, "output", "o", "", "Directory to write the text exports to")
	compareCmd.Flags().BoolVar(&compareFromStorage, "from-storage", false, "Read the exports from the storage bucket")
	compareCmd.Flags().BoolVar(&comparePublish, "publish", false, "Upload the text exports to the results folder of the bucket")
	compareCmd.Flags().BoolVar(&compareNoCache, "no-cache", false, "Do not store the result in the cache database")
	_ = compareCmd.MarkFlagRequired("followers")
	_ = compareCmd.MarkFlagRequired("following")
}

func compareCacheMode() cacheMode {
	if compareNoCache {
		return cacheOff
	}
	return cacheUse
}

func printAccounts(accounts []string) {
	for _, a := range accounts {
		fmt.Printf("  %-30s %s\n", a, present.ProfileURL(a))
	}
}

func writeExport(logg *zap.Logger, dir, name string, accounts []string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(present.ExportText(accounts)), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logg.Info("Export written", zap.String("file", path), zap.Int("accounts", len(accounts)))
	return nil
}
