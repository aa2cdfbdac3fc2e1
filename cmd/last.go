package cmd

import (
	"errors"
	"fmt"

	"follow-checker/core/present"
	"follow-checker/core/resultcache"
	"follow-checker/feature/relationships"

	"github.com/spf13/cobra"
)

var (
	lastDirection string
	lastSearch    string
	lastSort      string
	lastOutput    string
	lastClear     bool
)

// lastCmd represents the last command
var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the last comparison result",
	Long:  `Prints the result of the last comparison from the cache database, optionally filtered and sorted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dir, err := relationships.ParseDirection(lastDirection)
		if err != nil {
			return err
		}
		order, err := present.ParseOrder(lastSort)
		if err != nil {
			return err
		}

		deps, err := loadDeps(ctx, cacheUse)
		if err != nil {
			return err
		}
		defer deps.logger.Sync()

		if deps.db == nil {
			return errors.New("cache database is not available")
		}

		svc := relationships.NewService(deps.relationshipsOptions())

		if lastClear {
			if err := svc.ClearLastResult(ctx); err != nil {
				return err
			}
			fmt.Println("Cached result cleared.")
			return nil
		}

		accounts, entry, err := svc.View(ctx, dir, present.Query{Search: lastSearch, Order: order})
		if err != nil {
			if errors.Is(err, resultcache.ErrNotFound) {
				return fmt.Errorf("no cached result, run compare first: %w", err)
			}
			return err
		}

		fmt.Printf("Last result from %s\n", entry.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Found %d accounts (%s)\n", len(accounts), dir)
		printAccounts(accounts)

		if lastOutput != "" {
			return writeExport(deps.logger, lastOutput, dir.FileName(), accounts)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(lastCmd)

	lastCmd.Flags().StringVar(&lastDirection, "direction", "", "not_following_back (default) or not_followed_back")
	lastCmd.Flags().StringVar(&lastSearch, "search", "", "Only show accounts containing this text (case-insensitive)")
	lastCmd.Flags().StringVar(&lastSort, "sort", "", "Sort accounts: asc, desc or none (export order)")
	lastCmd.Flags().StringVarP(&lastOutput, "output", "o", "", "Directory to write the text export to")
	lastCmd.Flags().BoolVar(&lastClear, "clear", false, "Clear the cached result")
}
