package cmd

import (
	"context"
	"fmt"
	"os"

	"follow-checker/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "follow-checker",
	Short: "Instagram Follow Checker",
	Long: `Follow Checker compares the followers and following exports of an
Instagram data download and lists the accounts that do not follow you back.
It reads both the legacy and the current export formats.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.ExecuteContext(context.Background()); err != nil {
		// Console encoding with the development config gives readable CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
