package cmd

import (
	"fmt"
	"os"

	"garden-assets/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "garden-assets",
	Short: "Garden Asset Service",
	Long: `Garden Assets loads the 3D models of the prayer garden from object storage.
Loads are cached, retried with a fixed delay, bounded by a timeout and fall back
to placeholder shapes when a model cannot be fetched.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Debug config gives ISO8601 timestamps on the console.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
