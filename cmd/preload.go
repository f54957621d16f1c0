package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// preloadCmd represents the preload command
var preloadCmd = &cobra.Command{
	Use:   "preload [names...]",
	Short: "Preload models from storage",
	Long:  `Loads the given models, or every model in the manifest, and reports which ones could be cached.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logg.Sync()

		quiet, _ := cmd.Flags().GetBool("quiet")
		last := -10
		progress := func(p float64) {
			if quiet {
				return
			}
			if pct := int(p * 100); pct/10 != last/10 {
				last = pct
				fmt.Printf("\rPreloading... %3d%%", pct)
			}
		}

		report, err := rt.models.Preload(cmd.Context(), args, progress)
		if err != nil {
			return err
		}
		if !quiet {
			fmt.Println()
		}

		fmt.Println("\n=== Preload Report ===")
		fmt.Printf("Requested: %d\n", report.Requested)
		fmt.Printf("Cached: %d\n", len(report.Cached))
		fmt.Printf("Uncached: %d\n", len(report.Uncached))
		for _, name := range report.Uncached {
			fmt.Printf("  - %s\n", name)
		}
		fmt.Printf("Execution Time: %s\n", report.Duration.String())

		rt.logg.Info("Preload completed",
			zap.Int("requested", report.Requested),
			zap.Int("cached", len(report.Cached)),
			zap.Strings("uncached", report.Uncached),
		)

		strict, _ := cmd.Flags().GetBool("strict")
		if strict && len(report.Uncached) > 0 {
			return fmt.Errorf("%d models could not be loaded", len(report.Uncached))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(preloadCmd)
	preloadCmd.Flags().Bool("strict", false, "Exit non-zero when any model could not be loaded")
	preloadCmd.Flags().BoolP("quiet", "q", false, "Do not print progress")
}
