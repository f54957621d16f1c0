package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the model bucket against the manifest",
	Long:  `Lists manifest models missing from the bucket and model objects the manifest does not name. With --fix, a missing bucket is created.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		logg := rt.logg
		defer logg.Sync()

		fix, _ := cmd.Flags().GetBool("fix")
		bucket := rt.cfg.Storage.Bucket
		exists, err := rt.store.BucketExists(ctx, bucket)
		if err != nil {
			return fmt.Errorf("failed to check bucket existence: %w", err)
		}
		if !exists {
			if !fix {
				logg.Warn("Bucket is missing. Run with --fix to create it.", zap.String("bucket", bucket))
				return fmt.Errorf("bucket %s does not exist", bucket)
			}
			if err := rt.store.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: rt.cfg.Storage.Region}); err != nil {
				return fmt.Errorf("failed to create bucket: %w", err)
			}
			logg.Info("Created missing bucket", zap.String("bucket", bucket))
		}

		startTime := time.Now()
		report, err := rt.models.CheckIntegrity(ctx)
		if err != nil {
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			filename := fmt.Sprintf("integrity_models_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			logg.Info("Detailed JSON report saved", zap.String("file", filename))
		}

		fmt.Println("\n=== Model Integrity ===")
		fmt.Printf("Bucket: %s\n", report.Bucket)
		fmt.Printf("Checked: %d\n", report.Checked)
		fmt.Printf("Missing: %d\n", len(report.Missing))
		for _, name := range report.Missing {
			fmt.Printf("  - %s\n", name)
		}
		fmt.Printf("Unlisted: %d\n", len(report.Unlisted))
		if len(report.HistoryColumns) > 0 {
			fmt.Printf("History table missing columns: %v\n", report.HistoryColumns)
		}
		fmt.Printf("Execution Time: %s\n", time.Since(startTime).String())

		logg.Info("Model integrity check completed",
			zap.Int("checked", report.Checked),
			zap.Strings("missing", report.Missing),
			zap.Int("unlisted", len(report.Unlisted)),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.Flags().Bool("fix", false, "Create the bucket when it is missing")
	integrityCmd.Flags().Bool("json", false, "Save the report as JSON")
}
