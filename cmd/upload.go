package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"garden-assets/core/assets"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload <file> [name]",
	Short: "Upload a GLB model to the bucket",
	Long:  `Validates a GLB file by decoding it, then stores it where the loader will look for the model. The name defaults to the file name without extension.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logg.Sync()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read model: %w", err)
		}

		name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		if len(args) == 2 {
			name = args[1]
		}

		node, err := assets.GLTFDecoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("invalid model %s: %w", args[0], err)
		}

		key := rt.loader.Location(name)
		info, err := rt.store.PutObject(cmd.Context(), rt.cfg.Storage.Bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: "model/gltf-binary",
		})
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", key, err)
		}

		rt.logg.Info("Model uploaded",
			zap.String("model", name),
			zap.String("key", info.Key),
			zap.Int64("size", info.Size),
			zap.Int("nodes", node.Count()),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(uploadCmd)
}
