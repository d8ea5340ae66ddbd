package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/avoskres/tui-keepsake/internal/thumbs"
)

var (
	flagThumbWidth   int
	flagThumbQuality int
	flagThumbForce   bool
)

var thumbsCmd = &cobra.Command{
	Use:   "thumbs <dir>",
	Short: "Generate thumbnails for a photo directory",
	Long: `Walks the directory tree and writes a <name>_thumb.jpg next to every
JPEG and PNG it finds. Existing thumbnails are left alone unless --overwrite
is given; images narrower than the target width are never upscaled.

Examples:
  keepsake thumbs ./photos
  keepsake thumbs ./photos --width 320
  keepsake thumbs ./photos --overwrite`,
	Args: cobra.ExactArgs(1),
	Run:  runThumbs,
}

func init() {
	defaults := thumbs.DefaultOptions()
	thumbsCmd.Flags().IntVar(&flagThumbWidth, "width", defaults.Width, "Target thumbnail width in pixels")
	thumbsCmd.Flags().IntVar(&flagThumbQuality, "quality", defaults.Quality, "JPEG quality (1-100)")
	thumbsCmd.Flags().BoolVar(&flagThumbForce, "overwrite", false, "Regenerate thumbnails that already exist")
}

func runThumbs(_ *cobra.Command, args []string) {
	root := args[0]

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: %q is not a directory\n", root)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "thumbs",
	})

	opts := thumbs.Options{
		Width:     flagThumbWidth,
		Quality:   flagThumbQuality,
		Overwrite: flagThumbForce,
	}

	report, err := thumbs.Generate(root, opts, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %d, skipped %d, failed %d\n",
		report.Generated, report.Skipped, report.Failed)
}
