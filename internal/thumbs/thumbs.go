// Package thumbs generates JPEG thumbnails for a media directory tree.
// Derivatives are written alongside the originals as <name>_thumb.jpg so a
// deck can reference small previews without a separate asset pipeline.
package thumbs

import (
	"fmt"
	"image"
	_ "image/gif" // register decoders for the formats decks reference
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/image/draw"
)

const thumbSuffix = "_thumb"

// Options control thumbnail generation.
type Options struct {
	// Width is the target thumbnail width; height follows the aspect
	// ratio. Images narrower than Width are re-encoded at original size,
	// never upscaled.
	Width int

	// Quality is the JPEG encoding quality (1-100).
	Quality int

	// Overwrite regenerates thumbnails that already exist.
	Overwrite bool
}

// DefaultOptions returns the standard thumbnailing parameters.
func DefaultOptions() Options {
	return Options{
		Width:   480,
		Quality: 80,
	}
}

// Report summarizes one generation pass.
type Report struct {
	Generated int
	Skipped   int
	Failed    int
}

// Generate walks root and produces a thumbnail for every JPEG/PNG it finds.
// Existing thumbnails are skipped unless opts.Overwrite is set; files that
// fail to decode are logged and counted, never fatal. The logger may be nil.
func Generate(root string, opts Options, logger *log.Logger) (Report, error) {
	var report Report

	if opts.Width <= 0 {
		opts.Width = DefaultOptions().Width
	}
	if opts.Quality <= 0 || opts.Quality > 100 {
		opts.Quality = DefaultOptions().Quality
	}

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSource(path) {
			return nil
		}

		out := thumbPath(path)
		if !opts.Overwrite {
			if _, statErr := os.Stat(out); statErr == nil {
				report.Skipped++
				return nil
			}
		}

		if genErr := generateOne(path, out, opts); genErr != nil {
			report.Failed++
			if logger != nil {
				logger.Warn("thumbnail failed", "file", path, "error", genErr)
			}
			return nil
		}
		report.Generated++
		return nil
	})
	if err != nil {
		return report, fmt.Errorf("thumbs: walk %s: %w", root, err)
	}
	return report, nil
}

// isSource reports whether path is an original image worth thumbnailing.
func isSource(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return false
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return !strings.HasSuffix(base, thumbSuffix)
}

// thumbPath returns the derivative path for an original.
func thumbPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + thumbSuffix + ".jpg"
}

// generateOne decodes, scales, and encodes a single thumbnail.
func generateOne(src, dst string, opts Options) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > opts.Width {
		h = h * opts.Width / w
		if h < 1 {
			h = 1
		}
		w = opts.Width
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, bounds, draw.Src, nil)

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(out, scaled, &jpeg.Options{Quality: opts.Quality}); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("encode: %w", err)
	}
	return out.Close()
}
