// Package main is the dataset preparation tool for DermaScan.
//
// It validates the benign/malignant directory layout, produces the
// deterministic train/validation split, writes the manifest consumed by
// training, and can optionally materialize augmented variants of the
// training images.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"dermascan/config"
	"dermascan/domain/dataset"
	"dermascan/infrastructure/logging"

	"github.com/disintegration/imaging"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "configuration file")
	datasetDir := flag.String("dir", "", "dataset directory (overrides config)")
	split := flag.Float64("split", 0, "validation fraction (overrides config)")
	manifestPath := flag.String("out", "", "manifest output path (overrides config)")
	augmentCount := flag.Int("augment", 0, "augmented variants to generate per training image")
	augmentDir := flag.String("augment-dir", "", "output directory for augmented images")
	seed := flag.Int64("seed", 42, "augmentation random seed")
	flag.Parse()

	logger, closeLog, err := logging.Setup(nil)
	if err != nil {
		os.Stderr.WriteString("Failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if *datasetDir != "" {
		cfg.DatasetDir = *datasetDir
	}
	if flag.NArg() > 0 {
		cfg.DatasetDir = flag.Arg(0)
	}
	if *split > 0 {
		cfg.ValidationSplit = *split
	}
	if *manifestPath != "" {
		cfg.ManifestPath = *manifestPath
	}

	logger.Info("Inspecting dataset", "dir", cfg.DatasetDir)

	ins, err := dataset.Inspect(os.DirFS(cfg.DatasetDir))
	if err != nil {
		logger.Error("Dataset inspection failed", "dir", cfg.DatasetDir, "error", err)
		os.Exit(1)
	}

	for _, class := range dataset.Classes {
		logger.Info("Class inventory", "class", class, "images", ins.Counts[class])
	}
	if len(ins.Skipped) > 0 {
		logger.Warn("Skipped non-image files", "count", len(ins.Skipped))
	}

	manifest := dataset.BuildManifest(ins, cfg.ValidationSplit)
	logger.Info("Split computed",
		"total", ins.Total(),
		"train", len(manifest.Train),
		"validation", len(manifest.Validation),
		"validation_fraction", cfg.ValidationSplit)

	if err := manifest.Write(cfg.ManifestPath); err != nil {
		logger.Error("Failed to write manifest", "path", cfg.ManifestPath, "error", err)
		os.Exit(1)
	}
	logger.Info("Manifest written", "path", cfg.ManifestPath)

	if *augmentCount > 0 {
		if *augmentDir == "" {
			logger.Error("-augment requires -augment-dir")
			os.Exit(1)
		}
		if err := materializeAugmented(cfg.DatasetDir, *augmentDir, manifest.Train, *augmentCount, *seed); err != nil {
			logger.Error("Augmentation failed", "error", err)
			os.Exit(1)
		}
		logger.Info("Augmented images written",
			"dir", *augmentDir,
			"per_image", *augmentCount,
			"total", len(manifest.Train)*(*augmentCount))
	}
}

// materializeAugmented writes n randomized variants of every training image
// into outDir, preserving the class subdirectory layout.
func materializeAugmented(datasetDir, outDir string, train []string, n int, seed int64) error {
	aug := dataset.DefaultAugmenter()

	for _, class := range dataset.Classes {
		if err := os.MkdirAll(filepath.Join(outDir, class), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	for i, rel := range train {
		img, err := imaging.Open(filepath.Join(datasetDir, filepath.FromSlash(rel)))
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", rel, err)
		}

		// Per-image seed offset keeps the whole run reproducible while
		// giving each image its own variant sequence.
		variants := aug.Variants(img, n, seed+int64(i))

		base := rel[:len(rel)-len(filepath.Ext(rel))]
		for j, variant := range variants {
			name := fmt.Sprintf("%s_aug%02d.jpg", filepath.FromSlash(base), j)
			if err := imaging.Save(variant, filepath.Join(outDir, name)); err != nil {
				return fmt.Errorf("failed to save variant of %s: %w", rel, err)
			}
		}
	}

	return nil
}
