package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"ppmcanvas/internal/batch"
	"ppmcanvas/internal/config"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	inputDir := flag.String("input", "", "Directory containing .ppm files (default: current directory)")
	outputDir := flag.String("output", "", "Output directory (default: input directory)")
	format := flag.String("format", "", "Output format, webp or png (default: webp)")
	size := flag.Int("size", 0, "Downsample so the longest side is N pixels (default: keep original)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	manifest := flag.Bool("manifest", false, "Write manifest.json to the output directory")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		InputDir:   *inputDir,
		OutputDir:  *outputDir,
		Format:     *format,
		TargetSize: *size,
		Workers:    *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	results, err := batch.Run(batch.Config{
		InputDir:   cfg.InputDir,
		OutputDir:  cfg.OutputDir,
		Format:     cfg.Format,
		TargetSize: cfg.TargetSize,
		Workers:    cfg.Workers,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *manifest {
		path := filepath.Join(cfg.OutputDir, "manifest.json")
		if err := batch.WriteManifest(path, cfg.Format, results); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	ok := 0
	for _, r := range results {
		if r.Success {
			ok++
		} else {
			fmt.Fprintf(os.Stderr, "  FAIL %s: %s\n", r.Name, r.Error)
		}
	}
	fmt.Printf("Converted %d/%d files to %s\n", ok, len(results), cfg.OutputDir)

	if ok < len(results) {
		os.Exit(1)
	}
}
