package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"ppmcanvas/internal/convert"
	"ppmcanvas/internal/ppm"
)

// Config holds all shared settings for a batch run.
type Config struct {
	InputDir   string
	OutputDir  string
	Format     string // "webp" or "png"
	TargetSize int    // longest side after downsampling, 0 keeps original
	Workers    int
}

// Result holds the outcome of converting one file.
type Result struct {
	Name    string
	Success bool
	Error   string
}

// Run converts every .ppm file in cfg.InputDir using a worker pool.
func Run(cfg Config) ([]Result, error) {
	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("batch: read dir %s: %w", cfg.InputDir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".ppm") {
			files = append(files, e.Name())
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("batch: create output dir %s: %w", cfg.OutputDir, err)
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	total := len(files)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f files/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	fileChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range fileChan {
				results[idx] = processFile(cfg, files[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range files {
		fileChan <- i
	}
	close(fileChan)

	wg.Wait()
	close(done)

	return results, nil
}

func processFile(cfg Config, name string) Result {
	buf, err := ppm.ReadFile(filepath.Join(cfg.InputDir, name))
	if err != nil {
		return Result{Name: name, Error: err.Error()}
	}

	if cfg.TargetSize > 0 && (buf.Width() > cfg.TargetSize || buf.Height() > cfg.TargetSize) {
		w, h := convert.FitSize(buf.Width(), buf.Height(), cfg.TargetSize)
		buf, err = convert.Downsample(buf, w, h)
		if err != nil {
			return Result{Name: name, Error: err.Error()}
		}
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	outPath := filepath.Join(cfg.OutputDir, base+"."+cfg.Format)

	switch cfg.Format {
	case "png":
		err = convert.WritePNG(outPath, buf)
	default:
		err = convert.WriteWebP(outPath, buf)
	}
	if err != nil {
		return Result{Name: name, Error: err.Error()}
	}

	return Result{Name: name, Success: true}
}
