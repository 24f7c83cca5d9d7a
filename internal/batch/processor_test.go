package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"ppmcanvas/internal/pixbuf"
	"ppmcanvas/internal/ppm"
)

func TestRun(t *testing.T) {
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")

	good, err := pixbuf.New(16, 8)
	if err != nil {
		t.Fatal(err)
	}
	good.Fill(pixbuf.Magenta)
	if err := ppm.WriteFile(filepath.Join(inDir, "good.ppm"), good); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(inDir, "broken.ppm"), []byte("not a ppm"), 0644); err != nil {
		t.Fatal(err)
	}
	// Non-PPM files are skipped entirely.
	if err := os.WriteFile(filepath.Join(inDir, "notes.txt"), []byte("skip me"), 0644); err != nil {
		t.Fatal(err)
	}

	results, err := Run(Config{
		InputDir:  inDir,
		OutputDir: outDir,
		Format:    "png",
		Workers:   2,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	byName := make(map[string]Result)
	for _, r := range results {
		byName[r.Name] = r
	}
	if !byName["good.ppm"].Success {
		t.Errorf("good.ppm failed: %s", byName["good.ppm"].Error)
	}
	if byName["broken.ppm"].Success {
		t.Error("broken.ppm unexpectedly succeeded")
	}

	if _, err := os.Stat(filepath.Join(outDir, "good.png")); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestRunDownsamples(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	big, err := pixbuf.New(32, 16)
	if err != nil {
		t.Fatal(err)
	}
	big.Fill(pixbuf.Cyan)
	if err := ppm.WriteFile(filepath.Join(inDir, "big.ppm"), big); err != nil {
		t.Fatal(err)
	}

	results, err := Run(Config{
		InputDir:   inDir,
		OutputDir:  outDir,
		Format:     "webp",
		TargetSize: 8,
		Workers:    1,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 1 || !results[0].Success {
		t.Fatalf("unexpected results: %+v", results)
	}
	if _, err := os.Stat(filepath.Join(outDir, "big.webp")); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	results := []Result{
		{Name: "a.ppm", Success: true},
		{Name: "b.ppm", Error: "bad magic number"},
	}

	if err := WriteManifest(path, "webp", results); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Output != "a.webp" || entries[0].Error != "" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Output != "" || entries[1].Error == "" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}

func TestRunMissingInputDir(t *testing.T) {
	if _, err := Run(Config{InputDir: filepath.Join(t.TempDir(), "nope")}); err == nil {
		t.Error("Run on missing directory succeeded")
	}
}
