package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ManifestEntry represents one converted file in the output manifest.
type ManifestEntry struct {
	Source string `json:"source"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// WriteManifest writes manifest.json describing a batch run.
func WriteManifest(path string, format string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{Source: r.Name, Error: r.Error}
		if r.Success {
			base := strings.TrimSuffix(r.Name, filepath.Ext(r.Name))
			entries[i].Output = base + "." + format
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write manifest %s: %w", path, err)
	}
	return nil
}
