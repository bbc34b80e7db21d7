// Package iotesting provides shared test utilities for tests that read
// and write files.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnmoth/pkg/config"
)

// Tables maps a table name (for example "Taxon") to its TSV content.
type Tables map[string]string

// WriteTables saves tables as <name>.tsv files to a new temporary
// directory and returns its path.
func WriteTables(t *testing.T, tables Tables) string {
	t.Helper()
	dir := t.TempDir()
	for k, v := range tables {
		path := filepath.Join(dir, k+".tsv")
		if err := os.WriteFile(path, []byte(v), 0644); err != nil {
			t.Fatalf("cannot write %s: %s", path, err)
		}
	}
	return dir
}

// GetTestConfig returns a configuration suitable for tests. It reads
// tables from inputDir, writes results to a fresh temporary directory and
// never shows a progress bar.
func GetTestConfig(t *testing.T, inputDir string) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptInputDir(inputDir),
		config.OptOutputDir(filepath.Join(t.TempDir(), "output")),
		config.OptWithProgress(false),
		config.OptHomeDir(t.TempDir()),
	})
	return cfg
}
