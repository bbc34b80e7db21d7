// Package iowrite saves results of a GNmoth build to the output
// directory. The directory is guarded by a file lock, so two runs cannot
// write the same files at once.
package iowrite

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnmoth/internal/iofs"
	"github.com/gnames/gnmoth/pkg/moth"
	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// Names of files created in the output directory.
const (
	MothsFile      = "moths.json"
	BlacklistFile  = "butterfly_blacklist.json"
	CollisionsFile = "butterfly_collisions.json"
	SummaryFile    = "summary.yaml"
	LockFile       = ".gnmoth.lock"
)

// Writer saves result files to a directory.
type Writer struct {
	dir  string
	lock *flock.Flock
	enc  gnfmt.Encoder
}

// New creates a Writer for the output directory.
func New(dir string) *Writer {
	return &Writer{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, LockFile)),
		enc:  gnfmt.GNjson{Pretty: true},
	}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Lock creates the output directory if needed and takes an exclusive
// lock on it. It fails if another process holds the lock.
func (w *Writer) Lock() error {
	if err := iofs.EnsureOutputDir(w.dir); err != nil {
		return err
	}
	ok, err := w.lock.TryLock()
	if err != nil {
		return OutputLockedError(w.dir, err)
	}
	if !ok {
		return OutputLockedError(w.dir, nil)
	}
	slog.Info("Output directory locked", "lock", w.lock.Path())
	return nil
}

// Unlock releases the lock taken by Lock.
func (w *Writer) Unlock() error {
	return w.lock.Unlock()
}

// Write saves moths, blacklist, collisions and the summary. It returns
// paths of the JSON files.
func (w *Writer) Write(res *moth.Result) ([]string, error) {
	jsons := []struct {
		file string
		data any
	}{
		{MothsFile, res.Moths},
		{BlacklistFile, res.Blacklist},
		{CollisionsFile, res.Collisions},
	}

	paths := make([]string, 0, len(jsons))
	for _, v := range jsons {
		path := filepath.Join(w.dir, v.file)
		bs, err := w.enc.Encode(v.data)
		if err != nil {
			return nil, WriteOutputError(path, err)
		}
		if err = writeFile(path, bs); err != nil {
			return nil, err
		}
		slog.Info("File saved", "path", path, "bytes", len(bs))
		paths = append(paths, path)
	}

	if err := w.WriteSummary(res.Summary); err != nil {
		return nil, err
	}
	return paths, nil
}

// WriteSummary saves counters of a run as YAML.
func (w *Writer) WriteSummary(sum moth.Summary) error {
	path := filepath.Join(w.dir, SummaryFile)
	bs, err := yaml.Marshal(sum)
	if err != nil {
		return WriteOutputError(path, err)
	}
	return writeFile(path, bs)
}

// writeFile writes data to a temporary file first and renames it, so
// readers never see a half-written file.
func writeFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return WriteOutputError(path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return WriteOutputError(path, err)
	}
	return nil
}
