// Package iologger sets up the slog default logger of GNmoth.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/gnames/gnmoth/pkg"
	"github.com/gnames/gnmoth/pkg/config"
)

// File is the name of the log file inside the log directory.
const File = "gnmoth.log"

// logFile is the currently open log file, it is closed on the next Init.
var logFile *os.File

// Init makes a logger from cfg the default one. Records carry the
// application name and version. With the "file" destination logs go to
// File in logDir, which is truncated unless appendFile is true.
func Init(logDir string, cfg config.LogConfig, appendFile bool) error {
	w, err := writer(logDir, cfg.Destination, appendFile)
	if err != nil {
		return err
	}

	logger := slog.New(handler(w, cfg)).With(
		"app", config.AppName,
		"version", app.Version,
	)
	slog.SetDefault(logger)
	return nil
}

// WithBuild adds input and output directories of a build to every
// following record.
func WithBuild(cfg *config.Config) {
	slog.SetDefault(slog.Default().With(
		"input_dir", cfg.InputDir,
		"output_dir", cfg.OutputDir,
	))
}

func writer(logDir, dest string, appendFile bool) (io.Writer, error) {
	if dest == "stdout" {
		return os.Stdout, nil
	}
	if dest != "file" {
		return os.Stderr, nil
	}

	path := filepath.Join(logDir, File)
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appendFile {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, CreateLogFileError(path, err)
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return f, nil
}

// handler returns JSON records by default. The "tint" format is a text
// format without timestamps, for reading logs on a terminal.
func handler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	switch cfg.Format {
	case "text":
		return slog.NewTextHandler(w, opts)
	case "tint":
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		}
		return slog.NewTextHandler(w, opts)
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

func parseLevel(level string) slog.Level {
	var res slog.Level
	if err := res.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return res
}
