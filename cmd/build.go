/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnmoth/internal/iocompress"
	"github.com/gnames/gnmoth/internal/iologger"
	"github.com/gnames/gnmoth/internal/iosqlite"
	"github.com/gnames/gnmoth/internal/iotsv"
	"github.com/gnames/gnmoth/internal/iowrite"
	"github.com/gnames/gnmoth/pkg/config"
	"github.com/gnames/gnmoth/pkg/gnmoth"
	"github.com/gnames/gnmoth/pkg/moth"
	"github.com/spf13/cobra"
)

// getBuildCmd returns the build command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getBuildCmd() *cobra.Command {
	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build moth dataset from Darwin Core TSV tables",
		Long: `Build the moth dataset from a Darwin Core checklist.

This command:
  1. Loads VernacularName.tsv, SpeciesProfile.tsv and Distribution.tsv
  2. Classifies every row of Taxon.tsv
  3. Attaches synonyms to moth species
  4. Moves fragments shared by butterflies and moths from the
     butterfly blacklist to the collisions list
  5. Saves moths.json, butterfly_blacklist.json,
     butterfly_collisions.json and summary.yaml

All four TSV files are required. Rows that cannot be used are
counted and skipped.

Examples:
  # Read tables from the current directory, save to ./output
  gnmoth build

  # Custom directories with gzipped copies and SQLite export
  gnmoth build -i ~/data/col -o ~/data/moths --compress --sqlite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runBuild(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	buildCmd.Flags().StringP(
		"input", "i", "", "directory with Darwin Core TSV tables",
	)
	buildCmd.Flags().StringP(
		"output", "o", "", "directory for result files",
	)
	buildCmd.Flags().StringP(
		"lang", "l", "", "language of common names (default eng)",
	)
	buildCmd.Flags().BoolP(
		"compress", "z", false, "create gzipped copies of JSON files",
	)
	buildCmd.Flags().BoolP(
		"sqlite", "s", false, "export results to moths.sqlite",
	)
	buildCmd.Flags().BoolP(
		"quiet", "q", false, "do not show progress bar",
	)

	return buildCmd
}

func runBuild(cmd *cobra.Command) error {
	if buildOpts := flagOptions(cmd); len(buildOpts) > 0 {
		cfg.Update(buildOpts)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := buildDataset(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Println(renderSummary(res.Summary))
	return nil
}

// buildDataset runs the whole build: it reads input tables, creates the
// dataset and saves all result files.
func buildDataset(
	ctx context.Context,
	cfg *config.Config,
) (*moth.Result, error) {
	startTime := time.Now()
	iologger.WithBuild(cfg)

	if err := iotsv.CheckTables(cfg.InputDir); err != nil {
		return nil, err
	}

	w := iowrite.New(cfg.OutputDir)
	if err := w.Lock(); err != nil {
		return nil, err
	}
	defer w.Unlock()

	gn.Info("Reading tables from <em>%s</em>", cfg.InputDir)
	gnm := gnmoth.New(cfg)
	res, err := gnm.Build(ctx, iotsv.New(cfg))
	if err != nil {
		return nil, err
	}

	paths, err := w.Write(res)
	if err != nil {
		return nil, err
	}

	if cfg.Compress {
		if _, err = iocompress.GzipAll(paths); err != nil {
			return nil, err
		}
	}

	if cfg.WithSQLite {
		path := filepath.Join(w.Dir(), iosqlite.File)
		if err = iosqlite.Export(path, res); err != nil {
			return nil, err
		}
	}

	gn.Info(
		"Results are saved to <em>%s</em>\nElapsed time: <em>%s</em>",
		w.Dir(),
		gnfmt.TimeString(time.Since(startTime).Seconds()),
	)
	return res, nil
}
