// Package iotsv implements gnmoth.Source for a directory with tab
// separated Darwin Core tables.
// This is an impure I/O package that reads files from disk.
package iotsv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnmoth/pkg/config"
	"github.com/gnames/gnmoth/pkg/dwca"
	"github.com/gnames/gnmoth/pkg/gnmoth"
)

const bom = "\ufeff"

type tsv struct {
	dir          string
	withProgress bool
}

// New creates a Source that reads tables from cfg.InputDir.
func New(cfg *config.Config) gnmoth.Source {
	return &tsv{dir: cfg.InputDir, withProgress: cfg.WithProgress}
}

// Path returns the file path of a table in a directory.
func Path(dir, table string) string {
	return filepath.Join(dir, table+".tsv")
}

// CheckTables makes sure that all tables exist before a long build
// starts.
func CheckTables(dir string) error {
	tables := []string{
		dwca.TaxonTable,
		dwca.VernacularTable,
		dwca.SpeciesProfileTable,
		dwca.DistributionTable,
	}
	for _, v := range tables {
		path := Path(dir, v)
		if _, err := os.Stat(path); err != nil {
			return InputTableMissingError(path, err)
		}
	}
	return nil
}

// Taxa implements gnmoth.Source.
func (t *tsv) Taxa(fn func(dwca.TaxonRow, error) error) error {
	return each(t.dir, dwca.TaxonTable, t.withProgress, dwca.DecodeTaxon, fn)
}

// Vernaculars implements gnmoth.Source.
func (t *tsv) Vernaculars(fn func(dwca.VernacularRow, error) error) error {
	return each(t.dir, dwca.VernacularTable, false, dwca.DecodeVernacular, fn)
}

// Profiles implements gnmoth.Source.
func (t *tsv) Profiles(fn func(dwca.ProfileRow, error) error) error {
	return each(t.dir, dwca.SpeciesProfileTable, false, dwca.DecodeProfile, fn)
}

// Distributions implements gnmoth.Source.
func (t *tsv) Distributions(fn func(dwca.DistributionRow, error) error) error {
	return each(t.dir, dwca.DistributionTable, false, dwca.DecodeDistribution, fn)
}

// each reads a table line by line, decodes every data line and sends the
// result to fn. Lines with a wrong number of fields are sent as
// malformed rows.
func each[T any](
	dir, table string,
	withProgress bool,
	decode func(dwca.Record) (T, error),
	fn func(T, error) error,
) error {
	path := Path(dir, table)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return InputTableMissingError(path, err)
		}
		return ReadTableError(path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if withProgress {
		bar, err := newProgressBar(f, table+": ")
		if err == nil {
			defer bar.Finish()
			r = bar.NewProxyReader(f)
		}
	}
	br := bufio.NewReader(r)

	line, err := readLine(br)
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			err = errors.New("empty file")
		}
		return TSVHeaderError(path, nil, err)
	}
	header := parseHeader(line)
	if len(header.dups) > 0 {
		slog.Warn("Repeated header columns, first one is used",
			"table", table, "columns", header.dups)
	}
	if missing := missingColumns(header, dwca.RequiredColumns[table]); len(missing) > 0 {
		return TSVHeaderError(path, missing, errors.New("required columns not found"))
	}

	var count, malformed int
	lineNum := 1
	for {
		line, err = readLine(br)
		if err != nil && err != io.EOF {
			return ReadTableError(path, err)
		}
		eof := err == io.EOF
		if line != "" {
			lineNum++
			count++
			row, rowErr := decodeLine(header, line, decode)
			if rowErr != nil {
				malformed++
				rowErr = fmt.Errorf("%s line %d: %w", table, lineNum, rowErr)
			}
			if err := fn(row, rowErr); err != nil {
				return err
			}
		} else if !eof {
			lineNum++
		}
		if eof {
			break
		}
	}

	slog.Info("Table read",
		"table", table,
		"rows", count,
		"malformed", malformed,
	)
	return nil
}

func decodeLine[T any](
	header header,
	line string,
	decode func(dwca.Record) (T, error),
) (T, error) {
	var zero T
	fields := strings.Split(line, "\t")
	if len(fields) != header.width {
		return zero, fmt.Errorf(
			"%d fields instead of %d: %w",
			len(fields), header.width, dwca.ErrMalformedRow,
		)
	}
	return decode(record{index: header.index, fields: fields})
}

// readLine returns the next line without line ending. Lines of any length
// are supported.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	return line, err
}

// header maps column names to their positions. Width is the number of
// columns in the header line, it can exceed the size of index when a name
// repeats.
type header struct {
	index map[string]int
	width int
	dups  []string
}

func parseHeader(line string) header {
	line = strings.TrimPrefix(line, bom)
	fields := strings.Split(line, "\t")
	res := header{
		index: make(map[string]int, len(fields)),
		width: len(fields),
	}
	for i, v := range fields {
		v = strings.TrimSpace(v)
		if _, ok := res.index[v]; ok {
			res.dups = append(res.dups, v)
			continue
		}
		res.index[v] = i
	}
	return res
}

func missingColumns(h header, required []string) []string {
	var res []string
	for _, v := range required {
		if _, ok := h.index[v]; !ok {
			res = append(res, v)
		}
	}
	return res
}

// record implements dwca.Record for one split line.
type record struct {
	index  map[string]int
	fields []string
}

// Get returns trimmed value of a column or an empty string if the column
// does not exist.
func (r record) Get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}
