package iotsv

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnmoth/pkg/errcode"
)

// InputTableMissingError creates an error for a table file that does
// not exist.
func InputTableMissingError(path string, err error) error {
	msg := `Input table not found

<em>Path:</em> %s

<em>How to fix:</em>
  1. Check that --input points to the directory with TSV files
  2. Make sure Taxon.tsv, VernacularName.tsv, SpeciesProfile.tsv
     and Distribution.tsv are all present`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputTableMissingError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: table %s is missing: %w",
			fn, path, err),
	}
}

// ReadTableError creates an error for a table that cannot be read.
func ReadTableError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TSVReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, path, err),
	}
}

// TSVHeaderError creates an error for a table with a broken header.
func TSVHeaderError(path string, missing []string, err error) error {
	msg := "Header of <em>%s</em> is not usable"
	vars := []any{path}
	if len(missing) > 0 {
		msg = "Header of <em>%s</em> lacks columns: <em>%s</em>"
		vars = append(vars, strings.Join(missing, ", "))
	}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TSVHeaderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: bad header in %s: %w", fn, path, err),
	}
}
