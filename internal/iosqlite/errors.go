package iosqlite

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnmoth/pkg/errcode"
)

// SQLiteExportError creates an error for a failed SQLite export.
func SQLiteExportError(path string, err error) error {
	msg := "Cannot export results to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SQLiteExportError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot export to %s: %w", fn, path, err),
	}
}
