package iocompress

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnmoth/pkg/errcode"
)

// CompressError creates an error for a file that cannot be compressed.
func CompressError(path string, err error) error {
	msg := "Cannot compress <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CompressError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot compress %s: %w", fn, path, err),
	}
}
