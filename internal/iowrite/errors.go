package iowrite

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnmoth/pkg/errcode"
)

// OutputLockedError creates an error for an output directory that is
// used by another GNmoth process.
func OutputLockedError(dir string, err error) error {
	msg := `Output directory <em>%s</em> is used by another process

<em>How to fix:</em>
  1. Wait until the other gnmoth run is finished
  2. Or choose a different directory with --output`
	vars := []any{dir}
	if err == nil {
		err = errors.New("lock is taken")
	}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OutputLockedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot lock %s: %w", fn, dir, err),
	}
}

// WriteOutputError creates an error for a result file that cannot be
// saved.
func WriteOutputError(path string, err error) error {
	msg := "Cannot write <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteOutputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write %s: %w", fn, path, err),
	}
}
