package gnmoth

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnmoth/pkg/errcode"
)

// CancelledError creates an error for a build stopped by its context.
func CancelledError(err error) error {
	msg := "Build was cancelled"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BuildCancelledError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: build cancelled: %w", fn, err),
	}
}
