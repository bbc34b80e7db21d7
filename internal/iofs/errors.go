package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnmoth/pkg/errcode"
)

// CreateDirError reports a directory that cannot be created. Kind is one
// of ConfigDirKind, LogDirKind or OutputDirKind.
func CreateDirError(kind, dir string, err error) error {
	hint := "check permissions of your home directory"
	if kind == OutputDirKind {
		hint = "choose another directory with --output or GNMOTH_OUTPUT_DIR"
	}
	msg := "Cannot create %s directory <em>%s</em>, %s"
	vars := []any{kind, dir, hint}
	return newError(errcode.CreateDirError, msg, vars,
		fmt.Errorf("cannot create %s directory %s: %w", kind, dir, err))
}

// WriteConfigError reports that the default config.yaml cannot be saved.
func WriteConfigError(path string, err error) error {
	msg := "Cannot save default configuration to <em>%s</em>"
	vars := []any{path}
	return newError(errcode.WriteConfigError, msg, vars,
		fmt.Errorf("cannot write config template %s: %w", path, err))
}

// ReadConfigError reports a config.yaml that cannot be read or decoded.
func ReadConfigError(path string, err error) error {
	msg := "Cannot load configuration from <em>%s</em>. " +
		"Fix it, or remove it to get the default one"
	vars := []any{path}
	return newError(errcode.ReadConfigError, msg, vars,
		fmt.Errorf("cannot read config %s: %w", path, err))
}

// newError adds the name of the function that called an error constructor.
func newError(code gn.ErrorCode, msg string, vars []any, err error) error {
	caller := "unknown"
	pc, _, _, ok := runtime.Caller(2)
	if fn := runtime.FuncForPC(pc); ok && fn != nil {
		caller = fn.Name()
	}
	return &gn.Error{
		Code: code,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", caller, err),
	}
}
