// Package iofs prepares directories and files GNmoth keeps in the
// user's home directory.
package iofs

import (
	_ "embed"
	"errors"
	"os"

	"github.com/gnames/gnmoth/pkg/config"
	"github.com/gnames/gnsys"
)

//go:embed config.yaml
var ConfigYAML string

// Kinds of directories GNmoth creates.
const (
	ConfigDirKind = "config"
	LogDirKind    = "log"
	OutputDirKind = "output"
)

// EnsureDirs creates config and log directories if they are missing.
func EnsureDirs(homeDir string) error {
	if err := touchDir(ConfigDirKind, config.ConfigDir(homeDir)); err != nil {
		return err
	}
	return touchDir(LogDirKind, config.LogDir(homeDir))
}

// EnsureOutputDir creates the directory for results.
func EnsureOutputDir(dir string) error {
	return touchDir(OutputDirKind, dir)
}

func touchDir(kind, dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if info.IsDir() {
			return nil
		}
		return CreateDirError(kind, dir, errors.New("a file with this name exists"))
	}

	if err := gnsys.MakeDir(dir); err != nil {
		return CreateDirError(kind, dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless it already
// exists.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return WriteConfigError(configPath, err)
	}

	return nil
}
