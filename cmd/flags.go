package cmd

import (
	"fmt"
	"os"

	gnmoth "github.com/gnames/gnmoth/pkg"
	"github.com/gnames/gnmoth/pkg/config"
	"github.com/spf13/cobra"
)

type funcFlag func(cmd *cobra.Command) config.Option

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", gnmoth.Version, gnmoth.Build)
		os.Exit(0)
	}
}

func inputFlag(cmd *cobra.Command) config.Option {
	if !cmd.Flags().Changed("input") {
		return nil
	}
	s, _ := cmd.Flags().GetString("input")
	return config.OptInputDir(s)
}

func outputFlag(cmd *cobra.Command) config.Option {
	if !cmd.Flags().Changed("output") {
		return nil
	}
	s, _ := cmd.Flags().GetString("output")
	return config.OptOutputDir(s)
}

func langFlag(cmd *cobra.Command) config.Option {
	if !cmd.Flags().Changed("lang") {
		return nil
	}
	s, _ := cmd.Flags().GetString("lang")
	return config.OptVernacularLanguage(s)
}

func compressFlag(cmd *cobra.Command) config.Option {
	if !cmd.Flags().Changed("compress") {
		return nil
	}
	b, _ := cmd.Flags().GetBool("compress")
	return config.OptCompress(b)
}

func sqliteFlag(cmd *cobra.Command) config.Option {
	if !cmd.Flags().Changed("sqlite") {
		return nil
	}
	b, _ := cmd.Flags().GetBool("sqlite")
	return config.OptWithSQLite(b)
}

func quietFlag(cmd *cobra.Command) config.Option {
	if !cmd.Flags().Changed("quiet") {
		return nil
	}
	b, _ := cmd.Flags().GetBool("quiet")
	return config.OptWithProgress(!b)
}

// flagOptions converts explicitly set flags to config options.
func flagOptions(cmd *cobra.Command) []config.Option {
	flags := []funcFlag{
		inputFlag, outputFlag, langFlag,
		compressFlag, sqliteFlag, quietFlag,
	}
	var res []config.Option
	for _, v := range flags {
		if opt := v(cmd); opt != nil {
			res = append(res, opt)
		}
	}
	return res
}
