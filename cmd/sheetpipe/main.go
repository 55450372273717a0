// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the sheetpipe CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the sheetpipe CLI.
var rootCmd = &cobra.Command{
	Use:   "sheetpipe",
	Short: "Batch-convert spreadsheet trees to CSV",
	Long: `sheetpipe converts every spreadsheet file under a source directory into
CSV, extracting the first sheet of each file and mirroring the source
directory layout under the output root. Files that resist one decoder are
retried with the others, corrupt files are recorded in a durable failure
log, and re-running over a partial output tree resumes where the previous
run stopped.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./sheetpipe.yaml or ~/.config/sheetpipe/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sheetpipe")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "sheetpipe"))
		}
	}

	viper.SetEnvPrefix("SHEETPIPE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
