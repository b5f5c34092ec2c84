// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf2word CLI, a batch PDF-to-Word
// converter. Conversion runs on a background worker while the terminal shows
// live progress; see the convert subcommand.
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

// rootCmd is the base command for the pdf2word CLI.
var rootCmd = &cobra.Command{
	Use:   "pdf2word",
	Short: "Convert folders of PDF documents to Word",
	Long: `pdf2word converts every PDF in a source folder into a Word (.docx) document
in a destination folder, carrying over running text, detected tables, and
embedded raster images. Each file is converted independently: one bad file
is reported and skipped, and the batch carries on.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf2word.yaml or ~/.config/pdf2word/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf2word")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf2word"))
		}
	}

	viper.SetEnvPrefix("PDF2WORD")
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
