// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/pdf2word/internal/convert"
	"github.com/pdiddy/pdf2word/internal/shell"
	"github.com/pdiddy/pdf2word/internal/source"
	"github.com/pdiddy/pdf2word/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert every PDF in the source folder to DOCX",
	Long: `Convert lists the source folder's PDF files in name order and converts each
into a .docx with the same base name in the destination folder. Text, tables,
and (unless disabled) embedded images are transferred. Ctrl-C stops the batch
after the file in flight.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveConfig(cmd)

		opener, err := source.ForBackend(cfg.Backend)
		if err != nil {
			return err
		}

		log := zap.NewNop()
		if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
			log, err = buildLogger()
			if err != nil {
				return err
			}
			defer log.Sync()
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		started := time.Now()
		result, err := shell.Run(ctx, opener, cfg, os.Stdout, log)
		if err != nil {
			return err
		}

		// Per-file failures are already reported inline; the batch itself
		// always completes.
		if cfg.Report && result.Total() > 0 {
			if err := convert.WriteReport(cfg, result, started, time.Now()); err != nil {
				log.Warn("batch report not written", zap.Error(err))
			}
		}
		return nil
	},
}

// resolveConfig layers viper's file, environment, and flag values into a
// Config. The --no-images flag overrides include_images from any layer.
func resolveConfig(cmd *cobra.Command) types.Config {
	cfg := types.Config{
		SourceFolder:      viper.GetString("source_folder"),
		DestinationFolder: viper.GetString("destination_folder"),
		IncludeImages:     viper.GetBool("include_images"),
		Backend:           viper.GetString("backend"),
		Report:            viper.GetBool("report"),
	}
	if noImages, _ := cmd.Flags().GetBool("no-images"); noImages {
		cfg.IncludeImages = false
	}
	return cfg
}

// buildLogger returns a console logger at warn level, for the absorbed
// per-image and cleanup failures worth seeing without breaking the progress
// display.
func buildLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func init() {
	defaults := types.DefaultConfig()

	convertCmd.Flags().String("source", defaults.SourceFolder, "folder containing input PDFs")
	convertCmd.Flags().String("dest", defaults.DestinationFolder, "folder for DOCX output (created if absent)")
	convertCmd.Flags().Bool("images", defaults.IncludeImages, "include embedded raster images in the output")
	convertCmd.Flags().Bool("no-images", false, "exclude embedded raster images from the output")
	convertCmd.Flags().String("backend", defaults.Backend, "PDF reading backend: tabula or plaintext")
	convertCmd.Flags().Bool("report", false, "write a YAML batch report into the destination folder")
	convertCmd.Flags().Bool("quiet", false, "suppress warnings about skipped images and cleanup")

	viper.BindPFlag("source_folder", convertCmd.Flags().Lookup("source"))
	viper.BindPFlag("destination_folder", convertCmd.Flags().Lookup("dest"))
	viper.BindPFlag("include_images", convertCmd.Flags().Lookup("images"))
	viper.BindPFlag("backend", convertCmd.Flags().Lookup("backend"))
	viper.BindPFlag("report", convertCmd.Flags().Lookup("report"))

	rootCmd.AddCommand(convertCmd)
}
