// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shell is the interactive front end: it runs the batch driver on a
// background goroutine and renders its progress events on the calling
// goroutine, so blocking conversion work never happens on the presentation
// side. Communication is one-directional, over the event channel only.
package shell

import (
	"context"
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/pdiddy/pdf2word/internal/convert"
	"github.com/pdiddy/pdf2word/internal/source"
	"github.com/pdiddy/pdf2word/pkg/types"
)

// Run executes a batch conversion with a determinate progress bar and a
// per-file status line written to out. It blocks until the batch finishes
// (or ctx cancels it between files) and returns the batch outcome.
func Run(ctx context.Context, opener source.Opener, cfg types.Config, out io.Writer, log *zap.Logger) (convert.BatchResult, error) {
	events := make(chan types.Progress, 16)

	// Single worker; the conversion libraries are not safe for concurrent
	// mutation of one document, so files go one at a time.
	var result convert.BatchResult
	var runErr error
	go func() {
		defer close(events)
		result, runErr = convert.Folder(ctx, opener, cfg, events, log)
	}()

	var bar *progressbar.ProgressBar
	for ev := range events {
		switch ev.Kind {
		case types.EventStart:
			bar = progressbar.NewOptions(ev.Total,
				progressbar.OptionSetWriter(out),
				progressbar.OptionSetDescription("converting"),
				progressbar.OptionShowCount(),
			)
		case types.EventFile:
			if bar != nil {
				bar.Describe(fmt.Sprintf("%s (%d/%d)", ev.File, ev.Index, ev.Total))
			}
		case types.EventFileDone:
			if bar != nil {
				_ = bar.Add(1)
			}
		case types.EventFileFailed:
			fmt.Fprintf(out, "\nfailed: %s (%v)\n", ev.File, ev.Err)
			if bar != nil {
				_ = bar.Add(1)
			}
		case types.EventEmpty:
			fmt.Fprintf(out, "No PDF files found in %s\n", cfg.SourceFolder)
		case types.EventDone:
			if bar != nil {
				_ = bar.Finish()
				fmt.Fprintln(out)
			}
		}
	}

	// The worker closed the channel, so result and runErr are settled.
	if runErr != nil {
		return result, runErr
	}
	if result.Total() > 0 {
		fmt.Fprintf(out, "Done: %d converted, %d failed (total %d)\n",
			result.Converted, result.Failed, result.Total())
	}
	return result, nil
}
