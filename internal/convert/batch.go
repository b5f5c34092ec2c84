// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/pdf2word/internal/source"
	"github.com/pdiddy/pdf2word/pkg/types"
)

const (
	sourceExt = ".pdf"
	destExt   = ".docx"
)

// BatchResult holds the outcome of a batch run.
type BatchResult struct {
	Converted int
	Failed    int
	Files     []types.FileResult
}

// Total returns the total number of files processed, including failures.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Folder converts every PDF in cfg.SourceFolder into cfg.DestinationFolder,
// in sorted-name order, one at a time. Each file's failure is recorded and
// the batch moves on; ctx is checked between files so a cancelled batch
// finishes its in-flight file and stops. Progress events are sent on events
// (may be nil) and never block the caller's state.
//
// An empty source folder is a notice, not an error: the batch completes with
// an empty result.
func Folder(ctx context.Context, opener source.Opener, cfg types.Config, events chan<- types.Progress, log *zap.Logger) (BatchResult, error) {
	var result BatchResult

	files, err := listSources(cfg.SourceFolder)
	if err != nil {
		return result, err
	}

	if len(files) == 0 {
		emit(events, types.Progress{Kind: types.EventEmpty})
		emit(events, types.Progress{Kind: types.EventDone})
		return result, nil
	}

	if err := os.MkdirAll(cfg.DestinationFolder, 0o755); err != nil {
		return result, fmt.Errorf("creating destination folder %s: %w", cfg.DestinationFolder, err)
	}

	total := len(files)
	emit(events, types.Progress{Kind: types.EventStart, Total: total})

	for i, src := range files {
		if ctx.Err() != nil {
			break
		}

		base := filepath.Base(src)
		emit(events, types.Progress{Kind: types.EventFile, Index: i + 1, Total: total, File: base})

		job := types.Job{
			SourcePath:    src,
			DestPath:      destPath(cfg.DestinationFolder, base),
			IncludeImages: cfg.IncludeImages,
		}

		if err := File(opener, job, log); err != nil {
			result.Failed++
			result.Files = append(result.Files, types.FileResult{
				File:   base,
				Status: types.FileFailed,
				Error:  err.Error(),
			})
			emit(events, types.Progress{Kind: types.EventFileFailed, Index: i + 1, Total: total, File: base, Err: err})
			continue
		}

		result.Converted++
		result.Files = append(result.Files, types.FileResult{File: base, Status: types.FileConverted})
		emit(events, types.Progress{Kind: types.EventFileDone, Index: i + 1, Total: total, File: base})
	}

	emit(events, types.Progress{Kind: types.EventDone, Total: total})
	return result, nil
}

// listSources returns the full paths of the folder's PDF files, sorted by
// name for reproducible batch order. Extension matching is case-insensitive.
func listSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading source folder %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), sourceExt) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// destPath maps an input base name to its destination path: same base name,
// target extension. Colliding names (case-insensitive filesystems) resolve
// to last one wins, per the sorted processing order.
func destPath(destDir, base string) string {
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(destDir, stem+destExt)
}

func emit(events chan<- types.Progress, p types.Progress) {
	if events != nil {
		events <- p
	}
}
