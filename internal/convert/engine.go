// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns PDF files into Word documents. The engine walks one
// file page by page, copying text, detected tables, and embedded images into
// a document builder; the batch driver runs the engine over a folder with
// per-file failure isolation and progress events.
package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/pdf2word/internal/source"
	"github.com/pdiddy/pdf2word/internal/word"
	"github.com/pdiddy/pdf2word/pkg/types"
)

// File converts one PDF into one DOCX. The source document and a scoped
// temporary directory (sibling to the destination, uniquely named) live for
// exactly this call: the temp directory is removed and the source closed on
// every path out. The document is serialized inside the temp directory and
// moved into place whole, so the destination path never holds a partial file.
func File(opener source.Opener, job types.Job, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	doc, err := opener.Open(job.SourcePath)
	if err != nil {
		return &OpenError{Path: job.SourcePath, Err: err}
	}
	defer doc.Close()

	tmpDir, err := os.MkdirTemp(filepath.Dir(job.DestPath), ".pdf2word-imgs-")
	if err != nil {
		return &WriteError{Path: job.DestPath, Err: err}
	}
	defer func() {
		// Best effort: a cleanup failure never outranks the conversion result.
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			log.Debug("temp dir cleanup failed", zap.String("dir", tmpDir), zap.Error(rmErr))
		}
	}()

	builder := word.NewBuilder()
	caps := opener.Capabilities()

	for i := 0; i < doc.PageCount(); i++ {
		page, err := doc.Page(i)
		if err != nil {
			return fmt.Errorf("page %d of %s: %w", i+1, job.SourcePath, err)
		}

		text, err := page.Text()
		if err != nil {
			return fmt.Errorf("page %d of %s: %w", i+1, job.SourcePath, err)
		}
		if text = strings.TrimSpace(text); text != "" {
			builder.AddParagraph(text)
		}

		if caps.Tables {
			copyTables(page, builder, log)
		}
		if job.IncludeImages && caps.Images {
			copyImages(page, builder, tmpDir, log)
		}
	}

	// Serialize into the temp directory, then move into place. A failed or
	// interrupted write strands the partial file under tmpDir, where the
	// deferred cleanup collects it.
	staging := filepath.Join(tmpDir, "out.docx")
	if err := builder.Save(staging); err != nil {
		return &WriteError{Path: job.DestPath, Err: err}
	}
	if err := os.Rename(staging, job.DestPath); err != nil {
		return &WriteError{Path: job.DestPath, Err: err}
	}
	return nil
}

// copyTables appends each detected table with at least one row to the
// builder as a rectangular grid: cells trimmed, jagged rows padded with
// empty cells. Detection trouble costs the page its tables, nothing more.
func copyTables(page source.Page, b *word.Builder, log *zap.Logger) {
	detected, err := page.Tables()
	if err != nil {
		log.Warn("table detection failed", zap.Error(err))
		return
	}
	for _, t := range detected {
		rows := normalizeRows(t.Rows)
		if len(rows) == 0 {
			continue
		}
		b.AddTable(rows)
	}
}

// copyImages writes each page image to a uniquely named file in tmpDir and
// inserts it into the builder. One bad image is logged and skipped; the rest
// of the page is unaffected. Deleting the temp files is File's job.
func copyImages(page source.Page, b *word.Builder, tmpDir string, log *zap.Logger) {
	images, err := page.Images()
	if err != nil {
		log.Warn("image extraction failed", zap.Error(err))
		return
	}
	for i, img := range images {
		format := img.Format
		if format == "" {
			format = "png"
		}
		path := filepath.Join(tmpDir, fmt.Sprintf("img_%s_%d.%s", img.Name, i, format))

		if err := os.WriteFile(path, img.Data, 0o644); err != nil {
			log.Warn("writing image to temp dir failed", zap.String("image", img.Name), zap.Error(err))
			continue
		}
		if err := b.AddImage(path); err != nil {
			log.Warn("image insertion failed", zap.String("image", img.Name), zap.Error(err))
		}
	}
}

// normalizeRows trims every cell and pads jagged rows so the grid's column
// count equals the longest row's length.
func normalizeRows(rows [][]string) [][]string {
	maxCols := 0
	for _, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}
	if maxCols == 0 {
		return nil
	}

	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, maxCols)
		for j, cell := range row {
			cells[j] = strings.TrimSpace(cell)
		}
		out[i] = cells
	}
	return out
}
