// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package word builds Word documents with unidoc/unioffice. A Builder
// accumulates block-level elements in order and serializes once; nothing
// touches the destination path until Save.
package word

import (
	"fmt"
	"strings"

	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/common"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/wml"
)

// imageWidth is the fixed display width for inserted images. Height scales
// to keep the source aspect ratio.
const imageWidth = 2.5 * measurement.Inch

// Builder accumulates paragraphs, tables, and images into an in-memory Word
// document. A Builder belongs to one conversion and is not safe for
// concurrent use.
type Builder struct {
	doc *document.Document

	paragraphs int
	tables     int
	images     int
}

// NewBuilder returns an empty document builder.
func NewBuilder() *Builder {
	return &Builder{doc: document.New()}
}

// AddParagraph appends one paragraph block. Newlines within text become soft
// line breaks inside the paragraph.
func (b *Builder) AddParagraph(text string) {
	para := b.doc.AddParagraph()
	run := para.AddRun()
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			run.AddBreak()
		}
		run.AddText(line)
	}
	b.paragraphs++
}

// AddTable appends one table block with a cell per entry of rows. Rows are
// written as given; callers pad jagged rows beforehand.
func (b *Builder) AddTable(rows [][]string) {
	table := b.doc.AddTable()
	table.Properties().SetWidthPercent(100)
	table.Properties().Borders().SetAll(wml.ST_BorderSingle, color.Auto, 0.5*measurement.Point)

	for _, row := range rows {
		tr := table.AddRow()
		for _, cell := range row {
			tr.AddCell().AddParagraph().AddRun().AddText(cell)
		}
	}
	b.tables++
}

// AddImage appends one inline image block read from path, displayed at the
// fixed width. Returns an error when the file is not a usable image; the
// document is unchanged in that case.
func (b *Builder) AddImage(path string) error {
	img, err := common.ImageFromFile(path)
	if err != nil {
		return fmt.Errorf("reading image %s: %w", path, err)
	}

	ref, err := b.doc.AddImage(img)
	if err != nil {
		return fmt.Errorf("adding image %s: %w", path, err)
	}

	para := b.doc.AddParagraph()
	inline, err := para.AddRun().AddDrawingInline(ref)
	if err != nil {
		return fmt.Errorf("placing image %s: %w", path, err)
	}

	height := measurement.Distance(imageWidth)
	if img.Size.X > 0 {
		height = imageWidth * measurement.Distance(img.Size.Y) / measurement.Distance(img.Size.X)
	}
	inline.SetSize(imageWidth, height)

	b.images++
	return nil
}

// Paragraphs returns the number of paragraph blocks added.
func (b *Builder) Paragraphs() int { return b.paragraphs }

// Tables returns the number of table blocks added.
func (b *Builder) Tables() int { return b.tables }

// Images returns the number of image blocks added.
func (b *Builder) Images() int { return b.images }

// Save serializes the document to path, overwriting any existing file.
func (b *Builder) Save(path string) error {
	return b.doc.SaveToFile(path)
}
