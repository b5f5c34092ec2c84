// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"fmt"
	"strings"

	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/reader"
	"github.com/tsawler/tabula/tables"
	"github.com/tsawler/tabula/text"
)

// TabulaOpener reads PDFs with tsawler/tabula. It extracts all three page
// facets: text in reading order, geometrically detected tables, and embedded
// raster images decoded to PNG.
type TabulaOpener struct{}

func (TabulaOpener) Name() string { return "tabula" }

func (TabulaOpener) Capabilities() Capabilities {
	return Capabilities{Tables: true, Images: true}
}

// Open opens the PDF at path. The returned Document shares one underlying
// reader across its pages and must be closed by the caller.
func (TabulaOpener) Open(path string) (Document, error) {
	r, err := reader.Open(path)
	if err != nil {
		return nil, err
	}
	n, err := r.PageCount()
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("reading page count: %w", err)
	}
	return &tabulaDocument{r: r, pages: n}, nil
}

type tabulaDocument struct {
	r     *reader.Reader
	pages int
}

func (d *tabulaDocument) PageCount() int { return d.pages }

func (d *tabulaDocument) Page(i int) (Page, error) {
	if i < 0 || i >= d.pages {
		return nil, fmt.Errorf("page %d out of range (0-%d)", i, d.pages-1)
	}
	return &tabulaPage{doc: d, index: i}, nil
}

func (d *tabulaDocument) Close() error { return d.r.Close() }

type tabulaPage struct {
	doc   *tabulaDocument
	index int
}

// Text extracts the page's text through tabula's fluent extractor. The
// extractor borrows the document's reader, so the reader stays open for the
// remaining pages.
func (p *tabulaPage) Text() (string, error) {
	txt, _, err := tabula.FromReader(p.doc.r).Pages(p.index + 1).Text()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(txt), nil
}

// Tables runs tabula's geometric table detector over the page's positioned
// text fragments.
func (p *tabulaPage) Tables() ([]Table, error) {
	det := tables.GetDetector("geometric")
	if det == nil {
		return nil, nil
	}

	page, err := p.doc.r.GetPage(p.index)
	if err != nil {
		return nil, err
	}
	fragments, err := p.doc.r.ExtractTextFragments(page)
	if err != nil {
		return nil, err
	}

	width, _ := page.Width()
	height, _ := page.Height()
	mp := model.NewPage(width, height)
	mp.Number = p.index + 1
	mp.RawText = toModelFragments(fragments)

	detected, err := det.Detect(mp)
	if err != nil {
		return nil, err
	}

	result := make([]Table, 0, len(detected))
	for _, t := range detected {
		grid := Table{Rows: make([][]string, 0, len(t.Rows))}
		for _, row := range t.Rows {
			cells := make([]string, 0, len(row))
			for _, cell := range row {
				cells = append(cells, cell.Text)
			}
			grid.Rows = append(grid.Rows, cells)
		}
		result = append(result, grid)
	}
	return result, nil
}

// Images extracts the page's image XObjects and re-encodes each as PNG.
// Images whose pixel data cannot be decoded are skipped.
func (p *tabulaPage) Images() ([]Image, error) {
	page, err := p.doc.r.GetPage(p.index)
	if err != nil {
		return nil, err
	}
	extracted, err := p.doc.r.ExtractPageImages(page)
	if err != nil {
		return nil, err
	}

	var images []Image
	for _, img := range extracted {
		data, err := img.ToPNG()
		if err != nil {
			continue
		}
		images = append(images, Image{
			Name:   img.Name,
			Format: "png",
			Data:   data,
		})
	}
	return images, nil
}

func toModelFragments(fragments []text.TextFragment) []model.TextFragment {
	result := make([]model.TextFragment, len(fragments))
	for i, f := range fragments {
		result[i] = model.TextFragment{
			Text:     f.Text,
			BBox:     model.BBox{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height},
			FontSize: f.FontSize,
			FontName: f.FontName,
		}
	}
	return result
}
