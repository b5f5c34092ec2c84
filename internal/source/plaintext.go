// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PlainTextOpener reads PDFs with ledongthuc/pdf. It extracts text only;
// table and image capabilities are off, so those facets yield zero results.
type PlainTextOpener struct{}

func (PlainTextOpener) Name() string { return "plaintext" }

func (PlainTextOpener) Capabilities() Capabilities {
	return Capabilities{}
}

func (PlainTextOpener) Open(path string) (Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	return &plainTextDocument{f: f, r: r, fonts: make(map[string]*pdf.Font)}, nil
}

type plainTextDocument struct {
	f     *os.File
	r     *pdf.Reader
	fonts map[string]*pdf.Font
}

func (d *plainTextDocument) PageCount() int { return d.r.NumPage() }

func (d *plainTextDocument) Page(i int) (Page, error) {
	if i < 0 || i >= d.r.NumPage() {
		return nil, fmt.Errorf("page %d out of range (0-%d)", i, d.r.NumPage()-1)
	}
	return &plainTextPage{doc: d, index: i}, nil
}

func (d *plainTextDocument) Close() error { return d.f.Close() }

type plainTextPage struct {
	doc   *plainTextDocument
	index int
}

func (p *plainTextPage) Text() (string, error) {
	page := p.doc.r.Page(p.index + 1)
	if page.V.IsNull() {
		return "", nil
	}

	// The font cache is shared across pages of one document.
	for _, name := range page.Fonts() {
		if _, ok := p.doc.fonts[name]; !ok {
			f := page.Font(name)
			p.doc.fonts[name] = &f
		}
	}

	txt, err := page.GetPlainText(p.doc.fonts)
	if err != nil {
		return "", fmt.Errorf("reading page %d: %w", p.index+1, err)
	}
	return strings.TrimSpace(txt), nil
}

func (p *plainTextPage) Tables() ([]Table, error) { return nil, nil }

func (p *plainTextPage) Images() ([]Image, error) { return nil, nil }
