// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source adapts PDF reading libraries behind a small document/page
// interface. A backend opens a file into a Document, an ordered sequence of
// Pages, and each Page exposes three facets: reading-order text, detected
// tables, and embedded raster images. What a backend can actually extract is
// declared up front through Capabilities rather than probed per call.
package source

import "fmt"

// Table is a grid of text cells detected on a page. Rows may be jagged;
// consumers pad short rows with empty cells.
type Table struct {
	Rows [][]string
}

// Image is one embedded raster image resolved to encoded bytes. Name is the
// image's identifier within the page (e.g. the XObject name "Im1") and is
// unique per page.
type Image struct {
	Name   string
	Format string // encoding of Data, e.g. "png"
	Data   []byte
}

// Page is a read-only view of one page of an open document. A Page has no
// identity beyond its position in the document.
type Page interface {
	// Text returns the page's text, flattened into reading order and
	// trimmed of surrounding whitespace.
	Text() (string, error)

	// Tables returns the tables detected on the page. Backends without
	// table support return nil, nil.
	Tables() ([]Table, error)

	// Images returns the page's embedded raster images. Backends without
	// image support return nil, nil.
	Images() ([]Image, error)
}

// Document is an open handle over one input file. It is owned by a single
// conversion and must be closed exactly once.
type Document interface {
	// PageCount returns the number of pages.
	PageCount() int

	// Page returns the page at index i (0-based).
	Page(i int) (Page, error)

	// Close releases the underlying parser state.
	Close() error
}

// Capabilities declares which facets a backend can extract. Resolved once at
// startup; a missing capability means "zero results", never an error.
type Capabilities struct {
	Tables bool
	Images bool
}

// Opener is a PDF reading backend.
type Opener interface {
	// Name identifies the backend ("tabula", "plaintext").
	Name() string

	// Capabilities reports which page facets the backend extracts.
	Capabilities() Capabilities

	// Open opens the file at path for reading.
	Open(path string) (Document, error)
}

// ForBackend returns the Opener for the named backend.
func ForBackend(name string) (Opener, error) {
	switch name {
	case "", "tabula":
		return TabulaOpener{}, nil
	case "plaintext":
		return PlainTextOpener{}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want tabula or plaintext)", name)
	}
}
