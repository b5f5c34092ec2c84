// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Config groups the settings for a conversion run. Values come from the
// config file, environment, and command-line flags, layered in that order.
type Config struct {
	// SourceFolder is the directory scanned for input PDFs.
	SourceFolder string `json:"source_folder" yaml:"source_folder"`

	// DestinationFolder is the directory DOCX output is written into.
	// Created if absent.
	DestinationFolder string `json:"destination_folder" yaml:"destination_folder"`

	// IncludeImages controls whether embedded raster images are transferred
	// into the output documents.
	IncludeImages bool `json:"include_images" yaml:"include_images"`

	// Backend selects the PDF reading backend: "tabula" (text, tables,
	// images) or "plaintext" (text only).
	Backend string `json:"backend" yaml:"backend"`

	// Report controls whether a YAML batch report is written into the
	// destination folder after the run.
	Report bool `json:"report" yaml:"report"`
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	return Config{
		SourceFolder:      "pdfs",
		DestinationFolder: "docs_word",
		IncludeImages:     true,
		Backend:           "tabula",
	}
}
