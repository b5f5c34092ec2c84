// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the value types shared between the conversion engine,
// the batch driver, and the CLI surface.
package types

import "time"

// Job describes one file conversion: where to read, where to write, and
// whether images are transferred. A Job is a value with no lifecycle beyond
// a single engine invocation.
type Job struct {
	// SourcePath is the input PDF.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// DestPath is the output DOCX. Written only on full success.
	DestPath string `json:"dest_path" yaml:"dest_path"`

	// IncludeImages controls whether embedded images are extracted and
	// inserted into the output document.
	IncludeImages bool `json:"include_images" yaml:"include_images"`
}

// FileStatus indicates the outcome of converting one file.
type FileStatus string

const (
	FileConverted FileStatus = "converted"
	FileFailed    FileStatus = "failed"
)

// FileResult records the outcome of one file in a batch, for the report and
// the terminal summary.
type FileResult struct {
	// File is the input file's base name.
	File string `json:"file" yaml:"file"`

	// Status is the conversion outcome.
	Status FileStatus `json:"status" yaml:"status"`

	// Error holds the failure cause when Status is "failed".
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// BatchReport is the YAML record of a completed batch, written into the
// destination folder when reporting is enabled.
type BatchReport struct {
	SourceFolder      string       `json:"source_folder" yaml:"source_folder"`
	DestinationFolder string       `json:"destination_folder" yaml:"destination_folder"`
	StartedAt         time.Time    `json:"started_at" yaml:"started_at"`
	FinishedAt        time.Time    `json:"finished_at" yaml:"finished_at"`
	Converted         int          `json:"converted" yaml:"converted"`
	Failed            int          `json:"failed" yaml:"failed"`
	Files             []FileResult `json:"files" yaml:"files"`
}
