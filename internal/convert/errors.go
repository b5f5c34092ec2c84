// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "fmt"

// OpenError reports that a source file is missing, unreadable, or not a
// valid PDF. It is surfaced per file and never aborts a batch.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string { return fmt.Sprintf("opening %s: %v", e.Path, e.Err) }

func (e *OpenError) Unwrap() error { return e.Err }

// WriteError reports that the destination could not be written (permissions,
// disk full, locked file). It is surfaced per file and never aborts a batch.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return fmt.Sprintf("writing %s: %v", e.Path, e.Err) }

func (e *WriteError) Unwrap() error { return e.Err }
