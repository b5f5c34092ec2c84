// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EventKind discriminates progress events emitted by the batch driver.
type EventKind string

const (
	// EventStart is emitted once before the first file, carrying Total.
	EventStart EventKind = "start"

	// EventFile is emitted before each file begins converting.
	EventFile EventKind = "file"

	// EventFileDone is emitted after a file converts successfully.
	EventFileDone EventKind = "file_done"

	// EventFileFailed is emitted after a file fails; Err carries the cause.
	EventFileFailed EventKind = "file_failed"

	// EventEmpty is emitted when the source folder holds no input files.
	EventEmpty EventKind = "empty"

	// EventDone is emitted once after the last file.
	EventDone EventKind = "done"
)

// Progress is one typed event on the batch driver's one-directional channel.
// The presentation layer drains these; it never touches worker-owned state.
type Progress struct {
	Kind  EventKind
	Index int    // 1-based position of the current file
	Total int    // number of files in the batch
	File  string // base name of the current file
	Err   error  // set for EventFileFailed
}
