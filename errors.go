// Package vellum implements the piece-rope buffer at the core of a small
// single-file text editor: a binary tree whose leaves reference either an
// unmodified range of the original on-disk file or a modified in-memory
// byte sequence, supporting localized view/replace/insert/erase and an
// in-place flush back to the same file.
package vellum

import "errors"

// I/O errors
var (
	// ErrIoOpen indicates the backing file could not be opened or created.
	ErrIoOpen = errors.New("vellum: cannot open or create file")

	// ErrIoRead indicates an unexpected read failure (not EOF).
	ErrIoRead = errors.New("vellum: read failure")

	// ErrIoWrite indicates a write returned short or failed outright.
	ErrIoWrite = errors.New("vellum: short or failed write")
)

// Position errors
var (
	// ErrInvalidPosition indicates a position or range outside the valid bounds.
	ErrInvalidPosition = errors.New("vellum: position out of bounds")
)

// Tree structure errors
var (
	// ErrNotALeaf indicates split was called on a branch node.
	ErrNotALeaf = errors.New("vellum: split requires a leaf node")
)

// Command layer errors
var (
	// ErrArgParse indicates a malformed command line or REPL command.
	ErrArgParse = errors.New("vellum: argument parse error")
)
