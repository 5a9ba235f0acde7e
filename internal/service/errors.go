package service

import (
	"errors"
	"fmt"
)

// Error kinds callers branch on with errors.Is. Message text is never part
// of the contract.
var (
	ErrIDRequired      = errors.New("id is required")
	ErrNotFound        = errors.New("document not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidLocation = errors.New("invalid file location")
	ErrStorageWrite    = errors.New("storage write failed")
	ErrRetrieval       = errors.New("file retrieval failed")
)

// IngestError reports which file aborted an ingestion batch. It unwraps to
// the underlying error kind so errors.Is still works through it.
type IngestError struct {
	Filename string
	Err      error
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("ingest %q: %v", e.Filename, e.Err)
}

func (e *IngestError) Unwrap() error { return e.Err }
