package annotation

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound An edit referenced an id absent from the set.
	ErrNotFound = errors.New("annotation not found")
	// ErrDuplicateID Add was called with an id already present. The uuid
	// generation scheme should make this unreachable.
	ErrDuplicateID = errors.New("duplicate annotation id")
)

// ValidationError A malformed annotation at finalize time. Recovered locally,
// never persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid annotation: %s: %s", e.Field, e.Reason)
}

// SyncError A network failure during Load, Save, DeleteOne or Predict. The
// local in-memory set is left unchanged when one of these surfaces.
type SyncError struct {
	Op  string
	Err error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync %s: %v", e.Op, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
