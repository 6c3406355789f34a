package internal

import "fmt"

// RemoteError represents a transport or model failure from the assistant
// boundary.
type RemoteError struct {
	Op  string // "reply", "imagePrompt", "translate"
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error [%s]: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// StructureError represents an internal invariant breach while assembling
// the model-call history. The turn aborts rather than sending malformed
// data to the model.
type StructureError struct {
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("conversation structure error: %s", e.Reason)
}
