package manifest

import "fmt"

// LoadFailure reports that a referenced module could not be made available:
// its manifest file is missing, malformed, or inconsistent. It always names
// the offending module and its manifest path.
type LoadFailure struct {
	Module string
	Path   string
	Err    error
}

// Error implements the error interface.
func (e *LoadFailure) Error() string {
	return fmt.Sprintf("failed to load module %q (%s): %v", e.Module, e.Path, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *LoadFailure) Unwrap() error {
	return e.Err
}
