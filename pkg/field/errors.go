package field

import "fmt"

// AllocationError reports a failure to reserve or rebuild column storage.
// The operation that returned it has not modified the field.
type AllocationError struct {
	Field string
	Cause error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("field %q: allocation failed: %v", e.Field, e.Cause)
}

func (e *AllocationError) Unwrap() error { return e.Cause }

// AlreadyAllocatedError reports an Allocate call on a field that already
// holds storage.
type AlreadyAllocatedError struct {
	Field string
}

func (e *AlreadyAllocatedError) Error() string {
	return fmt.Sprintf("field %q is already allocated", e.Field)
}

// ConfigMismatchError reports an operation that requires a ghosted field
// invoked on a non-ghosted one, or vice versa.
type ConfigMismatchError struct {
	Field string
	Msg   string
}

func (e *ConfigMismatchError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Msg)
}
