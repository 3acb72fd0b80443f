// File: metaopt/errors.go
package metaopt

import (
	"errors"
	"fmt"
)

// ErrAttributeMissing is returned by DeepGet and Type.Attr when an attribute
// is found neither in the pending member table nor in any base, and no
// default was supplied.
var ErrAttributeMissing = errors.New("attribute not found")

// SchemaError reports a misassembled schema: duplicate or empty option names,
// or an option with no usable default and no Resolve override. It is detected
// when the schema is built, independent of any specific type.
type SchemaError struct {
	Option string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("schema: %s", e.Reason)
	}
	return fmt.Sprintf("schema: option %q: %s", e.Option, e.Reason)
}

// ValidationError reports that an option's validator rejected the resolved
// value for a specific type. It is fatal to that type's definition.
type ValidationError struct {
	Option string
	Type   string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value for option %q on type %q: %v", e.Option, e.Type, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ResolutionError reports any other inconsistency during resolution: unknown
// keys in a local declaration, a declaration member of an unexpected shape, or
// an option left without a value because it has no default, no local
// declaration and no ancestor fallback.
type ResolutionError struct {
	Type   string
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving options for type %q: %s", e.Type, e.Reason)
}
