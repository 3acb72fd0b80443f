// File: metaopt/option.go
package metaopt

import "fmt"

type noDefault struct{}

func (noDefault) String() string { return "<no default>" }

// NoDefault marks an option that has no usable schema default, as opposed to
// a default of nil. Such an option must override Resolve, or the schema is
// rejected at assembly time.
var NoDefault any = noDefault{}

// Value carries an optional input to a Resolve callback, keeping the
// distinction between "absent" and "present but nil".
type Value struct {
	v       any
	present bool
}

// Some wraps a present value.
func Some(v any) Value {
	return Value{v: v, present: true}
}

// Absent is the zero Value: no value available.
var Absent = Value{}

// Present reports whether a value is available.
func (v Value) Present() bool { return v.present }

// Get returns the value and whether it is present.
func (v Value) Get() (any, bool) { return v.v, v.present }

// Or returns the value if present, else def.
func (v Value) Or(def any) any {
	if v.present {
		return v.v
	}
	return def
}

// ResolveFunc computes an option's raw value from the local declaration value
// and the ancestor fallback, before validation. Either input may be absent.
type ResolveFunc func(args *BuildArgs, local, inherited Value) (any, error)

// ValidateFunc rejects an unacceptable resolved value. It runs once per type,
// on the final value only.
type ValidateFunc func(args *BuildArgs, value any) error

// ContributeFunc applies a side effect to the pending member table after the
// option's value has been validated.
type ContributeFunc func(args *BuildArgs, value any) error

// Option describes one named configuration option in a schema: its default,
// whether derived types inherit an ancestor's resolved value, and optional
// resolution, validation and contribution callbacks.
type Option struct {
	// Name identifies the option. Unique within one schema.
	Name string

	// Default is used when the option is neither declared locally nor
	// inherited. May be NoDefault when Resolve computes a data-dependent
	// value.
	Default any

	// Inherit makes the nearest ancestor's resolved value visible as a
	// fallback when the local declaration omits the option.
	Inherit bool

	// Resolve overrides the default resolution logic. Optional.
	Resolve ResolveFunc

	// Validate checks the final resolved value. Optional.
	Validate ValidateFunc

	// Contribute mutates the member table after validation. Optional.
	Contribute ContributeFunc
}

// resolveValue computes the option's raw value: local declaration first, then
// the ancestor fallback when inheriting, then the schema default.
func (o *Option) resolveValue(args *BuildArgs, local, inherited Value) (any, error) {
	if o.Resolve != nil {
		return o.Resolve(args, local, inherited)
	}
	if v, ok := local.Get(); ok {
		return v, nil
	}
	if o.Inherit {
		if v, ok := inherited.Get(); ok {
			return v, nil
		}
	}
	if o.Default == NoDefault {
		return nil, &ResolutionError{
			Type:   args.Qualname(),
			Reason: fmt.Sprintf("option %q has no default, no local declaration and no ancestor fallback", o.Name),
		}
	}
	return o.Default, nil
}

func (o *Option) String() string {
	return fmt.Sprintf("<Option name=%q default=%v inherit=%t>", o.Name, o.Default, o.Inherit)
}
