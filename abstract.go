// File: metaopt/abstract.go
package metaopt

import "fmt"

// AbstractOptionName is the name of the built-in abstract marker option.
const AbstractOptionName = "abstract"

// AbstractOption builds the built-in abstract marker: default false, never
// inherited, since a concrete subtype of an abstract base is the normal case.
//
// Resolution gives a reserved plain member precedence over the nested
// declaration, so collaborators that only understand the plain member stay
// authoritative, and its contribution writes the resolved flag back to that
// member to keep the two in sync.
func AbstractOption() *Option {
	return &Option{
		Name:    AbstractOptionName,
		Default: false,
		Inherit: false,
		Resolve: func(args *BuildArgs, local, inherited Value) (any, error) {
			if v, ok := args.Members[AbstractKey]; ok {
				b, _ := v.(bool)
				return b, nil
			}
			// Coerce the declared value to a strict boolean.
			b, _ := local.Or(false).(bool)
			return b, nil
		},
		Validate: func(args *BuildArgs, value any) error {
			if _, ok := value.(bool); !ok {
				return fmt.Errorf("expected bool, got %T", value)
			}
			return nil
		},
		Contribute: func(args *BuildArgs, value any) error {
			args.Members[AbstractKey] = value
			return nil
		},
	}
}
