// File: metaopt/resolver.go
package metaopt

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Resolve computes the resolved configuration object for a type under
// construction. For every option in schema order it merges the local
// declaration with the nearest ancestor's resolved value (when the option
// inherits) and the schema default, validates the result, runs the
// contribution callbacks, and installs the finished *Options as the Meta
// member of the pending table.
//
// Ancestor precedence follows args.Bases as given: the first base in that
// order carrying a resolved configuration with the option present wins.
// Bases without a resolved configuration contribute nothing.
//
// On any error nothing is installed; the Meta member is left untouched.
func Resolve(args *BuildArgs, schema *Schema) (*Options, error) {
	if err := checkMetaMember(args); err != nil {
		return nil, err
	}

	decl, _ := args.LocalMeta()
	ancestors := ancestorOptions(args.Bases)

	names := make([]string, 0, schema.Len())
	values := make(map[string]any, schema.Len())

	for _, opt := range schema.Options() {
		local := Absent
		if v, ok := decl[opt.Name]; ok {
			local = Some(v)
		}

		inherited := Absent
		if opt.Inherit {
			for _, anc := range ancestors {
				if v, ok := anc.Get(opt.Name); ok {
					inherited = Some(v)
					break
				}
			}
		}

		raw, err := opt.resolveValue(args, local, inherited)
		if err != nil {
			return nil, err
		}

		if opt.Validate != nil {
			if err := opt.Validate(args, raw); err != nil {
				return nil, &ValidationError{Option: opt.Name, Type: args.Qualname(), Err: err}
			}
		}

		names = append(names, opt.Name)
		values[opt.Name] = raw
	}

	if err := checkUnknownKeys(args, schema, decl); err != nil {
		return nil, err
	}

	resolved := newOptions(args.Name, names, values)

	// Contributions run in schema order so a later option may depend on an
	// earlier one having already mutated the member table.
	for _, opt := range schema.Options() {
		if opt.Contribute == nil {
			continue
		}
		if err := opt.Contribute(args, values[opt.Name]); err != nil {
			return nil, &ResolutionError{
				Type:   args.Qualname(),
				Reason: fmt.Sprintf("contribution for option %q failed: %v", opt.Name, err),
			}
		}
	}

	args.Members[MetaKey] = resolved
	return resolved, nil
}

// Apply is the dispatch entry point for build hooks: it selects the schema
// for the type under construction and drives Resolve once.
//
// Schema selection is inheritable: the reserved member named by SchemaKey is
// looked up in the pending table first, then through the bases in resolution
// order. When no type in the chain declares one, defaultSchema is used (nil
// means the package default, carrying only the abstract option).
func Apply(args *BuildArgs, defaultSchema *Schema) (*Options, error) {
	if defaultSchema == nil {
		defaultSchema = DefaultSchema()
	}

	schema := defaultSchema
	v, err := DeepGet(args.Members, args.Bases, SchemaKey)
	switch {
	case err == nil:
		s, ok := v.(*Schema)
		if !ok {
			return nil, &ResolutionError{
				Type:   args.Qualname(),
				Reason: fmt.Sprintf("member %q must hold a *Schema, got %T", SchemaKey, v),
			}
		}
		schema = s
	case !errors.Is(err, ErrAttributeMissing):
		return nil, err
	}

	return Resolve(args, schema)
}

// ancestorOptions collects the already-resolved configurations of the bases,
// preserving resolution order. Bases that never went through resolution are
// skipped.
func ancestorOptions(bases []*Type) []*Options {
	var out []*Options
	for _, b := range bases {
		if opts := b.resolvedOptions(); opts != nil {
			out = append(out, opts)
		}
	}
	return out
}

// checkMetaMember rejects a Meta member of a malformed shape. Only a raw
// declaration block or an already-resolved configuration may occupy it.
func checkMetaMember(args *BuildArgs) error {
	v, ok := args.Members[MetaKey]
	if !ok {
		return nil
	}
	switch v.(type) {
	case Decl, map[string]any, *Options:
		return nil
	default:
		return &ResolutionError{
			Type:   args.Qualname(),
			Reason: fmt.Sprintf("member %q must hold a declaration block, got %T", MetaKey, v),
		}
	}
}

// checkUnknownKeys rejects declaration keys that match no schema option.
// Underscore-prefixed keys are private to the declaration and ignored.
func checkUnknownKeys(args *BuildArgs, schema *Schema, decl Decl) error {
	var unknown []string
	for key := range decl {
		if strings.HasPrefix(key, "_") {
			continue
		}
		if _, ok := schema.Lookup(key); !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return &ResolutionError{
		Type:   args.Qualname(),
		Reason: fmt.Sprintf("declaration block got unknown option(s) %s", strings.Join(unknown, ", ")),
	}
}
