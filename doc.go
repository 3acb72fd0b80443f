// File: metaopt/doc.go

// Package metaopt provides a declarative, inheritance-aware meta-options
// engine: a base type declares a schema of named, typed, validated options,
// and every derived type supplies a partial local override through a nested
// declaration block. At definition time the engine merges the local
// declaration with the ancestors' already-resolved configurations, applies
// per-option defaults, inheritance rules and validation, and installs one
// final configuration object on the type.
//
// Features:
//   - Option-by-option inheritance with explicit resolution order
//   - Per-option defaults, validation and contribution callbacks
//   - Inheritable schema selection across a type hierarchy
//   - Built-in abstract marker kept in sync with a plain member
//   - Declaration blocks parsed from TOML or YAML text
//   - Typed accessors and struct decoding of resolved configurations
//
// Quick Start:
//
//	schema := metaopt.MustNewSchema(
//	    &metaopt.Option{Name: "table", Default: "", Inherit: true},
//	    &metaopt.Option{Name: "verbosity", Default: int64(1), Inherit: true},
//	)
//
//	base, err := metaopt.Define("Model", nil, metaopt.Members{
//	    metaopt.MetaKey: metaopt.Decl{"table": "models", "verbosity": int64(2)},
//	}, schema)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sub, _ := metaopt.Define("User", []*metaopt.Type{base}, nil, schema)
//	table, _ := sub.Meta.String("table") // "models", inherited
//
// Resolution Precedence (highest to lowest):
//  1. Local declaration block (the "Meta" member)
//  2. Nearest ancestor's resolved value, when the option inherits
//  3. The option's declared default
//
// Inheritance is evaluated option by option, never block by block: a derived
// type may override exactly one option while inheriting the rest. Ancestor
// precedence follows the base list as given; callers supply the linearization,
// the engine never recomputes it.
//
// Thread Safety:
// Resolution is synchronous and runs once per type at definition time.
// Resolved configurations are read-only by contract once installed, so
// concurrent definition of unrelated types needs no locking.
package metaopt
