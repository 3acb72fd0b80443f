// File: metaopt/type.go
package metaopt

import "fmt"

// Type is a finalized type object: the outcome of driving the build hook over
// a pending definition. Its member table is frozen by convention once Define
// returns, and Meta holds the resolved configuration installed during
// resolution.
type Type struct {
	Name    string
	Module  string
	Bases   []*Type
	Members Members
	Meta    *Options

	placeholder bool
}

// Define is the explicit build hook: it bundles the pending definition into
// BuildArgs, resolves the options through Apply, and finalizes the type.
// A nil schema selects the package default (abstract option only), unless a
// type in the chain declares its own through the SchemaKey member.
//
// Any resolution or validation error aborts the definition; no type is
// created and the member table carries no partial configuration.
func Define(name string, bases []*Type, members Members, schema *Schema) (*Type, error) {
	args := NewBuildArgs(name, bases, members)
	meta, err := Apply(args, schema)
	if err != nil {
		return nil, err
	}

	t := &Type{
		Name:    name,
		Bases:   bases,
		Members: args.Members,
		Meta:    meta,
	}
	meta.bindOwner(t)
	return t, nil
}

// MustDefine is like Define but panics on error. Intended for types assembled
// from literals at package init time.
func MustDefine(name string, bases []*Type, members Members, schema *Schema) *Type {
	t, err := Define(name, bases, members, schema)
	if err != nil {
		panic(fmt.Sprintf("metaopt: defining type %q failed: %v", name, err))
	}
	return t
}

// Attr looks up an attribute the way a constructed type namespace would: own
// members first, then each base in resolution order, depth-first. The second
// return value reports whether the attribute was found. Placeholder types
// never hold attributes.
func (t *Type) Attr(name string) (any, bool) {
	if t == nil || t.placeholder {
		return nil, false
	}
	if v, ok := t.Members[name]; ok {
		return v, true
	}
	for _, b := range t.Bases {
		if v, ok := b.Attr(name); ok {
			return v, true
		}
	}
	return nil, false
}

// Abstract reports whether the type resolved as abstract. Types without a
// resolved configuration are concrete.
func (t *Type) Abstract() bool {
	if opts := t.resolvedOptions(); opts != nil {
		return opts.Abstract()
	}
	return false
}

// Qualname returns the module-qualified name of the type.
func (t *Type) Qualname() string {
	if t.Module != "" {
		return t.Module + "." + t.Name
	}
	return t.Name
}

// resolvedOptions returns the configuration installed on this type, if any.
func (t *Type) resolvedOptions() *Options {
	if t == nil {
		return nil
	}
	if t.Meta != nil {
		return t.Meta
	}
	if v, ok := t.Members[MetaKey].(*Options); ok {
		return v
	}
	return nil
}

func (t *Type) String() string {
	return "<Type " + t.Qualname() + ">"
}
