// File: metaopt/builder.go
package metaopt

import "fmt"

// TypeBuilder provides a fluent interface for assembling a type definition
// before handing it to the build hook.
type TypeBuilder struct {
	name    string
	module  string
	kind    any
	bases   []*Type
	members Members
	err     error
}

// NewTypeBuilder creates a builder for a type with the given name.
func NewTypeBuilder(name string) *TypeBuilder {
	return &TypeBuilder{
		name:    name,
		members: make(Members),
	}
}

// WithModule sets the module (namespace) the type belongs to.
func (b *TypeBuilder) WithModule(module string) *TypeBuilder {
	b.module = module
	return b
}

// WithKind sets the opaque construction-mechanism reference forwarded to
// callbacks.
func (b *TypeBuilder) WithKind(kind any) *TypeBuilder {
	b.kind = kind
	return b
}

// WithBases appends base types. Order matters: it is the resolution order
// used for inheritance fallback and attribute lookup.
func (b *TypeBuilder) WithBases(bases ...*Type) *TypeBuilder {
	b.bases = append(b.bases, bases...)
	return b
}

// WithMember sets one pending member.
func (b *TypeBuilder) WithMember(name string, value any) *TypeBuilder {
	b.members[name] = value
	return b
}

// WithMeta sets the local declaration block.
func (b *TypeBuilder) WithMeta(decl Decl) *TypeBuilder {
	b.members[MetaKey] = decl
	return b
}

// WithMetaTOML parses the local declaration block from TOML text.
func (b *TypeBuilder) WithMetaTOML(data []byte) *TypeBuilder {
	decl, err := DeclFromTOML(data)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	b.members[MetaKey] = decl
	return b
}

// WithMetaYAML parses the local declaration block from YAML text.
func (b *TypeBuilder) WithMetaYAML(data []byte) *TypeBuilder {
	decl, err := DeclFromYAML(data)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	b.members[MetaKey] = decl
	return b
}

// WithAbstract sets the reserved plain abstract member, which takes
// precedence over any declared abstract value.
func (b *TypeBuilder) WithAbstract(abstract bool) *TypeBuilder {
	b.members[AbstractKey] = abstract
	return b
}

// WithSchema sets the schema this type and its derived types resolve
// against, via the reserved schema member.
func (b *TypeBuilder) WithSchema(schema *Schema) *TypeBuilder {
	b.members[SchemaKey] = schema
	return b
}

// Define drives the build hook and finalizes the type.
func (b *TypeBuilder) Define() (*Type, error) {
	if b.err != nil {
		return nil, b.err
	}

	args := NewBuildArgs(b.name, b.bases, b.members)
	args.Module = b.module
	args.Kind = b.kind

	meta, err := Apply(args, nil)
	if err != nil {
		return nil, err
	}

	t := &Type{
		Name:    b.name,
		Module:  b.module,
		Bases:   b.bases,
		Members: args.Members,
		Meta:    meta,
	}
	meta.bindOwner(t)
	return t, nil
}

// MustDefine is like Define but panics on error.
func (b *TypeBuilder) MustDefine() *Type {
	t, err := b.Define()
	if err != nil {
		panic(fmt.Sprintf("metaopt: defining type %q failed: %v", b.name, err))
	}
	return t
}
