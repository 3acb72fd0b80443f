// File: metaopt/args.go
package metaopt

// Reserved member names in a pending member table.
const (
	// MetaKey is the member holding the local declaration block before
	// resolution and the resolved *Options after it.
	MetaKey = "Meta"

	// AbstractKey is the plain boolean member mirroring the abstract option.
	AbstractKey = "__abstract__"

	// SchemaKey is the member naming the *Schema that this type and its
	// derived types resolve against. Looked up through the base chain.
	SchemaKey = "_meta_schema"
)

// Members is the pending member table of a type under construction. It is
// owned exclusively by the in-flight definition and may be mutated by option
// contributions until the type is finalized.
type Members map[string]any

// Decl is a raw local declaration block: option name to declared value.
// Underscore-prefixed keys are ignored by resolution.
type Decl map[string]any

// BuildArgs captures a type-under-construction at the moment the build hook
// fires: its identity, its base types in resolution order, and its pending
// member table. The resolution order of Bases is supplied by the caller and
// never recomputed here.
type BuildArgs struct {
	// Kind references the construction mechanism. Opaque to the engine,
	// forwarded to callbacks untouched.
	Kind any

	Name    string
	Module  string
	Bases   []*Type
	Members Members
}

// NewBuildArgs bundles a pending definition. A nil member table is replaced
// with an empty one so contributions always have something to mutate.
func NewBuildArgs(name string, bases []*Type, members Members) *BuildArgs {
	if members == nil {
		members = make(Members)
	}
	return &BuildArgs{Name: name, Bases: bases, Members: members}
}

// Qualname returns the module-qualified name of the type, or the bare name
// when no module is set.
func (a *BuildArgs) Qualname() string {
	if a.Module != "" {
		return a.Module + "." + a.Name
	}
	return a.Name
}

// LocalMeta returns the raw local declaration block, if one is present.
// A member that already holds a resolved *Options (as on an ancestor that
// went through resolution) is not a raw declaration and reports absent.
func (a *BuildArgs) LocalMeta() (Decl, bool) {
	v, ok := a.Members[MetaKey]
	if !ok {
		return nil, false
	}
	switch d := v.(type) {
	case Decl:
		return d, true
	case map[string]any:
		return Decl(d), true
	default:
		return nil, false
	}
}

// IsLocalAbstract reports whether this definition is explicitly marked
// abstract: the reserved plain member first, then the local declaration.
// Only a strict boolean true counts; anything else is false.
func (a *BuildArgs) IsLocalAbstract() bool {
	if v, ok := a.Members[AbstractKey]; ok {
		b, _ := v.(bool)
		return b
	}
	if decl, ok := a.LocalMeta(); ok {
		if v, ok := decl["abstract"]; ok {
			b, _ := v.(bool)
			return b
		}
	}
	return false
}

func (a *BuildArgs) String() string {
	return "<BuildArgs type=" + a.Qualname() + ">"
}
