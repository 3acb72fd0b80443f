// File: metaopt/placeholder.go
package metaopt

// Placeholder returns a stand-in type for an optional dependency that is not
// available. It is safe to use as a base: its attribute namespace is always
// empty, it carries no resolved configuration, and it never contributes
// inherited option values. Use IsPlaceholder to tell it apart from a
// functioning type.
func Placeholder(name string) *Type {
	return &Type{
		Name:        name,
		Members:     make(Members),
		placeholder: true,
	}
}

// IsPlaceholder reports whether the type is a stand-in for an unavailable
// optional dependency.
func (t *Type) IsPlaceholder() bool {
	return t != nil && t.placeholder
}

// Defined reports whether the type is a real, functioning type rather than
// nil or a placeholder.
func (t *Type) Defined() bool {
	return t != nil && !t.placeholder
}
