// File: metaopt/schema.go
package metaopt

// Schema is an ordered collection of options a family of types resolves
// against. Order is significant: contributions run in declaration order, so a
// later option may rely on an earlier one having already mutated the member
// table.
type Schema struct {
	options []*Option
	byName  map[string]*Option
}

// NewSchema assembles a schema from the given options. The built-in abstract
// option is prepended unless the caller declares its own option of that name.
//
// Assembly fails with *SchemaError on an empty or duplicate option name, and
// on an option whose Default is NoDefault without a Resolve override.
func NewSchema(opts ...*Option) (*Schema, error) {
	hasAbstract := false
	for _, o := range opts {
		if o.Name == AbstractOptionName {
			hasAbstract = true
			break
		}
	}
	if !hasAbstract {
		opts = append([]*Option{AbstractOption()}, opts...)
	}

	s := &Schema{
		options: opts,
		byName:  make(map[string]*Option, len(opts)),
	}
	for _, o := range opts {
		if o.Name == "" {
			return nil, &SchemaError{Reason: "option name cannot be empty"}
		}
		if _, dup := s.byName[o.Name]; dup {
			return nil, &SchemaError{Option: o.Name, Reason: "duplicate option name"}
		}
		if o.Default == NoDefault && o.Resolve == nil {
			return nil, &SchemaError{Option: o.Name, Reason: "no usable default and no Resolve override"}
		}
		s.byName[o.Name] = o
	}
	return s, nil
}

// MustNewSchema is like NewSchema but panics on error. Intended for schemas
// assembled from literals at package init time.
func MustNewSchema(opts ...*Option) *Schema {
	s, err := NewSchema(opts...)
	if err != nil {
		panic("metaopt: schema assembly failed: " + err.Error())
	}
	return s
}

// DefaultSchema returns a schema carrying only the built-in abstract option.
func DefaultSchema() *Schema {
	return MustNewSchema()
}

// Options returns the schema's options in declaration order. The returned
// slice is shared; callers must not modify it.
func (s *Schema) Options() []*Option {
	return s.options
}

// Lookup returns the option with the given name, if declared.
func (s *Schema) Lookup(name string) (*Option, bool) {
	o, ok := s.byName[name]
	return o, ok
}

// Len returns the number of options in the schema.
func (s *Schema) Len() int {
	return len(s.options)
}
