// File: metaopt/helper.go
package metaopt

import "fmt"

// DeepGet acts like attribute access on a constructed type, except it
// operates on the pre-construction member table and base types: the pending
// members are searched first, then each base's constructed namespace in
// resolution order. When nothing matches it fails with ErrAttributeMissing.
func DeepGet(members Members, bases []*Type, name string) (any, error) {
	if v, ok := members[name]; ok {
		return v, nil
	}
	for _, b := range bases {
		if v, ok := b.Attr(name); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrAttributeMissing, name)
}

// DeepGetOr is like DeepGet but returns def instead of failing when the
// attribute is absent everywhere.
func DeepGetOr(members Members, bases []*Type, name string, def any) any {
	if v, err := DeepGet(members, bases, name); err == nil {
		return v
	}
	return def
}
