// File: metaopt/helper_test.go
package metaopt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeepGet tests pre-construction attribute lookup
func TestDeepGet(t *testing.T) {
	t.Run("FromMembers", func(t *testing.T) {
		v, err := DeepGet(Members{"hi": "hello"}, nil, "hi")
		require.NoError(t, err)
		assert.Equal(t, "hello", v)
	})

	t.Run("FromBases", func(t *testing.T) {
		base := &Type{Name: "Hi", Members: Members{"hi": "hello"}}
		empty := &Type{Name: "Empty", Members: Members{}}

		v, err := DeepGet(Members{}, []*Type{base}, "hi")
		require.NoError(t, err)
		assert.Equal(t, "hello", v)

		v, err = DeepGet(Members{}, []*Type{empty, base}, "hi")
		require.NoError(t, err)
		assert.Equal(t, "hello", v)
	})

	t.Run("FromTransitiveBases", func(t *testing.T) {
		grand := &Type{Name: "Grand", Members: Members{"hi": "from grand"}}
		parent := &Type{Name: "Parent", Members: Members{}, Bases: []*Type{grand}}

		v, err := DeepGet(Members{}, []*Type{parent}, "hi")
		require.NoError(t, err)
		assert.Equal(t, "from grand", v)
	})

	t.Run("MembersTakePrecedenceOverBases", func(t *testing.T) {
		base := &Type{Name: "Base", Members: Members{"hi": "from base"}}
		v, err := DeepGet(Members{"hi": "from members"}, []*Type{base}, "hi")
		require.NoError(t, err)
		assert.Equal(t, "from members", v)
	})

	t.Run("AttributeMissing", func(t *testing.T) {
		_, err := DeepGet(Members{}, nil, "nope")
		assert.True(t, errors.Is(err, ErrAttributeMissing))
	})

	t.Run("DeepGetOr", func(t *testing.T) {
		assert.Equal(t, "default", DeepGetOr(Members{}, nil, "nope", "default"))
		assert.Equal(t, "hello", DeepGetOr(Members{"hi": "hello"}, nil, "hi", "default"))
	})
}

// TestTypeAttr tests attribute lookup on finalized types
func TestTypeAttr(t *testing.T) {
	grand := &Type{Name: "Grand", Members: Members{"inherited": 1}}
	parent := &Type{Name: "Parent", Members: Members{"own": 2}, Bases: []*Type{grand}}

	v, ok := parent.Attr("own")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = parent.Attr("inherited")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = parent.Attr("missing")
	assert.False(t, ok)

	var nilType *Type
	_, ok = nilType.Attr("anything")
	assert.False(t, ok)
}
