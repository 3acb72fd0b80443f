// File: metaopt/decl_test.go
package metaopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeclParsing tests declaration blocks parsed from config text
func TestDeclParsing(t *testing.T) {
	schema := MustNewSchema(
		&Option{Name: "table", Default: "", Inherit: true},
		&Option{Name: "verbosity", Default: int64(1), Inherit: true},
	)

	t.Run("FromTOML", func(t *testing.T) {
		decl, err := DeclFromTOML([]byte("table = \"models\"\nverbosity = 2\n"))
		require.NoError(t, err)
		assert.Equal(t, "models", decl["table"])
		assert.Equal(t, int64(2), decl["verbosity"])

		typ, err := Define("Model", nil, Members{MetaKey: decl}, schema)
		require.NoError(t, err)

		v, err := typ.Meta.Int64("verbosity")
		require.NoError(t, err)
		assert.Equal(t, int64(2), v)
	})

	t.Run("FromTOMLInvalid", func(t *testing.T) {
		_, err := DeclFromTOML([]byte("table = "))
		assert.Error(t, err)
	})

	t.Run("FromYAML", func(t *testing.T) {
		decl, err := DeclFromYAML([]byte("table: models\nabstract: true\n"))
		require.NoError(t, err)

		typ, err := Define("Model", nil, Members{MetaKey: decl}, schema)
		require.NoError(t, err)

		table, err := typ.Meta.String("table")
		require.NoError(t, err)
		assert.Equal(t, "models", table)
		assert.True(t, typ.Meta.Abstract())
	})

	t.Run("FromYAMLInvalid", func(t *testing.T) {
		_, err := DeclFromYAML([]byte("table: [unclosed"))
		assert.Error(t, err)
	})
}
