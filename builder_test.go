// File: metaopt/builder_test.go
package metaopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTypeBuilder tests the fluent definition interface
func TestTypeBuilder(t *testing.T) {
	schema := MustNewSchema(
		&Option{Name: "table", Default: "", Inherit: true},
		&Option{Name: "verbosity", Default: int64(1), Inherit: true},
	)

	t.Run("BasicDefine", func(t *testing.T) {
		base, err := NewTypeBuilder("Model").
			WithModule("app.models").
			WithSchema(schema).
			WithMeta(Decl{"table": "models"}).
			Define()
		require.NoError(t, err)

		assert.Equal(t, "app.models.Model", base.Qualname())
		table, err := base.Meta.String("table")
		require.NoError(t, err)
		assert.Equal(t, "models", table)

		sub, err := NewTypeBuilder("User").
			WithSchema(schema).
			WithBases(base).
			Define()
		require.NoError(t, err)

		table, err = sub.Meta.String("table")
		require.NoError(t, err)
		assert.Equal(t, "models", table, "inherited through the builder-supplied base")
	})

	t.Run("SchemaSelectionInheritedByDerivedTypes", func(t *testing.T) {
		custom := MustNewSchema(&Option{Name: "color", Default: "red", Inherit: true})

		base, err := NewTypeBuilder("Base").
			WithSchema(custom).
			WithMeta(Decl{"color": "blue"}).
			Define()
		require.NoError(t, err)

		// A derived type defined without naming a schema must pick up the
		// base's selection through the reserved member.
		sub, err := Define("Sub", []*Type{base}, nil, nil)
		require.NoError(t, err)

		v, ok := sub.Meta.Get("color")
		require.True(t, ok)
		assert.Equal(t, "blue", v)
	})

	t.Run("WithMetaTOML", func(t *testing.T) {
		typ, err := NewTypeBuilder("Loud").
			WithSchema(schema).
			WithMetaTOML([]byte("verbosity = 3\n")).
			Define()
		require.NoError(t, err)

		v, err := typ.Meta.Int64("verbosity")
		require.NoError(t, err)
		assert.Equal(t, int64(3), v)
	})

	t.Run("WithMetaTOMLParseErrorSurfacesAtDefine", func(t *testing.T) {
		_, err := NewTypeBuilder("Broken").
			WithSchema(schema).
			WithMetaTOML([]byte("verbosity = ")).
			Define()
		assert.Error(t, err)
	})

	t.Run("WithMetaYAML", func(t *testing.T) {
		typ, err := NewTypeBuilder("Quiet").
			WithSchema(schema).
			WithMetaYAML([]byte("table: quiet\n")).
			Define()
		require.NoError(t, err)

		table, _ := typ.Meta.String("table")
		assert.Equal(t, "quiet", table)
	})

	t.Run("WithAbstract", func(t *testing.T) {
		typ, err := NewTypeBuilder("Template").
			WithSchema(schema).
			WithAbstract(true).
			WithMeta(Decl{"abstract": false}).
			Define()
		require.NoError(t, err)
		assert.True(t, typ.Abstract(), "the plain member set by the builder wins")
	})

	t.Run("WithMemberAndKind", func(t *testing.T) {
		mechanism := struct{ name string }{"registry"}
		typ, err := NewTypeBuilder("Tagged").
			WithKind(mechanism).
			WithMember("tag", "v1").
			Define()
		require.NoError(t, err)

		v, ok := typ.Attr("tag")
		assert.True(t, ok)
		assert.Equal(t, "v1", v)
	})

	t.Run("MustDefinePanicsOnError", func(t *testing.T) {
		assert.Panics(t, func() {
			NewTypeBuilder("Bad").
				WithSchema(schema).
				WithMeta(Decl{"unknown": 1}).
				MustDefine()
		})
	})
}
