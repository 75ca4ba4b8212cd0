package typex_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbhb/typegraph/typex"
)

func TestUnionForm(t *testing.T) {
	u := typex.Union(reflect.TypeOf(0), reflect.TypeOf(""), nil)

	assert.Equal(t, typex.FormUnion, u.Form())
	assert.Nil(t, u.Origin())
	require.Equal(t, 3, u.NumArgs())
	assert.Equal(t, reflect.TypeOf(0), u.Arg(0))
	assert.Nil(t, u.Arg(2))
}

func TestOptionalIsUnionWithNil(t *testing.T) {
	o := typex.Optional(reflect.TypeOf(""))

	assert.Equal(t, typex.FormUnion, o.Form())
	require.Equal(t, 2, o.NumArgs())
	assert.Nil(t, o.Arg(1))
}

func TestArgsReturnsCopy(t *testing.T) {
	u := typex.Union(reflect.TypeOf(0), reflect.TypeOf(""))

	args := u.Args()
	args[0] = nil

	assert.Equal(t, reflect.TypeOf(0), u.Arg(0), "mutating the returned slice must not affect the App")
}

func TestSubscriptOrigin(t *testing.T) {
	app := typex.List.Of(reflect.TypeOf(0))

	assert.Equal(t, typex.FormGeneric, app.Form())
	assert.Same(t, typex.List, app.Origin())
	require.Equal(t, 1, app.NumArgs())
}

func TestTupleShapes(t *testing.T) {
	fixed := typex.Tuple(reflect.TypeOf(0), reflect.TypeOf(""))
	assert.Equal(t, 2, fixed.NumArgs())

	homog := typex.Tuple(reflect.TypeOf(0), typex.Ellipsis)
	assert.Same(t, typex.Ellipsis, homog.Arg(1))

	empty := typex.EmptyTuple()
	assert.Equal(t, typex.FormEmptyTuple, empty.Form())
	assert.Equal(t, 0, empty.NumArgs())

	arbitrary := typex.Tuple()
	assert.Equal(t, typex.FormTuple, arbitrary.Form())
	assert.Equal(t, 0, arbitrary.NumArgs())
}

func TestTypeVarOptions(t *testing.T) {
	v := typex.NewTypeVar("T",
		typex.Bound(reflect.TypeOf(0)),
		typex.WithVariance(typex.Covariant),
		typex.Default(reflect.TypeOf("")),
	)

	assert.Equal(t, "T", v.Name())
	assert.Equal(t, typex.Covariant, v.Variance())
	assert.Equal(t, reflect.TypeOf(0), v.BoundType())

	def, ok := v.DefaultType()
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(""), def)

	_, ok = typex.NewTypeVar("U").DefaultType()
	assert.False(t, ok)
}

func TestTypeVarIdentity(t *testing.T) {
	a := typex.NewTypeVar("T")
	b := typex.NewTypeVar("T")

	assert.NotSame(t, a, b, "same-named placeholders are distinct objects")
}

func TestAnnotatedFlattensOuterFirst(t *testing.T) {
	inner := typex.WithMeta(reflect.TypeOf(0), "inner")
	outer := typex.WithMeta(inner, "outer")

	assert.Equal(t, reflect.TypeOf(0), outer.Inner())
	assert.Equal(t, []any{"outer", "inner"}, outer.Metadata())
}

func TestQualifiedBare(t *testing.T) {
	q := typex.ClassVar(nil)

	assert.Equal(t, typex.QualClassVar, q.Qualifier())
	assert.Nil(t, q.Inner())
}

func TestAliasKnotTying(t *testing.T) {
	a := typex.NewAlias("JSON", nil)
	a.Value = typex.Union(reflect.TypeOf(""), a)

	u, ok := a.Value.(*typex.App)
	require.True(t, ok)
	assert.Same(t, a, u.Arg(1))
}
