package main

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbhb/typegraph/inspect"
	"github.com/tbhb/typegraph/node"
	"github.com/tbhb/typegraph/typex"
)

func mustParse(t *testing.T, src string) any {
	t.Helper()
	v, err := parseExpr(src)
	require.NoError(t, err, src)
	return v
}

func TestParseBuiltins(t *testing.T) {
	assert.Equal(t, any(reflect.TypeOf(0)), mustParse(t, "int"))
	assert.Equal(t, any(reflect.TypeOf("")), mustParse(t, "str"))
	assert.Nil(t, mustParse(t, "None"))
	assert.Equal(t, any(typex.Any), mustParse(t, "Any"))
}

func TestParsePipeUnion(t *testing.T) {
	v := mustParse(t, "int | str | None")
	app, ok := v.(*typex.App)
	require.True(t, ok)
	assert.Equal(t, typex.FormUnion, app.Form())
	assert.Equal(t, 3, app.NumArgs())
}

func TestParseSubscripts(t *testing.T) {
	v := mustParse(t, "dict[str, list[int]]")
	n, err := inspect.Inspect(v, inspect.WithoutCache())
	require.NoError(t, err)

	require.Equal(t, node.KindSubscripted, n.Kind())
	assert.Equal(t, "dict", n.Origin().Name())
	inner := n.TypeArgs()[1]
	assert.Equal(t, node.KindSubscripted, inner.Kind())
	assert.Equal(t, "list", inner.Origin().Name())
}

func TestParseTupleSpellings(t *testing.T) {
	homog := mustParse(t, "tuple[int, ...]")
	n, err := inspect.Inspect(homog, inspect.WithoutCache())
	require.NoError(t, err)
	assert.True(t, n.Homogeneous())

	empty := mustParse(t, "tuple[()]")
	n, err = inspect.Inspect(empty, inspect.WithoutCache())
	require.NoError(t, err)
	assert.Equal(t, node.KindTuple, n.Kind())
	assert.Empty(t, n.Elems())
}

func TestParseCallable(t *testing.T) {
	v := mustParse(t, "Callable[[int, str], bool]")
	n, err := inspect.Inspect(v, inspect.WithoutCache())
	require.NoError(t, err)
	assert.Equal(t, node.ParamsList, n.ParamShape())
	assert.Len(t, n.Params(), 2)

	v = mustParse(t, "Callable[..., int]")
	n, err = inspect.Inspect(v, inspect.WithoutCache())
	require.NoError(t, err)
	assert.Equal(t, node.ParamsEllipsis, n.ParamShape())
}

func TestParseOptionalAndLiteral(t *testing.T) {
	opt := mustParse(t, "Optional[int]")
	n, err := inspect.Inspect(opt, inspect.WithoutCache())
	require.NoError(t, err)
	assert.True(t, node.UnionIncludesNone(n))

	lit := mustParse(t, `Literal[1, "two", True]`)
	n, err = inspect.Inspect(lit, inspect.WithoutCache())
	require.NoError(t, err)
	assert.Equal(t, []any{1, "two", true}, n.LiteralValues())
}

func TestParseLegacyUnion(t *testing.T) {
	v := mustParse(t, "Union[int, str]")
	app, ok := v.(*typex.App)
	require.True(t, ok)
	assert.Equal(t, typex.FormGeneric, app.Form())
}

func TestParseUnknownNamesBecomeRefs(t *testing.T) {
	v := mustParse(t, "User")
	ref, ok := v.(*typex.Ref)
	require.True(t, ok)
	assert.Equal(t, "User", ref.Name())

	q := mustParse(t, "'Account'")
	ref, ok = q.(*typex.Ref)
	require.True(t, ok)
	assert.Equal(t, "Account", ref.Name())

	sub := mustParse(t, "Box[int]")
	app, ok := sub.(*typex.App)
	require.True(t, ok)
	origin, ok := app.Origin().(*typex.Ref)
	require.True(t, ok)
	assert.Equal(t, "Box", origin.Name())
}

func TestParseClassOf(t *testing.T) {
	v := mustParse(t, "type[int]")
	n, err := inspect.Inspect(v, inspect.WithoutCache())
	require.NoError(t, err)
	assert.Equal(t, node.KindClassOf, n.Kind())
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"",
		"int |",
		"list[int",
		"Optional[int, str]",
		"Callable[int]",
		"'unterminated",
		"int ]",
		"..",
	} {
		_, err := parseExpr(src)
		assert.Error(t, err, src)
	}
}

func TestNamespaceFromDefines(t *testing.T) {
	ns, err := namespaceFromDefines([]string{"User=str", "IDs=list[int]"})
	require.NoError(t, err)
	assert.Equal(t, any(reflect.TypeOf("")), ns["User"])

	_, err = namespaceFromDefines([]string{"nonsense"})
	require.Error(t, err)

	empty, err := namespaceFromDefines(nil)
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestEvalModeFlag(t *testing.T) {
	m, err := evalMode("eager")
	require.NoError(t, err)
	assert.Equal(t, inspect.EvalEager, m)

	_, err = evalMode("sometimes")
	require.Error(t, err)
}
