package node_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbhb/typegraph/metadata"
	"github.com/tbhb/typegraph/node"
	"github.com/tbhb/typegraph/typex"
)

var (
	intType = reflect.TypeOf(0)
	strType = reflect.TypeOf("")
)

// oneOfEachKind builds at least one node per variant, exercising every
// branch of the child/edge derivation.
func oneOfEachKind() map[string]*node.Node {
	intNode := node.NewConcrete(intType)
	strNode := node.NewConcrete(strType)
	anyNode := node.NewAny()

	tv := node.NewTypeVar("T", node.TypeVarOpts{
		Variance:    typex.Covariant,
		Bound:       intNode,
		Constraints: []*node.Node{intNode, strNode},
		Default:     strNode,
		HasDefault:  true,
	})
	ps := node.NewParamSpec("P", nil, false)
	listDecl := node.NewGeneric("list", typex.List, []*node.Node{tv})
	sig := node.NewSignature(
		[]node.Param{{Name: "x", Kind: node.ParamPositional, Type: intNode}},
		strNode, nil,
	)

	return map[string]*node.Node{
		"concrete":      intNode,
		"any":           anyNode,
		"never":         node.NewNever(),
		"self":          node.NewSelf(),
		"literalstring": node.NewLiteralString(),
		"ellipsis":      node.NewEllipsis(),
		"literal":       node.NewLiteral([]any{1, "a", true}),
		"generic":       listDecl,
		"subscripted":   node.NewSubscripted(listDecl, []*node.Node{intNode}),
		"tuple-fixed":   node.NewTuple([]*node.Node{intNode, strNode}, false),
		"tuple-homog":   node.NewTuple([]*node.Node{intNode}, true),
		"tuple-empty":   node.NewEmptyTuple(),
		"tuple-arb":     node.NewArbitraryTuple(),
		"union":         node.NewUnion([]*node.Node{intNode, strNode}),
		"intersection":  node.NewIntersection([]*node.Node{intNode, strNode}),
		"callable-list": node.NewCallableList([]*node.Node{intNode}, strNode),
		"callable-ell":  node.NewCallableEllipsis(strNode),
		"callable-spec": node.NewCallableSpec(ps, strNode),
		"callable-cat":  node.NewCallableConcat(node.NewConcat([]*node.Node{intNode}, ps), strNode),
		"typevar":       tv,
		"paramspec":     node.NewParamSpec("P2", anyNode, true),
		"typevartuple":  node.NewTypeVarTuple("Ts", nil, false),
		"ref-unres":     node.NewUnresolvedRef("X"),
		"ref-res":       node.NewResolvedRef("Y", intNode),
		"ref-failed":    node.NewFailedRef("Z", "name \"Z\" is not defined"),
		"newtype":       node.NewNewType("UserID", intNode),
		"alias":         node.NewCompleteAlias("Pair", []*node.Node{tv}, node.NewTuple([]*node.Node{tv, tv}, false)),
		"record": node.NewRecord("Movie", []node.Field{
			{Name: "title", Type: strNode, Required: true},
			{Name: "year", Type: intNode},
		}, true, false),
		"namedrecord": node.NewNamedRecord("Point", []node.Field{
			{Name: "x", Type: intNode, Required: true},
			{Name: "y", Type: intNode, Required: true},
		}),
		"class": node.NewClass(node.ClassSpec{
			Name:           "Widget",
			TypeParams:     []*node.Node{tv},
			Bases:          []*node.Node{strNode},
			Methods:        []*node.Node{node.NewFunction("Render", sig, false, false, nil)},
			ClassFields:    []node.Field{{Name: "kind", Type: strNode}},
			InstanceFields: []node.Field{{Name: "id", Type: intNode}},
		}),
		"enum": node.NewEnum("Color", strNode, []node.EnumValue{
			{Name: "Red", Value: "red"},
			{Name: "Blue", Value: "blue"},
		}),
		"protocol": node.NewProtocol("Reader", nil,
			[]*node.Node{node.NewFunction("Read", sig, false, false, nil)},
			[]node.Field{{Name: "closed", Type: intNode}}, true),
		"signature": sig,
		"function":  node.NewFunction("handler", sig, true, true, []string{"cached"}),
		"typeguard": node.NewTypeGuard(intNode),
		"typeis":    node.NewTypeIs(intNode),
		"classof":   node.NewClassOf(intNode),
		"concat":    node.NewConcat([]*node.Node{intNode, strNode}, ps),
		"unpack":    node.NewUnpack(node.NewTypeVarTuple("Ts", nil, false)),
	}
}

func TestEdgesMirrorChildren(t *testing.T) {
	for name, n := range oneOfEachKind() {
		t.Run(name, func(t *testing.T) {
			edges := n.Edges()
			children := n.Children()

			require.Len(t, edges, len(children))
			for i, e := range edges {
				assert.Same(t, children[i], e.Target, "edge %d (%s)", i, e.Label())
			}
		})
	}
}

func TestLeafKindsHaveNoChildren(t *testing.T) {
	for name, n := range oneOfEachKind() {
		if !n.Kind().IsLeaf() {
			continue
		}

		assert.Empty(t, n.Children(), "%s (%s)", name, n.Kind())
		assert.Empty(t, n.Edges(), "%s (%s)", name, n.Kind())
	}
}

func TestWrapperKindsHaveAtLeastOneChild(t *testing.T) {
	for name, n := range oneOfEachKind() {
		switch n.Kind() {
		case node.KindTypeGuard, node.KindTypeIs, node.KindClassOf,
			node.KindUnpack, node.KindNewType, node.KindAlias:
			assert.NotEmpty(t, n.Children(), "%s (%s)", name, n.Kind())
		}
	}
}

func TestChildrenIdentityStable(t *testing.T) {
	for name, n := range oneOfEachKind() {
		if len(n.Children()) == 0 {
			continue
		}

		first := n.Children()
		second := n.Children()

		require.NotEmpty(t, first, name)
		assert.Same(t, &first[0], &second[0], "%s: Children must return the same backing slice", name)

		e1 := n.Edges()
		e2 := n.Edges()
		assert.Same(t, &e1[0], &e2[0], "%s: Edges must return the same backing slice", name)
	}
}

func TestWithCopiesAndRederives(t *testing.T) {
	base := node.NewUnion([]*node.Node{node.NewConcrete(intType)})

	withQual := base.With(node.AddQualifiers(typex.QualFinal))

	assert.NotSame(t, base, withQual)
	assert.Empty(t, base.Qualifiers())
	assert.True(t, withQual.Qualifiers().Has(typex.QualFinal))

	// derived links are recomputed, still consistent, same child nodes
	require.Len(t, withQual.Children(), 1)
	assert.Same(t, base.Children()[0], withQual.Children()[0])
	assert.Same(t, withQual.Children()[0], withQual.Edges()[0].Target)
}

func TestWithMetadataOuterFirst(t *testing.T) {
	n := node.NewConcrete(intType).
		With(node.AddMetadata(metadata.New("inner"))).
		With(node.AddMetadata(metadata.New("outer")))

	assert.Equal(t, []any{"outer", "inner"}, n.Metadata().Values())
}

func TestStructuralEquality(t *testing.T) {
	a := node.NewUnion([]*node.Node{node.NewConcrete(intType), node.NewConcrete(strType)})
	b := node.NewUnion([]*node.Node{node.NewConcrete(intType), node.NewConcrete(strType)})

	assert.NotSame(t, a, b)
	assert.True(t, a.Equal(b))

	c := node.NewUnion([]*node.Node{node.NewConcrete(strType), node.NewConcrete(intType)})
	assert.False(t, a.Equal(c), "union member order is structural")

	assert.False(t, a.Equal(a.With(node.AddQualifiers(typex.QualFinal))))
	assert.False(t, a.Equal(a.With(node.AddMetadata(metadata.New("m")))))
}

func TestEqualOnCyclicGraphs(t *testing.T) {
	mkCyclic := func() *node.Node {
		alias := node.NewAlias("JSON", nil)
		val := node.NewUnion([]*node.Node{node.NewConcrete(strType), alias})
		node.CompleteAlias(alias, val)
		return alias
	}

	a := mkCyclic()
	b := mkCyclic()

	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(a))
}

func TestCompleteAliasPanicsOnReuse(t *testing.T) {
	alias := node.NewAlias("A", nil)
	node.CompleteAlias(alias, node.NewConcrete(intType))

	assert.Panics(t, func() { node.CompleteAlias(alias, node.NewConcrete(strType)) })
	assert.Panics(t, func() { node.CompleteAlias(node.NewConcrete(intType), nil) })
}

func TestFinalTarget(t *testing.T) {
	leaf := node.NewConcrete(intType)
	inner := node.NewResolvedRef("B", leaf)
	outer := node.NewResolvedRef("A", inner)

	assert.Same(t, leaf, outer.FinalTarget())

	failed := node.NewFailedRef("X", "boom")
	chain := node.NewResolvedRef("W", failed)
	assert.Same(t, failed, chain.FinalTarget())

	assert.Same(t, leaf, leaf.FinalTarget(), "non-reference returns itself")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "KindConcrete", node.KindConcrete.String())
	assert.Equal(t, "KindUnpack", node.KindUnpack.String())
	assert.Equal(t, "Kind(0)", node.Kind(0).String())
}

func TestEdgeLabels(t *testing.T) {
	u := node.NewUnion([]*node.Node{node.NewConcrete(intType), node.NewConcrete(strType)})
	assert.Equal(t, "member[0]", u.Edges()[0].Label())
	assert.Equal(t, "member[1]", u.Edges()[1].Label())

	r := node.NewRecord("M", []node.Field{{Name: "title", Type: node.NewConcrete(strType)}}, true, false)
	assert.Equal(t, "field[title]", r.Edges()[0].Label())

	s := node.NewSubscripted(node.NewGeneric("list", typex.List, nil), []*node.Node{node.NewConcrete(intType)})
	require.Len(t, s.Edges(), 1, "origin is not a walked edge")
	assert.Equal(t, "typearg[0]", s.Edges()[0].Label())
}

func TestUnionQueriesBothRepresentations(t *testing.T) {
	intNode := node.NewConcrete(intType)
	noneNode := node.NewConcrete(typex.NoneType)

	native := node.NewUnion([]*node.Node{intNode, noneNode})
	legacy := node.NewSubscripted(
		node.NewGeneric("Union", typex.UnionAlias, nil),
		[]*node.Node{intNode, noneNode},
	)

	for _, n := range []*node.Node{native, legacy} {
		assert.True(t, node.IsUnion(n))
		require.Len(t, node.UnionMembers(n), 2)
		assert.True(t, node.UnionIncludesNone(n))
	}

	assert.False(t, node.IsUnion(intNode))
	assert.Nil(t, node.UnionMembers(intNode))

	other := node.NewSubscripted(node.NewGeneric("list", typex.List, nil), []*node.Node{intNode})
	assert.False(t, node.IsUnion(other), "subscripted non-union origin")
}
