package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbhb/typegraph/node"
)

func collect(t *testing.T, root *node.Node, opts ...node.WalkOption) []*node.Node {
	t.Helper()

	seq, err := node.Walk(root, opts...)
	require.NoError(t, err)

	var out []*node.Node
	for n := range seq {
		out = append(out, n)
	}

	return out
}

func TestWalkPreOrderLeftToRight(t *testing.T) {
	intNode := node.NewConcrete(intType)
	strNode := node.NewConcrete(strType)
	u := node.NewUnion([]*node.Node{intNode, strNode})

	got := collect(t, u)

	require.Len(t, got, 3)
	assert.Same(t, u, got[0])
	assert.Same(t, intNode, got[1])
	assert.Same(t, strNode, got[2])
}

func TestWalkDeduplicatesSharedNodes(t *testing.T) {
	shared := node.NewConcrete(strType)
	sub := node.NewSubscripted(
		node.NewGeneric("dict", nil, nil),
		[]*node.Node{shared, shared},
	)

	got := collect(t, sub)

	counts := map[*node.Node]int{}
	for _, n := range got {
		counts[n]++
	}

	assert.Equal(t, 1, counts[shared], "shared node yielded once")
	require.Len(t, got, 2, "subscripted node walks its type arguments only")
}

func TestWalkSubscriptedSkipsOrigin(t *testing.T) {
	tv := node.NewTypeVar("T", node.TypeVarOpts{})
	origin := node.NewGeneric("list", nil, []*node.Node{tv})
	sub := node.NewSubscripted(origin, []*node.Node{node.NewConcrete(intType)})

	got := collect(t, sub)

	require.Len(t, got, 2)
	assert.Same(t, sub, got[0])
	assert.Equal(t, node.KindConcrete, got[1].Kind())
	assert.Same(t, origin, sub.Origin(), "origin stays reachable by accessor")
	require.Len(t, origin.TypeParams(), 1)
}

func TestWalkTerminatesOnCycles(t *testing.T) {
	alias := node.NewAlias("JSON", nil)
	node.CompleteAlias(alias, node.NewUnion([]*node.Node{node.NewConcrete(strType), alias}))

	got := collect(t, alias)

	assert.Less(t, len(got), 10)

	seen := map[*node.Node]struct{}{}
	for _, n := range got {
		_, dup := seen[n]
		assert.False(t, dup, "node yielded twice")
		seen[n] = struct{}{}
	}
}

func TestWalkMaxDepthZeroYieldsRoot(t *testing.T) {
	u := node.NewUnion([]*node.Node{node.NewConcrete(intType)})

	got := collect(t, u, node.MaxDepth(0))

	require.Len(t, got, 1)
	assert.Same(t, u, got[0])
}

func TestWalkNegativeDepthErrors(t *testing.T) {
	_, err := node.Walk(node.NewAny(), node.MaxDepth(-1))
	assert.Error(t, err)

	_, err = node.Walk(node.NewAny(), node.MaxDepth(-7))
	assert.Error(t, err)
}

func TestWalkDepthMonotonicity(t *testing.T) {
	leaf := node.NewConcrete(intType)
	inner := node.NewUnion([]*node.Node{leaf, node.NewConcrete(strType)})
	root := node.NewSubscripted(node.NewGeneric("list", nil, nil), []*node.Node{inner})

	var prev map[*node.Node]struct{}

	var sizes []int
	for depth := 0; depth <= 4; depth++ {
		cur := map[*node.Node]struct{}{}
		for _, n := range collect(t, root, node.MaxDepth(depth)) {
			cur[n] = struct{}{}
		}

		for n := range prev {
			_, ok := cur[n]
			assert.True(t, ok, "depth %d lost a node seen at depth %d", depth, depth-1)
		}

		prev = cur
		sizes = append(sizes, len(cur))
	}

	assert.Equal(t, sizes[3], sizes[4], "walk stabilizes at the graph's true depth")
}

func TestWalkDepthMonotonicityDiamond(t *testing.T) {
	// The shared subtree sits at depth 1 through the second union member
	// but DFS reaches it first through the deeper chain. When the deep
	// occurrence lands exactly on the depth bound its children are
	// withheld; the shallower occurrence must still expand them.
	leaf := node.NewConcrete(intType)
	shared := node.NewClassOf(leaf)
	deep := node.NewClassOf(node.NewClassOf(shared))
	root := node.NewUnion([]*node.Node{deep, shared})

	for depth := 2; depth <= 4; depth++ {
		found := false
		for _, n := range collect(t, root, node.MaxDepth(depth)) {
			if n == leaf {
				found = true
			}
		}
		assert.True(t, found, "leaf lost at depth %d", depth)
	}
}

func TestWalkFilter(t *testing.T) {
	u := node.NewUnion([]*node.Node{node.NewConcrete(intType), node.NewConcrete(strType)})

	got := collect(t, u, node.Filter(func(n *node.Node) bool {
		return n.Kind() == node.KindConcrete
	}))

	require.Len(t, got, 2)
	for _, n := range got {
		assert.Equal(t, node.KindConcrete, n.Kind())
	}
}

func TestWalkRestartable(t *testing.T) {
	u := node.NewUnion([]*node.Node{node.NewConcrete(intType)})

	seq, err := node.Walk(u)
	require.NoError(t, err)

	var first, second int
	for range seq {
		first++
	}
	for range seq {
		second++
	}

	assert.Equal(t, first, second)
	assert.Equal(t, 2, first)
}

func TestSprintMentionsEdgeLabels(t *testing.T) {
	u := node.NewUnion([]*node.Node{node.NewConcrete(intType)})

	out := node.Sprint(u)

	assert.Contains(t, out, "KindUnion")
	assert.Contains(t, out, "member[0]")
	assert.Contains(t, out, "KindConcrete(int)")
}
