package node

import "github.com/tbhb/typegraph/typex"

// IsUnion reports whether the node is a union under either representation:
// a native union node, or a subscripted form whose origin is the legacy
// union-as-a-generic constructor. Callers never need to branch on the
// union-normalization setting.
func IsUnion(n *Node) bool {
	if n == nil {
		return false
	}

	switch n.kind {
	case KindUnion:
		return true
	case KindSubscripted:
		return n.origin != nil && n.origin.decl == typex.UnionAlias
	default:
		return false
	}
}

// UnionMembers extracts a union's ordered members under either
// representation. It returns nil for non-union nodes.
func UnionMembers(n *Node) []*Node {
	if !IsUnion(n) {
		return nil
	}

	if n.kind == KindUnion {
		return n.members
	}

	return n.args
}

// UnionIncludesNone reports whether any member of the union wraps the none
// type.
func UnionIncludesNone(n *Node) bool {
	for _, m := range UnionMembers(n) {
		if m.kind == KindConcrete && m.rtype == typex.NoneType {
			return true
		}
	}

	return false
}

// FinalTarget follows a chain of resolved forward references until it
// reaches a non-reference node or a reference that is not resolved. If the
// chain loops back on itself, the original node is returned; callers can
// tell the cycle case from genuine termination by re-checking the returned
// node's own state.
func (n *Node) FinalTarget() *Node {
	seen := map[*Node]struct{}{}

	cur := n
	for cur != nil && cur.kind == KindForwardRef && cur.refState == RefResolved {
		if _, looped := seen[cur]; looped {
			return n
		}
		seen[cur] = struct{}{}

		cur = cur.target
	}

	if cur == nil {
		return n
	}

	return cur
}
