package inspect

import (
	"fmt"

	"github.com/tbhb/typegraph/node"
	"github.com/tbhb/typegraph/typex"
)

// IrreversibleError reports a graph that cannot be rendered back into an
// annotation value, typically because a placeholder's declaration identity
// was not recorded.
type IrreversibleError struct {
	Kind   node.Kind
	Detail string
}

func (e *IrreversibleError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("inspect: cannot reconstruct annotation from %s node: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("inspect: cannot reconstruct annotation from %s node", e.Kind)
}

// ToNative renders a graph back into an annotation value. Nodes built from
// declared objects return those objects by identity; structural nodes are
// rebuilt from their children. Metadata and qualifier wrappers are restored
// when includeMetadata is set. Graphs containing bare placeholders without
// recorded declarations are irreversible.
func ToNative(n *node.Node, includeMetadata bool) (any, error) {
	return toNative(n, includeMetadata, map[*node.Node]any{})
}

func toNative(n *node.Node, withMeta bool, seen map[*node.Node]any) (any, error) {
	if v, ok := seen[n]; ok {
		return v, nil
	}

	v, err := rebuild(n, withMeta, seen)
	if err != nil {
		return nil, err
	}

	// Metadata sits innermost: the inspector strips qualifiers before the
	// metadata wrapper, so restoration applies metadata first and then the
	// qualifiers innermost to outermost.
	if withMeta && !n.Metadata().IsEmpty() {
		v = typex.WithMeta(v, n.Metadata().Values()...)
	}
	quals := n.Qualifiers()
	for i := len(quals) - 1; i >= 0; i-- {
		v = wrapQualifier(quals[i], v)
	}

	seen[n] = v
	return v, nil
}

func rebuild(n *node.Node, withMeta bool, seen map[*node.Node]any) (any, error) {
	switch n.Kind() {
	case node.KindConcrete:
		return n.Type(), nil

	case node.KindAny:
		return typex.Any, nil
	case node.KindNever:
		return typex.Never, nil
	case node.KindSelf:
		return typex.Self, nil
	case node.KindLiteralString:
		return typex.LiteralString, nil
	case node.KindEllipsis:
		return typex.Ellipsis, nil

	case node.KindLiteral:
		return typex.Literal(n.LiteralValues()...), nil

	case node.KindGeneric:
		if d := n.Decl(); d != nil {
			return d, nil
		}
		if len(n.TypeParams()) > 0 {
			return nil, &IrreversibleError{Kind: n.Kind(), Detail: "generic declaration not recorded"}
		}
		return typex.Generic(n.Name()), nil

	case node.KindSubscripted:
		origin, err := toNative(n.Origin(), withMeta, seen)
		if err != nil {
			return nil, err
		}
		args, err := allNative(n.TypeArgs(), withMeta, seen)
		if err != nil {
			return nil, err
		}
		return typex.Subscript(origin, args...), nil

	case node.KindTuple:
		if n.Arbitrary() {
			return typex.Tuple(), nil
		}
		if n.Homogeneous() {
			elem, err := toNative(n.Elems()[0], withMeta, seen)
			if err != nil {
				return nil, err
			}
			return typex.Tuple(elem, typex.Ellipsis), nil
		}
		if len(n.Elems()) == 0 {
			return typex.EmptyTuple(), nil
		}
		elems, err := allNative(n.Elems(), withMeta, seen)
		if err != nil {
			return nil, err
		}
		return typex.Tuple(elems...), nil

	case node.KindUnion:
		members, err := allNative(n.Members(), withMeta, seen)
		if err != nil {
			return nil, err
		}
		return typex.Union(members...), nil

	case node.KindIntersection:
		members, err := allNative(n.Members(), withMeta, seen)
		if err != nil {
			return nil, err
		}
		return typex.Intersect(members...), nil

	case node.KindCallable:
		return rebuildCallable(n, withMeta, seen)

	case node.KindTypeVar, node.KindParamSpec, node.KindTypeVarTuple:
		return nil, &IrreversibleError{Kind: n.Kind(), Detail: fmt.Sprintf("placeholder %q has no recorded declaration", n.Name())}

	case node.KindForwardRef:
		return n.Name(), nil

	case node.KindNewType:
		if d := n.Decl(); d != nil {
			return d, nil
		}
		base, err := toNative(n.Supertype(), withMeta, seen)
		if err != nil {
			return nil, err
		}
		return typex.NewDistinct(n.Name(), base), nil

	case node.KindAlias:
		return rebuildAlias(n, withMeta, seen)

	case node.KindClassOf:
		target, err := toNative(n.Target(), withMeta, seen)
		if err != nil {
			return nil, err
		}
		return typex.ClassOf(target), nil

	case node.KindTypeGuard:
		target, err := toNative(n.Target(), withMeta, seen)
		if err != nil {
			return nil, err
		}
		return typex.TypeGuard(target), nil

	case node.KindTypeIs:
		target, err := toNative(n.Target(), withMeta, seen)
		if err != nil {
			return nil, err
		}
		return typex.TypeIs(target), nil

	case node.KindUnpack:
		target, err := toNative(n.Target(), withMeta, seen)
		if err != nil {
			return nil, err
		}
		return typex.Unpack(target), nil

	case node.KindConcat:
		args := make([]*node.Node, 0, len(n.Prefix())+1)
		args = append(args, n.Prefix()...)
		args = append(args, n.Spec())
		parts, err := allNative(args, withMeta, seen)
		if err != nil {
			return nil, err
		}
		return typex.Concat(parts...), nil

	case node.KindRecord, node.KindNamedRecord, node.KindClass,
		node.KindEnum, node.KindProtocol, node.KindFunction:
		if d := n.Decl(); d != nil {
			return d, nil
		}
		if t := n.Type(); t != nil {
			return t, nil
		}
		return nil, &IrreversibleError{Kind: n.Kind(), Detail: "declaration not recorded"}

	case node.KindSignature:
		return nil, &IrreversibleError{Kind: n.Kind(), Detail: "signatures have no annotation form"}
	}

	return nil, &IrreversibleError{Kind: n.Kind()}
}

// rebuildCallable restores the list and ellipsis shapes. Param-spec and
// concatenation shapes embed placeholders and are only reversible when
// the placeholder declarations were recorded, which bare graphs never have.
func rebuildCallable(n *node.Node, withMeta bool, seen map[*node.Node]any) (any, error) {
	ret, err := toNative(n.Return(), withMeta, seen)
	if err != nil {
		return nil, err
	}
	switch n.ParamShape() {
	case node.ParamsList:
		params, err := allNative(n.Params(), withMeta, seen)
		if err != nil {
			return nil, err
		}
		return typex.Callable(params, ret), nil
	case node.ParamsEllipsis:
		return typex.Callable(typex.Ellipsis, ret), nil
	}
	return nil, &IrreversibleError{Kind: n.Kind(), Detail: "parameter specifications are not reversible"}
}

// rebuildAlias seeds the memo with an incomplete alias before descending
// into the value so self-referential aliases tie back to the rebuilt object.
func rebuildAlias(n *node.Node, withMeta bool, seen map[*node.Node]any) (any, error) {
	if d := n.Decl(); d != nil {
		seen[n] = d
		return d, nil
	}

	a := typex.NewAlias(n.Name(), nil)
	seen[n] = a
	value, err := toNative(n.Value(), withMeta, seen)
	if err != nil {
		delete(seen, n)
		return nil, err
	}
	a.Value = value
	return a, nil
}

func allNative(nodes []*node.Node, withMeta bool, seen map[*node.Node]any) ([]any, error) {
	out := make([]any, len(nodes))
	for i, c := range nodes {
		v, err := toNative(c, withMeta, seen)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func wrapQualifier(q typex.Qualifier, inner any) any {
	switch q {
	case typex.QualClassVar:
		return typex.ClassVar(inner)
	case typex.QualFinal:
		return typex.Final(inner)
	case typex.QualRequired:
		return typex.Required(inner)
	case typex.QualNotRequired:
		return typex.NotRequired(inner)
	case typex.QualReadOnly:
		return typex.ReadOnly(inner)
	case typex.QualInitOnly:
		return typex.InitOnly(inner)
	}
	return inner
}
