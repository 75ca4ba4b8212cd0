package node

import (
	"reflect"
	"slices"

	"github.com/tbhb/typegraph/typex"
)

// NewConcrete wraps a plain class in a leaf node.
func NewConcrete(t reflect.Type) *Node {
	n := &Node{kind: KindConcrete, rtype: t}
	n.derive()
	return n
}

// NewAny creates the unconstrained-type node.
func NewAny() *Node {
	n := &Node{kind: KindAny}
	n.derive()
	return n
}

// NewNever creates the uninhabited-type node.
func NewNever() *Node {
	n := &Node{kind: KindNever}
	n.derive()
	return n
}

// NewSelf creates the self-reference node.
func NewSelf() *Node {
	n := &Node{kind: KindSelf}
	n.derive()
	return n
}

// NewLiteralString creates the literal-string node.
func NewLiteralString() *Node {
	n := &Node{kind: KindLiteralString}
	n.derive()
	return n
}

// NewEllipsis creates the ellipsis node.
func NewEllipsis() *Node {
	n := &Node{kind: KindEllipsis}
	n.derive()
	return n
}

// NewLiteral creates a literal-value-set node. The values are carried
// verbatim, in order.
func NewLiteral(values []any) *Node {
	n := &Node{kind: KindLiteral, values: slices.Clone(values)}
	n.derive()
	return n
}

// NewGeneric creates an unsubscripted-generic node: a named type constructor
// plus its declared type parameter nodes. decl is the constructor object the
// node was built from (used for reconstruction and representation queries).
func NewGeneric(name string, decl any, typeParams []*Node) *Node {
	n := &Node{
		kind:       KindGeneric,
		name:       name,
		decl:       decl,
		typeParams: slices.Clone(typeParams),
	}
	n.derive()
	return n
}

// NewSubscripted creates a subscripted-generic node from an origin node and
// ordered type-argument nodes.
func NewSubscripted(origin *Node, args []*Node) *Node {
	n := &Node{kind: KindSubscripted, origin: origin, args: slices.Clone(args)}
	n.derive()
	return n
}

// NewTuple creates a fixed or homogeneous tuple node. Homogeneous tuples
// carry exactly one element node.
func NewTuple(elems []*Node, homogeneous bool) *Node {
	n := &Node{kind: KindTuple, elems: slices.Clone(elems), homogeneous: homogeneous}
	n.derive()
	return n
}

// NewEmptyTuple creates the explicitly-empty tuple node.
func NewEmptyTuple() *Node {
	n := &Node{kind: KindTuple}
	n.derive()
	return n
}

// NewArbitraryTuple creates the unparameterized arbitrary-content tuple node.
func NewArbitraryTuple() *Node {
	n := &Node{kind: KindTuple, arbitrary: true}
	n.derive()
	return n
}

// NewUnion creates a union node over ordered members.
func NewUnion(members []*Node) *Node {
	n := &Node{kind: KindUnion, members: slices.Clone(members)}
	n.derive()
	return n
}

// NewIntersection creates an intersection node over ordered members.
func NewIntersection(members []*Node) *Node {
	n := &Node{kind: KindIntersection, members: slices.Clone(members)}
	n.derive()
	return n
}

// NewCallableList creates a callable node with an ordered parameter list.
func NewCallableList(params []*Node, ret *Node) *Node {
	n := &Node{kind: KindCallable, paramShape: ParamsList, params: slices.Clone(params), ret: ret}
	n.derive()
	return n
}

// NewCallableEllipsis creates an any-arity callable node.
func NewCallableEllipsis(ret *Node) *Node {
	n := &Node{kind: KindCallable, paramShape: ParamsEllipsis, ret: ret}
	n.derive()
	return n
}

// NewCallableSpec creates a callable node whose parameters are a single
// parameter-specification placeholder node.
func NewCallableSpec(spec *Node, ret *Node) *Node {
	n := &Node{kind: KindCallable, paramShape: ParamsSpec, spec: spec, ret: ret}
	n.derive()
	return n
}

// NewCallableConcat creates a callable node whose parameters are a
// prefix-plus-placeholder concat node.
func NewCallableConcat(concat *Node, ret *Node) *Node {
	n := &Node{kind: KindCallable, paramShape: ParamsConcat, spec: concat, ret: ret}
	n.derive()
	return n
}

// TypeVarOpts carries the optional payload of a type-variable node.
type TypeVarOpts struct {
	Variance      typex.Variance
	Bound         *Node
	Constraints   []*Node
	Default       *Node
	HasDefault    bool
	InferVariance bool
}

// NewTypeVar creates a type-variable placeholder node.
func NewTypeVar(name string, opts TypeVarOpts) *Node {
	n := &Node{
		kind:          KindTypeVar,
		name:          name,
		variance:      opts.Variance,
		bound:         opts.Bound,
		constraints:   slices.Clone(opts.Constraints),
		def:           opts.Default,
		hasDefault:    opts.HasDefault,
		inferVariance: opts.InferVariance,
	}
	n.derive()
	return n
}

// NewParamSpec creates a parameter-specification placeholder node.
func NewParamSpec(name string, def *Node, hasDefault bool) *Node {
	n := &Node{kind: KindParamSpec, name: name, def: def, hasDefault: hasDefault}
	n.derive()
	return n
}

// NewTypeVarTuple creates a variadic-parameter-tuple placeholder node.
func NewTypeVarTuple(name string, def *Node, hasDefault bool) *Node {
	n := &Node{kind: KindTypeVarTuple, name: name, def: def, hasDefault: hasDefault}
	n.derive()
	return n
}

// NewUnresolvedRef creates a forward-reference node whose resolution was
// never attempted.
func NewUnresolvedRef(text string) *Node {
	n := &Node{kind: KindForwardRef, name: text, refState: RefUnresolved}
	n.derive()
	return n
}

// NewResolvedRef creates a successfully resolved forward-reference node.
func NewResolvedRef(text string, target *Node) *Node {
	n := &Node{kind: KindForwardRef, name: text, refState: RefResolved, target: target}
	n.derive()
	return n
}

// NewFailedRef creates a forward-reference node carrying a resolution
// failure message.
func NewFailedRef(text, errMsg string) *Node {
	n := &Node{kind: KindForwardRef, name: text, refState: RefFailed, refErr: errMsg}
	n.derive()
	return n
}

// NewNewType creates a new-distinct-type node.
func NewNewType(name string, supertype *Node) *Node {
	n := &Node{kind: KindNewType, name: name, elem: supertype}
	n.derive()
	return n
}

// NewAlias creates a pending alias node, memoizable before its value is
// inspected so self-referential aliases terminate. Complete it exactly once
// with CompleteAlias.
func NewAlias(name string, typeParams []*Node) *Node {
	n := &Node{kind: KindAlias, name: name, typeParams: slices.Clone(typeParams), pending: true}
	n.derive()
	return n
}

// CompleteAlias attaches the inspected value to a pending alias node and
// recomputes its derived child/edge sequences. It panics if the node is not
// a pending alias: completion is a one-shot construction step, not a
// mutation surface.
func CompleteAlias(n *Node, value *Node) {
	if n.kind != KindAlias || !n.pending {
		panic("node: CompleteAlias on a non-pending node")
	}

	n.elem = value
	n.pending = false
	n.derive()
}

// NewCompleteAlias creates an alias node with its value already inspected.
func NewCompleteAlias(name string, typeParams []*Node, value *Node) *Node {
	n := NewAlias(name, typeParams)
	CompleteAlias(n, value)
	return n
}

// NewClassOf creates a "class object of T" node.
func NewClassOf(target *Node) *Node {
	n := &Node{kind: KindClassOf, elem: target}
	n.derive()
	return n
}

// NewTypeGuard creates an affirmative-narrowing node.
func NewTypeGuard(target *Node) *Node {
	n := &Node{kind: KindTypeGuard, elem: target}
	n.derive()
	return n
}

// NewTypeIs creates a bidirectional-narrowing node.
func NewTypeIs(target *Node) *Node {
	n := &Node{kind: KindTypeIs, elem: target}
	n.derive()
	return n
}

// NewUnpack creates an unpack wrapper node.
func NewUnpack(target *Node) *Node {
	n := &Node{kind: KindUnpack, elem: target}
	n.derive()
	return n
}

// NewConcat creates a prepend-to-parameter-specification node. spec must be
// a parameter-specification node.
func NewConcat(prefix []*Node, spec *Node) *Node {
	n := &Node{kind: KindConcat, prefix: slices.Clone(prefix), spec: spec}
	n.derive()
	return n
}

// NewRecord creates a dict-like structured record node.
func NewRecord(name string, fields []Field, total, closed bool) *Node {
	n := &Node{kind: KindRecord, name: name, fields: slices.Clone(fields), total: total, closed: closed}
	n.derive()
	return n
}

// NewNamedRecord creates a tuple-like named record node.
func NewNamedRecord(name string, fields []Field) *Node {
	n := &Node{kind: KindNamedRecord, name: name, fields: slices.Clone(fields)}
	n.derive()
	return n
}

// ClassSpec carries the payload of a class declaration node.
type ClassSpec struct {
	Name           string
	Type           reflect.Type
	TypeParams     []*Node
	Bases          []*Node
	Methods        []*Node
	ClassFields    []Field
	InstanceFields []Field
	Abstract       bool
	Final          bool
}

// NewClass creates a declaration-with-behavior class node.
func NewClass(spec ClassSpec) *Node {
	n := &Node{
		kind:        KindClass,
		name:        spec.Name,
		rtype:       spec.Type,
		typeParams:  slices.Clone(spec.TypeParams),
		bases:       slices.Clone(spec.Bases),
		methods:     slices.Clone(spec.Methods),
		classFields: slices.Clone(spec.ClassFields),
		instFields:  slices.Clone(spec.InstanceFields),
		abstract:    spec.Abstract,
		final:       spec.Final,
	}
	n.derive()
	return n
}

// NewEnum creates an enumerated-value node.
func NewEnum(name string, valueType *Node, values []EnumValue) *Node {
	n := &Node{kind: KindEnum, name: name, elem: valueType, enumValues: slices.Clone(values)}
	n.derive()
	return n
}

// NewProtocol creates a structural-interface node.
func NewProtocol(name string, rtype reflect.Type, methods []*Node, attrs []Field, checkable bool) *Node {
	n := &Node{
		kind:      KindProtocol,
		name:      name,
		rtype:     rtype,
		methods:   slices.Clone(methods),
		fields:    slices.Clone(attrs),
		checkable: checkable,
	}
	n.derive()
	return n
}

// NewSignature creates a callable-signature node with ordered named
// parameters.
func NewSignature(params []Param, ret *Node, typeParams []*Node) *Node {
	n := &Node{
		kind:       KindSignature,
		sigParams:  slices.Clone(params),
		ret:        ret,
		typeParams: slices.Clone(typeParams),
	}
	n.derive()
	return n
}

// NewFunction creates a declared-function node around a signature node.
func NewFunction(name string, sig *Node, async, generator bool, decorators []string) *Node {
	n := &Node{
		kind:       KindFunction,
		name:       name,
		elem:       sig,
		async:      async,
		generator:  generator,
		decorators: slices.Clone(decorators),
	}
	n.derive()
	return n
}
