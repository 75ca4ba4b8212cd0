package node

import (
	"reflect"

	"github.com/tbhb/typegraph/metadata"
	"github.com/tbhb/typegraph/typex"
)

// Node is one immutable vertex of the type graph. Kind selects the variant;
// accessors for other variants return zero values. The derived Children and
// Edges slices are computed once and returned as the same slice on every
// call; callers must not mutate them.
type Node struct {
	kind Kind

	source *Source
	meta   metadata.Items
	quals  Qualifiers

	children []*Node
	edges    []Edge

	// KindConcrete wraps a class; structured declaration kinds keep the
	// declaring Go type here when one exists, for reconstruction.
	rtype reflect.Type

	// name: type parameters, forward-reference text, declarations.
	name string

	// KindLiteral raw values, carried verbatim.
	values []any

	// declared type parameters: KindGeneric, KindAlias, KindClass,
	// KindSignature, KindProtocol.
	typeParams []*Node

	// KindSubscripted.
	origin *Node
	args   []*Node

	// provenance of KindGeneric: the constructor object that declared it.
	decl any

	// KindTuple.
	elems       []*Node
	homogeneous bool
	arbitrary   bool

	// KindUnion / KindIntersection.
	members []*Node

	// KindCallable.
	paramShape ParamShape
	params     []*Node
	spec       *Node
	ret        *Node

	// KindTypeVar (bound/constraints), shared default for all placeholders.
	variance      typex.Variance
	bound         *Node
	constraints   []*Node
	def           *Node
	hasDefault    bool
	inferVariance bool

	// KindForwardRef.
	refState RefState
	target   *Node
	refErr   string

	// single-child payload: wrapper target, new-type supertype, alias
	// value, enum value type, function signature.
	elem *Node

	// structured kinds.
	fields      []Field
	classFields []Field
	instFields  []Field
	methods     []*Node
	bases       []*Node
	sigParams   []Param
	enumValues  []EnumValue
	total       bool
	closed      bool
	abstract    bool
	final       bool
	checkable   bool
	async       bool
	generator   bool
	decorators  []string

	// KindConcat prefix.
	prefix []*Node

	// true between NewAlias and CompleteAlias.
	pending bool
}

// Kind returns the node variant.
func (n *Node) Kind() Kind { return n.kind }

// Source returns the optional provenance record, or nil.
func (n *Node) Source() *Source { return n.source }

// Metadata returns the hoisted side-channel metadata.
func (n *Node) Metadata() metadata.Items { return n.meta }

// Qualifiers returns the qualifier tags stripped from enclosing wrappers.
func (n *Node) Qualifiers() Qualifiers { return n.quals }

// Children returns the ordered directly-owned child nodes. The same slice is
// returned on every call.
func (n *Node) Children() []*Node { return n.children }

// Edges returns the ordered labeled edges. Edges()[i].Target is always
// Children()[i]. The same slice is returned on every call.
func (n *Node) Edges() []Edge { return n.edges }

// Type returns the wrapped class for KindConcrete, or the declaring Go type
// for structured declaration kinds when one exists.
func (n *Node) Type() reflect.Type { return n.rtype }

// Name returns the declared name: placeholder name, reference text, alias,
// new-type, generic or structured declaration name.
func (n *Node) Name() string { return n.name }

// LiteralValues returns KindLiteral's raw values, in order.
func (n *Node) LiteralValues() []any { return n.values }

// TypeParams returns the declared type parameter nodes.
func (n *Node) TypeParams() []*Node { return n.typeParams }

// Origin returns KindSubscripted's origin node.
func (n *Node) Origin() *Node { return n.origin }

// TypeArgs returns KindSubscripted's ordered type-argument nodes.
func (n *Node) TypeArgs() []*Node { return n.args }

// Decl returns the constructor object a KindGeneric node was built from.
func (n *Node) Decl() any { return n.decl }

// Elems returns KindTuple's element nodes.
func (n *Node) Elems() []*Node { return n.elems }

// Homogeneous reports the (T, ...) indefinite-repetition tuple form.
func (n *Node) Homogeneous() bool { return n.homogeneous }

// Arbitrary reports the unparameterized arbitrary-content tuple form,
// distinct from the explicitly empty tuple.
func (n *Node) Arbitrary() bool { return n.arbitrary }

// Members returns the ordered members of KindUnion or KindIntersection.
func (n *Node) Members() []*Node { return n.members }

// ParamShape reports how a KindCallable node's parameters are specified.
func (n *Node) ParamShape() ParamShape { return n.paramShape }

// Params returns KindCallable's parameter nodes for the ParamsList shape.
func (n *Node) Params() []*Node { return n.params }

// Spec returns KindCallable's placeholder node for the ParamsSpec and
// ParamsConcat shapes.
func (n *Node) Spec() *Node { return n.spec }

// Return returns the return node of KindCallable or KindSignature.
func (n *Node) Return() *Node { return n.ret }

// Variance returns KindTypeVar's declared variance.
func (n *Node) Variance() typex.Variance { return n.variance }

// Bound returns KindTypeVar's bound node, or nil.
func (n *Node) Bound() *Node { return n.bound }

// Constraints returns KindTypeVar's ordered constraint nodes.
func (n *Node) Constraints() []*Node { return n.constraints }

// Default returns a placeholder kind's default node and whether one exists.
func (n *Node) Default() (*Node, bool) { return n.def, n.hasDefault }

// InferredVariance reports KindTypeVar's inferred-variance flag.
func (n *Node) InferredVariance() bool { return n.inferVariance }

// RefState returns KindForwardRef's resolution state.
func (n *Node) RefState() RefState { return n.refState }

// RefTarget returns the resolved node of a RefResolved forward reference.
func (n *Node) RefTarget() *Node { return n.target }

// RefError returns the captured failure message of a RefFailed reference.
func (n *Node) RefError() string { return n.refErr }

// Target returns the single child of the wrapper kinds (ClassOf, TypeGuard,
// TypeIs, Unpack).
func (n *Node) Target() *Node {
	switch n.kind {
	case KindClassOf, KindTypeGuard, KindTypeIs, KindUnpack:
		return n.elem
	default:
		return nil
	}
}

// Supertype returns KindNewType's supertype node.
func (n *Node) Supertype() *Node {
	if n.kind == KindNewType {
		return n.elem
	}
	return nil
}

// Value returns KindAlias's value node, or nil while the alias is pending.
func (n *Node) Value() *Node {
	if n.kind == KindAlias {
		return n.elem
	}
	return nil
}

// ValueType returns KindEnum's member value-type node.
func (n *Node) ValueType() *Node {
	if n.kind == KindEnum {
		return n.elem
	}
	return nil
}

// Signature returns KindFunction's signature node.
func (n *Node) Signature() *Node {
	if n.kind == KindFunction {
		return n.elem
	}
	return nil
}

// Fields returns the named fields of KindRecord and KindNamedRecord.
func (n *Node) Fields() []Field { return n.fields }

// ClassFields returns KindClass's class-scope fields.
func (n *Node) ClassFields() []Field { return n.classFields }

// InstanceFields returns KindClass's instance-scope fields.
func (n *Node) InstanceFields() []Field { return n.instFields }

// Attributes returns KindProtocol's attribute fields.
func (n *Node) Attributes() []Field {
	if n.kind == KindProtocol {
		return n.fields
	}
	return nil
}

// Methods returns the method nodes of KindClass and KindProtocol.
func (n *Node) Methods() []*Node { return n.methods }

// Bases returns KindClass's base nodes.
func (n *Node) Bases() []*Node { return n.bases }

// SignatureParams returns KindSignature's ordered named parameters.
func (n *Node) SignatureParams() []Param { return n.sigParams }

// EnumValues returns KindEnum's ordered name/value pairs.
func (n *Node) EnumValues() []EnumValue { return n.enumValues }

// Total reports KindRecord's totality flag.
func (n *Node) Total() bool { return n.total }

// Closed reports KindRecord's closed flag.
func (n *Node) Closed() bool { return n.closed }

// Abstract reports KindClass's abstractness flag.
func (n *Node) Abstract() bool { return n.abstract }

// Final reports KindClass's finality flag.
func (n *Node) Final() bool { return n.final }

// RuntimeCheckable reports KindProtocol's runtime-checkability flag.
func (n *Node) RuntimeCheckable() bool { return n.checkable }

// Async reports KindFunction's async flag.
func (n *Node) Async() bool { return n.async }

// Generator reports KindFunction's generator flag.
func (n *Node) Generator() bool { return n.generator }

// Decorators returns KindFunction's decorator name list.
func (n *Node) Decorators() []string { return n.decorators }

// Prefix returns KindConcat's ordered prefix nodes.
func (n *Node) Prefix() []*Node { return n.prefix }

// Option mutates the private copy made by With.
type Option func(*Node)

// AddQualifiers unions qualifiers into the copy.
func AddQualifiers(quals ...typex.Qualifier) Option {
	return func(n *Node) { n.quals = n.quals.Union(NewQualifiers(quals...)) }
}

// AddMetadata prepends metadata onto the copy, outer-before-inner: the added
// items come from an enclosing wrapper, so they precede what the node
// already carries.
func AddMetadata(items metadata.Items) Option {
	return func(n *Node) { n.meta = items.Concat(n.meta) }
}

// SetSource attaches provenance to the copy.
func SetSource(src *Source) Option {
	return func(n *Node) { n.source = src }
}

// SetDecl records the declaration object a structured node was built from,
// so reconstruction can hand the original back.
func SetDecl(decl any) Option {
	return func(n *Node) { n.decl = decl }
}

// With returns a copy of the node with the options applied and the derived
// child/edge sequences recomputed. The receiver is unchanged.
func (n *Node) With(opts ...Option) *Node {
	c := *n
	for _, opt := range opts {
		opt(&c)
	}

	c.derive()

	return &c
}

// String renders a short description of the node.
func (n *Node) String() string {
	switch {
	case n.kind == KindConcrete && n.rtype != nil:
		return n.kind.String() + "(" + n.rtype.String() + ")"
	case n.name != "":
		return n.kind.String() + "(" + n.name + ")"
	default:
		return n.kind.String()
	}
}
