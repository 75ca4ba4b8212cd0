package node

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind identifies a node variant. The set is closed: every node the
// inspector can produce carries exactly one of these kinds.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindConcrete
	KindAny
	KindNever
	KindSelf
	KindLiteralString
	KindEllipsis
	KindLiteral
	KindGeneric
	KindSubscripted
	KindTuple
	KindUnion
	KindIntersection
	KindCallable
	KindTypeVar
	KindParamSpec
	KindTypeVarTuple
	KindForwardRef
	KindNewType
	KindAlias
	KindRecord
	KindNamedRecord
	KindClass
	KindEnum
	KindProtocol
	KindSignature
	KindFunction
	KindTypeGuard
	KindTypeIs
	KindClassOf
	KindConcat
	KindUnpack

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsLeaf reports whether the kind never has children.
func (k Kind) IsLeaf() bool {
	switch k {
	case KindConcrete, KindAny, KindNever, KindSelf,
		KindLiteralString, KindEllipsis, KindLiteral:
		return true
	default:
		return false
	}
}

// IsTypeParameter reports whether the kind is one of the three placeholder
// kinds (type variable, parameter specification, variadic tuple).
func (k Kind) IsTypeParameter() bool {
	switch k {
	case KindTypeVar, KindParamSpec, KindTypeVarTuple:
		return true
	default:
		return false
	}
}
