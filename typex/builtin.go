package typex

// Predeclared generic constructors for the common container shapes. They are
// ordinary GenericDecl values; subscribers use List.Of(x) and friends.
var (
	List = Generic("list", NewTypeVar("T"))
	Dict = Generic("dict", NewTypeVar("K"), NewTypeVar("V"))
	Set  = Generic("set", NewTypeVar("T"))

	// UnionAlias is the legacy union-as-a-generic constructor. Under the
	// default configuration UnionAlias.Of(a, b) is folded into the same
	// union node as Union(a, b); with union normalization disabled it keeps
	// its generic/subscripted shape.
	UnionAlias = Generic("Union")
)
