package typex

// Ref is an explicit forward reference: a textual name deferred for later
// evaluation against a namespace. A raw string annotation behaves the same.
type Ref struct {
	name string
}

// NewRef creates a forward reference to the given name.
func NewRef(name string) *Ref { return &Ref{name: name} }

func (r *Ref) Name() string   { return r.name }
func (r *Ref) String() string { return "'" + r.name + "'" }

// Distinct is a new-distinct-type wrapper: a named type that shares its
// base type's structure but is treated as its own nominal type.
type Distinct struct {
	name string
	base any
}

// NewDistinct creates a distinct named wrapper around a base annotation.
func NewDistinct(name string, base any) *Distinct {
	return &Distinct{name: name, base: base}
}

func (d *Distinct) Name() string   { return d.name }
func (d *Distinct) Base() any      { return d.base }
func (d *Distinct) String() string { return d.name }

// Alias is a named, optionally parametric type alias. Value stays assignable
// after construction so an alias can reference itself; everything else about
// the alias is fixed. Scope optionally carries the alias's defining-scope
// name bindings, merged (under any caller-supplied namespace) when its value
// is resolved.
type Alias struct {
	name   string
	params []any

	Value any
	Scope map[string]any
}

// NewAlias creates a type alias. params are the alias's own type parameters
// (TypeVar, ParamSpec or TypeVarTuple), in declaration order.
func NewAlias(name string, value any, params ...any) *Alias {
	owned := make([]any, len(params))
	copy(owned, params)

	return &Alias{name: name, params: owned, Value: value}
}

func (a *Alias) Name() string   { return a.name }
func (a *Alias) String() string { return a.name }

// Params returns the alias's declared type parameters.
func (a *Alias) Params() []any {
	out := make([]any, len(a.params))
	copy(out, a.params)
	return out
}

// GenericDecl is an unsubscripted generic type constructor: a name plus its
// declared type parameters. Subscripting it with Of produces an App.
type GenericDecl struct {
	name   string
	params []any
}

// Generic declares a generic type constructor.
func Generic(name string, params ...any) *GenericDecl {
	owned := make([]any, len(params))
	copy(owned, params)

	return &GenericDecl{name: name, params: owned}
}

func (d *GenericDecl) Name() string   { return d.name }
func (d *GenericDecl) String() string { return d.name }

// Params returns the declared type parameters.
func (d *GenericDecl) Params() []any {
	out := make([]any, len(d.params))
	copy(out, d.params)
	return out
}

// Of subscripts the declaration with ordered type arguments.
func (d *GenericDecl) Of(args ...any) *App { return Subscript(d, args...) }
