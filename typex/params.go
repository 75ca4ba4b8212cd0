package typex

// Variance is the declared variance of a TypeVar.
type Variance int

const (
	Invariant Variance = iota
	Covariant
	Contravariant
)

// String returns a human-readable variance name.
func (v Variance) String() string {
	switch v {
	case Covariant:
		return "covariant"
	case Contravariant:
		return "contravariant"
	default:
		return "invariant"
	}
}

// TypeVar is a generic type-variable placeholder. Two TypeVars with the same
// name are distinct placeholders; identity matters, not the name.
type TypeVar struct {
	name          string
	variance      Variance
	bound         any
	constraints   []any
	def           any
	hasDefault    bool
	inferVariance bool
}

// VarOption configures a TypeVar at construction.
type VarOption func(*TypeVar)

// Bound sets an upper bound annotation.
func Bound(t any) VarOption { return func(v *TypeVar) { v.bound = t } }

// Constraints sets the ordered value constraints.
func Constraints(ts ...any) VarOption {
	return func(v *TypeVar) {
		v.constraints = make([]any, len(ts))
		copy(v.constraints, ts)
	}
}

// WithVariance sets an explicit variance.
func WithVariance(variance Variance) VarOption {
	return func(v *TypeVar) { v.variance = variance }
}

// InferVariance marks the variable as having inferred variance.
func InferVariance() VarOption { return func(v *TypeVar) { v.inferVariance = true } }

// Default sets the default annotation used when no argument is supplied.
func Default(t any) VarOption {
	return func(v *TypeVar) {
		v.def = t
		v.hasDefault = true
	}
}

// NewTypeVar creates a fresh type-variable placeholder.
func NewTypeVar(name string, opts ...VarOption) *TypeVar {
	v := &TypeVar{name: name}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

func (v *TypeVar) Name() string        { return v.name }
func (v *TypeVar) Variance() Variance  { return v.variance }
func (v *TypeVar) BoundType() any      { return v.bound }
func (v *TypeVar) InferredVariance() bool { return v.inferVariance }
func (v *TypeVar) String() string      { return "~" + v.name }

// ConstraintTypes returns the ordered constraint annotations.
func (v *TypeVar) ConstraintTypes() []any {
	out := make([]any, len(v.constraints))
	copy(out, v.constraints)
	return out
}

// DefaultType returns the default annotation and whether one was declared.
func (v *TypeVar) DefaultType() (any, bool) { return v.def, v.hasDefault }

// ParamSpec is a parameter-specification placeholder standing for an entire
// callable parameter list.
type ParamSpec struct {
	name       string
	def        any
	hasDefault bool
}

// NewParamSpec creates a fresh parameter-specification placeholder.
func NewParamSpec(name string) *ParamSpec { return &ParamSpec{name: name} }

// NewParamSpecDefault creates a ParamSpec with a default parameter list.
func NewParamSpecDefault(name string, def any) *ParamSpec {
	return &ParamSpec{name: name, def: def, hasDefault: true}
}

func (p *ParamSpec) Name() string   { return p.name }
func (p *ParamSpec) String() string { return "**" + p.name }

// DefaultType returns the default annotation and whether one was declared.
func (p *ParamSpec) DefaultType() (any, bool) { return p.def, p.hasDefault }

// TypeVarTuple is a variadic type-variable placeholder standing for an
// arbitrary run of type arguments.
type TypeVarTuple struct {
	name       string
	def        any
	hasDefault bool
}

// NewTypeVarTuple creates a fresh variadic type-variable placeholder.
func NewTypeVarTuple(name string) *TypeVarTuple { return &TypeVarTuple{name: name} }

// NewTypeVarTupleDefault creates a TypeVarTuple with a default annotation.
func NewTypeVarTupleDefault(name string, def any) *TypeVarTuple {
	return &TypeVarTuple{name: name, def: def, hasDefault: true}
}

func (t *TypeVarTuple) Name() string   { return t.name }
func (t *TypeVarTuple) String() string { return "*" + t.name }

// DefaultType returns the default annotation and whether one was declared.
func (t *TypeVarTuple) DefaultType() (any, bool) { return t.def, t.hasDefault }
