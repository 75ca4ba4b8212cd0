package typex

// Qualifier is a wrapping marker that modifies how the wrapped annotation is
// treated without itself denoting a type.
type Qualifier string

const (
	QualClassVar    Qualifier = "class var"
	QualFinal       Qualifier = "final"
	QualRequired    Qualifier = "required"
	QualNotRequired Qualifier = "not required"
	QualReadOnly    Qualifier = "read only"
	QualInitOnly    Qualifier = "init only"
)

// Qualified wraps an annotation in a qualifier marker. A nil inner
// annotation is a bare qualifier; the inspector collapses it to an Any node
// carrying just the qualifier.
type Qualified struct {
	qual  Qualifier
	inner any
}

func (q *Qualified) Qualifier() Qualifier { return q.qual }
func (q *Qualified) Inner() any           { return q.inner }
func (q *Qualified) String() string       { return string(q.qual) }

// ClassVar marks the wrapped annotation as class-scoped.
func ClassVar(t any) *Qualified { return &Qualified{qual: QualClassVar, inner: t} }

// Final marks the wrapped annotation as non-overridable.
func Final(t any) *Qualified { return &Qualified{qual: QualFinal, inner: t} }

// Required marks a record field as required regardless of totality.
func Required(t any) *Qualified { return &Qualified{qual: QualRequired, inner: t} }

// NotRequired marks a record field as optional regardless of totality.
func NotRequired(t any) *Qualified { return &Qualified{qual: QualNotRequired, inner: t} }

// ReadOnly marks a record field as read-only.
func ReadOnly(t any) *Qualified { return &Qualified{qual: QualReadOnly, inner: t} }

// InitOnly marks a field as available only during initialization.
func InitOnly(t any) *Qualified { return &Qualified{qual: QualInitOnly, inner: t} }

// Annotated attaches ordered side-channel metadata to an annotation. The
// metadata is foreign to the graph shape; the inspector hoists it onto the
// node built for the wrapped annotation. Wrapping an Annotated in another
// Annotated flattens at construction, outer metadata first.
type Annotated struct {
	inner    any
	metadata []any
}

// WithMeta wraps an annotation with side-channel metadata values.
func WithMeta(t any, meta ...any) *Annotated {
	owned := make([]any, 0, len(meta))

	if inner, ok := t.(*Annotated); ok {
		owned = append(owned, meta...)
		owned = append(owned, inner.metadata...)
		return &Annotated{inner: inner.inner, metadata: owned}
	}

	owned = append(owned, meta...)

	return &Annotated{inner: t, metadata: owned}
}

func (a *Annotated) Inner() any { return a.inner }

// Metadata returns the ordered metadata values, outermost first.
func (a *Annotated) Metadata() []any {
	out := make([]any, len(a.metadata))
	copy(out, a.metadata)
	return out
}
