package members

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/tbhb/typegraph/inspect"
	"github.com/tbhb/typegraph/node"
	"github.com/tbhb/typegraph/typex"
)

// MismatchError reports a record field declared twice with annotations that
// do not denote the same type.
type MismatchError struct {
	Record string
	Field  string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("members: field %q redeclared with a different annotation in %s", e.Field, e.Record)
}

// RecordBuilder assembles keyed-record and named-record nodes from explicit
// field declarations. Records default to total: every field is required
// unless its annotation says otherwise.
type RecordBuilder struct {
	name   string
	named  bool
	total  bool
	closed bool
	fields []recordField
}

type recordField struct {
	name       string
	annotation any
	optional   bool
	readonly   bool
	hasDefault bool
	defVal     any
}

// NewRecord starts a keyed-record builder.
func NewRecord(name string) *RecordBuilder {
	return &RecordBuilder{name: name, total: true}
}

// NewNamedRecord starts a named-record builder. Fields keep declaration
// order and are always required.
func NewNamedRecord(name string) *RecordBuilder {
	return &RecordBuilder{name: name, named: true, total: true}
}

// FieldOption adjusts one declared field.
type FieldOption func(*recordField)

// Optional marks the field as not required regardless of totality.
func Optional() FieldOption { return func(f *recordField) { f.optional = true } }

// ReadOnly marks the field as read-only.
func ReadOnly() FieldOption { return func(f *recordField) { f.readonly = true } }

// Default records a default value for the field and makes it optional.
func Default(v any) FieldOption {
	return func(f *recordField) {
		f.hasDefault = true
		f.defVal = v
		f.optional = true
	}
}

// Field declares a field with its annotation.
func (b *RecordBuilder) Field(name string, annotation any, opts ...FieldOption) *RecordBuilder {
	f := recordField{name: name, annotation: annotation}
	for _, opt := range opts {
		opt(&f)
	}
	b.fields = append(b.fields, f)
	return b
}

// Total sets whether fields are required by default.
func (b *RecordBuilder) Total(total bool) *RecordBuilder {
	b.total = total
	return b
}

// Closed marks the record as rejecting unknown keys.
func (b *RecordBuilder) Closed(closed bool) *RecordBuilder {
	b.closed = closed
	return b
}

// Build inspects every field annotation and assembles the record node.
// A field declared twice with equivalent annotations collapses to one; a
// conflicting redeclaration is a MismatchError. Per-field inspection
// failures are aggregated, so one bad field does not hide the others.
func (b *RecordBuilder) Build(opts ...inspect.Option) (*node.Node, error) {
	cfg := inspect.NewConfig(opts...)

	var errs *multierror.Error
	var fields []node.Field
	declared := map[string]any{}

	for _, f := range b.fields {
		if prev, ok := declared[f.name]; ok {
			if !inspect.EquivalentAnnotations(prev, f.annotation) {
				errs = multierror.Append(errs, &MismatchError{Record: b.name, Field: f.name})
			}
			continue
		}
		declared[f.name] = f.annotation

		tn, err := inspect.Inspect(f.annotation, inspect.WithConfig(cfg))
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("members: field %s.%s: %w", b.name, f.name, err))
			continue
		}

		required := b.total || b.named
		if f.optional {
			required = false
		}
		readonly := f.readonly

		// Qualifiers on the annotation override the declaration.
		quals := tn.Qualifiers()
		if quals.Has(typex.QualRequired) {
			required = true
		}
		if quals.Has(typex.QualNotRequired) {
			required = false
		}
		if quals.Has(typex.QualReadOnly) {
			readonly = true
		}

		fld := node.Field{
			Name:       f.name,
			Type:       tn,
			Required:   required,
			ReadOnly:   readonly,
			HasDefault: f.hasDefault,
			Default:    f.defVal,
		}
		if cfg.HoistFieldMetadata && !tn.Metadata().IsEmpty() {
			fld.Metadata = tn.Metadata()
		}
		fields = append(fields, fld)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	if b.named {
		return node.NewNamedRecord(b.name, fields), nil
	}
	return node.NewRecord(b.name, fields, b.total, b.closed), nil
}
