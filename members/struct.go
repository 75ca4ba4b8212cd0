package members

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/tbhb/typegraph/inspect"
	"github.com/tbhb/typegraph/metadata"
	"github.com/tbhb/typegraph/node"
	"github.com/tbhb/typegraph/typex"
)

// OfStruct extracts a class node from a struct type. Named fields become
// instance fields, embedded structs become bases, and the pointer method
// set becomes the method list when method extraction is enabled. Pointer
// fields are optional: their annotation is a union with the none type and
// they are not required.
//
// Field behavior is tag-driven. The "typegraph" tag names the field and may
// carry "optional", "readonly", "classvar", "default=..." and "ref=Name"
// flags; a name of "-" drops the field. "classvar" moves the field to the
// class-variable list; "ref=Name" replaces the reflected annotation with a
// forward reference resolved against the configured namespaces. Without the
// tag the "json" tag name is used, and "omitempty" makes the field optional.
// The "meta" tag carries comma-separated metadata strings, hoisted onto the
// field record or attached to the annotation node depending on
// configuration.
func OfStruct(t reflect.Type, opts ...inspect.Option) (*node.Node, error) {
	cfg := inspect.NewConfig(opts...)
	return ofStruct(t, cfg)
}

func ofStruct(t reflect.Type, cfg inspect.Config) (*node.Node, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("members: %v is not a struct type", t)
	}

	var errs *multierror.Error
	var bases []*node.Node
	var fields, classFields []node.Field

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)

		if f.Anonymous {
			if !cfg.IncludeInherited {
				continue
			}
			base, err := baseNode(f.Type, cfg)
			if err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			bases = append(bases, base)
			continue
		}

		if !f.IsExported() && !cfg.IncludePrivate {
			continue
		}

		fld, flags, skip, err := structField(f, cfg)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		if skip {
			continue
		}
		if flags.classvar {
			if cfg.IncludeClassVars {
				classFields = append(classFields, fld)
			}
			continue
		}
		if cfg.IncludeInstanceVars {
			fields = append(fields, fld)
		}
	}

	var methods []*node.Node
	if cfg.IncludeMethods {
		ms, err := methodNodes(t, cfg)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		methods = ms
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	n := node.NewClass(node.ClassSpec{
		Name:           t.Name(),
		Type:           t,
		Bases:          bases,
		Methods:        methods,
		ClassFields:    classFields,
		InstanceFields: fields,
	})
	if cfg.IncludeSourceLocations && t.PkgPath() != "" {
		n = n.With(node.SetSource(&node.Source{Module: t.PkgPath(), Name: t.Name()}))
	}
	return n, nil
}

// baseNode renders an embedded type. Embedded structs recurse so the base
// carries its own members; anything else degrades to plain inspection.
func baseNode(t reflect.Type, cfg inspect.Config) (*node.Node, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct {
		return ofStruct(t, cfg)
	}
	return inspect.Inspect(t, inspect.WithConfig(cfg))
}

func structField(f reflect.StructField, cfg inspect.Config) (node.Field, fieldFlags, bool, error) {
	name, flags := fieldName(f)
	if name == "-" {
		return node.Field{}, flags, true, nil
	}

	required := !flags.optional
	ann := any(f.Type)
	if f.Type.Kind() == reflect.Pointer {
		required = false
		ann = typex.Optional(f.Type.Elem())
	}
	if flags.refName != "" {
		ann = typex.NewRef(flags.refName)
	}

	tn, err := inspect.Inspect(ann, inspect.WithConfig(cfg))
	if err != nil {
		return node.Field{}, flags, false, fmt.Errorf("members: field %s.%s: %w", f.Type, f.Name, err)
	}

	meta := fieldMetadata(f)
	fld := node.Field{
		Name:       name,
		Type:       tn,
		Required:   required,
		ReadOnly:   flags.readonly,
		HasDefault: flags.hasDefault,
		Default:    flags.defaultVal,
	}
	if !meta.IsEmpty() {
		if cfg.HoistFieldMetadata {
			fld.Metadata = meta
		} else {
			fld.Type = tn.With(node.AddMetadata(meta))
		}
	}
	return fld, flags, false, nil
}

type fieldFlags struct {
	optional   bool
	readonly   bool
	classvar   bool
	hasDefault bool
	defaultVal any
	refName    string
}

func fieldName(f reflect.StructField) (string, fieldFlags) {
	var flags fieldFlags

	if tag, ok := f.Tag.Lookup("typegraph"); ok {
		parts := strings.Split(tag, ",")
		name := parts[0]
		if name == "" {
			name = f.Name
		}
		for _, p := range parts[1:] {
			switch {
			case p == "optional":
				flags.optional = true
			case p == "readonly":
				flags.readonly = true
			case p == "classvar":
				flags.classvar = true
			case strings.HasPrefix(p, "default="):
				flags.hasDefault = true
				flags.defaultVal = strings.TrimPrefix(p, "default=")
			case strings.HasPrefix(p, "ref="):
				flags.refName = strings.TrimPrefix(p, "ref=")
			}
		}
		return name, flags
	}

	if tag, ok := f.Tag.Lookup("json"); ok {
		parts := strings.Split(tag, ",")
		name := parts[0]
		if name == "" {
			name = f.Name
		}
		for _, p := range parts[1:] {
			if p == "omitempty" {
				flags.optional = true
			}
		}
		return name, flags
	}

	return f.Name, flags
}

func fieldMetadata(f reflect.StructField) metadata.Items {
	tag, ok := f.Tag.Lookup("meta")
	if !ok || tag == "" {
		return metadata.Items{}
	}
	parts := strings.Split(tag, ",")
	vals := make([]any, len(parts))
	for i, p := range parts {
		vals[i] = p
	}
	return metadata.New(vals...)
}

// methodNodes extracts the pointer method set so both value and pointer
// receivers are seen.
func methodNodes(t reflect.Type, cfg inspect.Config) ([]*node.Node, error) {
	pt := reflect.PointerTo(t)
	var errs *multierror.Error
	var out []*node.Node

	for i := 0; i < pt.NumMethod(); i++ {
		m := pt.Method(i)
		if !m.IsExported() && !cfg.IncludePrivate {
			continue
		}
		fn, err := functionNode(m.Name, m.Type, true, cfg)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("members: method %s.%s: %w", t, m.Name, err))
			continue
		}
		out = append(out, fn)
	}
	return out, errs.ErrorOrNil()
}
