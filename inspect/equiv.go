package inspect

import (
	"reflect"

	"github.com/tbhb/typegraph/typex"
)

// EquivalentAnnotations reports whether two annotation values denote the
// same type. It is looser than identity: nil and the none type coincide,
// reference text matches Ref objects with the same name, union and literal
// members compare as multisets, and metadata wrappers compare their inner
// annotation plus ordered metadata. Declared objects (aliases, distinct
// types, placeholders) compare by identity.
func EquivalentAnnotations(a, b any) bool {
	a, b = normalize(a), normalize(b)

	if ra, ok := a.(*typex.Ref); ok {
		a = ra.Name()
	}
	if rb, ok := b.(*typex.Ref); ok {
		b = rb.Name()
	}

	switch av := a.(type) {
	case nil:
		return b == nil

	case string:
		bv, ok := b.(string)
		return ok && av == bv

	case reflect.Type:
		bv, ok := b.(reflect.Type)
		return ok && av == bv

	case *typex.Qualified:
		bv, ok := b.(*typex.Qualified)
		return ok && av.Qualifier() == bv.Qualifier() &&
			EquivalentAnnotations(av.Inner(), bv.Inner())

	case *typex.Annotated:
		bv, ok := b.(*typex.Annotated)
		return ok && EquivalentAnnotations(av.Inner(), bv.Inner()) &&
			sameMetadata(av.Metadata(), bv.Metadata())

	case *typex.App:
		bv, ok := b.(*typex.App)
		return ok && equivalentApps(av, bv)

	case []any:
		// Callable parameter lists.
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !EquivalentAnnotations(av[i], bv[i]) {
				return false
			}
		}
		return true
	}

	return looseValueEq(a, b)
}

// normalize maps the none spellings onto nil.
func normalize(v any) any {
	if t, ok := v.(reflect.Type); ok && t == typex.NoneType {
		return nil
	}
	return v
}

func equivalentApps(a, b *typex.App) bool {
	if a.Form() != b.Form() {
		return false
	}

	switch a.Form() {
	case typex.FormUnion, typex.FormIntersect:
		return multisetEquivalent(a.Args(), b.Args())

	case typex.FormLiteral:
		return literalMultiset(a.Args(), b.Args())

	case typex.FormGeneric:
		if !EquivalentAnnotations(a.Origin(), b.Origin()) {
			return false
		}
	}

	if a.NumArgs() != b.NumArgs() {
		return false
	}
	for i := range a.Args() {
		if !EquivalentAnnotations(a.Arg(i), b.Arg(i)) {
			return false
		}
	}
	return true
}

// multisetEquivalent matches members pairwise regardless of order, each at
// most once.
func multisetEquivalent(as, bs []any) bool {
	if len(as) != len(bs) {
		return false
	}
	used := make([]bool, len(bs))
outer:
	for _, a := range as {
		for i, b := range bs {
			if !used[i] && EquivalentAnnotations(a, b) {
				used[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}

func literalMultiset(as, bs []any) bool {
	if len(as) != len(bs) {
		return false
	}
	used := make([]bool, len(bs))
outer:
	for _, a := range as {
		for i, b := range bs {
			if !used[i] && looseValueEq(a, b) {
				used[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}

// sameMetadata compares metadata slices element-wise in order, the same
// loose equality metadata.Items.Equal uses.
func sameMetadata(as, bs []any) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !looseValueEq(as[i], bs[i]) {
			return false
		}
	}
	return true
}

func looseValueEq(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}
