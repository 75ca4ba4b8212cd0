// Package metadata provides the immutable, order-preserving container for
// side-channel annotation payloads attached to graph nodes.
package metadata

import "iter"

// Expander is the capability a grouped-metadata bundle implements to have
// its contents spliced inline instead of being stored as a single value.
type Expander interface {
	Expand() []any
}

// Items is an immutable ordered sequence of metadata values. The zero value
// is an empty container ready to use. Every operation returns a new
// container; an Items value never changes after construction.
type Items struct {
	values []any
}

// New builds a container from the given values, in order. Values
// implementing Expander are expanded inline.
func New(values ...any) Items {
	if len(values) == 0 {
		return Items{}
	}

	owned := make([]any, 0, len(values))
	for _, v := range values {
		if ex, ok := v.(Expander); ok {
			owned = append(owned, ex.Expand()...)
			continue
		}

		owned = append(owned, v)
	}

	return Items{values: owned}
}

// Len returns the number of stored values.
func (it Items) Len() int { return len(it.values) }

// IsEmpty reports whether the container holds no values.
func (it Items) IsEmpty() bool { return len(it.values) == 0 }

// At returns the i-th value.
func (it Items) At(i int) any { return it.values[i] }

// Values returns a copy of the stored values.
func (it Items) Values() []any {
	out := make([]any, len(it.values))
	copy(out, it.values)
	return out
}

// All iterates the values in order.
func (it Items) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range it.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Filter returns a new container holding the values the predicate accepts,
// preserving order.
func (it Items) Filter(pred func(any) bool) Items {
	var kept []any
	for _, v := range it.values {
		if pred(v) {
			kept = append(kept, v)
		}
	}

	return Items{values: kept}
}

// Append returns a new container with the given values appended. Expander
// values are expanded inline, as in New.
func (it Items) Append(values ...any) Items {
	if len(values) == 0 {
		return it
	}

	return it.Concat(New(values...))
}

// Concat returns a new container holding this container's values followed by
// the other's.
func (it Items) Concat(other Items) Items {
	if other.IsEmpty() {
		return it
	}

	if it.IsEmpty() {
		return other
	}

	joined := make([]any, 0, len(it.values)+len(other.values))
	joined = append(joined, it.values...)
	joined = append(joined, other.values...)

	return Items{values: joined}
}

// Equal reports whether two containers hold equal values in the same order.
// Values are compared with ==; uncomparable values compare unequal.
func (it Items) Equal(other Items) bool {
	if len(it.values) != len(other.values) {
		return false
	}

	for i, v := range it.values {
		if !comparableEq(v, other.values[i]) {
			return false
		}
	}

	return true
}

func comparableEq(a, b any) (eq bool) {
	// uncomparable dynamic types panic on ==; treat them as unequal
	defer func() { _ = recover() }()
	return a == b
}

// OfType returns the stored values of the given Go type, preserving order.
func OfType[T any](it Items) []T {
	var out []T
	for _, v := range it.values {
		if tv, ok := v.(T); ok {
			out = append(out, tv)
		}
	}

	return out
}
