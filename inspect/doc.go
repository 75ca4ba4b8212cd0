// Package inspect converts annotation values into immutable type graphs.
//
// Inspect is the single classification entry point: it dispatches an
// annotation to one of the node kinds, recursively inspecting structural
// parts, resolving forward references against configured namespaces, and
// breaking cycles with an identity memo shared across one call tree.
// Classification is total: unknown inputs become failed forward-reference
// nodes, and a configured depth limit produces terminal reference nodes
// instead of unbounded descent. Only the eager resolution policy can make
// Inspect return an error.
//
// Inspection under the implicit default configuration is memoized in a
// process-wide cache keyed by annotation identity; any explicit option
// bypasses the cache entirely.
package inspect
