// Package members extracts member-bearing nodes from runtime declarations
// and from explicit builders: struct types become class nodes with fields,
// bases and methods; interface types become protocol nodes; function types
// become function nodes with full signatures; and record and enum builders
// construct the keyed shapes that have no direct runtime counterpart.
//
// All extraction honors the inspect package's configuration: inclusion
// filters decide which members survive, and per-member inspection failures
// are aggregated into a single multierror instead of aborting on the first.
package members
