// Package resolver follows schema references and merges composed schemas
// with the required and property sets they pass down to their alternatives.
//
// A [Resolver] is built once per document from its component schemas and is
// safe to reuse; run-scoped state (the replacement table written by the
// reference repair pass) lives in a [Context] passed to every call.
//
// # Reference repair
//
// Some upstream generators describe a nullable variant of a component by
// copying it with every property type erased. When a reference targets an
// object component with untyped properties, the resolver looks for another
// object component whose name starts with the broken name (letters only),
// whose properties are all typed, and whose property names match in order.
// The first such component is used in its place, keeping the original
// nullable flag, and the substitution is recorded in the Context so later
// lookups agree. Disable it with WithRepair(false).
package resolver
