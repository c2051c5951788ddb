// Package translate is the core of the engine: it compiles source
// predicate expressions into filter ASTs.
//
// ARCHITECTURE:
//
// The Dispatcher walks the expression tree top-down. At each node it
// consults an ordered registry of Translators; the first whose purely
// structural Claims guard accepts the node is invoked, and at most one
// translator runs per node. Translators recurse into the Dispatcher for
// sub-expressions and read field metadata through the resolver:
//
//	[expr tree] → Dispatcher → Translator → [filter AST]
//	                   ↑            │
//	                   └── recurse ─┘   resolve.Resolve supplies
//	                                    field paths + serializers
//
// FAILURE POLICY:
//
// Translation is all-or-nothing per root expression. If no translator
// claims a node, or the claiming translator's deeper checks fail, the
// call fails with an Error carrying the offending expression and a
// reason. There is no fallback, no retry, and no partial AST: an
// incorrect filter must never reach the wire, so the engine prefers a
// loud construction-time error over a quietly wrong query.
//
// CONCURRENCY:
//
// Every translator is stateless; the Dispatcher is immutable after
// construction. Independent translations may run fully in parallel with
// no coordination. A call performs no I/O and has no suspension point,
// so there is nothing to cancel and no context.Context in the API.
package translate
