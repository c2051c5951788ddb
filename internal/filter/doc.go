// Package filter defines the target language of the translation engine:
// a typed AST over the query-filter grammar of the document database.
//
// The Filter interface is sealed (marker method pattern); the node set
// covers field existence, equality and ordered comparisons, set
// membership, logical combinators, and regular-expression matches. A
// renderer turns the AST into an actual filter document; the AST itself
// is encoding-independent.
//
// Two invariants hold for every node:
//
//  1. Field references are fully resolved Paths. A node never carries a
//     bare source-expression reference; resolution completes before
//     construction.
//  2. The node shape is reachable from the valid filter grammar. Shapes
//     the grammar cannot express (empty combinators, empty paths) are
//     rejected by Validate and never constructed by translators.
//
// And/Or children keep the left-to-right order of the source expression.
// The engine does not reorder for optimization: downstream consumers may
// be short-circuit sensitive, and deterministic output is part of the
// translation contract.
package filter
