// Package filterdoc renders filter ASTs as query-filter documents.
//
// It is the output boundary of the engine: the translation pipeline
// produces an encoding-independent filter.Filter, and this package gives
// it the target grammar's concrete document shape, e.g.
//
//	Exists(["a","b"], true)  →  {"a.b": {"$exists": true}}
//	And([f, g])              →  {"$and": [render(f), render(g)]}
//
// Rendering validates the AST first and is fully deterministic, which is
// what makes golden-file testing of translations possible.
package filterdoc
