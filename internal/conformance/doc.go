// Package conformance provides data-driven testing for the translation
// engine.
//
// Cases are defined in YAML files: each declares a document model, a
// predicate expression tree over it, and the expected outcome, which is
// either the canonical rendered filter document or a translation error
// code. Running a case builds the model and expression, translates,
// renders, and compares.
//
// # Case Format
//
//	name: tags-contains-key
//	description: "Document-representation key test becomes an existence check"
//	model:
//	  name: Item
//	  fields:
//	    - member: Tags
//	      type: map
//	      representation: Document
//	      keys: { type: string }
//	      values: { type: string }
//	expression:
//	  lambda:
//	    param: x
//	    body:
//	      call:
//	        method: ContainsKey
//	        receiver: { member: { target: { param: x }, name: Tags } }
//	        args:
//	          - const: { value: red }
//	expect:
//	  document: '{"Tags.red":{"$exists":true}}'
//
// Negative cases replace expect.document with expect.error (a
// translation error code) and optionally expect.contains (substrings
// the error message must include).
//
// # Data Access
//
// All case access goes through the Loader interface. FSLoader is the
// file-system implementation; tests and the CLI construct one over a
// directory. Nothing in this package reads ambient global state, so a
// run is fully reproducible from its inputs.
package conformance
