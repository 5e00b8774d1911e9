// Package combination describes what a sample must cover.
//
// A Spec is one of four immutable variants, distinguished by Kind:
//
//	KindVariableWise             every t-combination of a variable set, in
//	                             all 2^t sign patterns
//	KindLiteralSetsCrossProduct  every t1-combination of literals from pool A
//	                             joined with every t2-combination from pool B
//	KindExplicitList             each listed assignment, verbatim
//	KindUnion                    all obligations of its children at once
//
// The set of variants is closed: Spec has an unexported method, and
// consumers switch on Kind() (or a type switch) exhaustively.
//
// Vacuous obligations:
//
// An arity outside its valid range never fails. VariableWise with t <= 0 or
// t larger than its variable set, and a cross product whose arity exceeds
// the number of distinct variables in a pool (or is negative, or 0 on both
// sides), require nothing; IsVacuous reports true and Interactions yields
// no tuples, so even an empty sample covers them.
//
// Helpers:
//
//	Walk(spec, fn)              pre-order traversal (unions before children)
//	Validate(spec, space)       every referenced id means the same variable in space
//	Interactions(spec, fn)      enumerate required literal tuples
//	Covered(spec, rows)         does a finished sample meet the obligation?
//	Missing(spec, rows, limit)  the first uncovered tuples
//	Describe(spec)              name-resolved tree for reports (YAML tags)
//
// None of these search for a sample; that is the sampler's job.
package combination
