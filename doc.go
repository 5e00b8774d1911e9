// Package combispec describes what a combinatorial interaction testing
// (CIT) sample must cover, beyond plain t-wise coverage.
//
// What is combispec?
//
//	A small, dependency-light library that brings together:
//		• Variable spaces: name ↔ id registries with safe, deep cloning
//		• Literal sets and assignment lists, re-basable across spaces
//		• Value maps: "assignment → integer" tables and their text format
//		• Combination specifications: variable-wise, cross-product,
//		  explicit-list and union obligations
//		• Sampling modes: cardinality, cluster interaction, weighted,
//		  prioritized and combined
//
// It never searches for a sample itself. A build hands an external
// covering-array sampler the specification, the final variable space and
// an iteration budget, and hands post-processing the artificial variables
// to project away plus the priority ranks.
//
// Packages:
//
//	variables/      Space: dense ids 1..N, idempotent Add, Clone
//	assignment/     Set (literals) and List (sets over a Space), Adapt
//	valuemap/       Map, Parse/WriteTo, Load/LoadOrEmpty
//	combination/    Spec algebra, Interactions, Covered/Missing, Describe
//	sampling/       mode builders, functional options, Result
//	cmd/combispec   CLI: config file, value-map loading, YAML/text reports
//
// Quick start:
//
//	fm := assignment.NewList(variables.NewSpace("Number", "Connected", "Cycle"))
//	m, _ := valuemap.ParseString("Number,Connected=3\n")
//	res, err := sampling.Cardinality(fm, m, sampling.WithT(2))
//	// res.Spec, res.Space, res.Iterations → sampler
//	// res.Artificial → projection of the sampled rows
package combispec
