// Package sampling method names, used to prefix errors and log records.
package sampling

const (
	// MethodCardinality is the canonical name of the Cardinality builder.
	MethodCardinality = "Cardinality"
	// MethodClusterInteraction is the canonical name of the ClusterInteraction builder.
	MethodClusterInteraction = "ClusterInteraction"
	// MethodWeighted is the canonical name of the Weighted builder.
	MethodWeighted = "Weighted"
	// MethodPrioritized is the canonical name of the Prioritized builder.
	MethodPrioritized = "Prioritized"
	// MethodCombined is the canonical name of the Combined builder.
	MethodCombined = "Combined"
)

// Deterministic defaults.
const (
	DefaultT          = 2
	DefaultIterations = 1
)
