// Package sampling turns a feature model and value maps into the
// combination.Spec an external covering-array sampler must satisfy.
//
// Modes:
//
//	Cardinality         cluster → c: each cluster appears with each of the
//	                    first c artificial variables (so at least c times)
//	ClusterInteraction  cluster → w: the whole cluster paired with every
//	                    (w-1)-combination of outside literals
//	Weighted            variables → k: k-wise coverage over those variables
//	Prioritized         the priority keys, verbatim; values become Ranks
//	Combined            all of the above over one shared space
//
// Every mode except Weighted adds a baseline VariableWise(t) over the
// feature variables (never over artificial ones).
//
// Spaces:
//
// A build never mutates its inputs. It clones the feature model's space,
// re-bases clones of the value maps onto it (strictly for single modes,
// permissively for Combined) and appends artificial variables to the clone.
// The Result carries that final space, the model re-based onto it, and the
// artificial ids to project away from the sampler's rows.
//
// Options:
//
//	WithT(t)                  baseline arity (default 2)
//	WithIterations(n)         passed through to the sampler (default 1)
//	WithNameFn(fn)            artificial variable names (default UUIDName)
//	WithSequentialNames(p)    p0, p1, ... (deterministic)
//	WithLogger(l)             *slog.Logger for debug records (default slog.Default())
package sampling
