// Package datashield sanitizes parameter data on hierarchical model
// graphs. It walks a graph of typed nodes, matches named parameters
// against configurable rules (prefix, glob or regex), and applies
// redaction or anonymization transforms in place, with aggregated
// per-object reporting.
//
// The high-level entry point is Sanitize:
//
//	cfg := config.Config{Mode: config.ModePrefix, ParameterInput: "secret"}
//	result, err := datashield.Sanitize(root, cfg)
//
// Hosts that need finer control compose the pieces directly: a matcher
// from pkg/match, an action from pkg/sanitize, and a processor from
// pkg/processor driven by the walker in pkg/traversal. Persistence and
// reporting are ports (pkg/ports) with adapters under pkg/adapters.
package datashield
