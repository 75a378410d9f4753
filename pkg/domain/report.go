package domain

import "time"

// Report is the structured feedback one action produces for one pass.
type Report struct {
	// Category is a fixed label identifying the kind of transform applied.
	Category string `json:"category"`

	// ObjectIDs lists the ids of every object that had at least one
	// parameter affected.
	ObjectIDs []string `json:"object_ids"`

	// Message is a one-line human readable summary.
	Message string `json:"message"`
}

// PassStats aggregates diagnostics for a single sanitization pass.
type PassStats struct {
	NodesVisited       int `json:"nodes_visited"`
	ParametersExamined int `json:"parameters_examined"`
	SkippedNodes       int `json:"skipped_nodes"`
	SkippedParameters  int `json:"skipped_parameters"`
}

// Run status values recorded in a RunRecord.
const (
	RunSucceeded = "succeeded"
	RunFailed    = "failed"
)

// RunRecord captures the outcome of one sanitization run for history
// storage. It is written after the pass completes, never during it.
type RunRecord struct {
	ID         string    `json:"id"`
	Mode       string    `json:"mode"`
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	Report     *Report   `json:"report,omitempty"`
	Stats      PassStats `json:"stats"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}
