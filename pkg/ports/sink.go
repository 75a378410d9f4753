// Package ports defines the driven-port interfaces through which the
// sanitization core talks to the host platform. Adapters live under
// pkg/adapters; the core never depends on a concrete backend.
package ports

// ReportSink receives aggregated feedback about a sanitization run.
// The host platform decides where it lands (console, automation context,
// run history store).
type ReportSink interface {
	// AttachInfo delivers a per-category report: the ids of every affected
	// object plus a one-line summary.
	AttachInfo(category string, objectIDs []string, message string) error

	// MarkRunSuccess records that the run finished cleanly.
	MarkRunSuccess(message string)

	// MarkRunFailed records that the run aborted before producing a usable
	// result. A failed run must never be presented as a sanitized version.
	MarkRunFailed(message string)
}
