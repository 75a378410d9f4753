package datashield

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/datashield/pkg/config"
	"github.com/aretw0/datashield/pkg/domain"
	"github.com/aretw0/datashield/pkg/ports"
	"github.com/aretw0/datashield/pkg/processor"
	"github.com/aretw0/datashield/pkg/traversal"
)

// Version is the library version, stamped into CLI and MCP surfaces.
var Version = "0.3.0"

// Result summarizes one completed sanitization pass.
type Result struct {
	// Report is the action's aggregated feedback, nil when the pass
	// affected nothing.
	Report *domain.Report

	// Stats carries pass diagnostics (visited, examined, skipped).
	Stats domain.PassStats

	// Message is the run summary delivered to the sink.
	Message string
}

// Affected reports whether the pass mutated at least one parameter.
func (r *Result) Affected() bool { return r.Report != nil }

// Option configures a run.
type Option func(*runner)

// WithLogger sets the structured logger for the run.
func WithLogger(logger *slog.Logger) Option {
	return func(r *runner) { r.logger = logger }
}

// WithSink forwards run feedback (reports, success/failure marks) to the
// host's reporting sink.
func WithSink(sink ports.ReportSink) Option {
	return func(r *runner) { r.sink = sink }
}

// WithRules overrides the default traversal rules.
func WithRules(rules ...traversal.Rule) Option {
	return func(r *runner) { r.rules = rules }
}

type runner struct {
	logger *slog.Logger
	sink   ports.ReportSink
	rules  []traversal.Rule
}

// Sanitize runs one pass over the graph rooted at root, mutating matched
// parameters in place. Configuration problems surface before any traversal;
// the graph is untouched when an error is returned.
func Sanitize(root *domain.Node, cfg config.Config, opts ...Option) (*Result, error) {
	r := &runner{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		sink:   nopSink{},
	}
	for _, opt := range opts {
		opt(r)
	}

	action, err := cfg.BuildAction()
	if err != nil {
		r.sink.MarkRunFailed(err.Error())
		return nil, err
	}

	capture := &captureSink{next: r.sink}
	procOpts := []processor.Option{processor.WithLogger(r.logger)}
	if len(r.rules) > 0 {
		procOpts = append(procOpts, processor.WithTraverser(traversal.New(r.rules...)))
	}

	stats, err := processor.New(action, capture, procOpts...).Process(root)
	if err != nil {
		r.sink.MarkRunFailed(err.Error())
		return nil, fmt.Errorf("sanitization pass: %w", err)
	}

	result := &Result{Report: capture.report, Stats: stats}
	if result.Report == nil {
		result.Message = "No parameters were processed."
	} else {
		result.Message = cfg.SuccessMessage()
	}
	r.sink.MarkRunSuccess(result.Message)

	r.logger.Info("sanitization pass complete",
		"mode", string(cfg.Mode),
		"nodes", stats.NodesVisited,
		"parameters", stats.ParametersExamined,
		"affected", result.Affected())

	return result, nil
}

// captureSink records the action's report while forwarding it to the
// host sink.
type captureSink struct {
	next   ports.ReportSink
	report *domain.Report
}

func (s *captureSink) AttachInfo(category string, objectIDs []string, message string) error {
	s.report = &domain.Report{Category: category, ObjectIDs: objectIDs, Message: message}
	return s.next.AttachInfo(category, objectIDs, message)
}

func (s *captureSink) MarkRunSuccess(message string) { s.next.MarkRunSuccess(message) }
func (s *captureSink) MarkRunFailed(message string)  { s.next.MarkRunFailed(message) }

// nopSink swallows all feedback; used when the host provides no sink.
type nopSink struct{}

func (nopSink) AttachInfo(string, []string, string) error { return nil }
func (nopSink) MarkRunSuccess(string)                     {}
func (nopSink) MarkRunFailed(string)                      {}
