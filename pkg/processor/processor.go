// Package processor orchestrates a sanitization pass: it drives the
// traversal engine, normalizes each node's parameter collection, evaluates
// the active action and applies it on match, then reports exactly once.
package processor

import (
	"io"
	"log/slog"

	"github.com/aretw0/datashield/pkg/domain"
	"github.com/aretw0/datashield/pkg/ports"
	"github.com/aretw0/datashield/pkg/sanitize"
	"github.com/aretw0/datashield/pkg/traversal"
)

// Processor runs one action over one graph. Construct a fresh processor
// (and a fresh action) per run; the pass is single-threaded and mutates the
// graph in place.
type Processor struct {
	action    sanitize.Action
	sink      ports.ReportSink
	traverser *traversal.Traverser
	logger    *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithTraverser overrides the default rule set.
func WithTraverser(t *traversal.Traverser) Option {
	return func(p *Processor) { p.traverser = t }
}

// WithLogger sets the structured logger used for skip diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) { p.logger = logger }
}

// New creates a processor for one run.
func New(action sanitize.Action, sink ports.ReportSink, opts ...Option) *Processor {
	p := &Processor{
		action:    action,
		sink:      sink,
		traverser: traversal.New(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process walks the graph rooted at root, applying the action to every
// matched parameter, and delivers the action's report to the sink once the
// full traversal has completed. Per-node and per-parameter problems are
// counted and logged, never fatal.
func (p *Processor) Process(root *domain.Node) (domain.PassStats, error) {
	var stats domain.PassStats

	err := p.traverser.Walk(root, func(c traversal.Context) error {
		stats.NodesVisited++
		p.processNode(c.Current, &stats)
		return nil
	})
	if err != nil {
		return stats, err
	}

	if err := p.action.Report(p.sink); err != nil {
		return stats, err
	}
	return stats, nil
}

func (p *Processor) processNode(n *domain.Node, stats *domain.PassStats) {
	if domain.MalformedParameterCollection(n) {
		stats.SkippedNodes++
		p.logger.Warn("skipping node with unrecognized parameter collection", "object", n.ID)
		return
	}
	if !n.HasParameterCollection() {
		return
	}

	for _, entry := range domain.ParameterEntries(n) {
		stats.ParametersExamined++

		candidate, ok := p.candidate(entry)
		if !ok || !p.action.Check(candidate) {
			continue
		}
		if err := p.action.Apply(entry, n); err != nil {
			stats.SkippedParameters++
			p.logger.Warn("apply failed for parameter",
				"object", n.ID, "parameter", entry.Name, "err", err)
		}
	}
}

// candidate resolves what the action's Check inspects: the parameter name
// for name-based actions, the value for content-based ones. Non-string
// values never qualify for content matching.
func (p *Processor) candidate(entry domain.Entry) (string, bool) {
	if !p.action.MatchesValues() {
		return entry.Name, true
	}
	value, ok := entry.Value.(string)
	return value, ok
}
