// Package traversal implements the depth-first walker that drives a
// sanitization pass across a model graph, and the declarative rules that
// tell it how to descend into heterogeneous nodes.
package traversal

import (
	"slices"

	"github.com/aretw0/datashield/pkg/domain"
)

// Rule pairs a predicate with a child extractor. Rules are evaluated in
// order per node; the first predicate returning true determines how the
// walker descends. A node matched by no rule is a leaf.
type Rule struct {
	// Applies decides whether this rule governs descent for the node.
	Applies func(n *domain.Node) bool

	// Children extracts the child nodes, in stored order.
	Children func(n *domain.Node) []*domain.Node
}

// DefaultRules returns the standard rule chain: display-geometry nodes
// first, then the total fallback.
func DefaultRules() []Rule {
	return []Rule{DisplayValueRule(), FallbackRule()}
}

// DisplayValueRule descends through a node's display geometry: the
// displayValue member (a single node or a list) plus the elements
// collection, in their stored order.
func DisplayValueRule() Rule {
	return Rule{
		Applies: func(n *domain.Node) bool {
			return len(nodesFrom(n.Member(domain.MemberDisplayValue))) > 0 ||
				len(nodesFrom(n.Member(domain.MemberElements))) > 0
		},
		Children: func(n *domain.Node) []*domain.Node {
			// Clone before appending: nodesFrom may hand back the graph's own
			// member slice, and growing it in place would write into storage
			// the host still aliases.
			children := slices.Clone(nodesFrom(n.Member(domain.MemberDisplayValue)))
			return append(children, nodesFrom(n.Member(domain.MemberElements))...)
		},
	}
}

// FallbackRule applies to every node. It yields every member value that is
// itself a node or a sequence of nodes, flattened in member-name order.
// Parameter collections are not members, so traversal never recurses into
// parameter metadata as if it were a child node.
func FallbackRule() Rule {
	return Rule{
		Applies: func(n *domain.Node) bool { return true },
		Children: func(n *domain.Node) []*domain.Node {
			names := make([]string, 0, len(n.Members))
			for name := range n.Members {
				names = append(names, name)
			}
			slices.Sort(names)

			var children []*domain.Node
			for _, name := range names {
				children = append(children, nodesFrom(n.Members[name])...)
			}
			return children
		},
	}
}

// nodesFrom extracts the node references held by a member value: a single
// node, a typed slice, or a mixed slice. Non-node content yields nothing.
func nodesFrom(value any) []*domain.Node {
	switch v := value.(type) {
	case *domain.Node:
		return []*domain.Node{v}
	case []*domain.Node:
		return v
	case []any:
		var nodes []*domain.Node
		for _, item := range v {
			if child, ok := item.(*domain.Node); ok {
				nodes = append(nodes, child)
			}
		}
		return nodes
	default:
		return nil
	}
}
