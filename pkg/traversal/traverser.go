package traversal

import "github.com/aretw0/datashield/pkg/domain"

// Context is the ephemeral view handed to the visitor for each node: the
// node itself and the ordered ancestor chain from the root.
type Context struct {
	Current *domain.Node
	Path    []*domain.Node
}

// Traverser walks a graph depth-first, pre-order, visiting every reachable
// node exactly once. Shared (diamond) references and true cycles are both
// handled by a visited set, so the walk always terminates.
type Traverser struct {
	rules []Rule
}

// New creates a traverser. With no rules given it uses DefaultRules.
func New(rules ...Rule) *Traverser {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Traverser{rules: rules}
}

// Walk visits every reachable node starting at root. The visitor's error
// aborts the walk and is returned as-is.
func (t *Traverser) Walk(root *domain.Node, visit func(Context) error) error {
	if root == nil {
		return nil
	}
	v := newVisitedSet()
	return t.walk(root, nil, v, visit)
}

// Contexts collects one context per visited node, in visit order. The path
// slice of each context is an independent copy.
func (t *Traverser) Contexts(root *domain.Node) []Context {
	var contexts []Context
	// The visitor never fails, so Walk cannot either.
	_ = t.Walk(root, func(c Context) error {
		path := make([]*domain.Node, len(c.Path))
		copy(path, c.Path)
		contexts = append(contexts, Context{Current: c.Current, Path: path})
		return nil
	})
	return contexts
}

func (t *Traverser) walk(n *domain.Node, path []*domain.Node, v *visitedSet, visit func(Context) error) error {
	if !v.add(n) {
		return nil
	}
	if err := visit(Context{Current: n, Path: path}); err != nil {
		return err
	}
	childPath := append(path, n)
	for _, child := range t.children(n) {
		if child == nil {
			continue
		}
		if err := t.walk(child, childPath, v, visit); err != nil {
			return err
		}
	}
	return nil
}

// children applies the first matching rule. No match means leaf.
func (t *Traverser) children(n *domain.Node) []*domain.Node {
	for _, rule := range t.rules {
		if rule.Applies(n) {
			return rule.Children(n)
		}
	}
	return nil
}

// visitedSet tracks visited nodes by id, falling back to pointer identity
// for nodes without an id.
type visitedSet struct {
	ids      map[string]struct{}
	pointers map[*domain.Node]struct{}
}

func newVisitedSet() *visitedSet {
	return &visitedSet{
		ids:      make(map[string]struct{}),
		pointers: make(map[*domain.Node]struct{}),
	}
}

// add returns false when the node was already visited in this pass.
func (v *visitedSet) add(n *domain.Node) bool {
	if n.ID != "" {
		if _, seen := v.ids[n.ID]; seen {
			return false
		}
		v.ids[n.ID] = struct{}{}
		return true
	}
	if _, seen := v.pointers[n]; seen {
		return false
	}
	v.pointers[n] = struct{}{}
	return true
}
