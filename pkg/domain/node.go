package domain

// Well-known member names used by the traversal rules.
const (
	// MemberElements holds a node's child elements collection.
	MemberElements = "elements"
	// MemberDisplayValue holds a node's display geometry (a single node or a list).
	MemberDisplayValue = "displayValue"
)

// Node represents a single entity in the hierarchical model graph.
//
// A node is owned by the graph: the sanitization core never creates or
// deletes nodes, it only mutates parameter entries in place.
type Node struct {
	// ID is the opaque stable identifier assigned by the host platform.
	ID string

	// Type is the application type hint (e.g. "Objects.BuiltElements.Wall").
	Type string

	// Members holds the dynamic members of the node: nested *Node values,
	// []*Node collections, or primitives. Traversal descends through these.
	Members map[string]any

	// Properties is the current-generation parameter collection: keyed by an
	// internal parameter id, each entry a record carrying at least "name"
	// and "value". Nested grouping maps are allowed.
	Properties map[string]any

	// Parameters is the legacy parameter collection: a flat name -> value map.
	Parameters map[string]any
}

// Member returns the named dynamic member, or nil when absent.
func (n *Node) Member(name string) any {
	if n.Members == nil {
		return nil
	}
	return n.Members[name]
}

// SetMember sets a dynamic member, allocating the member map on first use.
func (n *Node) SetMember(name string, value any) {
	if n.Members == nil {
		n.Members = make(map[string]any)
	}
	n.Members[name] = value
}

// HasParameterCollection reports whether the node carries any parameter
// collection in a recognized shape.
func (n *Node) HasParameterCollection() bool {
	return n.Properties != nil || n.Parameters != nil
}
