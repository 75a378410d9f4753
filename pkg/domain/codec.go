package domain

import "encoding/json"

// The wire shape of a graph is a plain JSON object tree: "id" and "type"
// are lifted into the struct, "properties" and "parameters" become the two
// parameter collections, and every remaining member is kept as a dynamic
// member. Any nested object carrying an "id" is decoded as a child Node.

// DecodeNode builds a Node tree from a generic JSON object.
func DecodeNode(raw map[string]any) *Node {
	n := &Node{}
	for key, value := range raw {
		switch key {
		case "id":
			if id, ok := value.(string); ok {
				n.ID = id
				continue
			}
		case "type", "speckle_type":
			if t, ok := value.(string); ok {
				n.Type = t
				continue
			}
		case "properties":
			if m, ok := value.(map[string]any); ok {
				n.Properties = m
				continue
			}
		case "parameters":
			if m, ok := value.(map[string]any); ok {
				n.Parameters = m
				continue
			}
		}
		n.SetMember(key, decodeValue(value))
	}
	return n
}

func decodeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		if _, ok := v["id"].(string); ok {
			return DecodeNode(v)
		}
		return v
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = decodeValue(item)
		}
		return out
	default:
		return value
	}
}

// EncodeNode renders the tree back into a generic JSON object. Shared child
// references are expanded; plain JSON has no way to express them.
func EncodeNode(n *Node) map[string]any {
	out := make(map[string]any, len(n.Members)+4)
	out["id"] = n.ID
	if n.Type != "" {
		out["type"] = n.Type
	}
	if n.Properties != nil {
		out["properties"] = n.Properties
	}
	if n.Parameters != nil {
		out["parameters"] = n.Parameters
	}
	for key, value := range n.Members {
		out[key] = encodeValue(value)
	}
	return out
}

func encodeValue(value any) any {
	switch v := value.(type) {
	case *Node:
		return EncodeNode(v)
	case []*Node:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = EncodeNode(child)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = encodeValue(item)
		}
		return out
	default:
		return value
	}
}

// UnmarshalJSON decodes a JSON object into the node, replacing its contents.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*n = *DecodeNode(raw)
	return nil
}

// MarshalJSON renders the node tree as a JSON object.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(EncodeNode(n))
}

// MalformedParameterCollection reports whether the node carries a
// "properties" or "parameters" member in neither recognized shape. Such a
// node is skipped by the processor and counted for diagnostics.
func MalformedParameterCollection(n *Node) bool {
	if n.HasParameterCollection() || n.Members == nil {
		return false
	}
	if _, ok := n.Members["properties"]; ok {
		return true
	}
	_, ok := n.Members["parameters"]
	return ok
}
