package domain

import (
	"fmt"
	"slices"
)

// Entry is the uniform view of one parameter, regardless of which schema
// generation it is stored in. The normalization happens once, at the
// boundary; nothing downstream branches on storage shape again.
type Entry struct {
	// Key is the storage key of the entry inside Collection. For legacy
	// collections this is also the display name; for current collections it
	// is the internal parameter id.
	Key string

	// Name is the resolved display name used for matching.
	Name string

	// Value is the current parameter value.
	Value any

	// Record is the current-shape parameter record (the map carrying "name"
	// and "value"). Nil for legacy entries.
	Record map[string]any

	// Collection is the map that physically holds the entry under Key.
	Collection map[string]any
}

// ValueString returns the value coerced to text. Non-string primitives are
// formatted; nil becomes the empty string.
func (e Entry) ValueString() string {
	switch v := e.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Exists reports whether the entry is still present in its containing
// collection. Actions use this to detect aliasing before writing back.
func (e Entry) Exists() bool {
	if e.Collection == nil {
		return false
	}
	_, ok := e.Collection[e.Key]
	return ok
}

// Remove deletes the entry from its containing collection.
func (e Entry) Remove() error {
	if !e.Exists() {
		return fmt.Errorf("%w: %s", ErrParameterGone, e.Key)
	}
	delete(e.Collection, e.Key)
	return nil
}

// SetValue writes a new value back into the graph, through the record for
// current-shape entries and directly into the collection for legacy ones.
func (e Entry) SetValue(value any) error {
	if !e.Exists() {
		return fmt.Errorf("%w: %s", ErrParameterGone, e.Key)
	}
	if e.Record != nil {
		e.Record["value"] = value
		return nil
	}
	e.Collection[e.Key] = value
	return nil
}

// ParameterEntries flattens the node's parameter collections into a uniform
// sequence of entries. Current-shape collections are walked recursively:
// a map carrying a "value" key is a parameter record, any other map is a
// grouping level. Legacy collections contribute one entry per flat pair,
// except that record-shaped values (maps carrying their own "name" and
// "value") resolve like current-shape records, so a display name stored on
// the record wins over the storage key. Keys are visited in sorted order so
// a pass is deterministic.
func ParameterEntries(n *Node) []Entry {
	var entries []Entry
	if n.Properties != nil {
		entries = collectRecords(n.Properties, entries)
	}
	for _, key := range sortedKeys(n.Parameters) {
		if record, ok := n.Parameters[key].(map[string]any); ok {
			entries = collectEntry(n.Parameters, key, record, entries)
			continue
		}
		entries = append(entries, Entry{
			Key:        key,
			Name:       key,
			Value:      n.Parameters[key],
			Collection: n.Parameters,
		})
	}
	return entries
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func collectRecords(collection map[string]any, entries []Entry) []Entry {
	for _, key := range sortedKeys(collection) {
		record, ok := collection[key].(map[string]any)
		if !ok {
			continue
		}
		entries = collectEntry(collection, key, record, entries)
	}
	return entries
}

// collectEntry resolves one map-valued pair: a map carrying "value" is a
// parameter record, any other map is a grouping level to recurse into.
func collectEntry(collection map[string]any, key string, record map[string]any, entries []Entry) []Entry {
	if _, isRecord := record["value"]; !isRecord {
		return collectRecords(record, entries)
	}
	return append(entries, Entry{
		Key:        key,
		Name:       recordName(record, key),
		Value:      record["value"],
		Record:     record,
		Collection: collection,
	})
}

// recordName resolves the display name of a current-shape record, falling
// back to the storage key when the record carries no usable name.
func recordName(record map[string]any, key string) string {
	if name, ok := record["name"].(string); ok && name != "" {
		return name
	}
	return key
}
