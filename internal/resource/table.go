package resource

import "sort"

// Placeholder is one named substitution point in a resource value.
type Placeholder struct {
	Name    string
	Type    string
	Example string
}

// Entry is a single externalized string: key, value (template or literal),
// a description, and the placeholders when the value is a template.
type Entry struct {
	Key          string
	Value        string
	Description  string
	Placeholders []Placeholder
}

// Table accumulates resource entries over one extraction run. Keys are
// unique; recording is idempotent per key with placeholder upgrade on merge.
type Table struct {
	entries map[string]*Entry
}

func NewTable() *Table {
	return &Table{entries: make(map[string]*Entry)}
}

// Has reports whether a key is already present. The key generator probes
// through this for collision resolution.
func (t *Table) Has(key string) bool {
	_, ok := t.entries[key]
	return ok
}

// Len returns the number of recorded entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Record stores an entry. For an existing key the first recorded value wins,
// except that a later detection carrying placeholders upgrades an entry that
// had none.
func (t *Table) Record(key, value, description string, placeholders []Placeholder) {
	if existing, ok := t.entries[key]; ok {
		if len(existing.Placeholders) == 0 && len(placeholders) > 0 {
			existing.Value = value
			existing.Placeholders = placeholders
		}
		return
	}
	t.entries[key] = &Entry{
		Key:          key,
		Value:        value,
		Description:  description,
		Placeholders: placeholders,
	}
}

// Get returns the entry for a key, or nil.
func (t *Table) Get(key string) *Entry {
	return t.entries[key]
}

// SortedKeys returns all keys in lexicographic order. Emission uses this so
// output is reproducible regardless of discovery order.
func (t *Table) SortedKeys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
