package windows

import (
	"strings"
)

// Entry is a single key/value pair of a Table.
type Entry struct {
	Key   string
	Value string
}

// Table is an insertion-ordered key/value table. Redefining a key replaces
// its value in place, lookups return the first matching entry.
type Table struct {
	foldCase bool
	entries  []Entry
}

// NewTable returns an empty table. If foldCase is set, keys are compared
// case-insensitively.
func NewTable(foldCase bool) *Table {
	return &Table{foldCase: foldCase}
}

func (t *Table) match(a string, b string) bool {
	if t.foldCase {
		return strings.EqualFold(a, b)
	}

	return a == b
}

// Set inserts key or updates its value.
func (t *Table) Set(key string, value string) {
	for i := range t.entries {
		if t.match(t.entries[i].Key, key) {
			t.entries[i].Value = value
			return
		}
	}

	t.entries = append(t.entries, Entry{Key: key, Value: value})
}

// Get returns the value stored for key.
func (t *Table) Get(key string) (string, bool) {
	for _, entry := range t.entries {
		if t.match(entry.Key, key) {
			return entry.Value, true
		}
	}

	return "", false
}

// Lookup returns the value stored for key, or key itself if it isn't defined.
func (t *Table) Lookup(key string) string {
	value, ok := t.Get(key)
	if !ok {
		return key
	}

	return value
}

// Entries returns a copy of the table content in insertion order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)

	return entries
}

// Len returns the number of keys.
func (t *Table) Len() int {
	return len(t.entries)
}

// quirks maps known-bad vendor defaults to values that work with ndiswrapper.
var quirks = map[string]string{
	"EnableRadio|0": "EnableRadio|1",
	"IBSSGMode|0":   "IBSSGMode|2",
	"PrivacyMode|0": "PrivacyMode|2",
	"AdhocGMode|1":  "AdhocGMode|0",
}

// applyQuirk returns the corrected form of a "Name|Value" parameter and
// whether a correction was made.
func applyQuirk(param string) (string, bool) {
	fixed, ok := quirks[param]
	if !ok || fixed == param {
		return param, false
	}

	return fixed, true
}
