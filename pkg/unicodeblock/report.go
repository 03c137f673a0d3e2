package unicodeblock

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
)

// Entry is one block's count within a report.
type Entry struct {
	Block string `json:"block"`
	Count int    `json:"count"`
}

// Report maps block names to positive counts, in catalog order. Reports are
// values; methods never hand out the internal slice.
//
// The zero value is an empty report. Its JSON form is an object whose keys
// keep report order:
//
//	{"basicLatin":2,"cjkUnifiedIdeographs":1}
type Report struct {
	entries []Entry
}

// NewReport builds a report from entries, dropping those with a non-positive
// count. Entries are kept in the given order.
func NewReport(entries ...Entry) Report {
	var r Report
	for _, e := range entries {
		if e.Count > 0 {
			r.entries = append(r.entries, e)
		}
	}
	return r
}

// Len returns the number of blocks with at least one match.
func (r Report) Len() int { return len(r.entries) }

// IsEmpty reports whether no block matched.
func (r Report) IsEmpty() bool { return len(r.entries) == 0 }

// Entries returns a copy of the report entries.
func (r Report) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// All yields (block, count) pairs in report order.
func (r Report) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, e := range r.entries {
			if !yield(e.Block, e.Count) {
				return
			}
		}
	}
}

// Get returns the count for name, or zero if the block did not match.
func (r Report) Get(name string) int {
	for _, e := range r.entries {
		if e.Block == name {
			return e.Count
		}
	}
	return 0
}

// Names returns the matched block names in report order.
func (r Report) Names() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Block
	}
	return out
}

// Total sums all counts. With overlapping catalogs a code point may be counted
// more than once.
func (r Report) Total() int {
	n := 0
	for _, e := range r.entries {
		n += e.Count
	}
	return n
}

// Map returns the report as an unordered map.
func (r Report) Map() map[string]int {
	m := make(map[string]int, len(r.entries))
	for _, e := range r.entries {
		m[e.Block] = e.Count
	}
	return m
}

// Equal reports whether both reports hold the same entries in the same order.
func (r Report) Equal(o Report) bool {
	if len(r.entries) != len(o.entries) {
		return false
	}
	for i := range r.entries {
		if r.entries[i] != o.entries[i] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the report as a JSON object whose keys follow report order.
func (r Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range r.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Block)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", e.Count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping key order. Entries with a
// non-positive count are dropped and null yields an empty report.
func (r *Report) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*r = Report{}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("report: expected object, got %v", tok)
	}

	var entries []Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("report: expected block name, got %v", tok)
		}
		var n int
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("report: count for %q: %w", name, err)
		}
		entries = append(entries, Entry{Block: name, Count: n})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*r = NewReport(entries...)
	return nil
}

// Merge sums reports block by block. Blocks known to c come first in catalog
// order; any others follow in the order they were first seen.
//
// Example:
//
//	total := unicodeblock.Merge(unicodeblock.Standard(), itemReports...)
func Merge(c Catalog, reports ...Report) Report {
	sums := make(map[string]int)
	var unknown []string
	for _, r := range reports {
		for _, e := range r.entries {
			if _, seen := sums[e.Block]; !seen && c.Position(e.Block) < 0 {
				unknown = append(unknown, e.Block)
			}
			sums[e.Block] += e.Count
		}
	}

	var out Report
	for _, b := range c.blocks {
		if n := sums[b.Name]; n > 0 {
			out.entries = append(out.entries, Entry{Block: b.Name, Count: n})
		}
	}
	for _, name := range unknown {
		out.entries = append(out.entries, Entry{Block: name, Count: sums[name]})
	}
	return out
}
