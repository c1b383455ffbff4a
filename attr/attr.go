// Package attr implements the small ordered key->string map attached to
// panes, marks, and documents throughout panekit, per spec.md §3
// "Attribute map". Entries optionally carry an integer position so a range
// of positions can be trimmed or copied — e.g. a text buffer's per-line
// attributes shifting as lines are inserted or deleted above them.
package attr

// NoPos marks an entry as not position-indexed.
const NoPos = -1

type entry struct {
	key string
	val string
	pos int
}

// Map is an ordered key->string map. The zero value is ready to use.
type Map struct {
	entries []entry
	index   map[string]int // key -> index into entries
}

// New returns an empty attribute map.
func New() *Map {
	return &Map{index: make(map[string]int)}
}

// Get returns the value for key and whether it is present.
func (m *Map) Get(key string) (string, bool) {
	i, ok := m.lookup(key)
	if !ok {
		return "", false
	}
	return m.entries[i].val, true
}

// Set inserts or replaces key's value, unpositioned.
func (m *Map) Set(key, val string) {
	m.SetPos(key, val, NoPos)
}

// SetPos inserts or replaces key's value at position pos. Replacing
// preserves the entry's place in iteration order.
func (m *Map) SetPos(key, val string, pos int) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.entries[i].val = val
		m.entries[i].pos = pos
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, entry{key: key, val: val, pos: pos})
}

// Del removes key, if present.
func (m *Map) Del(key string) {
	i, ok := m.lookup(key)
	if !ok {
		return
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	delete(m.index, key)
	for k, idx := range m.index {
		if idx > i {
			m.index[k] = idx - 1
		}
	}
}

// Len reports how many entries are present.
func (m *Map) Len() int { return len(m.entries) }

// Keys returns every key in insertion order.
func (m *Map) Keys() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.key
	}
	return out
}

// Truncate deletes every positioned entry with pos >= at. Unpositioned
// entries (NoPos) are left untouched.
func (m *Map) Truncate(at int) {
	kept := m.entries[:0]
	newIndex := make(map[string]int, len(m.index))
	for _, e := range m.entries {
		if e.pos != NoPos && e.pos >= at {
			continue
		}
		newIndex[e.key] = len(kept)
		kept = append(kept, e)
	}
	m.entries = kept
	m.index = newIndex
}

// CopyRange returns a new Map containing only the positioned entries whose
// pos falls in the half-open range [lo, hi). Unpositioned entries are never
// copied, since they have no position to test against the range.
func (m *Map) CopyRange(lo, hi int) *Map {
	out := New()
	for _, e := range m.entries {
		if e.pos == NoPos {
			continue
		}
		if e.pos >= lo && e.pos < hi {
			out.SetPos(e.key, e.val, e.pos)
		}
	}
	return out
}

func (m *Map) lookup(key string) (int, bool) {
	if m.index == nil {
		return 0, false
	}
	i, ok := m.index[key]
	return i, ok
}
