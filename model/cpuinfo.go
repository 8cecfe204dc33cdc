package model

// InfoEntry is a single normalized key/value pair read from cpu info.
type InfoEntry struct {
	Key   string
	Value string
}

// InfoMap holds the parsed cpu info fields. Lookups are by key; Entries
// preserves the order in which keys were first seen.
type InfoMap struct {
	entries []InfoEntry
	index   map[string]int
}

// NewInfoMap returns an empty InfoMap.
func NewInfoMap() *InfoMap {
	return &InfoMap{index: map[string]int{}}
}

// Set stores value under key. A repeated key overwrites the earlier value
// but keeps its original position. It reports whether key was already present.
func (m *InfoMap) Set(key, value string) bool {
	if m.index == nil {
		m.index = map[string]int{}
	}
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return true
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, InfoEntry{Key: key, Value: value})
	return false
}

// Get returns the value stored under key.
func (m *InfoMap) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	i, ok := m.index[key]
	if !ok {
		return "", false
	}
	return m.entries[i].Value, true
}

// GetOrDefault returns the value stored under key, or def when absent.
func (m *InfoMap) GetOrDefault(key, def string) string {
	if v, ok := m.Get(key); ok {
		return v
	}
	return def
}

// Has reports whether key is present.
func (m *InfoMap) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Len returns the number of distinct keys.
func (m *InfoMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Entries returns a copy of the fields in first-seen order.
func (m *InfoMap) Entries() []InfoEntry {
	if m == nil {
		return nil
	}
	out := make([]InfoEntry, len(m.entries))
	copy(out, m.entries)
	return out
}
