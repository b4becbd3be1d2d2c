package document

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Mapping is an ordered view over a yaml mapping node. Keys live at even
// positions of Content and their values at the following odd position.
type Mapping struct {
	*yaml.Node
}

// AsMapping returns n as a Mapping, resolving aliases.
func AsMapping(n *yaml.Node) (Mapping, bool) {
	if n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n == nil || n.Kind != yaml.MappingNode {
		return Mapping{}, false
	}
	return Mapping{n}, true
}

func NewMapping() Mapping {
	return Mapping{&yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}}
}

func (m Mapping) Len() int {
	return len(m.Content) / 2
}

func (m Mapping) Keys() []string {
	keys := make([]string, 0, m.Len())
	for i := 0; i+1 < len(m.Content); i += 2 {
		keys = append(keys, m.Content[i].Value)
	}
	return keys
}

// Index returns the position of key, or -1.
func (m Mapping) Index(key string) int {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return i / 2
		}
	}
	return -1
}

func (m Mapping) Get(key string) *yaml.Node {
	if i := m.Index(key); i >= 0 {
		return m.Content[2*i+1]
	}
	return nil
}

// Set replaces the value of an existing key in place or appends a new entry.
func (m Mapping) Set(key string, value *yaml.Node) {
	if i := m.Index(key); i >= 0 {
		m.Content[2*i+1] = value
		return
	}
	m.Content = append(m.Content, String(key), value)
}

// Delete removes key and reports whether it was present.
func (m Mapping) Delete(key string) bool {
	i := m.Index(key)
	if i < 0 {
		return false
	}
	m.Content = append(m.Content[:2*i], m.Content[2*i+2:]...)
	return true
}

// Insert places key at position index, shifting the entries at and after it.
// The index is clamped to [0, Len()]. When key already exists its value is
// overwritten where it stands and nothing moves.
func (m Mapping) Insert(index int, key string, value *yaml.Node) {
	if i := m.Index(key); i >= 0 {
		m.Content[2*i+1] = value
		return
	}
	if index < 0 {
		index = 0
	}
	if index > m.Len() {
		index = m.Len()
	}
	pos := 2 * index
	content := make([]*yaml.Node, 0, len(m.Content)+2)
	content = append(content, m.Content[:pos]...)
	content = append(content, String(key), value)
	content = append(content, m.Content[pos:]...)
	m.Content = content
}

// FindKey returns the position of the first key containing anchor, or -1.
func (m Mapping) FindKey(anchor string) int {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if strings.Contains(m.Content[i].Value, anchor) {
			return i / 2
		}
	}
	return -1
}

// InsertAfter inserts key right after the first key containing anchor. It
// does nothing and returns false when no key matches.
func (m Mapping) InsertAfter(anchor, key string, value *yaml.Node) bool {
	i := m.FindKey(anchor)
	if i < 0 {
		return false
	}
	m.Insert(i+1, key, value)
	return true
}
