package document

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// AppendToGroups walks every group of groups and, for each element of the
// group's listKey sequence containing search, appends a copy of item to that
// same sequence. Every matching group gets the item, once per matching
// element. It returns the number of appends.
func AppendToGroups(groups *yaml.Node, listKey, search string, item *yaml.Node) int {
	if groups == nil || groups.Kind != yaml.SequenceNode {
		return 0
	}
	appended := 0
	for _, group := range groups.Content {
		g, ok := AsMapping(group)
		if !ok {
			continue
		}
		list := g.Get(listKey)
		if list == nil || list.Kind != yaml.SequenceNode {
			continue
		}
		elements := append([]*yaml.Node(nil), list.Content...)
		for _, e := range elements {
			if strings.Contains(Repr(e), search) {
				list.Content = append(list.Content, Clone(item))
				appended++
			}
		}
	}
	return appended
}

// RemoveFromGroups drops every element containing search from the listKey
// sequence of each group and returns the number of removed elements.
func RemoveFromGroups(groups *yaml.Node, listKey, search string) int {
	if groups == nil || groups.Kind != yaml.SequenceNode {
		return 0
	}
	removed := 0
	for _, group := range groups.Content {
		g, ok := AsMapping(group)
		if !ok {
			continue
		}
		list := g.Get(listKey)
		if list == nil || list.Kind != yaml.SequenceNode {
			continue
		}
		kept := list.Content[:0]
		for _, e := range list.Content {
			if strings.Contains(Repr(e), search) {
				removed++
				continue
			}
			kept = append(kept, e)
		}
		list.Content = kept
	}
	return removed
}

// ReplaceAfter finds the first element of seq whose representation contains
// marker and overwrites the element that follows it with value. It returns
// false when the marker is absent or is the last element. On a mapping the
// keys are searched and the value of the following entry is replaced.
func ReplaceAfter(seq *yaml.Node, marker string, value *yaml.Node) bool {
	if m, ok := AsMapping(seq); ok {
		i := m.FindKey(marker)
		if i < 0 || i+1 >= m.Len() {
			return false
		}
		m.Content[2*(i+1)+1] = value
		return true
	}
	if seq == nil || seq.Kind != yaml.SequenceNode {
		return false
	}
	for i, e := range seq.Content {
		if !strings.Contains(Repr(e), marker) {
			continue
		}
		if i+1 >= len(seq.Content) {
			return false
		}
		seq.Content[i+1] = value
		return true
	}
	return false
}

// RewriteKey sets every occurrence of key in n and its nested mappings to a
// copy of value. Sequences are not descended into. It returns n.
func RewriteKey(n *yaml.Node, key string, value *yaml.Node) *yaml.Node {
	m, ok := AsMapping(n)
	if !ok {
		return n
	}
	for i := 1; i < len(m.Content); i += 2 {
		if m.Content[i].Kind == yaml.MappingNode {
			RewriteKey(m.Content[i], key, value)
		}
	}
	if m.Index(key) >= 0 {
		m.Set(key, Clone(value))
	}
	return n
}
