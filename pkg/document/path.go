package document

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Path addresses a node by the chain of mapping keys leading to it.
type Path []string

// ParsePath splits a dotted path. CloudFormation keys never contain dots.
func ParsePath(s string) Path {
	if s == "" {
		return Path{}
	}
	return Path(strings.Split(s, "."))
}

func (p Path) String() string {
	return strings.Join(p, ".")
}

// Child returns a new path with key appended.
func (p Path) Child(key string) Path {
	c := make(Path, 0, len(p)+1)
	c = append(c, p...)
	return append(c, key)
}

// Lookup resolves p starting at root. The returned PathError names the first
// segment that could not be resolved.
func (p Path) Lookup(root Mapping) (*yaml.Node, error) {
	cur := root.Node
	for i, key := range p {
		m, ok := AsMapping(cur)
		if !ok {
			return nil, &PathError{Path: p, Segment: i, Reason: "parent is a " + KindName(cur) + ", not a mapping"}
		}
		next := m.Get(key)
		if next == nil {
			return nil, &PathError{Path: p, Segment: i, Reason: "key not found"}
		}
		cur = next
	}
	return cur, nil
}

// Mapping resolves p and requires the target to be a mapping.
func (p Path) Mapping(root Mapping) (Mapping, error) {
	n, err := p.Lookup(root)
	if err != nil {
		return Mapping{}, err
	}
	m, ok := AsMapping(n)
	if !ok {
		return Mapping{}, &PathError{Path: p, Segment: len(p) - 1, Reason: "is a " + KindName(n) + ", not a mapping"}
	}
	return m, nil
}

// Sequence resolves p and requires the target to be a sequence.
func (p Path) Sequence(root Mapping) (*yaml.Node, error) {
	n, err := p.Lookup(root)
	if err != nil {
		return nil, err
	}
	if n.Kind != yaml.SequenceNode {
		return nil, &PathError{Path: p, Segment: len(p) - 1, Reason: "is a " + KindName(n) + ", not a sequence"}
	}
	return n, nil
}

// Set replaces the value at p. The parent must exist; the last key must
// already be present so that a typo cannot silently add a new entry.
func (p Path) Set(root Mapping, value *yaml.Node) error {
	if len(p) == 0 {
		return &PathError{Path: p, Reason: "empty path"}
	}
	parent, err := p[:len(p)-1].Mapping(root)
	if err != nil {
		return err
	}
	last := p[len(p)-1]
	if parent.Index(last) < 0 {
		return &PathError{Path: p, Segment: len(p) - 1, Reason: "key not found"}
	}
	parent.Set(last, value)
	return nil
}

// Delete removes the entry at p.
func (p Path) Delete(root Mapping) error {
	if len(p) == 0 {
		return &PathError{Path: p, Reason: "empty path"}
	}
	parent, err := p[:len(p)-1].Mapping(root)
	if err != nil {
		return err
	}
	if !parent.Delete(p[len(p)-1]) {
		return &PathError{Path: p, Segment: len(p) - 1, Reason: "key not found"}
	}
	return nil
}
