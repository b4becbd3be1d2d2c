// Package regionmap loads the per-region image table merged into
// marketplace templates.
package regionmap

import (
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/barracuda-cloudgen-access/marketplace-template/logger"
	"github.com/barracuda-cloudgen-access/marketplace-template/pkg/document"
)

const (
	MappingsKey = "Mappings"
	RegionMap   = "RegionMap"
	ImageIDKey  = "ImageId"
)

// Table is the Mappings section read from the fixture.
type Table struct {
	node *yaml.Node
}

func Load(filename string) (*Table, error) {
	raw, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read mappings %s", filename)
	}
	t, err := Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid mappings %s", filename)
	}
	return t, nil
}

// Parse reads a JSON document holding a Mappings.RegionMap object. Key
// order follows the document.
func Parse(raw []byte) (*Table, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("not valid JSON")
	}
	mappings := gjson.GetBytes(raw, MappingsKey)
	if !mappings.IsObject() {
		return nil, errors.Errorf("%s must be an object", MappingsKey)
	}
	regions := mappings.Get(RegionMap)
	if !regions.IsObject() {
		return nil, errors.Errorf("%s.%s must be an object", MappingsKey, RegionMap)
	}

	node := toNode(mappings)
	logger.Debugf("Mappings declare %d regions", len(document.Mapping{Node: node}.Get(RegionMap).Content)/2)
	return &Table{node: node}, nil
}

// toNode converts a decoded JSON value into a block style YAML node.
func toNode(r gjson.Result) *yaml.Node {
	switch {
	case r.IsObject():
		m := document.NewMapping()
		r.ForEach(func(key, value gjson.Result) bool {
			m.Set(key.String(), toNode(value))
			return true
		})
		return m.Node
	case r.IsArray():
		var items []*yaml.Node
		r.ForEach(func(_, value gjson.Result) bool {
			items = append(items, toNode(value))
			return true
		})
		return document.Sequence(items...)
	}

	switch r.Type {
	case gjson.String:
		return document.String(r.String())
	case gjson.Number:
		tag := "!!int"
		if strings.ContainsAny(r.Raw, ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: r.Raw}
	case gjson.True, gjson.False:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: r.Raw}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// WithImageID rewrites every ImageId entry of the table to id.
func (t *Table) WithImageID(id string) *Table {
	document.RewriteKey(t.node, ImageIDKey, document.String(id))
	return t
}

// Regions lists the regions in declaration order.
func (t *Table) Regions() []string {
	m, _ := document.AsMapping(t.node)
	rm, ok := document.AsMapping(m.Get(RegionMap))
	if !ok {
		return nil
	}
	return rm.Keys()
}

// Node returns the Mappings value to merge into a template.
func (t *Table) Node() *yaml.Node {
	return t.node
}
