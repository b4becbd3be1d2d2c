package document

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Document is a parsed template whose mappings keep their key order, comments,
// tags and scalar styles from load to encode.
type Document struct {
	node *yaml.Node
}

func Load(filename string) (*Document, error) {
	raw, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", filename)
	}
	d, err := Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", filename)
	}
	return d, nil
}

func Parse(raw []byte) (*Document, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(raw, &n); err != nil {
		return nil, err
	}
	if n.Kind != yaml.DocumentNode || len(n.Content) == 0 {
		return nil, errors.New("empty yaml document")
	}
	if n.Content[0].Kind != yaml.MappingNode {
		return nil, errors.Errorf("document root must be a mapping, got %s", KindName(n.Content[0]))
	}
	return &Document{node: &n}, nil
}

// Root returns the top level mapping.
func (d *Document) Root() Mapping {
	return Mapping{d.node.Content[0]}
}

// Encode writes the document with two space indentation for mappings and
// sequences indented under their parent key.
func (d *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d.node); err != nil {
		return errors.Wrap(err, "failed to encode document")
	}
	return enc.Close()
}

func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
