package marketplace

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/barracuda-cloudgen-access/marketplace-template/pkg/document"
)

// intrinsic returns the argument of a CloudFormation intrinsic function
// written either in long form ({Fn::Join: [...]}) or with a short tag
// (!Join [...]).
func intrinsic(n *yaml.Node, name string) (*yaml.Node, bool) {
	if n == nil {
		return nil, false
	}
	if n.Tag == "!"+name {
		return n, true
	}
	m, ok := document.AsMapping(n)
	if !ok || m.Len() != 1 {
		return nil, false
	}
	arg := m.Get("Fn::" + name)
	return arg, arg != nil
}

// scriptLines returns the list of script fragments of a user data block of
// the form Fn::Base64(Fn::Join(delimiter, [fragments...])).
func scriptLines(userData *yaml.Node) (*yaml.Node, error) {
	encoded, ok := intrinsic(userData, "Base64")
	if !ok {
		return nil, errors.New("user data is not wrapped in Fn::Base64")
	}
	joined, ok := intrinsic(encoded, "Join")
	if !ok {
		return nil, errors.New("user data is not built with Fn::Join")
	}
	if joined.Kind != yaml.SequenceNode || len(joined.Content) != 2 {
		return nil, errors.Errorf("Fn::Join takes a delimiter and a list, got a %s of %d items", document.KindName(joined), len(joined.Content))
	}
	lines := joined.Content[1]
	if lines.Kind != yaml.SequenceNode {
		return nil, errors.Errorf("Fn::Join list is a %s, not a sequence", document.KindName(lines))
	}
	return lines, nil
}
