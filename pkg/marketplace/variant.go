package marketplace

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/barracuda-cloudgen-access/marketplace-template/builtin"
	"github.com/barracuda-cloudgen-access/marketplace-template/filereader/texttemplate"
	"github.com/barracuda-cloudgen-access/marketplace-template/filereader/yamltemplate"
)

// Variant is a flavour of the marketplace template. Every variant gets the
// common edits; Extra runs after them.
type Variant struct {
	Name    string
	Summary string
	Extra   func(e *editor, s Snippets) error
}

// Snippets holds the values substituted into the builtin snippet templates.
type Snippets struct {
	Parameter string
	Condition string
	LogGroup  string
	Script    string
}

const (
	CloudWatchParameter = "CloudWatchLogs"
	CloudWatchCondition = "HasCloudWatchLogs"
	CloudWatchMarker    = "# marketplace:cloudwatch-agent"

	instanceTypeAnchor = "EC2InstanceType"
	keyNameAnchor      = "KeyName"
)

var variants = map[string]*Variant{
	"marketplace": {
		Name:    "marketplace",
		Summary: "region mapped Amazon Linux 2 image, EC2AMI parameter removed",
	},
	"marketplace-cloudwatch": {
		Name:    "marketplace-cloudwatch",
		Summary: "marketplace plus an optional CloudWatch Logs agent",
		Extra:   addCloudWatchLogs,
	},
}

func LookupVariant(name string) (*Variant, error) {
	v, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("unknown variant %q: expected one of %s", name, strings.Join(VariantNames(), ", "))
	}
	return v, nil
}

func VariantNames() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func snippet(path string, s Snippets) (*yaml.Node, error) {
	raw, err := builtin.MustString(path)
	if err != nil {
		return nil, err
	}
	n, err := yamltemplate.GetNode(path, raw, s)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render %s", path)
	}
	return n, nil
}

func addCloudWatchLogs(e *editor, s Snippets) error {
	s.Parameter = CloudWatchParameter
	s.Condition = CloudWatchCondition

	raw, err := builtin.MustString(builtin.CloudWatchAgentScriptTmpl)
	if err != nil {
		return err
	}
	s.Script, err = texttemplate.GetString(builtin.CloudWatchAgentScriptTmpl, raw, s)
	if err != nil {
		return errors.Wrapf(err, "failed to render %s", builtin.CloudWatchAgentScriptTmpl)
	}

	parameter, err := snippet(builtin.CloudWatchParameterTmpl, s)
	if err != nil {
		return err
	}
	label, err := snippet(builtin.CloudWatchLabelTmpl, s)
	if err != nil {
		return err
	}
	condition, err := snippet(builtin.CloudWatchConditionTmpl, s)
	if err != nil {
		return err
	}
	agent, err := snippet(builtin.CloudWatchAgentTmpl, s)
	if err != nil {
		return err
	}

	if err := e.insertAfter(parametersPath, instanceTypeAnchor, CloudWatchParameter, parameter); err != nil {
		return err
	}
	if err := e.addToParameterGroups(instanceTypeAnchor, CloudWatchParameter); err != nil {
		return err
	}
	if err := e.insertAfter(parameterLabelsPath, instanceTypeAnchor, CloudWatchParameter, label); err != nil {
		return err
	}
	if err := e.insertAfter(conditionsPath, keyNameAnchor, CloudWatchCondition, condition); err != nil {
		return err
	}
	return e.graftScript(CloudWatchMarker, agent)
}
