package marketplace

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/barracuda-cloudgen-access/marketplace-template/logger"
	"github.com/barracuda-cloudgen-access/marketplace-template/pkg/document"
	"github.com/barracuda-cloudgen-access/marketplace-template/pkg/regionmap"
)

const (
	DescriptionSuffix = " for AWS Marketplace"
	ObsoleteParameter = "EC2AMI"

	// MappingsIndex is the key position of Mappings in the generated
	// template, right after the Conditions section of the base template.
	MappingsIndex = 5
)

// editor applies edits to one document under a strictness policy.
type editor struct {
	doc        *document.Document
	strictness document.Strictness
}

func (e *editor) root() document.Mapping {
	return e.doc.Root()
}

// mapping resolves p, turning a path miss into an anchor miss.
func (e *editor) mapping(p document.Path) (document.Mapping, bool, error) {
	m, err := p.Mapping(e.root())
	if err == nil {
		return m, true, nil
	}
	return document.Mapping{}, false, e.strictness.Check(false, p[len(p)-1], p.String())
}

func (e *editor) appendDescriptionSuffix() error {
	n := e.root().Get("Description")
	if n == nil {
		return e.strictness.Check(false, "Description", "template root")
	}
	if n.Kind != yaml.ScalarNode {
		return errors.Errorf("Description is a %s, not a string", document.KindName(n))
	}
	n.Value += DescriptionSuffix
	return nil
}

func (e *editor) mergeMappings(table *regionmap.Table) {
	e.root().Insert(MappingsIndex, regionmap.MappingsKey, table.Node())
	logger.Debugf("Merged %s for regions %v", regionmap.MappingsKey, table.Regions())
}

// findInMapImage is the image reference looked up per region from the
// merged mappings.
const findInMapImage = `
Fn::FindInMap:
  - RegionMap
  - Ref: AWS::Region
  - ImageId
`

func (e *editor) useRegionMapImage() error {
	r, err := findLaunchResource(e.root())
	if err != nil {
		return errors.Wrap(err, "failed to locate the launch resource")
	}
	ref, err := document.Fragment(findInMapImage)
	if err != nil {
		return err
	}
	logger.Debugf("Pointing %s at the region map", r.Image)
	return r.Image.Set(e.root(), ref)
}

func (e *editor) removeObsoleteParameter(name string) error {
	if groups, err := parameterGroupsPath.Sequence(e.root()); err == nil {
		removed := document.RemoveFromGroups(groups, "Parameters", name)
		if err := e.strictness.Check(removed > 0, name, parameterGroupsPath.String()); err != nil {
			return err
		}
	} else if err := e.strictness.Check(false, name, parameterGroupsPath.String()); err != nil {
		return err
	}

	for _, p := range []document.Path{parameterLabelsPath, parametersPath} {
		m, ok, err := e.mapping(p)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := e.strictness.Check(m.Delete(name), name, p.String()); err != nil {
			return err
		}
	}
	return nil
}

// insertAfter adds key after the first key of the mapping at p containing
// anchor.
func (e *editor) insertAfter(p document.Path, anchor, key string, value *yaml.Node) error {
	m, ok, err := e.mapping(p)
	if err != nil || !ok {
		return err
	}
	return e.strictness.Check(m.InsertAfter(anchor, key, value), anchor, p.String())
}

// addToParameterGroups appends parameter to every group listing a
// parameter containing anchor.
func (e *editor) addToParameterGroups(anchor, parameter string) error {
	groups, err := parameterGroupsPath.Sequence(e.root())
	if err != nil {
		return e.strictness.Check(false, anchor, parameterGroupsPath.String())
	}
	n := document.AppendToGroups(groups, "Parameters", anchor, document.String(parameter))
	return e.strictness.Check(n > 0, anchor, parameterGroupsPath.String())
}

// graftScript replaces the script fragment following marker in the launch
// resource user data.
func (e *editor) graftScript(marker string, fragment *yaml.Node) error {
	r, err := findLaunchResource(e.root())
	if err != nil {
		return errors.Wrap(err, "failed to locate the launch resource")
	}
	userData, err := r.UserData.Lookup(e.root())
	if err != nil {
		return e.strictness.Check(false, marker, r.UserData.String())
	}
	lines, err := scriptLines(userData)
	if err != nil {
		return errors.Wrapf(err, "%s", r.UserData)
	}
	return e.strictness.Check(document.ReplaceAfter(lines, marker, fragment), marker, r.UserData.String())
}
