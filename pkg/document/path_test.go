package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const launchTemplate = `
Resources:
  LaunchTemplate:
    Type: AWS::EC2::LaunchTemplate
    Properties:
      LaunchTemplateData:
        ImageId: !Ref EC2AMI
        Tags: [a, b]
`

func TestPathLookup(t *testing.T) {
	root := mustMapping(t, launchTemplate)

	n, err := ParsePath("Resources.LaunchTemplate.Properties.LaunchTemplateData.ImageId").Lookup(root)
	require.NoError(t, err)
	assert.Equal(t, "!Ref", n.Tag)
	assert.Equal(t, "EC2AMI", n.Value)
}

func TestPathErrorsNameTheFailingSegment(t *testing.T) {
	root := mustMapping(t, launchTemplate)

	_, err := ParsePath("Resources.LaunchConfig.Properties.ImageId").Lookup(root)
	require.Error(t, err)
	perr, ok := err.(*PathError)
	require.True(t, ok)
	assert.Equal(t, 1, perr.Segment)
	assert.Contains(t, err.Error(), `"Resources.LaunchConfig"`)

	_, err = ParsePath("Resources.LaunchTemplate.Type.Nested").Lookup(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a mapping")

	_, err = ParsePath("Resources.LaunchTemplate.Properties.LaunchTemplateData.Tags").Mapping(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sequence")
}

func TestPathSet(t *testing.T) {
	root := mustMapping(t, launchTemplate)
	p := ParsePath("Resources.LaunchTemplate.Properties.LaunchTemplateData.ImageId")

	require.NoError(t, p.Set(root, String("ami-123")))
	n, err := p.Lookup(root)
	require.NoError(t, err)
	assert.Equal(t, "ami-123", n.Value)

	err = ParsePath("Resources.LaunchTemplate.Properties.LaunchTemplateData.Missing").Set(root, String("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key not found")
}

func TestPathDelete(t *testing.T) {
	root := mustMapping(t, launchTemplate)

	require.NoError(t, ParsePath("Resources.LaunchTemplate.Type").Delete(root))
	lt, err := ParsePath("Resources.LaunchTemplate").Mapping(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"Properties"}, lt.Keys())

	assert.Error(t, ParsePath("Resources.LaunchTemplate.Type").Delete(root))
	assert.Error(t, Path{}.Delete(root))
}

func TestPathChildDoesNotAlias(t *testing.T) {
	base := make(Path, 1, 4)
	base[0] = "Resources"
	a := base.Child("A")
	b := base.Child("B")

	assert.Equal(t, "Resources.A", a.String())
	assert.Equal(t, "Resources.B", b.String())
}
