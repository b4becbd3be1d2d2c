package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const parameterGroups = `
- Label: {default: Proxy}
  Parameters: [CGAProxyToken, CGAProxyLogLevel]
- Label: {default: Instance}
  Parameters: [EC2AMI, EC2InstanceType, EC2KeyName]
- Label: {default: Scaling}
  Parameters: [ASGMinSize, EC2InstanceTypeFallback]
`

func groupParameters(t *testing.T, groups *yaml.Node) [][]string {
	t.Helper()
	var out [][]string
	for _, g := range groups.Content {
		m, ok := AsMapping(g)
		require.True(t, ok)
		var params []string
		for _, p := range m.Get("Parameters").Content {
			params = append(params, p.Value)
		}
		out = append(out, params)
	}
	return out
}

func TestAppendToGroupsFansOut(t *testing.T) {
	groups, err := Fragment(parameterGroups)
	require.NoError(t, err)

	n := AppendToGroups(groups, "Parameters", "EC2InstanceType", String("CloudWatchLogs"))

	assert.Equal(t, 2, n)
	assert.Equal(t, [][]string{
		{"CGAProxyToken", "CGAProxyLogLevel"},
		{"EC2AMI", "EC2InstanceType", "EC2KeyName", "CloudWatchLogs"},
		{"ASGMinSize", "EC2InstanceTypeFallback", "CloudWatchLogs"},
	}, groupParameters(t, groups))
}

func TestAppendToGroupsAppendsOncePerMatchingElement(t *testing.T) {
	groups, err := Fragment(`[{Parameters: [EC2A, EC2B]}]`)
	require.NoError(t, err)

	n := AppendToGroups(groups, "Parameters", "EC2", String("X"))

	assert.Equal(t, 2, n)
	assert.Equal(t, [][]string{{"EC2A", "EC2B", "X", "X"}}, groupParameters(t, groups))
}

func TestAppendToGroupsNoMatch(t *testing.T) {
	groups, err := Fragment(parameterGroups)
	require.NoError(t, err)

	assert.Equal(t, 0, AppendToGroups(groups, "Parameters", "Missing", String("X")))
	assert.Equal(t, 0, AppendToGroups(String("scalar"), "Parameters", "EC2", String("X")))
}

func TestRemoveFromGroups(t *testing.T) {
	groups, err := Fragment(parameterGroups)
	require.NoError(t, err)

	n := RemoveFromGroups(groups, "Parameters", "EC2AMI")

	assert.Equal(t, 1, n)
	assert.Equal(t, [][]string{
		{"CGAProxyToken", "CGAProxyLogLevel"},
		{"EC2InstanceType", "EC2KeyName"},
		{"ASGMinSize", "EC2InstanceTypeFallback"},
	}, groupParameters(t, groups))
}

func TestReplaceAfter(t *testing.T) {
	seq, err := Fragment(`["#!/bin/bash\n", "# marker\n", "old line\n", "tail\n"]`)
	require.NoError(t, err)

	require.True(t, ReplaceAfter(seq, "# marker", String("new line\n")))

	var got []string
	for _, e := range seq.Content {
		got = append(got, e.Value)
	}
	assert.Equal(t, []string{"#!/bin/bash\n", "# marker\n", "new line\n", "tail\n"}, got)
}

func TestReplaceAfterMarkerMissingOrLast(t *testing.T) {
	seq, err := Fragment(`["a", "b", "# marker"]`)
	require.NoError(t, err)

	assert.False(t, ReplaceAfter(seq, "# marker", String("x")))
	assert.False(t, ReplaceAfter(seq, "absent", String("x")))
	assert.Equal(t, "# marker", seq.Content[2].Value)
}

func TestReplaceAfterOnMapping(t *testing.T) {
	m := mustMapping(t, "{first: 1, marker-here: 2, target: 3}")

	require.True(t, ReplaceAfter(m.Node, "marker", String("replaced")))
	assert.Equal(t, "replaced", m.Get("target").Value)
	assert.Equal(t, []string{"first", "marker-here", "target"}, m.Keys())
}

func TestRewriteKey(t *testing.T) {
	m := mustMapping(t, `
ImageId: top
Mappings:
  RegionMap:
    us-east-1: {ImageId: ami-x}
    eu-west-1: {ImageId: ami-y}
List:
  - ImageId: untouched
`)

	RewriteKey(m.Node, "ImageId", String("ami-new"))

	region, err := ParsePath("Mappings.RegionMap").Mapping(m)
	require.NoError(t, err)
	for _, r := range region.Keys() {
		inner, _ := AsMapping(region.Get(r))
		assert.Equal(t, "ami-new", inner.Get("ImageId").Value, r)
	}
	assert.Equal(t, "ami-new", m.Get("ImageId").Value)
	assert.Equal(t, "untouched", m.Get("List").Content[0].Content[1].Value)
}

func TestRewriteKeyIsIdempotent(t *testing.T) {
	once := mustMapping(t, `{Mappings: {RegionMap: {us-east-1: {ImageId: placeholder}}}}`)
	twice := mustMapping(t, `{Mappings: {RegionMap: {us-east-1: {ImageId: placeholder}}}}`)

	RewriteKey(once.Node, "ImageId", String("ami-1"))
	RewriteKey(twice.Node, "ImageId", String("ami-1"))
	RewriteKey(twice.Node, "ImageId", String("ami-1"))

	a, err := yaml.Marshal(once.Node)
	require.NoError(t, err)
	b, err := yaml.Marshal(twice.Node)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}
