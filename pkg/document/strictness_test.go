package document

import (
	"bytes"
	"os"
	"testing"

	"github.com/barracuda-cloudgen-access/marketplace-template/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrictness(t *testing.T) {
	for input, expected := range map[string]Strictness{
		"silent": Silent,
		"warn":   Warn,
		"ERROR":  Strict,
	} {
		s, err := ParseStrictness(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, s)
	}

	_, err := ParseStrictness("loud")
	assert.Error(t, err)
}

func TestStrictnessCheck(t *testing.T) {
	var out bytes.Buffer
	logger.SetOutput(&out, &out)
	defer logger.SetOutput(os.Stdout, os.Stderr)

	assert.NoError(t, Strict.Check(true, "EC2AMI", "Parameters"))

	err := Strict.Check(false, "EC2AMI", "Parameters")
	require.Error(t, err)
	_, ok := err.(*MissingAnchorError)
	assert.True(t, ok)
	assert.Empty(t, out.String())

	assert.NoError(t, Warn.Check(false, "EC2AMI", "Parameters"))
	assert.Contains(t, out.String(), `anchor "EC2AMI" not found in Parameters`)

	out.Reset()
	assert.NoError(t, Silent.Check(false, "EC2AMI", "Parameters"))
	assert.Empty(t, out.String())
}
