package cmd

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/barracuda-cloudgen-access/marketplace-template/logger"
	"github.com/barracuda-cloudgen-access/marketplace-template/pkg/config"
	"github.com/barracuda-cloudgen-access/marketplace-template/pkg/imagefinder"
	"github.com/barracuda-cloudgen-access/marketplace-template/pkg/marketplace"
)

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, validateRequired(flag{"--region", "us-east-1"}))

	err := validateRequired(
		flag{"--region", ""},
		flag{"--owner", "amazon"},
		flag{"--name-filter", ""},
	)
	require.Error(t, err)
	assert.Equal(t, `Missing required flag(s): "--region", "--name-filter"`, err.Error())
}

func TestAmiJSON(t *testing.T) {
	out, err := amiJSON("ami-0123", "eu-west-1", "amzn2-ami-hvm*", "amazon")
	require.NoError(t, err)

	assert.Equal(t, "ami-0123", gjson.Get(out, "imageId").String())
	assert.Equal(t, "eu-west-1", gjson.Get(out, "region").String())
	assert.Equal(t, "amzn2-ami-hvm*", gjson.Get(out, "filter.name").String())
	assert.Equal(t, "amazon", gjson.Get(out, "filter.owner").String())
}

func TestImageSourceWithoutCredentials(t *testing.T) {
	opts := config.Default()
	opts.NoCreds = true

	src, err := imageSource(opts)
	require.NoError(t, err)
	assert.Equal(t, imagefinder.Static(imagefinder.PlaceholderImageID), src)
}

func TestGenerateWithoutCredentials(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "nested", "aws-cf-asg-marketplace.yaml")
	testdata := filepath.Join("..", "pkg", "marketplace", "testdata")

	RootCmd.SetArgs([]string{
		"--no-creds",
		"--source", filepath.Join(testdata, "aws-cf-asg.yaml"),
		"--mappings", filepath.Join(testdata, "mappings.json"),
		"--out", out,
		"--strictness", "error",
		"--silent",
	})
	require.NoError(t, RootCmd.Execute())

	data, err := ioutil.ReadFile(out)
	require.NoError(t, err)
	rendered := string(data)

	assert.True(t, strings.HasPrefix(rendered, "# This file is auto-generated. Manual changes will be lost.\n# "+config.DefaultSourceURL+"\n---\n"))
	assert.Contains(t, rendered, "for AWS Marketplace")
	assert.Contains(t, rendered, "ImageId: "+imagefinder.PlaceholderImageID)
	assert.NotContains(t, rendered, "EC2AMI")

	entries, err := ioutil.ReadDir(filepath.Dir(out))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestCheckCredentialsSuggestsNoCreds(t *testing.T) {
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String("us-east-1"),
		Credentials: credentials.NewStaticCredentials("", "", ""),
	})
	require.NoError(t, err)

	err = checkCredentials(sess)
	require.Error(t, err)
	assert.IsType(t, &imagefinder.CredentialError{}, err)
	assert.Contains(t, err.Error(), "--no-creds")
}

func TestExplicitFalseFlagsOverrideConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, ioutil.WriteFile(file, []byte("noCreds: true\nawsDebug: true\nawsTimeout: 1m\n"), 0644))
	defer func() { configPath = "" }()

	require.NoError(t, RootCmd.ParseFlags([]string{
		"--config", file,
		"--no-creds=false",
		"--aws-timeout", "0s",
	}))

	opts, err := resolveOptions(RootCmd)
	require.NoError(t, err)
	assert.False(t, opts.NoCreds)
	assert.Equal(t, time.Duration(0), opts.AWSTimeout)
	assert.True(t, opts.AWSDebug, "unset flags still take the config file value")
}

func TestVersionListsVariants(t *testing.T) {
	var out bytes.Buffer
	logger.SetOutput(&out, &out)
	defer logger.SetOutput(os.Stdout, os.Stderr)
	logger.Silent = false

	runCmdVersion(cmdVersion, nil)

	assert.Contains(t, out.String(), "marketplace-template version "+marketplace.VERSION)
	for _, name := range marketplace.VariantNames() {
		assert.Contains(t, out.String(), name)
	}
}
