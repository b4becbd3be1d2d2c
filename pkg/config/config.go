package config

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/imdario/mergo"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/barracuda-cloudgen-access/marketplace-template/pkg/document"
	"github.com/barracuda-cloudgen-access/marketplace-template/pkg/imagefinder"
)

const (
	DefaultSource     = "templates/aws-cf-asg.yaml"
	DefaultMappings   = "helpers/marketplace-template/mappings.json"
	DefaultOut        = "templates/aws-cf-asg-marketplace.yaml"
	DefaultVariant    = "marketplace"
	DefaultStrictness = "warn"
	DefaultSourceURL  = "https://github.com/barracuda-cloudgen-access/aws-templates"
	DefaultLogGroup   = "/cga/proxy"
	DefaultAWSTimeout = 30 * time.Second
)

// Options configures one generator run. Values come from command line
// flags, an optional config file and the defaults, in that order of
// precedence.
type Options struct {
	Source     string        `yaml:"source,omitempty"`
	Mappings   string        `yaml:"mappings,omitempty"`
	Out        string        `yaml:"out,omitempty"`
	NoCreds    bool          `yaml:"noCreds,omitempty"`
	Variant    string        `yaml:"variant,omitempty"`
	Strictness string        `yaml:"strictness,omitempty"`
	Region     string        `yaml:"region,omitempty"`
	Owner      string        `yaml:"owner,omitempty"`
	NameFilter string        `yaml:"nameFilter,omitempty"`
	SourceURL  string        `yaml:"sourceURL,omitempty"`
	LogGroup   string        `yaml:"logGroup,omitempty"`
	AWSDebug   bool          `yaml:"awsDebug,omitempty"`
	AWSTimeout time.Duration `yaml:"awsTimeout,omitempty"`
}

func Default() Options {
	return Options{
		Source:     DefaultSource,
		Mappings:   DefaultMappings,
		Out:        DefaultOut,
		Variant:    DefaultVariant,
		Strictness: DefaultStrictness,
		Region:     imagefinder.DefaultRegion,
		Owner:      imagefinder.DefaultOwner,
		NameFilter: imagefinder.DefaultNamePattern,
		SourceURL:  DefaultSourceURL,
		LogGroup:   DefaultLogGroup,
		AWSTimeout: DefaultAWSTimeout,
	}
}

func OptionsFromFile(filename string) (Options, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return Options{}, errors.Wrapf(err, "failed to read config")
	}

	o, err := OptionsFromBytes(data)
	if err != nil {
		return Options{}, fmt.Errorf("file %s: %v", filename, err)
	}
	return o, nil
}

// OptionsFromBytes parses a config file. Unknown keys are rejected.
func OptionsFromBytes(data []byte) (Options, error) {
	var o Options
	if err := yaml.UnmarshalStrict(data, &o); err != nil {
		return Options{}, fmt.Errorf("failed to parse config: %v", err)
	}
	return o, nil
}

// Merge fills the zero fields of dst from each layer in turn, so earlier
// layers win, then validates the result.
func Merge(dst *Options, layers ...Options) error {
	for _, layer := range layers {
		if err := mergo.Merge(dst, layer); err != nil {
			return errors.Wrap(err, "failed to merge options")
		}
	}
	return dst.Valid()
}

func (o Options) Valid() error {
	if _, err := document.ParseStrictness(o.Strictness); err != nil {
		return err
	}
	if o.AWSTimeout < 0 {
		return fmt.Errorf("awsTimeout must not be negative, got %s", o.AWSTimeout)
	}
	if o.Source == o.Out {
		return fmt.Errorf("output %s would overwrite the source template", o.Out)
	}
	return nil
}

func (o Options) StrictnessMode() document.Strictness {
	s, _ := document.ParseStrictness(o.Strictness)
	return s
}

func (o Options) Filter() imagefinder.Filter {
	return imagefinder.Filter{NamePattern: o.NameFilter, Owner: o.Owner}
}
