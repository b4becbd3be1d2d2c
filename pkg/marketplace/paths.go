package marketplace

import (
	"github.com/barracuda-cloudgen-access/marketplace-template/pkg/document"
)

var (
	interfacePath       = document.Path{"Metadata", "AWS::CloudFormation::Interface"}
	parameterGroupsPath = interfacePath.Child("ParameterGroups")
	parameterLabelsPath = interfacePath.Child("ParameterLabels")
	parametersPath      = document.Path{"Parameters"}
	conditionsPath      = document.Path{"Conditions"}
)

// launchResource describes where a template keeps its instance launch
// configuration. Newer templates use a launch template, older ones a
// launch configuration.
type launchResource struct {
	Image    document.Path
	UserData document.Path
}

var launchResources = []launchResource{
	{
		Image:    document.ParsePath("Resources.LaunchTemplate.Properties.LaunchTemplateData.ImageId"),
		UserData: document.ParsePath("Resources.LaunchTemplate.Properties.LaunchTemplateData.UserData"),
	},
	{
		Image:    document.ParsePath("Resources.LaunchConfig.Properties.ImageId"),
		UserData: document.ParsePath("Resources.LaunchConfig.Properties.UserData"),
	},
}

// findLaunchResource returns the first launch resource whose image path
// resolves in root. The error of the preferred layout is returned when none
// does.
func findLaunchResource(root document.Mapping) (launchResource, error) {
	var firstErr error
	for _, r := range launchResources {
		_, err := r.Image.Lookup(root)
		if err == nil {
			return r, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return launchResource{}, firstErr
}
