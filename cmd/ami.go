package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/barracuda-cloudgen-access/marketplace-template/logger"
)

var (
	cmdAmi = &cobra.Command{
		Use:          "ami",
		Short:        "Print the newest image matching the name filter",
		Long:         ``,
		RunE:         runCmdAmi,
		SilenceUsage: true,
	}

	amiOpts = struct {
		json bool
	}{}
)

func init() {
	RootCmd.AddCommand(cmdAmi)
	cmdAmi.Flags().BoolVar(&amiOpts.json, "json", false, "Print a JSON object instead of the bare image id")
}

func runCmdAmi(cmd *cobra.Command, _ []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	if err := validateRequired(lookupFlags(opts)...); err != nil {
		return err
	}

	images, err := imageSource(opts)
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout(opts)
	defer cancel()

	imageID, err := images.ImageID(ctx)
	if err != nil {
		return fmt.Errorf("Impossible to retrieve the newest image for region %s: %v", opts.Region, err)
	}

	if !amiOpts.json {
		fmt.Println(imageID)
		return nil
	}

	out, err := amiJSON(imageID, opts.Region, opts.NameFilter, opts.Owner)
	if err != nil {
		return err
	}
	logger.Debugf("Image lookup result: %s", out)
	fmt.Println(out)
	return nil
}

func amiJSON(imageID, region, nameFilter, owner string) (string, error) {
	out := "{}"
	var err error
	for _, kv := range []struct{ path, value string }{
		{"imageId", imageID},
		{"region", region},
		{"filter.name", nameFilter},
		{"filter.owner", owner},
	} {
		if out, err = sjson.Set(out, kv.path, kv.value); err != nil {
			return "", err
		}
	}
	return out, nil
}
