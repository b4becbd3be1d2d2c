package cmd

import (
	"github.com/spf13/cobra"

	"github.com/barracuda-cloudgen-access/marketplace-template/logger"
	"github.com/barracuda-cloudgen-access/marketplace-template/pkg/config"
)

var (
	RootCmd = &cobra.Command{
		Use:               "marketplace-template",
		Short:             "Create the AWS Marketplace template from aws-cf-asg.yaml",
		Long:              ``,
		RunE:              runCmdGenerate,
		PersistentPreRunE: configureLogger,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	configPath string

	// flagOpts receives every flag value. Only flags set on the command
	// line take precedence over the config file.
	flagOpts = config.Options{}

	logOpts = struct {
		verbose, silent, color bool
	}{}
)

func init() {
	defaults := config.Default()

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Optional YAML file providing defaults for any flag")
	flags.StringVar(&flagOpts.Region, "region", defaults.Region, "AWS region to query for images")
	flags.StringVar(&flagOpts.Owner, "owner", defaults.Owner, "Owner of the images to consider")
	flags.StringVar(&flagOpts.NameFilter, "name-filter", defaults.NameFilter, "Image name pattern")
	flags.BoolVar(&flagOpts.AWSDebug, "aws-debug", false, "Log debug information from aws-sdk-go library")
	flags.DurationVar(&flagOpts.AWSTimeout, "aws-timeout", defaults.AWSTimeout, "Give up on the image catalog after this long, 0 waits forever")
	flags.BoolVar(&logOpts.verbose, "verbose", false, "Print debug messages")
	flags.BoolVar(&logOpts.silent, "silent", false, "Print warnings and errors only")
	flags.BoolVar(&logOpts.color, "color", false, "Colorize output")
}

func configureLogger(_ *cobra.Command, _ []string) error {
	logger.Verbose = logOpts.verbose
	logger.Silent = logOpts.silent
	logger.Color = logOpts.color
	return nil
}

// resolveOptions layers the flags set on the command line over the config
// file and the defaults.
func resolveOptions(cmd *cobra.Command) (config.Options, error) {
	opts := changedOptions(cmd, flagOpts)

	var fromFile config.Options
	if configPath != "" {
		var err error
		if fromFile, err = config.OptionsFromFile(configPath); err != nil {
			return config.Options{}, err
		}
	}

	if err := config.Merge(&opts, fromFile, config.Default()); err != nil {
		return config.Options{}, err
	}
	keepZeroFlags(cmd, &opts)
	return opts, nil
}

// keepZeroFlags restores flags explicitly set to false or 0, which the merge
// treats as unset.
func keepZeroFlags(cmd *cobra.Command, opts *config.Options) {
	flags := cmd.Flags()
	if flags.Changed("no-creds") {
		opts.NoCreds = flagOpts.NoCreds
	}
	if flags.Changed("aws-debug") {
		opts.AWSDebug = flagOpts.AWSDebug
	}
	if flags.Changed("aws-timeout") {
		opts.AWSTimeout = flagOpts.AWSTimeout
	}
}

func changedOptions(cmd *cobra.Command, all config.Options) config.Options {
	flags := cmd.Flags()
	var o config.Options
	if flags.Changed("source") {
		o.Source = all.Source
	}
	if flags.Changed("mappings") {
		o.Mappings = all.Mappings
	}
	if flags.Changed("out") {
		o.Out = all.Out
	}
	if flags.Changed("no-creds") {
		o.NoCreds = all.NoCreds
	}
	if flags.Changed("variant") {
		o.Variant = all.Variant
	}
	if flags.Changed("strictness") {
		o.Strictness = all.Strictness
	}
	if flags.Changed("source-url") {
		o.SourceURL = all.SourceURL
	}
	if flags.Changed("log-group") {
		o.LogGroup = all.LogGroup
	}
	if flags.Changed("region") {
		o.Region = all.Region
	}
	if flags.Changed("owner") {
		o.Owner = all.Owner
	}
	if flags.Changed("name-filter") {
		o.NameFilter = all.NameFilter
	}
	if flags.Changed("aws-debug") {
		o.AWSDebug = all.AWSDebug
	}
	if flags.Changed("aws-timeout") {
		o.AWSTimeout = all.AWSTimeout
	}
	return o
}

func lookupFlags(opts config.Options) []flag {
	return []flag{
		{"--region", opts.Region},
		{"--owner", opts.Owner},
		{"--name-filter", opts.NameFilter},
	}
}
