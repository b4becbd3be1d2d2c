package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/barracuda-cloudgen-access/marketplace-template/filegen"
	"github.com/barracuda-cloudgen-access/marketplace-template/fingerprint"
	"github.com/barracuda-cloudgen-access/marketplace-template/logger"
	"github.com/barracuda-cloudgen-access/marketplace-template/pkg/config"
	"github.com/barracuda-cloudgen-access/marketplace-template/pkg/diff"
	"github.com/barracuda-cloudgen-access/marketplace-template/pkg/marketplace"
)

var generateOpts = struct {
	diff, dryRun bool
	context      int
}{}

func init() {
	defaults := config.Default()

	flags := RootCmd.Flags()
	flags.StringVar(&flagOpts.Out, "out", defaults.Out, "Output file")
	flags.BoolVar(&flagOpts.NoCreds, "no-creds", false, "Run without AWS credentials, using the placeholder image ami-placeholder")
	flags.StringVar(&flagOpts.Source, "source", defaults.Source, "Base template")
	flags.StringVar(&flagOpts.Mappings, "mappings", defaults.Mappings, "JSON file holding Mappings.RegionMap")
	flags.StringVar(&flagOpts.Variant, "variant", defaults.Variant, fmt.Sprintf("Template variant, one of %v", marketplace.VariantNames()))
	flags.StringVar(&flagOpts.Strictness, "strictness", defaults.Strictness, "What to do when an edit finds no anchor: silent, warn or error")
	flags.StringVar(&flagOpts.SourceURL, "source-url", defaults.SourceURL, "Repository URL written in the output header")
	flags.StringVar(&flagOpts.LogGroup, "log-group", defaults.LogGroup, "CloudWatch Logs group used by the marketplace-cloudwatch variant")
	flags.BoolVar(&generateOpts.diff, "diff", false, "Print the changes against the existing output file")
	flags.IntVar(&generateOpts.context, "context", 3, "Lines of context around each change in --diff output, -1 prints everything")
	flags.BoolVar(&generateOpts.dryRun, "dry-run", false, "Do not write the output file")
}

func runCmdGenerate(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("marketplace-template takes no arguments")
	}

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	logger.Debugf("Resolved options:\n%s", spew.Sdump(opts))

	if err := validateRequired(
		flag{"--source", opts.Source},
		flag{"--mappings", opts.Mappings},
		flag{"--out", opts.Out},
	); err != nil {
		return err
	}

	variant, err := marketplace.LookupVariant(opts.Variant)
	if err != nil {
		return err
	}
	images, err := imageSource(opts)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(opts)
	defer cancel()

	g := &marketplace.Generator{
		Source:     opts.Source,
		Mappings:   opts.Mappings,
		Images:     images,
		Variant:    variant,
		Strictness: opts.StrictnessMode(),
		SourceURL:  opts.SourceURL,
		LogGroup:   opts.LogGroup,
	}
	logger.Headingf("Generating %s template from %s", variant.Name, opts.Source)
	res, err := g.Generate(ctx)
	if err != nil {
		return err
	}

	if generateOpts.diff {
		if err := printDiff(opts.Out, res.Output); err != nil {
			return err
		}
	}

	unchanged, err := fingerprint.Unchanged(opts.Out, res.Output)
	if err != nil {
		return err
	}
	if unchanged {
		logger.Infof("%s is up to date", opts.Out)
		return nil
	}
	if generateOpts.dryRun {
		logger.Infof("Dry run: %s not written", opts.Out)
		return nil
	}

	if err := filegen.WriteAtomic(opts.Out, res.Output, 0644); err != nil {
		return err
	}
	logger.Infof("Wrote %s (sha256 %s)", opts.Out, fingerprint.SHA256(res.Output))
	return nil
}

func printDiff(path string, desired []byte) error {
	current, err := ioutil.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if !diff.Changed(string(current), string(desired)) {
		return nil
	}
	fmt.Print(diff.Text(string(current), string(desired), diff.Options{Context: generateOpts.context, Color: logger.Color}))
	return nil
}
