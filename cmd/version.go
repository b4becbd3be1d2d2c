package cmd

import (
	"github.com/spf13/cobra"

	"github.com/barracuda-cloudgen-access/marketplace-template/logger"
	"github.com/barracuda-cloudgen-access/marketplace-template/pkg/marketplace"
)

var cmdVersion = &cobra.Command{
	Use:   "version",
	Short: "Print version information and the available variants",
	Long:  ``,
	Run:   runCmdVersion,
}

func init() {
	RootCmd.AddCommand(cmdVersion)
}

func runCmdVersion(_ *cobra.Command, _ []string) {
	logger.Infof("marketplace-template version %s", marketplace.VERSION)
	for _, name := range marketplace.VariantNames() {
		v, _ := marketplace.LookupVariant(name)
		logger.Infof("  %-24s %s", v.Name, v.Summary)
	}
}
