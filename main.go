package main

import (
	"os"

	"github.com/barracuda-cloudgen-access/marketplace-template/cmd"
	"github.com/barracuda-cloudgen-access/marketplace-template/logger"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(2)
	}
}
