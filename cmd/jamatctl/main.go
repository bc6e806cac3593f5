// Package main is the entry point for the jamat admin CLI.
package main

import (
	"fmt"
	"jamat/config"
	"jamat/di"
	"jamat/internal/cli"
	"jamat/shared/logger"
	"os"
)

func main() {
	logger.InitLogger()
	logger.SetLogLevel(config.Get())

	if err := cli.NewRootCmd(di.InitializeAdmin).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
