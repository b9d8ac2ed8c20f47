package cmd

import (
	"fmt"
	"os"

	"github.com/stevetowers08/leadflow-sub006/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "leadflow",
	Short: "LeadFlow Import Service",
	Long: `LeadFlow ingests CRM lead exports in bulk.
It validates, deduplicates and commits delimited-text uploads over HTTP or
straight from the command line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format here: command failures are read by a human at a
		// terminal, not by a log shipper.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
