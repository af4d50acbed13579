// fixedid CLI - command-line tool for fixed-width identifier generation and
// inspection.
//
// Usage:
//
//	fixedid new [flags]              Generate identifiers
//	fixedid parse <value>            Inspect an identifier of any width
//	fixedid convert <value> <format> Re-encode an identifier
//	fixedid layout                   Show the supported widths
//	fixedid version                  Show version information
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

// envSource overrides the default random source for `fixedid new`.
const envSource = "FIXEDID_SOURCE"

type rootOptions struct {
	debug bool
}

func newRootCommand() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "fixedid",
		Short:         "Generate and inspect fixed-width random identifiers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "D", false, "Enable debug logging")

	cmd.AddCommand(
		newNewCommand(),
		newParseCommand(),
		newConvertCommand(),
		newLayoutCommand(),
		newVersionCommand(),
	)
	return cmd
}

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := newRootCommand().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
