package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func main() {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "nomnom",
		Short: "Try out primitive parsers from the command line",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(opts.verbosity, nil)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().BoolVar(&opts.trace, "trace", false, "log every parser application (needs -vv)")

	rootCmd.AddCommand(newSplitCmd(opts))
	rootCmd.AddCommand(newProbeCmd(opts))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
