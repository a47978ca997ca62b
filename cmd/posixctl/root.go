package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newRootCommand(stdin io.Reader, stdout io.Writer) *cobra.Command {
	app := NewApp(stdin, stdout)

	rootCmd := &cobra.Command{
		Use:           "posixctl",
		Short:         "Single POSIX filesystem calls from the command line",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup()
		},
	}

	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&app.flags.configFile, "config", "c", "", "read settings from this KEY=value file")
	flags.StringVarP(&app.flags.output, "output", "o", "", "output format: text, json or yaml")
	flags.BoolVar(&app.flags.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		getCmdStat(app),
		getCmdChown(app),
		getCmdChmod(app),
		getCmdMknod(app),
		getCmdMkfifo(app),
		getCmdSymlink(app),
		getCmdLink(app),
		getCmdReadlink(app),
		getCmdUtime(app),
		getCmdMkdir(app),
		getCmdRemove(app),
		getCmdRename(app),
		getCmdCrypt(app),
		getCmdMktemp(app),
		getCmdAddEntropy(app),
		getCmdEntropy(app),
		getCmdRandom(app),
		getCmdCopy(app),
		getCmdCmp(app),
	)

	return rootCmd
}
