package main

import (
	"github.com/spf13/cobra"
)

func newGetCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "get [path]",
		Short: "Print the value at a path",
		Long: `Print the value at a slash-separated path, or the whole store without a path.

A path naming a directory prints all files below it as one object, a path
below a file prints the value at the remaining keys.`,
		Example: `  nest get
  nest get hello/world
  nest get hello/world/greeting --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.store.Get(pathArg(args, 0))
			if err != nil {
				return err
			}

			return printValue(cmd.OutOrStdout(), v, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format")

	return cmd
}
