package main

import (
	"time"

	"github.com/desertwitch/nest/internal/value"
	"github.com/desertwitch/nest/internal/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		format   string
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Print the value at a path each time it changes",
		Long: `Print the value at a slash-separated path, and again each time one of the
files behind it changes. Runs until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := watch.New(a.store, a.osOps, pathArg(args, 0), watch.WithDebounce(debounce))

			return w.Run(cmd.Context(), func(v value.Value) error {
				return printValue(cmd.OutOrStdout(), v, format)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format")
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period after a change before reading again")

	return cmd
}
