package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/desertwitch/nest/internal/value"
	"github.com/spf13/cobra"
)

type setOptions struct {
	format string
	raw    bool
}

func newSetCmd(a *app) *cobra.Command {
	opts := &setOptions{}

	cmd := &cobra.Command{
		Use:   "set <path> [value]",
		Short: "Set the value at a path",
		Long: `Set the value at a slash-separated path. The value is read from the
argument, or from standard input without one.

The value is merged into the existing file: keys next to the written one are
kept, missing objects on the way are created.`,
		Example: `  nest set hello/world/greeting '"hi"'
  nest set hello/there --format yaml < there.yaml
  nest set notes/title --string 'Shopping list'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := readValue(cmd.InOrStdin(), args, opts)
			if err != nil {
				return err
			}

			return a.store.Set(pathArg(args, 0), v)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "input format")
	cmd.Flags().BoolVar(&opts.raw, "string", false, "store the input as a plain string")

	return cmd
}

func readValue(stdin io.Reader, args []string, opts *setOptions) (value.Value, error) {
	var data []byte

	if len(args) > 1 {
		data = []byte(args[1])
	} else {
		input, err := io.ReadAll(stdin)
		if err != nil {
			return value.Value{}, fmt.Errorf("(nest-set) failed to read input: %w", err)
		}
		if len(bytes.TrimSpace(input)) == 0 {
			return value.Value{}, ErrNoValue
		}
		data = input
	}

	if opts.raw {
		return value.String(string(bytes.TrimSuffix(data, []byte("\n")))), nil
	}

	c, err := lookupCodec(opts.format)
	if err != nil {
		return value.Value{}, err
	}

	v, err := c.Decode(data)
	if err != nil {
		return value.Value{}, fmt.Errorf("(nest-set) failed to parse value as %s: %w", c.ID(), err)
	}

	return v, nil
}
