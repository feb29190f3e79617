package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/desertwitch/nest/internal/codec"
	"github.com/desertwitch/nest/internal/configuration"
	"github.com/desertwitch/nest/internal/filesystem"
	"github.com/desertwitch/nest/internal/pathing"
	"github.com/desertwitch/nest/internal/store"
	"github.com/desertwitch/nest/internal/value"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	root       string
	schemaFile string
	envFile    string
	logLevel   string
	lock       bool
}

// app is the state shared by all subcommands, set up before any of them run.
type app struct {
	settings *configuration.Settings
	store    *store.Store
	osOps    *filesystem.OS
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	a := &app{osOps: &filesystem.OS{}}

	cmd := &cobra.Command{
		Use:   "nest",
		Short: "Read and write values in a schema-routed tree of files",
		Long: `nest maps slash-separated paths onto a tree of JSON, YAML, TOML and HJSON
files described by a schema (by default .nest.json in the root directory).

Reading a directory aggregates all files below it into one object, writing
merges the new value into the existing file contents.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" {
				return nil
			}

			return a.setup(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.root, "root", "", "root directory of the store (default: current directory)")
	flags.StringVar(&opts.schemaFile, "schema", "", "schema file (default: .nest.json in the root)")
	flags.StringVar(&opts.envFile, "env-file", "", "env file with NEST_* settings (default: "+configuration.DefaultEnvFile+" if present)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error (default: "+configuration.DefaultLogLevel+")")
	flags.BoolVar(&opts.lock, "lock", configuration.DefaultLock, "lock directories while writing")

	cmd.AddCommand(
		newGetCmd(a),
		newSetCmd(a),
		newSchemaCmd(a),
		newWatchCmd(a),
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command, opts *rootOptions) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("(nest-setup) failed to get working directory: %w", err)
	}

	overrides := configuration.Overrides{
		Root:       opts.root,
		SchemaFile: opts.schemaFile,
		LogLevel:   opts.logLevel,
		EnvFile:    opts.envFile,
	}
	if cmd.Flags().Changed("lock") {
		overrides.Lock = &opts.lock
	}

	config := configuration.NewHandler(&configuration.GodotenvProvider{}, &configuration.Environment{}, a.osOps)

	a.settings, err = config.Resolve(overrides, workDir)
	if err != nil {
		return err
	}

	setupLogging(cmd.ErrOrStderr(), a.settings.LogLevel)

	fsHandler := filesystem.NewHandler(a.osOps, &filesystem.Unix{})

	a.store, err = store.Open(a.settings.Root, a.settings.SchemaFile, fsHandler, store.WithLocking(a.settings.Lock))
	if err != nil {
		return err
	}

	return nil
}

func lookupCodec(format string) (codec.Codec, error) {
	c, ok := codec.Lookup(strings.ToLower(format))
	if !ok {
		return nil, fmt.Errorf("%w: %q (one of %s)", ErrUnknownFormat, format, strings.Join(codec.IDs(), ", "))
	}

	return c, nil
}

func printValue(w io.Writer, v value.Value, format string) error {
	c, err := lookupCodec(format)
	if err != nil {
		return err
	}

	data, err := c.Encode(v)
	if err != nil {
		return fmt.Errorf("(nest-print) failed to encode as %s: %w", c.ID(), err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("(nest-print) %w", err)
	}

	return nil
}

// pathArg returns the path in args[i], or the empty path when it is absent.
func pathArg(args []string, i int) pathing.Path {
	if len(args) <= i {
		return pathing.Path{}
	}

	return pathing.Parse(args[i])
}
