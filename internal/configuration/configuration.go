// Package configuration resolves the settings of the nest command from
// command line flags, the process environment and env files.
package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/desertwitch/nest/internal/codec"
)

const (
	KeyRoot     = "NEST_ROOT"
	KeySchema   = "NEST_SCHEMA"
	KeyLogLevel = "NEST_LOG_LEVEL"
	KeyLock     = "NEST_LOCK"

	DefaultEnvFile    = ".nest.env"
	DefaultSchemaBase = ".nest"
	DefaultSchemaFile = DefaultSchemaBase + ".json"
	DefaultLogLevel   = "warn"
	DefaultLock       = true
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

type environmentProvider interface {
	LookupEnv(key string) (string, bool)
}

type osProvider interface {
	Stat(name string) (os.FileInfo, error)
}

// Overrides are settings given on the command line. Empty strings and a nil
// Lock are unset.
type Overrides struct {
	Root       string
	SchemaFile string
	LogLevel   string
	EnvFile    string
	Lock       *bool
}

// Settings are the resolved settings.
type Settings struct {
	Root       string
	SchemaFile string
	LogLevel   slog.Level
	Lock       bool
}

// Handler is the principal implementation for the configuration services.
type Handler struct {
	GenericHandler genericConfigProvider
	EnvHandler     environmentProvider
	OSHandler      osProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(genericHandler genericConfigProvider, envHandler environmentProvider, osHandler osProvider) *Handler {
	return &Handler{
		GenericHandler: genericHandler,
		EnvHandler:     envHandler,
		OSHandler:      osHandler,
	}
}

func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.GenericHandler.Read(filenames...)
}

func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// Resolve returns the settings with the precedence command line, process
// environment, env file, defaults. Relative paths are taken relative to
// workDir. An explicitly given env file has to exist, the default one
// ([DefaultEnvFile] in workDir) is optional. Without a configured schema file
// the first existing of .nest.json, .nest.hjson, .nest.toml and .nest.yaml in
// the root is used, falling back to [DefaultSchemaFile].
func (c *Handler) Resolve(overrides Overrides, workDir string) (*Settings, error) {
	envMap, err := c.readEnvFile(overrides.EnvFile, workDir)
	if err != nil {
		return nil, err
	}

	lookup := func(override, key string) string {
		if override != "" {
			return override
		}
		if value, ok := c.EnvHandler.LookupEnv(key); ok && value != "" {
			return value
		}

		return c.MapKeyToString(envMap, key)
	}

	settings := &Settings{}

	settings.Root = absolute(lookup(overrides.Root, KeyRoot), workDir)

	if schemaFile := lookup(overrides.SchemaFile, KeySchema); schemaFile != "" {
		settings.SchemaFile = absolute(schemaFile, workDir)
	} else {
		settings.SchemaFile = c.findSchemaFile(settings.Root)
	}

	level := lookup(overrides.LogLevel, KeyLogLevel)
	if level == "" {
		level = DefaultLogLevel
	}
	if err := settings.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("(config-resolve) %w: %q", ErrInvalidLogLevel, level)
	}

	settings.Lock = DefaultLock
	if overrides.Lock != nil {
		settings.Lock = *overrides.Lock
	} else if lock := lookup("", KeyLock); lock != "" {
		settings.Lock, err = strconv.ParseBool(lock)
		if err != nil {
			return nil, fmt.Errorf("(config-resolve) %w: %s=%q", ErrInvalidBool, KeyLock, lock)
		}
	}

	return settings, nil
}

func (c *Handler) readEnvFile(envFile, workDir string) (map[string]string, error) {
	if envFile != "" {
		envMap, err := c.ReadGeneric(absolute(envFile, workDir))
		if err != nil {
			return nil, fmt.Errorf("(config-envfile) %w", err)
		}

		return envMap, nil
	}

	envMap, err := c.ReadGeneric(filepath.Join(workDir, DefaultEnvFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}

		return nil, fmt.Errorf("(config-envfile) %w", err)
	}

	return envMap, nil
}

func (c *Handler) findSchemaFile(root string) string {
	candidates := []string{filepath.Join(root, DefaultSchemaFile)}
	for _, id := range codec.IDs() {
		if candidate := filepath.Join(root, DefaultSchemaBase+"."+id); candidate != candidates[0] {
			candidates = append(candidates, candidate)
		}
	}

	for _, candidate := range candidates {
		if _, err := c.OSHandler.Stat(candidate); err == nil {
			return candidate
		}
	}

	return candidates[0]
}

func absolute(path, workDir string) string {
	if path == "" {
		return workDir
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(workDir, path)
}
