package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"object-builder/internal/config"
	"object-builder/internal/configurator"
	"object-builder/internal/schema"
)

// errInvalid is returned when a configuration cannot be submitted.
var errInvalid = errors.New("configuration is invalid")

// globalOptions are the persistent flags shared by all commands.
type globalOptions struct {
	verbose bool
	debug   bool
	locale  string
	format  string
}

// Execute runs the root command.
func Execute(ctx context.Context, version string) error {
	return newRootCommand(version).ExecuteContext(ctx)
}

func newRootCommand(version string) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "objectbuilder",
		Short: "Object builder configurator",
		Long: `objectbuilder maps flattened source schema paths into named output fields.

It loads a source schema and an object builder configuration, applies edits,
and reports whether the result can be submitted.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			switch opts.format {
			case "yaml", "json":
				return nil
			default:
				return fmt.Errorf("unsupported format %q (want yaml or json)", opts.format)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "dump the edited configuration to stderr")
	rootCmd.PersistentFlags().StringVar(&opts.locale, "locale", "en", "locale used to order field paths")
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "o", "yaml", "output format: yaml or json")

	rootCmd.AddCommand(newFlattenCommand(opts))
	rootCmd.AddCommand(newDefaultCommand(opts))
	rootCmd.AddCommand(newNormalizeCommand(opts))
	rootCmd.AddCommand(newValidateCommand(opts))
	rootCmd.AddCommand(newEditCommand(opts))
	rootCmd.AddCommand(newSuggestCommand(opts))
	rootCmd.AddCommand(newWatchCommand(opts))

	return rootCmd
}

// newConfigurator builds a configurator using the global flags.
func (o *globalOptions) newConfigurator() (*configurator.Configurator, error) {
	tag, err := language.Parse(o.locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", o.locale, err)
	}

	return configurator.New(
		configurator.WithLogger(log.Logger),
		configurator.WithCollator(schema.NewCollator(tag)),
	), nil
}

// load builds a configurator from a schema file (optional) and a
// configuration file, without activating it.
func (o *globalOptions) load(schemaPath, configPath string) (*configurator.Configurator, *config.Draft, error) {
	c, err := o.newConfigurator()
	if err != nil {
		return nil, nil, err
	}

	if schemaPath != "" {
		tree, err := schema.LoadFile(schemaPath)
		if err != nil {
			return nil, nil, err
		}

		if err := c.SetSchema(tree); err != nil {
			return nil, nil, err
		}
	}

	draft, err := config.LoadFile(configPath)
	if err != nil {
		return nil, nil, err
	}

	return c, draft, nil
}

// write encodes v in the selected format.
func (o *globalOptions) write(w io.Writer, v any) error {
	if o.format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

// dump prints the draft when --debug is set.
func (o *globalOptions) dump(w io.Writer, c *configurator.Configurator) {
	if o.debug {
		spew.Fdump(w, c.Draft())
	}
}
