package commands

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"object-builder/internal/config"
	"object-builder/internal/configurator"
	"object-builder/internal/diagnostic"
)

func newValidateCommand(opts *globalOptions) *cobra.Command {
	var (
		schemaPath string
		configPath string
		original   string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check whether a configuration can be submitted",
		Long: `Validate a configuration against a source schema.

This command checks:
  - The result name is set and does not collide with a source field path
  - At least one field is mapped
  - Every field has a name and a source path
  - Every source path exists in the schema (warning only)`,
		Example: `  # Validate, allowing the name the panel was opened with
  objectbuilder validate --schema schema.yaml --config config.yaml --original Contact`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, draft, err := opts.load(schemaPath, configPath)
			if err != nil {
				return err
			}

			activate(c, draft, original, cmd.Flags().Changed("original"))
			opts.dump(cmd.ErrOrStderr(), c)

			res := c.Validate()
			printDiagnostics(cmd.OutOrStdout(), res)

			log.Debug().
				Str("config", configPath).
				Bool("valid", res.IsValid()).
				Msg("Validated configuration")

			if !res.IsValid() {
				return fmt.Errorf("%w: %w", errInvalid, res.Error())
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "source schema file")
	cmd.Flags().StringVar(&configPath, "config", "", "configuration file")
	cmd.Flags().StringVar(&original, "original", "", "result name the panel was opened with (default: the file's)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// activate opens the panel on draft. With an explicit original name, the
// panel is first activated on that name so it is the one captured.
func activate(c *configurator.Configurator, draft *config.Draft, original string, hasOriginal bool) {
	if hasOriginal {
		c.SetConfiguration(&config.Configuration{ResultName: config.Name(original)})
		c.Activate()
		c.SetDraft(draft)

		return
	}

	c.SetDraft(draft)
	c.Activate()
}

func printDiagnostics(w io.Writer, res *diagnostic.Diagnostics) {
	for _, d := range res.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}

	if res.IsValid() {
		fmt.Fprintln(w, "valid")
	} else {
		fmt.Fprintln(w, "invalid")
	}
}

// logDiagnostics logs each finding at the level matching its severity.
func logDiagnostics(logger zerolog.Logger, res *diagnostic.Diagnostics) {
	for _, d := range res.All() {
		level := zerolog.WarnLevel
		if d.Severity == diagnostic.SeverityError {
			level = zerolog.ErrorLevel
		}

		logger.WithLevel(level).
			Str("code", d.Code).
			Str("field", d.Field).
			Strs("suggestions", d.Suggestions).
			Msg(d.Message)
	}
}
